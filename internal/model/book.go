package model

// Condition is the fixed, ordered grading scale for a listed book.
type Condition string

const (
    ConditionLikeNew    Condition = "Like New"
    ConditionVeryGood   Condition = "Very Good"
    ConditionGood       Condition = "Good"
    ConditionAcceptable Condition = "Acceptable"
    ConditionPoor       Condition = "Poor"
)

// ValidCondition reports whether c is one of the known grades.
func ValidCondition(c Condition) bool {
    switch c {
    case ConditionLikeNew, ConditionVeryGood, ConditionGood, ConditionAcceptable, ConditionPoor:
        return true
    }
    return false
}

// Book is a tradable listing owned by exactly one user. The owner never
// changes after creation. IsAvailable is flipped to false when a trade
// offer on the book is accepted and never reverts automatically; the only
// way back to available is an explicit update by the owner.
//
// OwnerName is a snapshot of the owner's username taken when the book was
// created. It is not kept in sync with later profile changes.
//
// Fields:
//  ID          – unique identifier among books.
//  Title       – book title.
//  Author      – book author(s).
//  CoverURL    – cover image reference.
//  Description – optional longer description.
//  Condition   – one of the Condition grades.
//  Genre       – optional genre label.
//  Year        – optional publication year.
//  OwnerID     – identity that listed the book.
//  OwnerName   – denormalized owner display name.
//  IsAvailable – whether the book can still be requested.
type Book struct {
    ID          string    `json:"id"`
    Title       string    `json:"title"`
    Author      string    `json:"author"`
    CoverURL    string    `json:"coverUrl"`
    Description string    `json:"description,omitempty"`
    Condition   Condition `json:"condition"`
    Genre       string    `json:"genre,omitempty"`
    Year        int       `json:"year,omitempty"`
    OwnerID     string    `json:"ownerId"`
    OwnerName   string    `json:"ownerName"`
    IsAvailable bool      `json:"isAvailable"`
}

// BookUpdate carries a partial set of mutable book fields. Nil pointers
// mean "leave unchanged". Owner and ID are deliberately absent: a book's
// owner never changes after creation.
type BookUpdate struct {
    Title       *string    `json:"title,omitempty"`
    Author      *string    `json:"author,omitempty"`
    CoverURL    *string    `json:"coverUrl,omitempty"`
    Description *string    `json:"description,omitempty"`
    Condition   *Condition `json:"condition,omitempty"`
    Genre       *string    `json:"genre,omitempty"`
    Year        *int       `json:"year,omitempty"`
    IsAvailable *bool      `json:"isAvailable,omitempty"`
}
