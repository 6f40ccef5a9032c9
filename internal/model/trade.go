package model

import "time"

// TradeStatus is the lifecycle state of a trade offer. Transitions are
// monotonic: pending may become accepted or rejected, and a resolved
// offer never changes again.
type TradeStatus string

const (
    TradePending  TradeStatus = "pending"
    TradeAccepted TradeStatus = "accepted"
    TradeRejected TradeStatus = "rejected"
)

// TradeOffer is a one-directional request by a non-owner to acquire a
// specific book from its owner. BookTitle, RequesterName and OwnerName
// are creation-time snapshots of the referenced records' display fields;
// they are immutable by design and deliberately not refreshed when the
// underlying user or book changes later.
//
// Offers are never deleted on their own; they are removed only as a
// cascade of the referenced book being deleted.
//
// Fields:
//  ID            – unique identifier among trade offers.
//  BookID        – the requested book.
//  BookTitle     – snapshot of the book's title.
//  RequesterID   – identity asking for the book.
//  RequesterName – snapshot of the requester's username.
//  OwnerID       – identity owning the book when the offer was made.
//  OwnerName     – snapshot of the owner's username.
//  Status        – pending, accepted or rejected.
//  CreatedAt     – creation timestamp (UTC).
type TradeOffer struct {
    ID            string      `json:"id"`
    BookID        string      `json:"bookId"`
    BookTitle     string      `json:"bookTitle"`
    RequesterID   string      `json:"requesterId"`
    RequesterName string      `json:"requesterName"`
    OwnerID       string      `json:"ownerId"`
    OwnerName     string      `json:"ownerName"`
    Status        TradeStatus `json:"status"`
    CreatedAt     time.Time   `json:"createdAt"`
}

// Resolved reports whether the offer has left the pending state.
func (t TradeOffer) Resolved() bool {
    return t.Status == TradeAccepted || t.Status == TradeRejected
}
