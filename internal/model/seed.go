package model

import "time"

// Seed fixtures used to initialize storage on first run (or after a
// corrupt load). DemoUserID identifies the identity returned by the
// simulated login.
const DemoUserID = "user3"

// SeedUsers returns the fixture user set.
func SeedUsers() []User {
    return []User{
        {
            ID:        "user1",
            Username:  "bookworm42",
            Email:     "bookworm@example.com",
            Location:  "New York, NY",
            Bio:       "Avid reader and collector of classic literature",
            AvatarURL: "https://i.pravatar.cc/150?u=user1",
        },
        {
            ID:        "user2",
            Username:  "pageturner",
            Email:     "pageturner@example.com",
            Location:  "Austin, TX",
            Bio:       "Science fiction enthusiast and aspiring writer",
            AvatarURL: "https://i.pravatar.cc/150?u=user2",
        },
        {
            ID:        "user3",
            Username:  "currentuser",
            Email:     "currentuser@example.com",
            Location:  "Boston, MA",
            Bio:       "Mystery novel addict. Always looking for the next great whodunit.",
            AvatarURL: "https://i.pravatar.cc/150?u=user3",
        },
    }
}

// SeedDemoUser returns the fixed identity handed out by the simulated
// login and used to boot the session when no identity was persisted.
func SeedDemoUser() User {
    for _, u := range SeedUsers() {
        if u.ID == DemoUserID {
            return u
        }
    }
    return User{} // unreachable with the fixture set above
}

// SeedBooks returns the fixture book listings.
func SeedBooks() []Book {
    return []Book{
        {
            ID:          "book1",
            Title:       "The Great Gatsby",
            Author:      "F. Scott Fitzgerald",
            CoverURL:    "https://source.unsplash.com/random/300x450?book,gatsby",
            Description: "The Great Gatsby is a 1925 novel by American writer F. Scott Fitzgerald. Set in the Jazz Age on Long Island, the novel depicts narrator Nick Carraway's interactions with mysterious millionaire Jay Gatsby and Gatsby's obsession to reunite with his former lover, Daisy Buchanan.",
            Condition:   ConditionVeryGood,
            Genre:       "Classic",
            Year:        1925,
            OwnerID:     "user1",
            OwnerName:   "bookworm42",
            IsAvailable: true,
        },
        {
            ID:          "book2",
            Title:       "To Kill a Mockingbird",
            Author:      "Harper Lee",
            CoverURL:    "https://source.unsplash.com/random/300x450?book,mockingbird",
            Description: "To Kill a Mockingbird is a novel by Harper Lee published in 1960. It was immediately successful, winning the Pulitzer Prize, and has become a classic of modern American literature.",
            Condition:   ConditionGood,
            Genre:       "Fiction",
            Year:        1960,
            OwnerID:     "user1",
            OwnerName:   "bookworm42",
            IsAvailable: true,
        },
        {
            ID:          "book3",
            Title:       "Dune",
            Author:      "Frank Herbert",
            CoverURL:    "https://source.unsplash.com/random/300x450?book,dune,sand",
            Description: "Dune is a science fiction novel by American author Frank Herbert, originally published in 1965. It is the first installment of the Dune saga.",
            Condition:   ConditionLikeNew,
            Genre:       "Science Fiction",
            Year:        1965,
            OwnerID:     "user2",
            OwnerName:   "pageturner",
            IsAvailable: true,
        },
        {
            ID:          "book4",
            Title:       "Pride and Prejudice",
            Author:      "Jane Austen",
            CoverURL:    "https://source.unsplash.com/random/300x450?book,classic",
            Description: "Pride and Prejudice is a romantic novel of manners written by Jane Austen in 1813. The novel follows the character development of Elizabeth Bennet, the dynamic protagonist of the book who learns about the repercussions of hasty judgments.",
            Condition:   ConditionGood,
            Genre:       "Romance",
            Year:        1813,
            OwnerID:     "user2",
            OwnerName:   "pageturner",
            IsAvailable: true,
        },
        {
            ID:          "book5",
            Title:       "1984",
            Author:      "George Orwell",
            CoverURL:    "https://source.unsplash.com/random/300x450?book,dystopia",
            Description: "1984 is a dystopian social science fiction novel by English novelist George Orwell. It was published on 8 June 1949 by Secker & Warburg as Orwell's ninth and final book completed in his lifetime.",
            Condition:   ConditionAcceptable,
            Genre:       "Dystopian",
            Year:        1949,
            OwnerID:     "user3",
            OwnerName:   "currentuser",
            IsAvailable: true,
        },
        {
            ID:          "book6",
            Title:       "The Hobbit",
            Author:      "J.R.R. Tolkien",
            CoverURL:    "https://source.unsplash.com/random/300x450?book,fantasy",
            Description: "The Hobbit, or There and Back Again is a children's fantasy novel by English author J. R. R. Tolkien. It was published on 21 September 1937 to wide critical acclaim, being nominated for the Carnegie Medal and awarded a prize from the New York Herald Tribune for best juvenile fiction.",
            Condition:   ConditionVeryGood,
            Genre:       "Fantasy",
            Year:        1937,
            OwnerID:     "user3",
            OwnerName:   "currentuser",
            IsAvailable: true,
        },
    }
}

// SeedTradeOffers returns the fixture trade offers: one pending request
// from the demo user and one already-accepted historical trade.
func SeedTradeOffers() []TradeOffer {
    now := time.Now().UTC()
    return []TradeOffer{
        {
            ID:            "trade1",
            BookID:        "book3",
            BookTitle:     "Dune",
            RequesterID:   "user3",
            RequesterName: "currentuser",
            OwnerID:       "user2",
            OwnerName:     "pageturner",
            Status:        TradePending,
            CreatedAt:     now.Add(-24 * time.Hour),
        },
        {
            ID:            "trade2",
            BookID:        "book1",
            BookTitle:     "The Great Gatsby",
            RequesterID:   "user2",
            RequesterName: "pageturner",
            OwnerID:       "user1",
            OwnerName:     "bookworm42",
            Status:        TradeAccepted,
            CreatedAt:     now.Add(-48 * time.Hour),
        },
    }
}
