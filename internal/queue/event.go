// Package queue defines the event payloads exchanged over the message
// broker and the background consumer that drains them.
package queue

// TradeAcceptedEvent is published when a book's owner accepts a trade
// offer. It carries enough denormalized information for downstream
// consumers to log or notify without querying the marketplace state.
type TradeAcceptedEvent struct {
    TradeID       string `json:"trade_id"`
    BookID        string `json:"book_id"`
    BookTitle     string `json:"book_title"`
    OwnerID       string `json:"owner_id"`
    OwnerName     string `json:"owner_name"`
    RequesterID   string `json:"requester_id"`
    RequesterName string `json:"requester_name"`
    AcceptedAt    string `json:"accepted_at"`
}
