// Package store persists named collections ("slots") as JSON documents.
// The marketplace keeps three slots: books, trade_offers and current_user.
// A missing slot and a corrupt slot look the same to callers (ErrNotFound)
// so that initialization can always fall back to seed data; storage
// trouble is logged but never fatal.
package store

import (
    "context"
    "errors"
)

// Slot keys used by the engine and session.
const (
    SlotBooks       = "books"
    SlotTradeOffers = "trade_offers"
    SlotCurrentUser = "current_user"
)

// ErrNotFound is returned by Load when a slot is absent or its contents
// cannot be deserialized.
var ErrNotFound = errors.New("slot not found")

// Store reads and writes JSON-serializable values keyed by slot name.
// Implementations must be safe for concurrent use.
type Store interface {
    // Load deserializes the named slot into v. It returns ErrNotFound when
    // the slot is absent or holds an unreadable payload.
    Load(ctx context.Context, key string, v any) error
    // Save serializes v and writes it to the named slot, replacing any
    // previous contents.
    Save(ctx context.Context, key string, v any) error
    // Delete removes the named slot. Deleting an absent slot is a no-op.
    Delete(ctx context.Context, key string) error
}
