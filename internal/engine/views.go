package engine

import "github.com/iliyamo/book-swap/internal/model"

// Derived read views. Each is computed on access from the live
// collections, never cached, and returns copies so callers cannot
// mutate engine state.

// Books returns every listing in insertion order.
func (e *Engine) Books() []model.Book {
    e.mu.RLock()
    defer e.mu.RUnlock()
    out := make([]model.Book, len(e.books))
    copy(out, e.books)
    return out
}

// BookByID returns the listing with the given id.
func (e *Engine) BookByID(id string) (model.Book, error) {
    e.mu.RLock()
    defer e.mu.RUnlock()
    if idx := e.bookIndex(id); idx >= 0 {
        return e.books[idx], nil
    }
    return model.Book{}, ErrBookNotFound
}

// OwnedBooks returns the books listed by actor. Empty for anonymous.
func (e *Engine) OwnedBooks(actor *model.User) []model.Book {
    out := []model.Book{}
    if actor == nil {
        return out
    }
    e.mu.RLock()
    defer e.mu.RUnlock()
    for _, b := range e.books {
        if b.OwnerID == actor.ID {
            out = append(out, b)
        }
    }
    return out
}

// AvailableBooks returns books actor could request: listed by someone
// else and still available. Empty for anonymous.
func (e *Engine) AvailableBooks(actor *model.User) []model.Book {
    out := []model.Book{}
    if actor == nil {
        return out
    }
    e.mu.RLock()
    defer e.mu.RUnlock()
    for _, b := range e.books {
        if b.OwnerID != actor.ID && b.IsAvailable {
            out = append(out, b)
        }
    }
    return out
}

// TradeOffers returns every offer in insertion order.
func (e *Engine) TradeOffers() []model.TradeOffer {
    e.mu.RLock()
    defer e.mu.RUnlock()
    out := make([]model.TradeOffer, len(e.offers))
    copy(out, e.offers)
    return out
}

// OffersReceived returns offers on actor's books. Empty for anonymous.
func (e *Engine) OffersReceived(actor *model.User) []model.TradeOffer {
    out := []model.TradeOffer{}
    if actor == nil {
        return out
    }
    e.mu.RLock()
    defer e.mu.RUnlock()
    for _, o := range e.offers {
        if o.OwnerID == actor.ID {
            out = append(out, o)
        }
    }
    return out
}

// OffersSent returns offers actor has made. Empty for anonymous.
func (e *Engine) OffersSent(actor *model.User) []model.TradeOffer {
    out := []model.TradeOffer{}
    if actor == nil {
        return out
    }
    e.mu.RLock()
    defer e.mu.RUnlock()
    for _, o := range e.offers {
        if o.RequesterID == actor.ID {
            out = append(out, o)
        }
    }
    return out
}
