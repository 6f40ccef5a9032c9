package engine

import (
    "context"
    "fmt"
    "log"
    "strings"
    "sync"
    "time"

    "github.com/iliyamo/book-swap/internal/model"
    "github.com/iliyamo/book-swap/internal/notify"
    "github.com/iliyamo/book-swap/internal/store"
)

// Engine holds the authoritative in-memory book and trade-offer
// collections and mirrors every successful mutation to the persistent
// store (write-through, no batching). A single mutex serializes the
// read-collection -> compute -> persist cycle so concurrent HTTP
// requests cannot lose updates.
//
// All operations take the acting identity explicitly; a nil actor means
// anonymous. The engine never reaches for a global session.
type Engine struct {
    mu     sync.RWMutex
    books  []model.Book
    offers []model.TradeOffer

    store  store.Store
    notify notify.Notifier
}

// New loads both collections from the store, substituting and persisting
// seed data for any slot that is absent or corrupt. It never fails on
// storage trouble: the engine always starts with valid collections.
func New(ctx context.Context, st store.Store, n notify.Notifier) *Engine {
    if n == nil {
        n = notify.Discard{}
    }
    e := &Engine{store: st, notify: n}

    var books []model.Book
    if err := st.Load(ctx, store.SlotBooks, &books); err != nil {
        books = model.SeedBooks()
        e.persist(ctx, store.SlotBooks, books)
    }
    var offers []model.TradeOffer
    if err := st.Load(ctx, store.SlotTradeOffers, &offers); err != nil {
        offers = model.SeedTradeOffers()
        e.persist(ctx, store.SlotTradeOffers, offers)
    }
    e.books = books
    e.offers = offers
    return e
}

// persist mirrors a collection to the store. Storage failure is logged
// and swallowed; the in-memory state stays authoritative.
func (e *Engine) persist(ctx context.Context, key string, v any) {
    if err := e.store.Save(ctx, key, v); err != nil {
        log.Printf("engine: persist %q failed: %v", key, err)
    }
}

// NewBookInput carries the caller-supplied fields for a new listing.
// Owner fields and availability are filled in by the engine.
type NewBookInput struct {
    Title       string          `json:"title"`
    Author      string          `json:"author"`
    CoverURL    string          `json:"coverUrl"`
    Description string          `json:"description"`
    Condition   model.Condition `json:"condition"`
    Genre       string          `json:"genre"`
    Year        int             `json:"year"`
}

func (in NewBookInput) validate() error {
    if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Author) == "" {
        return fmt.Errorf("%w: title and author are required", ErrValidation)
    }
    if !model.ValidCondition(in.Condition) {
        return fmt.Errorf("%w: unknown condition %q", ErrValidation, in.Condition)
    }
    return nil
}

// AddBook creates a listing owned by actor with a fresh id and
// IsAvailable set. Anonymous callers are rejected without mutation.
func (e *Engine) AddBook(ctx context.Context, actor *model.User, in NewBookInput) (model.Book, error) {
    if actor == nil {
        e.notify.Error("You must be logged in to add books")
        return model.Book{}, ErrAnonymous
    }
    if err := in.validate(); err != nil {
        return model.Book{}, err
    }

    e.mu.Lock()
    defer e.mu.Unlock()

    book := model.Book{
        ID:          model.NewID("book"),
        Title:       strings.TrimSpace(in.Title),
        Author:      strings.TrimSpace(in.Author),
        CoverURL:    in.CoverURL,
        Description: in.Description,
        Condition:   in.Condition,
        Genre:       in.Genre,
        Year:        in.Year,
        OwnerID:     actor.ID,
        OwnerName:   actor.Username,
        IsAvailable: true,
    }
    e.books = append(e.books, book)
    e.persist(ctx, store.SlotBooks, e.books)
    e.notify.Success("Book added to your collection")
    return book, nil
}

// UpdateBook merges the non-nil fields of upd into the book with the
// given id. Only the owner may update a listing. A missing id surfaces
// ErrBookNotFound rather than succeeding silently.
func (e *Engine) UpdateBook(ctx context.Context, actor *model.User, id string, upd model.BookUpdate) (model.Book, error) {
    if actor == nil {
        return model.Book{}, ErrAnonymous
    }
    if upd.Condition != nil && !model.ValidCondition(*upd.Condition) {
        return model.Book{}, fmt.Errorf("%w: unknown condition %q", ErrValidation, *upd.Condition)
    }

    e.mu.Lock()
    defer e.mu.Unlock()

    idx := e.bookIndex(id)
    if idx < 0 {
        return model.Book{}, ErrBookNotFound
    }
    if e.books[idx].OwnerID != actor.ID {
        return model.Book{}, ErrForbidden
    }

    b := &e.books[idx]
    if upd.Title != nil {
        b.Title = *upd.Title
    }
    if upd.Author != nil {
        b.Author = *upd.Author
    }
    if upd.CoverURL != nil {
        b.CoverURL = *upd.CoverURL
    }
    if upd.Description != nil {
        b.Description = *upd.Description
    }
    if upd.Condition != nil {
        b.Condition = *upd.Condition
    }
    if upd.Genre != nil {
        b.Genre = *upd.Genre
    }
    if upd.Year != nil {
        b.Year = *upd.Year
    }
    if upd.IsAvailable != nil {
        b.IsAvailable = *upd.IsAvailable
    }
    e.persist(ctx, store.SlotBooks, e.books)
    e.notify.Success("Book updated successfully")
    return *b, nil
}

// DeleteBook removes the owner's book and cascades to every trade offer
// referencing it. Offers on other books are untouched.
func (e *Engine) DeleteBook(ctx context.Context, actor *model.User, id string) error {
    if actor == nil {
        return ErrAnonymous
    }

    e.mu.Lock()
    defer e.mu.Unlock()

    idx := e.bookIndex(id)
    if idx < 0 {
        return ErrBookNotFound
    }
    if e.books[idx].OwnerID != actor.ID {
        return ErrForbidden
    }

    e.books = append(e.books[:idx], e.books[idx+1:]...)
    kept := e.offers[:0]
    for _, o := range e.offers {
        if o.BookID != id {
            kept = append(kept, o)
        }
    }
    e.offers = kept

    e.persist(ctx, store.SlotBooks, e.books)
    e.persist(ctx, store.SlotTradeOffers, e.offers)
    e.notify.Success("Book removed from your collection")
    return nil
}

// SendTradeOffer creates a pending offer from actor for the given book.
// The owner/requester display names are snapshot at this moment and
// never refreshed. At most one pending offer may exist per
// (book, requester) pair; a requester may ask again once an earlier
// offer was accepted or rejected.
func (e *Engine) SendTradeOffer(ctx context.Context, actor *model.User, bookID string) (model.TradeOffer, error) {
    if actor == nil {
        e.notify.Error("You must be logged in to request a trade")
        return model.TradeOffer{}, ErrAnonymous
    }

    e.mu.Lock()
    defer e.mu.Unlock()

    idx := e.bookIndex(bookID)
    if idx < 0 {
        e.notify.Error("Book not found")
        return model.TradeOffer{}, ErrBookNotFound
    }
    book := e.books[idx]
    if book.OwnerID == actor.ID {
        return model.TradeOffer{}, fmt.Errorf("%w: cannot request your own book", ErrValidation)
    }
    for _, o := range e.offers {
        if o.BookID == bookID && o.RequesterID == actor.ID && o.Status == model.TradePending {
            e.notify.Error("You already requested this book")
            return model.TradeOffer{}, ErrDuplicateOffer
        }
    }

    offer := model.TradeOffer{
        ID:            model.NewID("trade"),
        BookID:        book.ID,
        BookTitle:     book.Title,
        RequesterID:   actor.ID,
        RequesterName: actor.Username,
        OwnerID:       book.OwnerID,
        OwnerName:     book.OwnerName,
        Status:        model.TradePending,
        CreatedAt:     time.Now().UTC(),
    }
    e.offers = append(e.offers, offer)
    e.persist(ctx, store.SlotTradeOffers, e.offers)
    e.notify.Success("Trade request sent")
    return offer, nil
}

// RespondToTradeOffer resolves a pending offer. Only the owner named on
// the offer may respond. Accepting additionally marks the referenced
// book unavailable, the sole automatic path for that flip. Rejecting
// never touches the book.
func (e *Engine) RespondToTradeOffer(ctx context.Context, actor *model.User, tradeID string, accept bool) (model.TradeOffer, error) {
    if actor == nil {
        return model.TradeOffer{}, ErrAnonymous
    }

    e.mu.Lock()
    defer e.mu.Unlock()

    idx := -1
    for i, o := range e.offers {
        if o.ID == tradeID {
            idx = i
            break
        }
    }
    if idx < 0 {
        return model.TradeOffer{}, ErrOfferNotFound
    }
    offer := &e.offers[idx]
    if offer.OwnerID != actor.ID {
        return model.TradeOffer{}, ErrForbidden
    }
    if offer.Resolved() {
        return model.TradeOffer{}, ErrOfferResolved
    }

    if accept {
        offer.Status = model.TradeAccepted
        if bi := e.bookIndex(offer.BookID); bi >= 0 {
            e.books[bi].IsAvailable = false
            e.persist(ctx, store.SlotBooks, e.books)
        }
        e.notify.Success("Trade request accepted")
    } else {
        offer.Status = model.TradeRejected
        e.notify.Info("Trade request declined")
    }
    e.persist(ctx, store.SlotTradeOffers, e.offers)
    return *offer, nil
}

// bookIndex returns the position of the book with the given id, or -1.
// Callers must hold the mutex.
func (e *Engine) bookIndex(id string) int {
    for i, b := range e.books {
        if b.ID == id {
            return i
        }
    }
    return -1
}
