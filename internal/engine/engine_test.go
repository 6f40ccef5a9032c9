package engine

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/book-swap/internal/model"
    "github.com/iliyamo/book-swap/internal/store"
)

func newTestEngine(t *testing.T) *Engine {
    t.Helper()
    st, err := store.NewFileStore(t.TempDir())
    require.NoError(t, err)
    return New(context.Background(), st, nil)
}

func user(id, name string) *model.User {
    return &model.User{ID: id, Username: name, Email: name + "@example.com"}
}

func TestNewSeedsCollections(t *testing.T) {
    e := newTestEngine(t)
    assert.Len(t, e.Books(), 6)
    assert.Len(t, e.TradeOffers(), 2)
}

func TestAddBookSetsOwnerAndAvailability(t *testing.T) {
    e := newTestEngine(t)
    u := user("user1", "bookworm42")

    b, err := e.AddBook(context.Background(), u, NewBookInput{
        Title:     "Neuromancer",
        Author:    "William Gibson",
        Condition: model.ConditionGood,
    })
    require.NoError(t, err)
    assert.Equal(t, u.ID, b.OwnerID)
    assert.Equal(t, u.Username, b.OwnerName)
    assert.True(t, b.IsAvailable)
    assert.NotEmpty(t, b.ID)
}

func TestAddBookRejectsAnonymous(t *testing.T) {
    e := newTestEngine(t)
    before := len(e.Books())

    _, err := e.AddBook(context.Background(), nil, NewBookInput{
        Title:     "Neuromancer",
        Author:    "William Gibson",
        Condition: model.ConditionGood,
    })
    assert.ErrorIs(t, err, ErrAnonymous)
    assert.Len(t, e.Books(), before)
}

func TestAddBookValidation(t *testing.T) {
    e := newTestEngine(t)
    u := user("user1", "bookworm42")

    _, err := e.AddBook(context.Background(), u, NewBookInput{Author: "nobody", Condition: model.ConditionGood})
    assert.ErrorIs(t, err, ErrValidation)

    _, err = e.AddBook(context.Background(), u, NewBookInput{Title: "x", Author: "y", Condition: "Mint"})
    assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateBookMergesPartialFields(t *testing.T) {
    e := newTestEngine(t)
    u := user("user1", "bookworm42")

    title := "The Great Gatsby (1st ed.)"
    cond := model.ConditionAcceptable
    b, err := e.UpdateBook(context.Background(), u, "book1", model.BookUpdate{Title: &title, Condition: &cond})
    require.NoError(t, err)
    assert.Equal(t, title, b.Title)
    assert.Equal(t, cond, b.Condition)
    assert.Equal(t, "F. Scott Fitzgerald", b.Author) // untouched field survives
}

func TestUpdateBookNotFoundAndForbidden(t *testing.T) {
    e := newTestEngine(t)
    title := "x"

    _, err := e.UpdateBook(context.Background(), user("user1", "bookworm42"), "nope", model.BookUpdate{Title: &title})
    assert.ErrorIs(t, err, ErrBookNotFound)

    // book1 belongs to user1
    _, err = e.UpdateBook(context.Background(), user("user2", "pageturner"), "book1", model.BookUpdate{Title: &title})
    assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteBookCascadesOffers(t *testing.T) {
    e := newTestEngine(t)
    // seed: trade1 references book3 (owner user2), trade2 references book1.
    require.NoError(t, e.DeleteBook(context.Background(), user("user2", "pageturner"), "book3"))

    assert.Len(t, e.Books(), 5)
    offers := e.TradeOffers()
    require.Len(t, offers, 1)
    assert.Equal(t, "trade2", offers[0].ID) // offers on other books survive
}

func TestDeleteBookAuthorization(t *testing.T) {
    e := newTestEngine(t)
    assert.ErrorIs(t, e.DeleteBook(context.Background(), user("user3", "currentuser"), "book3"), ErrForbidden)
    assert.ErrorIs(t, e.DeleteBook(context.Background(), user("user3", "currentuser"), "nope"), ErrBookNotFound)
    assert.ErrorIs(t, e.DeleteBook(context.Background(), nil, "book3"), ErrAnonymous)
    assert.Len(t, e.Books(), 6)
}

func TestSendTradeOfferSnapshotsNames(t *testing.T) {
    e := newTestEngine(t)
    u := user("user3", "currentuser")

    offer, err := e.SendTradeOffer(context.Background(), u, "book1")
    require.NoError(t, err)
    assert.Equal(t, "book1", offer.BookID)
    assert.Equal(t, "The Great Gatsby", offer.BookTitle)
    assert.Equal(t, "user3", offer.RequesterID)
    assert.Equal(t, "currentuser", offer.RequesterName)
    assert.Equal(t, "user1", offer.OwnerID)
    assert.Equal(t, "bookworm42", offer.OwnerName)
    assert.Equal(t, model.TradePending, offer.Status)
    assert.False(t, offer.CreatedAt.IsZero())
}

func TestSendTradeOfferRejectsDuplicatePending(t *testing.T) {
    e := newTestEngine(t)
    u := user("user3", "currentuser")

    _, err := e.SendTradeOffer(context.Background(), u, "book1")
    require.NoError(t, err)
    before := len(e.TradeOffers())

    _, err = e.SendTradeOffer(context.Background(), u, "book1")
    assert.ErrorIs(t, err, ErrDuplicateOffer)
    assert.Len(t, e.TradeOffers(), before)
}

func TestSendTradeOfferAllowsRetryAfterResolution(t *testing.T) {
    e := newTestEngine(t)
    requester := user("user3", "currentuser")
    owner := user("user1", "bookworm42")

    offer, err := e.SendTradeOffer(context.Background(), requester, "book1")
    require.NoError(t, err)
    _, err = e.RespondToTradeOffer(context.Background(), owner, offer.ID, false)
    require.NoError(t, err)

    // rejected offer no longer blocks a new request
    _, err = e.SendTradeOffer(context.Background(), requester, "book1")
    assert.NoError(t, err)
}

func TestSendTradeOfferEdgeCases(t *testing.T) {
    e := newTestEngine(t)

    _, err := e.SendTradeOffer(context.Background(), nil, "book1")
    assert.ErrorIs(t, err, ErrAnonymous)

    _, err = e.SendTradeOffer(context.Background(), user("user3", "currentuser"), "nope")
    assert.ErrorIs(t, err, ErrBookNotFound)

    // book5 belongs to user3
    _, err = e.SendTradeOffer(context.Background(), user("user3", "currentuser"), "book5")
    assert.ErrorIs(t, err, ErrValidation)
}

func TestAcceptFlipsAvailabilityOnce(t *testing.T) {
    e := newTestEngine(t)
    requester := user("user3", "currentuser")
    owner := user("user1", "bookworm42")

    offer, err := e.SendTradeOffer(context.Background(), requester, "book1")
    require.NoError(t, err)

    resolved, err := e.RespondToTradeOffer(context.Background(), owner, offer.ID, true)
    require.NoError(t, err)
    assert.Equal(t, model.TradeAccepted, resolved.Status)

    b, err := e.BookByID("book1")
    require.NoError(t, err)
    assert.False(t, b.IsAvailable)

    // resolved offers are immutable
    _, err = e.RespondToTradeOffer(context.Background(), owner, offer.ID, false)
    assert.ErrorIs(t, err, ErrOfferResolved)
}

func TestRejectNeverTouchesBook(t *testing.T) {
    e := newTestEngine(t)
    requester := user("user3", "currentuser")
    owner := user("user1", "bookworm42")

    offer, err := e.SendTradeOffer(context.Background(), requester, "book2")
    require.NoError(t, err)

    resolved, err := e.RespondToTradeOffer(context.Background(), owner, offer.ID, false)
    require.NoError(t, err)
    assert.Equal(t, model.TradeRejected, resolved.Status)

    b, err := e.BookByID("book2")
    require.NoError(t, err)
    assert.True(t, b.IsAvailable)
}

func TestRespondAuthorization(t *testing.T) {
    e := newTestEngine(t)
    requester := user("user3", "currentuser")

    offer, err := e.SendTradeOffer(context.Background(), requester, "book1")
    require.NoError(t, err)

    // the requester is not the owner and cannot resolve their own offer
    _, err = e.RespondToTradeOffer(context.Background(), requester, offer.ID, true)
    assert.ErrorIs(t, err, ErrForbidden)

    _, err = e.RespondToTradeOffer(context.Background(), user("user1", "bookworm42"), "nope", true)
    assert.ErrorIs(t, err, ErrOfferNotFound)

    _, err = e.RespondToTradeOffer(context.Background(), nil, offer.ID, true)
    assert.ErrorIs(t, err, ErrAnonymous)
}

func TestDerivedViews(t *testing.T) {
    e := newTestEngine(t)
    u3 := user("user3", "currentuser")

    owned := e.OwnedBooks(u3)
    require.Len(t, owned, 2) // book5, book6
    for _, b := range owned {
        assert.Equal(t, "user3", b.OwnerID)
    }

    available := e.AvailableBooks(u3)
    require.Len(t, available, 4)
    for _, b := range available {
        assert.NotEqual(t, "user3", b.OwnerID)
        assert.True(t, b.IsAvailable)
    }

    // anonymous sees nothing
    assert.Empty(t, e.OwnedBooks(nil))
    assert.Empty(t, e.AvailableBooks(nil))

    // seed trade1: user3 requested book3 from user2
    assert.Len(t, e.OffersSent(u3), 1)
    assert.Len(t, e.OffersReceived(user("user2", "pageturner")), 1)
    assert.Empty(t, e.OffersSent(nil))
}

func TestViewsRecomputeAfterAccept(t *testing.T) {
    e := newTestEngine(t)
    u3 := user("user3", "currentuser")
    owner := user("user1", "bookworm42")

    offer, err := e.SendTradeOffer(context.Background(), u3, "book1")
    require.NoError(t, err)
    _, err = e.RespondToTradeOffer(context.Background(), owner, offer.ID, true)
    require.NoError(t, err)

    for _, b := range e.AvailableBooks(u3) {
        assert.NotEqual(t, "book1", b.ID)
    }
}

func TestWriteThroughPersistence(t *testing.T) {
    dir := t.TempDir()
    st, err := store.NewFileStore(dir)
    require.NoError(t, err)

    e := New(context.Background(), st, nil)
    u := user("user1", "bookworm42")
    b, err := e.AddBook(context.Background(), u, NewBookInput{
        Title:     "Neuromancer",
        Author:    "William Gibson",
        Condition: model.ConditionLikeNew,
    })
    require.NoError(t, err)

    // a second engine over the same store sees the mutation
    e2 := New(context.Background(), st, nil)
    got, err := e2.BookByID(b.ID)
    require.NoError(t, err)
    assert.Equal(t, "Neuromancer", got.Title)
    assert.Len(t, e2.TradeOffers(), 2)
}
