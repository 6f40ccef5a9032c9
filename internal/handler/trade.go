package handler

import (
    "context"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/book-swap/internal/engine"
    "github.com/iliyamo/book-swap/internal/queue"
    queue_publisher "github.com/iliyamo/book-swap/internal/service"
    "github.com/iliyamo/book-swap/internal/session"
)

// TradeHandler drives the trade-offer lifecycle over HTTP. Accepting an
// offer additionally publishes a TradeAcceptedEvent to the broker;
// broker trouble never fails the request.
type TradeHandler struct {
    Engine  *engine.Engine
    Session *session.Session

    // PublishAccepted is swapped out in tests; defaults to the RabbitMQ
    // publisher.
    PublishAccepted func(context.Context, queue.TradeAcceptedEvent) error
}

func NewTradeHandler(e *engine.Engine, s *session.Session) *TradeHandler {
    return &TradeHandler{
        Engine:          e,
        Session:         s,
        PublishAccepted: queue_publisher.PublishTradeAccepted,
    }
}

// ----- DTOs -----

type sendTradeReq struct {
    BookID string `json:"book_id"`
}
type respondTradeReq struct {
    Accept bool `json:"accept"`
}

// Received handles GET /v1/trades/received: offers on my books.
func (h *TradeHandler) Received(c echo.Context) error {
    return c.JSON(http.StatusOK, h.Engine.OffersReceived(h.Session.Current()))
}

// Sent handles GET /v1/trades/sent: offers I have made.
func (h *TradeHandler) Sent(c echo.Context) error {
    return c.JSON(http.StatusOK, h.Engine.OffersSent(h.Session.Current()))
}

// Create handles POST /v1/trades and opens a pending offer on a book.
func (h *TradeHandler) Create(c echo.Context) error {
    var req sendTradeReq
    if err := c.Bind(&req); err != nil || req.BookID == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "book_id is required"})
    }
    offer, err := h.Engine.SendTradeOffer(c.Request().Context(), h.Session.Current(), req.BookID)
    if err != nil {
        return writeEngineError(c, err)
    }
    return c.JSON(http.StatusCreated, offer)
}

// Respond handles POST /v1/trades/:id/respond. Only the owner named on
// the offer may resolve it; acceptance flips the book to unavailable and
// emits the trade.accepted event in the background.
func (h *TradeHandler) Respond(c echo.Context) error {
    var req respondTradeReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    offer, err := h.Engine.RespondToTradeOffer(c.Request().Context(), h.Session.Current(), c.Param("id"), req.Accept)
    if err != nil {
        return writeEngineError(c, err)
    }

    if req.Accept && h.PublishAccepted != nil {
        ev := queue.TradeAcceptedEvent{
            TradeID:       offer.ID,
            BookID:        offer.BookID,
            BookTitle:     offer.BookTitle,
            OwnerID:       offer.OwnerID,
            OwnerName:     offer.OwnerName,
            RequesterID:   offer.RequesterID,
            RequesterName: offer.RequesterName,
            AcceptedAt:    time.Now().UTC().Format(time.RFC3339),
        }
        go func() {
            ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
            defer cancel()
            _ = h.PublishAccepted(ctx, ev) // errors already logged by the publisher
        }()
    }
    return c.JSON(http.StatusOK, offer)
}
