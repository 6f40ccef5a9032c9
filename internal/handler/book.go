package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/book-swap/internal/engine"
    "github.com/iliyamo/book-swap/internal/model"
    "github.com/iliyamo/book-swap/internal/session"
)

// BookHandler exposes the catalog: public browse endpoints plus the
// session-gated listing CRUD. The engine enforces every invariant; the
// handler only shapes HTTP.
type BookHandler struct {
    Engine  *engine.Engine
    Session *session.Session
}

func NewBookHandler(e *engine.Engine, s *session.Session) *BookHandler {
    return &BookHandler{Engine: e, Session: s}
}

// List handles GET /v1/books and returns every listing.
func (h *BookHandler) List(c echo.Context) error {
    return c.JSON(http.StatusOK, h.Engine.Books())
}

// Get handles GET /v1/books/:id.
func (h *BookHandler) Get(c echo.Context) error {
    b, err := h.Engine.BookByID(c.Param("id"))
    if err != nil {
        return writeEngineError(c, err)
    }
    return c.JSON(http.StatusOK, b)
}

// Owned handles GET /v1/books/owned: the current identity's listings.
func (h *BookHandler) Owned(c echo.Context) error {
    return c.JSON(http.StatusOK, h.Engine.OwnedBooks(h.Session.Current()))
}

// Available handles GET /v1/books/available: books the current identity
// could request.
func (h *BookHandler) Available(c echo.Context) error {
    return c.JSON(http.StatusOK, h.Engine.AvailableBooks(h.Session.Current()))
}

// Create handles POST /v1/books.
func (h *BookHandler) Create(c echo.Context) error {
    var in engine.NewBookInput
    if err := c.Bind(&in); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    b, err := h.Engine.AddBook(c.Request().Context(), h.Session.Current(), in)
    if err != nil {
        return writeEngineError(c, err)
    }
    return c.JSON(http.StatusCreated, b)
}

// Update handles PATCH /v1/books/:id with a partial field set.
func (h *BookHandler) Update(c echo.Context) error {
    var upd model.BookUpdate
    if err := c.Bind(&upd); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    b, err := h.Engine.UpdateBook(c.Request().Context(), h.Session.Current(), c.Param("id"), upd)
    if err != nil {
        return writeEngineError(c, err)
    }
    return c.JSON(http.StatusOK, b)
}

// Delete handles DELETE /v1/books/:id; trade offers referencing the book
// are removed with it.
func (h *BookHandler) Delete(c echo.Context) error {
    if err := h.Engine.DeleteBook(c.Request().Context(), h.Session.Current(), c.Param("id")); err != nil {
        return writeEngineError(c, err)
    }
    return c.NoContent(http.StatusNoContent)
}
