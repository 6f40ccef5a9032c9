package handler

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/book-swap/internal/isbn"
)

// LookupHandler proxies the optional ISBN pre-fill lookup. The client UI
// falls back to manual entry on any non-200 response.
type LookupHandler struct {
    Client *isbn.Client
}

func NewLookupHandler(c *isbn.Client) *LookupHandler {
    return &LookupHandler{Client: c}
}

// ByISBN handles GET /v1/isbn/:isbn.
func (h *LookupHandler) ByISBN(c echo.Context) error {
    data, err := h.Client.Lookup(c.Request().Context(), c.Param("isbn"))
    if err != nil {
        if errors.Is(err, isbn.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "no book found with that ISBN"})
        }
        return c.JSON(http.StatusBadGateway, echo.Map{"error": "failed to fetch book data"})
    }
    return c.JSON(http.StatusOK, data)
}
