package handler

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/book-swap/internal/engine"
)

// writeEngineError maps engine sentinels onto the API's error taxonomy:
// validation 400, anonymous 401, forbidden 403, not-found 404 and
// conflicting trade state 409. Anything else is a 500.
func writeEngineError(c echo.Context, err error) error {
    status := http.StatusInternalServerError
    switch {
    case errors.Is(err, engine.ErrValidation):
        status = http.StatusBadRequest
    case errors.Is(err, engine.ErrAnonymous):
        status = http.StatusUnauthorized
    case errors.Is(err, engine.ErrForbidden):
        status = http.StatusForbidden
    case errors.Is(err, engine.ErrBookNotFound), errors.Is(err, engine.ErrOfferNotFound):
        status = http.StatusNotFound
    case errors.Is(err, engine.ErrDuplicateOffer), errors.Is(err, engine.ErrOfferResolved):
        status = http.StatusConflict
    }
    return c.JSON(status, echo.Map{"error": err.Error()})
}
