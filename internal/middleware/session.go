// Package middleware provides reusable HTTP middleware for the
// marketplace API: the session gate, Redis rate limiting and Redis
// response caching.
package middleware

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/book-swap/internal/session"
)

// RequireSession rejects requests while the session is anonymous.
// Identity-gated operations (adding books, trading) sit behind this
// gate; handlers behind it can rely on a non-nil current identity. The
// identity's id and username are injected into the request context for
// downstream middleware such as the rate limiter.
func RequireSession(s *session.Session) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            u := s.Current()
            if u == nil {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "login required"})
            }
            c.Set("user_id", u.ID)
            c.Set("username", u.Username)
            return next(c)
        }
    }
}
