// Package router defines how HTTP routes are registered for the API.
package router

import (
    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/book-swap/internal/config"
    "github.com/iliyamo/book-swap/internal/handler"
    "github.com/iliyamo/book-swap/internal/middleware"
    "github.com/iliyamo/book-swap/internal/session"
)

// RegisterRoutes registers routes that do not require a session.
// Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/healthz", handler.Health)
}

// RegisterAuth wires the identity-session endpoints under /v1/auth.
// None of them require an existing session: login and register create
// one, logout is deliberately unconditional, and /v1/me answers 401 on
// its own while anonymous.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
    g := e.Group("/v1/auth")
    g.POST("/login", a.Login)
    g.POST("/register", a.Register)
    g.POST("/logout", a.Logout)
    e.GET("/v1/me", a.Me)
}

// RegisterCatalog wires book browsing and listing management. Read views
// are open — the engine derives empty owned/available sets for an
// anonymous session — and are rate limited and cached when Redis is
// available. Mutations sit behind the session gate.
func RegisterCatalog(e *echo.Echo, b *handler.BookHandler, l *handler.LookupHandler, s *session.Session, rdb *redis.Client) {
    limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
    cache := middleware.NewResponseCache(config.LoadCacheConfig(), rdb)

    read := e.Group("/v1", limiter)
    read.GET("/books", b.List, cache)
    read.GET("/books/owned", b.Owned)
    read.GET("/books/available", b.Available)
    read.GET("/books/:id", b.Get, cache)
    read.GET("/isbn/:isbn", l.ByISBN, cache)

    write := e.Group("/v1", limiter, middleware.RequireSession(s))
    write.POST("/books", b.Create)
    write.PATCH("/books/:id", b.Update)
    write.DELETE("/books/:id", b.Delete)
}

// RegisterTrades wires the trade-offer lifecycle. The offer views are
// open like the catalog views; sending and responding require a session.
func RegisterTrades(e *echo.Echo, t *handler.TradeHandler, s *session.Session, rdb *redis.Client) {
    limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

    read := e.Group("/v1", limiter)
    read.GET("/trades/received", t.Received)
    read.GET("/trades/sent", t.Sent)

    write := e.Group("/v1", limiter, middleware.RequireSession(s))
    write.POST("/trades", t.Create)
    write.POST("/trades/:id/respond", t.Respond)
}
