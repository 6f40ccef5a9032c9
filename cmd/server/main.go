package main // Entry point for the book-swap marketplace server

import (
    "context"
    "log"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/book-swap/internal/config"
    "github.com/iliyamo/book-swap/internal/engine"
    "github.com/iliyamo/book-swap/internal/handler"
    "github.com/iliyamo/book-swap/internal/isbn"
    "github.com/iliyamo/book-swap/internal/notify"
    "github.com/iliyamo/book-swap/internal/queue"
    "github.com/iliyamo/book-swap/internal/router"
    "github.com/iliyamo/book-swap/internal/session"
    "github.com/iliyamo/book-swap/internal/store"
)

func main() {
    _ = godotenv.Load() // .env is optional; real env vars win

    cfg := config.Load()
    rdb := config.NewRedisClient() // nil when Redis is unreachable

    // Pick the persistence backend. Anything that fails to come up falls
    // back to the file store so the marketplace always boots.
    var st store.Store
    switch cfg.StoreDriver {
    case "mysql":
        sq, err := store.OpenSQL(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
        if err != nil {
            log.Printf("mysql store unavailable (%v), falling back to file store", err)
        } else {
            st = sq
        }
    case "redis":
        if rdb != nil {
            st = store.NewRedisStore(rdb, "bookswap")
        } else {
            log.Printf("redis store unavailable, falling back to file store")
        }
    }
    if st == nil {
        fs, err := store.NewFileStore(cfg.DataDir)
        if err != nil {
            log.Fatalf("open file store: %v", err)
        }
        st = fs
    }

    ctx := context.Background()
    notifier := notify.Log{}
    eng := engine.New(ctx, st, notifier)
    sess := session.New(ctx, st, notifier, cfg.LoginDelay, cfg.LoginTimeout)
    lookup := isbn.NewClient(cfg.ISBNBaseURL, cfg.ISBNTimeout)

    // Background consumer for trade.accepted events. It reconnects
    // forever on its own; broker absence only costs the trade log.
    go func() {
        if err := queue.StartTradeConsumer(); err != nil {
            log.Printf("trade consumer stopped: %v", err)
        }
    }()

    e := echo.New()
    router.RegisterRoutes(e)
    router.RegisterAuth(e, handler.NewAuthHandler(sess))
    router.RegisterCatalog(e, handler.NewBookHandler(eng, sess), handler.NewLookupHandler(lookup), sess, rdb)
    router.RegisterTrades(e, handler.NewTradeHandler(eng, sess), sess, rdb)

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s, store=%T)", addr, cfg.Env, st)

    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
