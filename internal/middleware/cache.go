package middleware

import (
    "bytes"
    "context"
    "crypto/sha1"
    "encoding/json"
    "fmt"
    "net/http"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/book-swap/internal/config"
)

// cachedResponse is the stored form of a cacheable response: status,
// content type and body. Only 200 responses to GET requests are cached.
type cachedResponse struct {
    Status      int    `json:"status"`
    ContentType string `json:"content_type"`
    Body        []byte `json:"body"`
}

// captureWriter tees the response body into a buffer up to a size limit
// while forwarding everything to the client.
type captureWriter struct {
    http.ResponseWriter
    status int
    buf    bytes.Buffer
    limit  int
    over   bool
}

func (w *captureWriter) WriteHeader(code int) {
    w.status = code
    w.ResponseWriter.WriteHeader(code)
}

func (w *captureWriter) Write(b []byte) (int, error) {
    if !w.over {
        if w.buf.Len()+len(b) <= w.limit {
            w.buf.Write(b)
        } else {
            w.over = true // too large to cache, stop buffering
        }
    }
    return w.ResponseWriter.Write(b)
}

// NewResponseCache serves repeated GETs of public listings from Redis.
// Entries expire after the configured TTL, which bounds how stale a
// listing view can get after a mutation.
func NewResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc {
            return func(c echo.Context) error { return next(c) }
        }
    }

    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if c.Request().Method != http.MethodGet {
                return next(c)
            }

            key := cacheKey(cfg.Prefix, c)
            ctx := c.Request().Context()

            if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
                var cached cachedResponse
                if json.Unmarshal(raw, &cached) == nil {
                    c.Response().Header().Set(echo.HeaderContentType, cached.ContentType)
                    c.Response().Header().Set("X-Cache", "HIT")
                    c.Response().WriteHeader(cached.Status)
                    _, _ = c.Response().Write(cached.Body)
                    return nil
                }
            }

            cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: cfg.MaxBodyBytes}
            c.Response().Writer = cw
            c.Response().Header().Set("X-Cache", "MISS")

            if err := next(c); err != nil {
                return err
            }

            if cw.status == http.StatusOK && !cw.over {
                entry := cachedResponse{
                    Status:      cw.status,
                    ContentType: c.Response().Header().Get(echo.HeaderContentType),
                    Body:        cw.buf.Bytes(),
                }
                if raw, err := json.Marshal(entry); err == nil {
                    _ = rdb.SetEx(context.Background(), key, raw, cfg.TTL).Err()
                }
            }
            return nil
        }
    }
}

func cacheKey(prefix string, c echo.Context) string {
    r := c.Request()
    sum := sha1.Sum([]byte(c.Path() + "?" + r.URL.RawQuery))
    return fmt.Sprintf("%s:%x", prefix, sum)
}
