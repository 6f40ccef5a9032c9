package middleware

import (
    "math"
    "net/http"
    "strconv"
    "strings"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/book-swap/internal/config"
)

// tokenBucket refills and takes one token atomically. Returns
// {allowed, remaining, retry_after_ms}.
var tokenBucket = redis.NewScript(`
    local key = KEYS[1]
    local now_ms = tonumber(ARGV[1])
    local capacity = tonumber(ARGV[2])
    local refill = tonumber(ARGV[3])
    local interval_ms = tonumber(ARGV[4])
    local ttl = tonumber(ARGV[5])

    local state = redis.call('HMGET', key, 'tokens', 'refilled_ms')
    local tokens = tonumber(state[1])
    local refilled = tonumber(state[2])
    if tokens == nil or refilled == nil then
        tokens = capacity
        refilled = now_ms
    end

    local intervals = math.floor(math.max(0, now_ms - refilled) / interval_ms)
    if intervals > 0 then
        tokens = math.min(capacity, tokens + intervals * refill)
        refilled = refilled + intervals * interval_ms
    end

    local allowed = 0
    local retry_ms = 0
    if tokens > 0 then
        allowed = 1
        tokens = tokens - 1
    else
        retry_ms = math.max(0, interval_ms - (now_ms - refilled))
    end

    redis.call('HMSET', key, 'tokens', tokens, 'refilled_ms', refilled)
    redis.call('EXPIRE', key, ttl)
    return { allowed, tokens, retry_ms }
`)

// NewTokenBucket rate-limits requests per client IP, identity and route
// using a Redis-backed token bucket. On any Redis error the request is
// allowed through: limiting is protection, not a dependency.
func NewTokenBucket(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc {
            return func(c echo.Context) error { return next(c) }
        }
    }

    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            key := rateKey(cfg.Prefix, c)
            args := []interface{}{
                time.Now().UnixMilli(),
                cfg.Capacity,
                cfg.RefillTokens,
                cfg.RefillInterval.Milliseconds(),
                int64(cfg.TTL / time.Second),
            }
            vals, err := tokenBucket.Run(c.Request().Context(), rdb, []string{key}, args...).Int64Slice()
            if err != nil || len(vals) != 3 {
                return next(c)
            }
            allowed, remaining, retryMs := vals[0] == 1, vals[1], vals[2]

            c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Capacity))
            c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
            if !allowed {
                secs := int(math.Ceil(float64(retryMs) / 1000.0))
                c.Response().Header().Set("Retry-After", strconv.Itoa(secs))
                return c.JSON(http.StatusTooManyRequests, echo.Map{
                    "error":       "too_many_requests",
                    "retry_after": secs,
                })
            }
            return next(c)
        }
    }
}

func rateKey(prefix string, c echo.Context) string {
    ip := c.RealIP()
    if ip == "" {
        ip = "unknown"
    }
    uid := "anon"
    if v, ok := c.Get("user_id").(string); ok && v != "" {
        uid = v
    }
    route := c.Request().Method + " " + c.Path()
    return strings.Join([]string{prefix, "ip", ip, "user", uid, "route", route}, ":")
}
