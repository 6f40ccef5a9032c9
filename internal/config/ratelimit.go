package config

import "time"

// RateLimitConfig tunes the Redis token-bucket limiter applied to the
// public API. Disabled (or with no Redis client) the middleware is a
// pass-through.
type RateLimitConfig struct {
    Enabled        bool
    Capacity       int           // bucket size / burst
    RefillTokens   int           // tokens added per interval
    RefillInterval time.Duration // how often tokens are added
    TTL            time.Duration // bucket key lifetime in Redis
    Prefix         string        // key namespace
}

// LoadRateLimitConfig reads RATE_LIMIT_* variables with sane defaults
// and clamps nonsense values into a working range.
func LoadRateLimitConfig() RateLimitConfig {
    cfg := RateLimitConfig{
        Enabled:        envBool("RATE_LIMIT_ENABLED", true),
        Capacity:       envInt("RATE_LIMIT_CAPACITY", 60),
        RefillTokens:   envInt("RATE_LIMIT_REFILL_TOKENS", 1),
        RefillInterval: envDur("RATE_LIMIT_REFILL_INTERVAL", time.Second),
        TTL:            envDur("RATE_LIMIT_TTL", 10*time.Minute),
        Prefix:         getenv("RATE_LIMIT_PREFIX", "rl"),
    }
    if cfg.Capacity < 1 {
        cfg.Capacity = 1
    }
    if cfg.RefillTokens < 1 {
        cfg.RefillTokens = 1
    }
    if cfg.RefillInterval <= 0 {
        cfg.RefillInterval = time.Second
    }
    if min := 5 * cfg.RefillInterval; cfg.TTL < min {
        cfg.TTL = min
    }
    return cfg
}
