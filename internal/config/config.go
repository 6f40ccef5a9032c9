// Package config loads application configuration from environment
// variables. Every tunable of the marketplace lives here; defaults are
// chosen so the server runs out of the box with the file-backed store
// and no external services.
package config

import (
    "os"
    "strconv"
    "time"
)

// Config holds all runtime configuration values.
type Config struct {
    Env  string // application environment (e.g. "dev", "prod")
    Port string // HTTP port to listen on

    StoreDriver string // "file" (default), "mysql" or "redis"
    DataDir     string // slot directory for the file store

    DBUser string // database username (mysql store only)
    DBPass string // database password (optional)
    DBHost string // database host address
    DBPort string // database port number
    DBName string // database name

    LoginDelay   time.Duration // simulated credential round trip
    LoginTimeout time.Duration // upper bound before login fails closed

    ISBNBaseURL string        // override for the Google Books endpoint
    ISBNTimeout time.Duration // per-lookup HTTP timeout
}

// Load reads configuration from the environment. Nothing is required;
// missing values fall back to defaults suitable for local development.
func Load() Config {
    return Config{
        Env:  getenv("APP_ENV", "dev"),
        Port: getenv("APP_PORT", "8080"),

        StoreDriver: getenv("STORE_DRIVER", "file"),
        DataDir:     getenv("DATA_DIR", "data"),

        DBUser: os.Getenv("DB_USER"),
        DBPass: os.Getenv("DB_PASS"),
        DBHost: getenv("DB_HOST", "localhost"),
        DBPort: getenv("DB_PORT", "3306"),
        DBName: getenv("DB_NAME", "bookswap"),

        LoginDelay:   envDur("LOGIN_DELAY", time.Second),
        LoginTimeout: envDur("LOGIN_TIMEOUT", 5*time.Second),

        ISBNBaseURL: os.Getenv("ISBN_BASE_URL"),
        ISBNTimeout: envDur("ISBN_TIMEOUT", 10*time.Second),
    }
}

func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

func envInt(key string, def int) int {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    if n, err := strconv.Atoi(v); err == nil {
        return n
    }
    return def
}

func envBool(key string, def bool) bool {
    switch os.Getenv(key) {
    case "1", "true", "TRUE", "True", "yes", "on":
        return true
    case "0", "false", "FALSE", "False", "no", "off":
        return false
    }
    return def
}

func envDur(key string, def time.Duration) time.Duration {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    if d, err := time.ParseDuration(v); err == nil {
        return d
    }
    return def
}
