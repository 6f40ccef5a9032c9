package store

import (
    "context"
    "database/sql"
    "encoding/json"
    "fmt"
    "log"
    "time"

    _ "github.com/go-sql-driver/mysql"
)

// SQLStore keeps slots in a single MySQL key/value table. Useful when the
// marketplace should survive host re-provisioning; the table is created on
// first use.
type SQLStore struct {
    db *sql.DB
}

// OpenSQL connects to MySQL, verifies the connection and ensures the
// slots table exists.
func OpenSQL(user, pass, host, port, name string) (*SQLStore, error) {
    auth := user
    if pass != "" {
        auth = fmt.Sprintf("%s:%s", user, pass)
    }
    // parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
    dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
        auth, host, port, name)

    db, err := sql.Open("mysql", dsn)
    if err != nil {
        return nil, err
    }

    // Pool settings
    db.SetMaxOpenConns(25)
    db.SetMaxIdleConns(25)
    db.SetConnMaxLifetime(30 * time.Minute)

    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()
    if err := db.PingContext(ctx); err != nil {
        return nil, err
    }
    const ddl = `CREATE TABLE IF NOT EXISTS slots (
        k VARCHAR(64) PRIMARY KEY,
        v LONGTEXT NOT NULL,
        updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
    )`
    if _, err := db.ExecContext(ctx, ddl); err != nil {
        return nil, fmt.Errorf("create slots table: %w", err)
    }
    return &SQLStore{db: db}, nil
}

// DB exposes the underlying pool, mainly for closing at shutdown.
func (s *SQLStore) DB() *sql.DB { return s.db }

func (s *SQLStore) Load(ctx context.Context, key string, v any) error {
    var raw []byte
    err := s.db.QueryRowContext(ctx, "SELECT v FROM slots WHERE k=? LIMIT 1", key).Scan(&raw)
    if err != nil {
        if err == sql.ErrNoRows {
            return ErrNotFound
        }
        log.Printf("store: mysql select %q: %v", key, err)
        return ErrNotFound
    }
    if err := json.Unmarshal(raw, v); err != nil {
        log.Printf("store: slot %q is corrupt, treating as absent: %v", key, err)
        return ErrNotFound
    }
    return nil
}

func (s *SQLStore) Save(ctx context.Context, key string, v any) error {
    raw, err := json.Marshal(v)
    if err != nil {
        return err
    }
    _, err = s.db.ExecContext(ctx,
        "INSERT INTO slots (k, v) VALUES (?,?) ON DUPLICATE KEY UPDATE v=VALUES(v)",
        key, raw)
    return err
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
    _, err := s.db.ExecContext(ctx, "DELETE FROM slots WHERE k=?", key)
    return err
}
