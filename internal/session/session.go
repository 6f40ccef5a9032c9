// Package session holds the process-wide current identity. It is a
// two-state machine (anonymous / authenticated) with simulated
// credential verification: there is no backend to call, so login accepts
// any non-empty pair after an artificial round-trip delay and hands out
// the fixed demo identity. The Session is passed explicitly to everything
// that needs the current identity; there is no package-level singleton.
package session

import (
    "context"
    "errors"
    "fmt"
    "log"
    "strings"
    "sync"
    "time"

    "github.com/iliyamo/book-swap/internal/model"
    "github.com/iliyamo/book-swap/internal/notify"
    "github.com/iliyamo/book-swap/internal/store"
)

// ErrInvalidCredentials is returned when login is attempted with an
// empty email or password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrValidation is returned when registration fields are missing.
var ErrValidation = errors.New("please fill all required fields")

// ErrTimedOut is returned when the simulated round trip exceeds its
// bound or the caller's context is cancelled. The operation fails closed:
// no state change.
var ErrTimedOut = errors.New("authentication timed out")

const (
    // DefaultDelay is the simulated network wait before login resolves.
    DefaultDelay = time.Second
    // DefaultTimeout bounds the whole operation; past it we fail closed.
    DefaultTimeout = 5 * time.Second
)

// Session owns the current-identity slot. Safe for concurrent use.
type Session struct {
    mu      sync.RWMutex
    current *model.User

    store   store.Store
    notify  notify.Notifier
    delay   time.Duration
    timeout time.Duration
}

// New restores a persisted identity or, when none exists, seeds the demo
// identity and persists it: the marketplace deliberately boots logged in.
func New(ctx context.Context, st store.Store, n notify.Notifier, delay, timeout time.Duration) *Session {
    if n == nil {
        n = notify.Discard{}
    }
    if delay < 0 {
        delay = DefaultDelay
    }
    if timeout <= 0 {
        timeout = DefaultTimeout
    }
    s := &Session{store: st, notify: n, delay: delay, timeout: timeout}

    var u model.User
    if err := st.Load(ctx, store.SlotCurrentUser, &u); err == nil && u.ID != "" {
        s.current = &u
        return s
    }
    demo := model.SeedDemoUser()
    s.current = &demo
    if err := st.Save(ctx, store.SlotCurrentUser, demo); err != nil {
        log.Printf("session: persist seeded identity: %v", err)
    }
    return s
}

// Current returns a copy of the current identity, or nil when anonymous.
func (s *Session) Current() *model.User {
    s.mu.RLock()
    defer s.mu.RUnlock()
    if s.current == nil {
        return nil
    }
    u := *s.current
    return &u
}

// roundTrip simulates the network wait of a credential check. It is
// bounded by the session timeout and by the caller's context; either
// expiring fails the operation closed.
func (s *Session) roundTrip(ctx context.Context) error {
    ctx, cancel := context.WithTimeout(ctx, s.timeout)
    defer cancel()
    select {
    case <-time.After(s.delay):
        return nil
    case <-ctx.Done():
        return fmt.Errorf("%w: %v", ErrTimedOut, ctx.Err())
    }
}

// Login verifies credentials against the simulated backend: any
// non-empty pair succeeds and yields the fixed demo identity. Empty
// credentials fail before the round trip with no state change.
func (s *Session) Login(ctx context.Context, email, password string) (model.User, error) {
    if strings.TrimSpace(email) == "" || password == "" {
        s.notify.Error("Invalid email or password")
        return model.User{}, ErrInvalidCredentials
    }
    if err := s.roundTrip(ctx); err != nil {
        return model.User{}, err
    }

    u := model.SeedDemoUser()
    s.mu.Lock()
    s.current = &u
    s.mu.Unlock()
    if err := s.store.Save(ctx, store.SlotCurrentUser, u); err != nil {
        log.Printf("session: persist identity: %v", err)
    }
    s.notify.Success("Successfully logged in!")
    return u, nil
}

// Register creates a fresh identity and logs it in. All three fields are
// required; failure leaves the session untouched.
func (s *Session) Register(ctx context.Context, username, email, password string) (model.User, error) {
    if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" || password == "" {
        s.notify.Error("Please fill all required fields")
        return model.User{}, ErrValidation
    }
    if err := s.roundTrip(ctx); err != nil {
        return model.User{}, err
    }

    u := model.User{
        ID:        model.NewID("user"),
        Username:  strings.TrimSpace(username),
        Email:     strings.ToLower(strings.TrimSpace(email)),
        AvatarURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%d", time.Now().UnixMilli()),
    }
    s.mu.Lock()
    s.current = &u
    s.mu.Unlock()
    if err := s.store.Save(ctx, store.SlotCurrentUser, u); err != nil {
        log.Printf("session: persist identity: %v", err)
    }
    s.notify.Success("Account created successfully!")
    return u, nil
}

// Logout clears the current identity unconditionally and removes the
// persisted slot.
func (s *Session) Logout(ctx context.Context) {
    s.mu.Lock()
    s.current = nil
    s.mu.Unlock()
    if err := s.store.Delete(ctx, store.SlotCurrentUser); err != nil {
        log.Printf("session: clear identity slot: %v", err)
    }
    s.notify.Info("You have been logged out")
}
