package store

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "log"
    "os"
    "path/filepath"
)

// FileStore keeps one JSON document per slot under a data directory.
// It is the default backend: durable, local, single-writer, with no
// external service to stand up.
type FileStore struct {
    dir string
}

// NewFileStore creates the data directory if needed and returns a store
// rooted at it.
func NewFileStore(dir string) (*FileStore, error) {
    if dir == "" {
        dir = "data"
    }
    if err := os.MkdirAll(dir, 0o755); err != nil {
        return nil, fmt.Errorf("create data dir: %w", err)
    }
    return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
    return filepath.Join(s.dir, key+".json")
}

// Load reads and decodes the slot file. Absent and unreadable files both
// map to ErrNotFound; a decode failure is additionally logged so corrupt
// data does not vanish silently.
func (s *FileStore) Load(ctx context.Context, key string, v any) error {
    if err := ctx.Err(); err != nil {
        return err
    }
    raw, err := os.ReadFile(s.path(key))
    if err != nil {
        if errors.Is(err, os.ErrNotExist) {
            return ErrNotFound
        }
        log.Printf("store: read slot %q: %v", key, err)
        return ErrNotFound
    }
    if err := json.Unmarshal(raw, v); err != nil {
        log.Printf("store: slot %q is corrupt, treating as absent: %v", key, err)
        return ErrNotFound
    }
    return nil
}

// Save writes the slot atomically: encode to a temp file in the same
// directory, then rename over the target.
func (s *FileStore) Save(ctx context.Context, key string, v any) error {
    if err := ctx.Err(); err != nil {
        return err
    }
    raw, err := json.MarshalIndent(v, "", "  ")
    if err != nil {
        return fmt.Errorf("encode slot %q: %w", key, err)
    }
    tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
    if err != nil {
        return fmt.Errorf("write slot %q: %w", key, err)
    }
    name := tmp.Name()
    if _, err := tmp.Write(raw); err != nil {
        tmp.Close()
        os.Remove(name)
        return fmt.Errorf("write slot %q: %w", key, err)
    }
    if err := tmp.Close(); err != nil {
        os.Remove(name)
        return fmt.Errorf("write slot %q: %w", key, err)
    }
    if err := os.Rename(name, s.path(key)); err != nil {
        os.Remove(name)
        return fmt.Errorf("write slot %q: %w", key, err)
    }
    return nil
}

// Delete removes the slot file if present.
func (s *FileStore) Delete(ctx context.Context, key string) error {
    if err := ctx.Err(); err != nil {
        return err
    }
    if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
        return fmt.Errorf("delete slot %q: %w", key, err)
    }
    return nil
}
