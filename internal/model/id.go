package model

import (
    "fmt"
    "time"
)

// NewID returns a timestamp-derived identifier with the given prefix,
// e.g. "book1717171717171717171". There is exactly one writer per
// process and mutations are serialized, so nanosecond resolution is
// enough to keep IDs unique within a marketplace instance.
func NewID(prefix string) string {
    return fmt.Sprintf("%s%d", prefix, time.Now().UnixNano())
}
