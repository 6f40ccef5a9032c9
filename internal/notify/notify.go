// Package notify delivers transient user-facing messages. The engine and
// session emit a notification for every operation outcome; where the
// messages end up depends on the installed Notifier. The server installs
// the log-backed notifier, tests install a recording one.
package notify

import "log"

// Notifier receives transient messages classified by tone. Implementations
// must be safe for concurrent use.
type Notifier interface {
    Success(msg string)
    Info(msg string)
    Error(msg string)
}

// Log writes notifications to the standard logger with a level prefix.
type Log struct{}

func (Log) Success(msg string) { log.Printf("notify: success: %s", msg) }
func (Log) Info(msg string)    { log.Printf("notify: info: %s", msg) }
func (Log) Error(msg string)   { log.Printf("notify: error: %s", msg) }

// Discard drops all notifications.
type Discard struct{}

func (Discard) Success(string) {}
func (Discard) Info(string)    {}
func (Discard) Error(string)   {}
