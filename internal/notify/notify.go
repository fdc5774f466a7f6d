// Package notify carries short-lived user-facing messages (toasts) from the
// exercise logic to whatever surface displays them.
package notify

import (
	"time"

	"go.uber.org/zap"
)

// Severity classifies a notification for display.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is a fire-and-forget message for the user.
type Notification struct {
	Severity    Severity
	Title       string
	Description string
	Duration    time.Duration
}

// Notifier accepts notifications. Implementations must not block.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(n Notification)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notification) { f(n) }

// Discard drops every notification.
var Discard Notifier = NotifierFunc(func(Notification) {})

// Multi fans a notification out to every non-nil notifier in order.
func Multi(notifiers ...Notifier) Notifier {
	return NotifierFunc(func(n Notification) {
		for _, target := range notifiers {
			if target != nil {
				target.Notify(n)
			}
		}
	})
}

// WithLogger records every notification on log before passing it on.
func WithLogger(next Notifier, log *zap.Logger) Notifier {
	if log == nil {
		log = zap.NewNop()
	}
	if next == nil {
		next = Discard
	}
	return NotifierFunc(func(n Notification) {
		log.Info("notification",
			zap.String("severity", string(n.Severity)),
			zap.String("title", n.Title),
			zap.String("description", n.Description),
			zap.Duration("duration", n.Duration))
		next.Notify(n)
	})
}

// Recorder keeps every notification it receives. Not safe for concurrent use.
type Recorder struct {
	items []Notification
}

// Notify appends n.
func (r *Recorder) Notify(n Notification) {
	r.items = append(r.items, n)
}

// All returns a copy of the recorded notifications, oldest first.
func (r *Recorder) All() []Notification {
	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

// Last returns the most recent notification.
func (r *Recorder) Last() (Notification, bool) {
	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}

// Len reports how many notifications were recorded.
func (r *Recorder) Len() int { return len(r.items) }

// Clear forgets everything recorded so far.
func (r *Recorder) Clear() { r.items = nil }
