package exercise

import (
	"fmt"
	"time"

	"officerdrill/internal/notify"
)

// Result is the outcome of scoring a session.
type Result struct {
	Correct int
	Total   int
}

// Perfect reports whether every card is in its correct zone.
func (r Result) Perfect() bool {
	return r.Total > 0 && r.Correct == r.Total
}

func (r Result) String() string {
	return fmt.Sprintf("%d/%d", r.Correct, r.Total)
}

func (r Result) notification(d time.Duration) notify.Notification {
	if r.Perfect() {
		return notify.Notification{
			Severity:    notify.SeveritySuccess,
			Title:       "Perfect Score!",
			Description: "All scenarios correctly categorized. Outstanding work!",
			Duration:    d,
		}
	}
	return notify.Notification{
		Severity: notify.SeverityError,
		Title:    "Not all correct",
		Description: fmt.Sprintf("%d out of %d are correct. Green cards are correct, red cards need to be moved.",
			r.Correct, r.Total),
		Duration: d,
	}
}
