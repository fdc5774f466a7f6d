package notify

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTrayCapacity bounds how many toasts are visible at once.
const DefaultTrayCapacity = 3

// Toast is a notification that is currently on screen.
type Toast struct {
	ID int
	Notification
	ShownAt time.Time
}

// ExpireMsg tells the tray that a toast's display time ran out.
type ExpireMsg struct {
	ID int
}

// Tray is the terminal toast surface. It implements Notifier and is driven
// from the Bubble Tea update loop: call Schedule after handling a message to
// get the expiry ticks for toasts added during that message.
type Tray struct {
	toasts    []Toast
	scheduled []Toast
	nextID    int
	capacity  int
	now       func() time.Time
}

// NewTray returns a tray that keeps at most capacity toasts.
func NewTray(capacity int) *Tray {
	if capacity <= 0 {
		capacity = DefaultTrayCapacity
	}
	return &Tray{capacity: capacity, now: time.Now}
}

// Notify pushes n as a new toast. The oldest toast is evicted when full.
func (t *Tray) Notify(n Notification) {
	t.nextID++
	toast := Toast{ID: t.nextID, Notification: n, ShownAt: t.now()}
	t.toasts = append(t.toasts, toast)
	if len(t.toasts) > t.capacity {
		t.toasts = t.toasts[len(t.toasts)-t.capacity:]
	}
	t.scheduled = append(t.scheduled, toast)
}

// Schedule returns a command that delivers an ExpireMsg for every toast
// added since the last call, or nil when nothing is pending. Toasts with no
// duration stay until dismissed.
func (t *Tray) Schedule() tea.Cmd {
	if len(t.scheduled) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(t.scheduled))
	for _, toast := range t.scheduled {
		if toast.Duration <= 0 {
			continue
		}
		id := toast.ID
		cmds = append(cmds, tea.Tick(toast.Duration, func(time.Time) tea.Msg {
			return ExpireMsg{ID: id}
		}))
	}
	t.scheduled = nil
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Expire removes the toast with the given id. Unknown ids are ignored.
func (t *Tray) Expire(id int) {
	for i, toast := range t.toasts {
		if toast.ID == id {
			t.toasts = append(t.toasts[:i], t.toasts[i+1:]...)
			return
		}
	}
}

// Dismiss removes the newest toast.
func (t *Tray) Dismiss() bool {
	if len(t.toasts) == 0 {
		return false
	}
	t.toasts = t.toasts[:len(t.toasts)-1]
	return true
}

// Active returns the visible toasts, oldest first.
func (t *Tray) Active() []Toast {
	out := make([]Toast, len(t.toasts))
	copy(out, t.toasts)
	return out
}
