package notify

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRecorder(t *testing.T) {
	var r Recorder
	_, ok := r.Last()
	assert.False(t, ok)

	r.Notify(Notification{Severity: SeverityInfo, Title: "one"})
	r.Notify(Notification{Severity: SeverityError, Title: "two"})

	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, "two", last.Title)
	assert.Equal(t, 2, r.Len())

	all := r.All()
	all[0].Title = "mutated"
	assert.Equal(t, "one", r.All()[0].Title, "All must return a copy")

	r.Clear()
	assert.Zero(t, r.Len())
}

func TestMulti(t *testing.T) {
	var a, b Recorder
	n := Multi(&a, nil, &b)
	n.Notify(Notification{Title: "hello"})

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 1, b.Len())
}

func TestWithLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	var rec Recorder

	n := WithLogger(&rec, zap.New(core))
	n.Notify(Notification{
		Severity:    SeveritySuccess,
		Title:       "Perfect Score!",
		Description: "done",
		Duration:    6 * time.Second,
	})

	require.Equal(t, 1, rec.Len())
	entries := logs.FilterMessage("notification").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "success", fields["severity"])
	assert.Equal(t, "Perfect Score!", fields["title"])
}

func TestWithLogger_NilArguments(t *testing.T) {
	n := WithLogger(nil, nil)
	assert.NotPanics(t, func() {
		n.Notify(Notification{Title: "ignored"})
	})
}

func TestTray_NotifyAndExpire(t *testing.T) {
	tray := NewTray(0)
	tray.Notify(Notification{Title: "first", Duration: time.Second})
	tray.Notify(Notification{Title: "second", Duration: time.Second})

	active := tray.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "first", active[0].Title)

	tray.Expire(active[0].ID)
	active = tray.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "second", active[0].Title)

	tray.Expire(9999)
	assert.Len(t, tray.Active(), 1)
}

func TestTray_CapacityEvictsOldest(t *testing.T) {
	tray := NewTray(2)
	for _, title := range []string{"a", "b", "c"} {
		tray.Notify(Notification{Title: title})
	}

	active := tray.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "b", active[0].Title)
	assert.Equal(t, "c", active[1].Title)
}

func TestTray_Dismiss(t *testing.T) {
	tray := NewTray(3)
	assert.False(t, tray.Dismiss())

	tray.Notify(Notification{Title: "a"})
	tray.Notify(Notification{Title: "b"})
	assert.True(t, tray.Dismiss())

	active := tray.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "a", active[0].Title)
}

func TestTray_Schedule(t *testing.T) {
	tray := NewTray(3)
	assert.Nil(t, tray.Schedule(), "nothing pending")

	tray.Notify(Notification{Title: "sticky"})
	assert.Nil(t, tray.Schedule(), "toasts without a duration are not scheduled")

	tray.Notify(Notification{Title: "timed", Duration: time.Millisecond})
	cmd := tray.Schedule()
	require.NotNil(t, cmd)
	assert.Nil(t, tray.Schedule(), "schedule drains the pending list")

	var msg tea.Msg = cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		require.Len(t, batch, 1)
		msg = batch[0]()
	}
	expire, ok := msg.(ExpireMsg)
	require.True(t, ok, "expected ExpireMsg, got %T", msg)

	active := tray.Active()
	require.Len(t, active, 2)
	assert.Equal(t, active[1].ID, expire.ID)
}
