// Package dnd models drag-and-drop as a capability: things that can be
// dragged (sources), things that accept drops (targets), and a Manager that
// owns the transient "what is being dragged, what is it over" state.
//
// The Manager is input-agnostic. Keyboard, mouse or any other front end
// drives it through BeginDrag, Hover and Drop; the components it serves only
// read IsDragging and IsOver.
package dnd

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ItemType names a family of draggable items. Targets accept by type.
type ItemType string

// Item is the payload carried by a drag.
type Item struct {
	Type ItemType
	ID   int
}

// DragSource is anything that can start a drag.
type DragSource interface {
	DragItem() Item
}

// DropTarget receives drops. Key must be unique within a Manager.
type DropTarget interface {
	Key() string
	Accepts(t ItemType) bool
	Drop(item Item) error
}

var (
	ErrNotDragging   = errors.New("no drag in progress")
	ErrUnknownSource = errors.New("unknown drag source")
	ErrUnknownTarget = errors.New("unknown drop target")
	ErrNotAccepted   = errors.New("drop target does not accept item")
)

// Source returns a DragSource for item.
func Source(item Item) DragSource { return itemSource(item) }

type itemSource Item

func (s itemSource) DragItem() Item { return Item(s) }

// Target builds a DropTarget from a key, the accepted type and a drop func.
func Target(key string, accept ItemType, drop func(Item) error) DropTarget {
	return &funcTarget{key: key, accept: accept, drop: drop}
}

type funcTarget struct {
	key    string
	accept ItemType
	drop   func(Item) error
}

func (t *funcTarget) Key() string               { return t.key }
func (t *funcTarget) Accepts(it ItemType) bool { return it == t.accept }
func (t *funcTarget) Drop(item Item) error {
	if t.drop == nil {
		return nil
	}
	return t.drop(item)
}

// Manager tracks registered sources and targets and the current gesture.
// It is not safe for concurrent use; drive it from a single event loop.
type Manager struct {
	sources map[Item]DragSource
	targets []DropTarget
	byKey   map[string]DropTarget

	dragging *Item
	over     string

	log *zap.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for gesture tracing.
func WithLogger(log *zap.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// NewManager returns an empty Manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		sources: make(map[Item]DragSource),
		byKey:   make(map[string]DropTarget),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RegisterSource makes src draggable. Registering the same item twice keeps
// the latest source.
func (m *Manager) RegisterSource(src DragSource) {
	m.sources[src.DragItem()] = src
}

// RegisterTarget adds t. Targets are kept in registration order, which is
// the order HoverNext and HoverPrev walk.
func (m *Manager) RegisterTarget(t DropTarget) error {
	if _, exists := m.byKey[t.Key()]; exists {
		return fmt.Errorf("register target %q: duplicate key", t.Key())
	}
	m.byKey[t.Key()] = t
	m.targets = append(m.targets, t)
	return nil
}

// Targets returns the registered targets in order.
func (m *Manager) Targets() []DropTarget {
	out := make([]DropTarget, len(m.targets))
	copy(out, m.targets)
	return out
}

// BeginDrag starts dragging item. Any previous gesture is abandoned.
func (m *Manager) BeginDrag(item Item) error {
	if _, ok := m.sources[item]; !ok {
		return fmt.Errorf("begin drag %v: %w", item, ErrUnknownSource)
	}
	it := item
	m.dragging = &it
	m.over = ""
	m.log.Debug("drag started", zap.String("type", string(item.Type)), zap.Int("id", item.ID))
	return nil
}

// Dragging returns the item being dragged, if any.
func (m *Manager) Dragging() (Item, bool) {
	if m.dragging == nil {
		return Item{}, false
	}
	return *m.dragging, true
}

// IsDragging reports whether item is the one being dragged.
func (m *Manager) IsDragging(item Item) bool {
	return m.dragging != nil && *m.dragging == item
}

// Hover moves the gesture over the target with the given key. An empty key
// means "over nothing".
func (m *Manager) Hover(key string) error {
	if m.dragging == nil {
		return ErrNotDragging
	}
	if key == "" {
		m.over = ""
		return nil
	}
	if _, ok := m.byKey[key]; !ok {
		return fmt.Errorf("hover %q: %w", key, ErrUnknownTarget)
	}
	m.over = key
	return nil
}

// HoverNext moves the hover to the next target accepting the dragged item,
// starting from the first one when nothing is hovered. It wraps around.
func (m *Manager) HoverNext() bool { return m.step(1) }

// HoverPrev is HoverNext in reverse.
func (m *Manager) HoverPrev() bool { return m.step(-1) }

func (m *Manager) step(dir int) bool {
	if m.dragging == nil || len(m.targets) == 0 {
		return false
	}
	n := len(m.targets)
	start := m.indexOf(m.over)
	if start < 0 {
		if dir > 0 {
			start = -1
		} else {
			start = n
		}
	}
	for i := 1; i <= n; i++ {
		idx := ((start+dir*i)%n + n) % n
		t := m.targets[idx]
		if t.Accepts(m.dragging.Type) {
			m.over = t.Key()
			return true
		}
	}
	return false
}

func (m *Manager) indexOf(key string) int {
	if key == "" {
		return -1
	}
	for i, t := range m.targets {
		if t.Key() == key {
			return i
		}
	}
	return -1
}

// Over returns the key of the hovered target, or "".
func (m *Manager) Over() string { return m.over }

// IsOver reports whether a drag is currently hovering the target key.
func (m *Manager) IsOver(key string) bool {
	return m.dragging != nil && key != "" && m.over == key
}

// Drop ends the gesture. When the drag hovers an accepting target, the
// target's Drop is invoked and dropped is true. Dropping over nothing ends
// the drag without touching any target. The gesture is always cleared.
func (m *Manager) Drop() (dropped bool, err error) {
	if m.dragging == nil {
		return false, ErrNotDragging
	}
	item := *m.dragging
	key := m.over
	m.dragging = nil
	m.over = ""

	if key == "" {
		m.log.Debug("drag ended outside any target", zap.Int("id", item.ID))
		return false, nil
	}
	target := m.byKey[key]
	if !target.Accepts(item.Type) {
		return false, fmt.Errorf("drop %v on %q: %w", item, key, ErrNotAccepted)
	}
	if err := target.Drop(item); err != nil {
		return false, fmt.Errorf("drop %v on %q: %w", item, key, err)
	}
	m.log.Debug("dropped", zap.Int("id", item.ID), zap.String("target", key))
	return true, nil
}

// DropOn hovers key and drops in one step.
func (m *Manager) DropOn(key string) (bool, error) {
	if err := m.Hover(key); err != nil {
		return false, err
	}
	return m.Drop()
}

// Cancel abandons the gesture without dropping.
func (m *Manager) Cancel() {
	if m.dragging != nil {
		m.log.Debug("drag cancelled", zap.Int("id", m.dragging.ID))
	}
	m.dragging = nil
	m.over = ""
}
