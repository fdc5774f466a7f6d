package app

import (
	"officerdrill/cmd/drill/ui"
	"officerdrill/internal/notify"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		if msg.Height > 0 {
			m.height = msg.Height
		}
		m.help.Width = m.width

	case notify.ExpireMsg:
		m.tray.Expire(msg.ID)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.log.Info("quit", zap.String("session", m.ctrl.SessionID()))
			return m, tea.Quit
		}
		m, cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m = m.handleMouse(msg)
	}

	m.clampCursors()
	m.syncKeys()
	m.refresh()
	return m, tea.Batch(cmd, m.tray.Schedule())
}

// handleKey processes keyboard input other than quit.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	_, dragging := m.drag.Dragging()

	for i, b := range m.keys.zoneKeys() {
		if key.Matches(msg, b) {
			return m.quickDrop(i), nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		if dragging {
			m.drag.HoverPrev()
		} else if m.focus > listColumn {
			m.focus--
		}

	case key.Matches(msg, m.keys.Right):
		if dragging {
			m.drag.HoverNext()
		} else if m.focus < len(m.cursor)-1 {
			m.focus++
		}

	case key.Matches(msg, m.keys.Up):
		if !dragging && m.cursor[m.focus] > 0 {
			m.cursor[m.focus]--
		}

	case key.Matches(msg, m.keys.Down):
		if !dragging && m.cursor[m.focus] < len(m.columnCards(m.focus))-1 {
			m.cursor[m.focus]++
		}

	case key.Matches(msg, m.keys.PgUp):
		m.body.SetYOffset(m.body.YOffset - m.body.Height/2)

	case key.Matches(msg, m.keys.PgDown):
		m.body.SetYOffset(m.body.YOffset + m.body.Height/2)

	case key.Matches(msg, m.keys.Grab):
		if dragging {
			m.finishDrop(m.drag.Drop())
		} else {
			m = m.pickUp()
		}

	case key.Matches(msg, m.keys.Cancel):
		m.drag.Cancel()

	case key.Matches(msg, m.keys.Remove):
		if card, ok := m.focusedCard(); ok {
			m.ctrl.Remove(card.ID)
		}

	case key.Matches(msg, m.keys.Check):
		m.ctrl.CheckAnswers()

	case key.Matches(msg, m.keys.Reset):
		m.drag.Cancel()
		m.ctrl.Reset()

	case key.Matches(msg, m.keys.Toast):
		m.tray.Dismiss()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// pickUp starts dragging the focused card. The hover starts on the zone
// the card already sits in, or on the first zone.
func (m Model) pickUp() Model {
	card, ok := m.focusedCard()
	if !ok {
		return m
	}
	if err := m.drag.BeginDrag(ui.CardItem(card.ID)); err != nil {
		m.log.Warn("begin drag failed", zap.Int("card", card.ID), zap.Error(err))
		return m
	}
	if zoneID, placed := m.ctrl.ZoneOf(card.ID); placed {
		_ = m.drag.Hover(zoneID)
	} else {
		m.drag.HoverNext()
	}
	return m
}

// quickDrop drops onto zone index i, picking up the focused card first when
// nothing is being dragged.
func (m Model) quickDrop(i int) Model {
	zoneID, ok := m.zoneKey(i)
	if !ok {
		return m
	}
	if _, dragging := m.drag.Dragging(); !dragging {
		m = m.pickUp()
		if _, dragging = m.drag.Dragging(); !dragging {
			return m
		}
	}
	m.finishDrop(m.drag.DropOn(zoneID))
	return m
}

// handleMouse drives drag and drop with the pointer. Pressing on a card
// picks it up and pressing its ✕ removes it. While dragging, moving over a
// zone hovers it and releasing the button drops.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	if _, dragging := m.drag.Dragging(); !dragging {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return m.pressAt(msg.X, msg.Y)
		}
		return m
	}
	switch msg.Action {
	case tea.MouseActionMotion, tea.MouseActionPress:
		m.hoverAt(msg.X)
	case tea.MouseActionRelease:
		m.finishDrop(m.drag.Drop())
	}
	return m
}

// pressAt handles a left press with nothing dragged.
func (m Model) pressAt(x, y int) Model {
	col, idx, remove := m.cardAt(x, y)
	if idx < 0 {
		return m
	}
	cards := m.columnCards(col)
	if idx >= len(cards) {
		return m
	}
	if remove {
		m.ctrl.Remove(cards[idx].ID)
		return m
	}
	m.focus = col
	m.cursor[col] = idx
	m = m.pickUp()
	m.hoverAt(x)
	return m
}

// hoverAt hovers the zone under screen column x, or none.
func (m Model) hoverAt(x int) {
	target := ""
	if idx := m.layout().ZoneAt(x); idx >= 0 {
		target, _ = m.zoneKey(idx)
	}
	_ = m.drag.Hover(target)
}

// finishDrop reports a failed drop. A drop outside every zone is silent.
func (m Model) finishDrop(dropped bool, err error) {
	if err != nil {
		m.log.Warn("drop failed", zap.Error(err))
		m.notifier.Notify(notify.Notification{
			Severity:    notify.SeverityError,
			Title:       "Could not place card",
			Description: err.Error(),
			Duration:    dropErrorDuration,
		})
		return
	}
	if !dropped {
		m.log.Debug("drag ended without a drop")
	}
}
