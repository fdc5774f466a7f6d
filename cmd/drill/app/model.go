// Package app is the interactive exercise screen: a Bubble Tea model that
// wires the exercise controller, the drag manager and the toast tray to
// the ui widgets.
package app

import (
	"fmt"
	"time"

	"officerdrill/cmd/drill/ui"
	"officerdrill/internal/dnd"
	"officerdrill/internal/exercise"
	"officerdrill/internal/logging"
	"officerdrill/internal/notify"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// listColumn is the focus column of the unplaced pile. Zone i is column i+1.
const listColumn = 0

const (
	dropErrorDuration = 4 * time.Second
	minBodyHeight     = 6
)

// Options configures a new screen. Zero values fall back to defaults.
type Options struct {
	Theme          ui.Theme
	TrayCapacity   int
	ResetDuration  time.Duration
	ResultDuration time.Duration
	ShowHelp       bool
	SessionID      string
}

// Model is the exercise screen.
type Model struct {
	ctrl     *exercise.Controller
	drag     *dnd.Manager
	tray     *notify.Tray
	notifier notify.Notifier

	styles ui.Styles
	keys   keyMap
	help   help.Model
	body   viewport.Model
	log    *zap.Logger

	// focus is the keyboard column; cursor holds one row cursor per column.
	focus  int
	cursor []int

	width  int
	height int
}

// New builds the screen for cat.
func New(cat *exercise.Catalog, opts Options) (Model, error) {
	if cat == nil {
		return Model{}, fmt.Errorf("new exercise screen: nil catalog")
	}

	tray := notify.NewTray(opts.TrayCapacity)
	notifier := notify.WithLogger(tray, logging.Get(logging.CategoryNotify))

	ctrlOpts := []exercise.Option{
		exercise.WithLogger(logging.Get(logging.CategoryExercise)),
		exercise.WithDurations(opts.ResetDuration, opts.ResultDuration),
	}
	if opts.SessionID != "" {
		ctrlOpts = append(ctrlOpts, exercise.WithSessionID(opts.SessionID))
	}
	ctrl := exercise.NewController(cat, notifier, ctrlOpts...)

	drag := dnd.NewManager(dnd.WithLogger(logging.Get(logging.CategoryDnD)))
	for _, card := range cat.Cards {
		drag.RegisterSource(dnd.Source(ui.CardItem(card.ID)))
	}
	for _, z := range cat.Zones {
		zoneID := z.ID
		target := dnd.Target(zoneID, ui.ScenarioCardType, func(it dnd.Item) error {
			return ctrl.Place(it.ID, zoneID)
		})
		if err := drag.RegisterTarget(target); err != nil {
			return Model{}, err
		}
	}

	theme := opts.Theme
	if theme.Foreground == "" {
		theme = ui.DetectTheme()
	}

	h := help.New()
	h.ShowAll = opts.ShowHelp

	m := Model{
		ctrl:     ctrl,
		drag:     drag,
		tray:     tray,
		notifier: notifier,
		styles:   ui.NewStyles(theme),
		keys:     defaultKeyMap(),
		help:     h,
		body:     viewport.New(ui.DefaultTerminalWidth, ui.DefaultTerminalHeight),
		log:      logging.Get(logging.CategoryUI),
		cursor:   make([]int, len(cat.Zones)+1),
		width:    ui.DefaultTerminalWidth,
		height:   ui.DefaultTerminalHeight,
	}
	m.syncKeys()
	m.refresh()
	return m, nil
}

// Controller exposes the session state.
func (m Model) Controller() *exercise.Controller { return m.ctrl }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.ctrl.Catalog().Title)
}

// columnCards returns the cards shown in column col, top to bottom.
func (m Model) columnCards(col int) []exercise.ScenarioCard {
	if col == listColumn {
		return m.ctrl.UnplacedCards()
	}
	zones := m.ctrl.Catalog().Zones
	if col-1 < 0 || col-1 >= len(zones) {
		return nil
	}
	return m.ctrl.CardsInZone(zones[col-1].ID)
}

// focusedCard is the card under the keyboard cursor.
func (m Model) focusedCard() (exercise.ScenarioCard, bool) {
	cards := m.columnCards(m.focus)
	idx := m.cursor[m.focus]
	if idx < 0 || idx >= len(cards) {
		return exercise.ScenarioCard{}, false
	}
	return cards[idx], true
}

// zoneKey returns the drop target key of zone index i.
func (m Model) zoneKey(i int) (string, bool) {
	zones := m.ctrl.Catalog().Zones
	if i < 0 || i >= len(zones) {
		return "", false
	}
	return zones[i].ID, true
}

// clampCursors keeps every cursor inside its column after cards move.
func (m *Model) clampCursors() {
	for col := range m.cursor {
		n := len(m.columnCards(col))
		switch {
		case n == 0:
			m.cursor[col] = 0
		case m.cursor[col] >= n:
			m.cursor[col] = n - 1
		case m.cursor[col] < 0:
			m.cursor[col] = 0
		}
	}
}

// syncKeys enables the bindings that apply to the current state.
func (m *Model) syncKeys() {
	_, dragging := m.drag.Dragging()
	m.keys.Check.SetEnabled(m.ctrl.CanCheckAnswers())
	m.keys.Cancel.SetEnabled(dragging)
	m.keys.Toast.SetEnabled(len(m.tray.Active()) > 0)

	removable := false
	if m.focus != listColumn && !dragging {
		_, removable = m.focusedCard()
	}
	m.keys.Remove.SetEnabled(removable)
}

// layout returns the column geometry for the current terminal size.
func (m Model) layout() ui.LayoutConfig {
	return ui.NewLayoutConfig(m.width, m.height, len(m.ctrl.Catalog().Zones))
}
