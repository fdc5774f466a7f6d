package ui

import (
	"fmt"
	"strings"

	"officerdrill/internal/exercise"

	"github.com/charmbracelet/lipgloss"
)

// Header is the exercise title bar with its actions.
type Header struct {
	Title        string
	Instructions string

	// CanCheck is the completion gate; the check action is only offered
	// while it holds.
	CanCheck bool
	Checked  bool
	Score    exercise.Result

	Width int
}

// Actions returns the labels of the offered actions, in display order.
func (h Header) Actions() []string {
	var actions []string
	if h.CanCheck {
		actions = append(actions, "✔ Check Answers [c]")
	}
	return append(actions, "↺ Reset All [r]")
}

// Render draws the header.
func (h Header) Render(s Styles) string {
	actions := h.Actions()
	buttons := make([]string, 0, len(actions))
	for i, label := range actions {
		if h.CanCheck && i == 0 {
			buttons = append(buttons, s.Button.Render(label))
			continue
		}
		buttons = append(buttons, s.ButtonOutline.Render(label))
	}
	right := lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
	if h.Checked {
		right = lipgloss.JoinHorizontal(lipgloss.Center,
			s.Muted.Render(fmt.Sprintf("Score %s  ", h.Score)), right)
	}

	leftWidth := h.Width - lipgloss.Width(right) - 2
	if leftWidth < 20 {
		leftWidth = 20
	}
	left := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(h.Title),
		s.Subtitle.Width(leftWidth).Render(h.Instructions),
	)
	gap := h.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right)
}

// ScenarioList is the pile of cards that have not been placed yet.
type ScenarioList struct {
	Cards []exercise.ScenarioCard

	DraggingID int
	// FocusIndex is the keyboard cursor, -1 when the list is not focused.
	FocusIndex int

	Width int
}

// EmptyMessage is shown once every card is placed.
const EmptyMessage = "All cards placed"

// Render draws the list panel.
func (l ScenarioList) Render(s Styles) string {
	width := l.width()
	inner := PanelContentWidth(width)

	parts := []string{l.title(s)}
	if len(l.Cards) == 0 {
		parts = append(parts, s.Muted.Width(inner).Align(lipgloss.Center).Render(EmptyMessage))
	}
	for _, v := range l.CardViews() {
		parts = append(parts, v.Render(s))
	}
	return s.Panel.Width(width - PanelBorder).Render(strings.Join(parts, "\n"))
}

// CardViews returns the widgets for the unplaced cards, top to bottom.
func (l ScenarioList) CardViews() []CardView {
	inner := PanelContentWidth(l.width())
	views := make([]CardView, 0, len(l.Cards))
	for i, card := range l.Cards {
		views = append(views, CardView{
			Card:     card,
			Dragging: l.DraggingID != 0 && l.DraggingID == card.ID,
			Focused:  l.FocusIndex == i,
			Width:    inner,
		})
	}
	return views
}

// CardAt returns the index of the card drawn on row of the rendered panel,
// or -1 when the row holds no card.
func (l ScenarioList) CardAt(s Styles, row int) int {
	top := s.Panel.GetBorderTopSize() + s.Panel.GetPaddingTop() + lipgloss.Height(l.title(s))
	return rowHit(s, l.CardViews(), row-top)
}

func (l ScenarioList) width() int {
	if l.Width < CompactListWidth {
		return CompactListWidth
	}
	return l.Width
}

func (l ScenarioList) title(s Styles) string {
	return s.PanelTitle.Render("Scenario Cards")
}
