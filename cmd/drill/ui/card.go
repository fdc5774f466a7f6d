package ui

import (
	"strings"

	"officerdrill/internal/dnd"
	"officerdrill/internal/exercise"

	"github.com/charmbracelet/lipgloss"
)

// ScenarioCardType is the drag item type for scenario cards. Zones accept
// only this type.
const ScenarioCardType dnd.ItemType = "scenario_card"

const (
	gripGlyph   = "⋮⋮"
	removeGlyph = "✕"

	// removeHitWidth is how many columns at a card's right edge count as
	// a click on the removal control: border, padding, glyph, space.
	removeHitWidth = 4
)

// CardItem is the drag payload for a card.
func CardItem(cardID int) dnd.Item {
	return dnd.Item{Type: ScenarioCardType, ID: cardID}
}

// CardVisual is the mutually exclusive look of a card.
type CardVisual int

const (
	VisualDefault CardVisual = iota
	VisualCorrect
	VisualIncorrect
)

// CardView renders one scenario card. It has no state of its own: everything
// it shows comes from its fields.
type CardView struct {
	Card exercise.ScenarioCard

	Placed      bool
	Removable   bool
	ShowResults bool
	Correct     bool

	// Dragging is the drag collaborator's "this card is being dragged" flag.
	Dragging bool
	// Focused marks the keyboard cursor.
	Focused bool

	Width int
}

// Visual picks the card's look. Results only apply to placed cards.
func (v CardView) Visual() CardVisual {
	if !v.ShowResults || !v.Placed {
		return VisualDefault
	}
	if v.Correct {
		return VisualCorrect
	}
	return VisualIncorrect
}

// ShowsRemove reports whether the removal control is rendered.
func (v CardView) ShowsRemove() bool {
	return v.Placed && v.Removable
}

// Render draws the card at v.Width columns, borders included.
func (v CardView) Render(s Styles) string {
	style := s.CardNeutral
	switch v.Visual() {
	case VisualCorrect:
		style = s.CardCorrect
	case VisualIncorrect:
		style = s.CardWrong
	default:
		if v.Placed {
			style = s.CardPlaced
		}
	}
	if v.Focused && v.Visual() == VisualDefault {
		style = style.BorderForeground(s.Theme.Accent)
	}
	if v.Focused {
		style = style.BorderStyle(lipgloss.ThickBorder())
	}

	width := v.Width
	if width <= PanelBorder {
		width = MinZoneWidth
	}
	inner := PanelContentWidth(width)

	lead := s.Grip.Render(gripGlyph) + " "
	tail := ""
	if v.ShowsRemove() {
		tail = " " + s.RemoveMark.Render(removeGlyph)
	}
	textWidth := inner - lipgloss.Width(lead) - lipgloss.Width(tail)
	if textWidth < 8 {
		textWidth = 8
	}

	var lines []string
	if head := v.Card.Headline(); head != "" {
		lines = append(lines, s.Bold.Width(textWidth).Render(head))
	}
	lines = append(lines, s.Body.Width(textWidth).Render(v.Card.Body()))
	text := strings.Join(lines, "\n")

	row := lipgloss.JoinHorizontal(lipgloss.Top, lead, text, tail)
	if v.Dragging {
		style = style.Faint(true)
		row = lipgloss.NewStyle().Faint(true).Render(row)
	}
	return style.Width(width - PanelBorder).Render(row)
}

// rowHit returns the index of the card drawn on row of a stack of cards
// joined top to bottom, or -1.
func rowHit(s Styles, views []CardView, row int) int {
	if row < 0 {
		return -1
	}
	for i, v := range views {
		h := lipgloss.Height(v.Render(s))
		if row < h {
			return i
		}
		row -= h
	}
	return -1
}
