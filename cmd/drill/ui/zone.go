package ui

import (
	"fmt"
	"strings"

	"officerdrill/internal/exercise"

	"github.com/charmbracelet/lipgloss"
)

// ZoneView renders one drop zone. Like CardView it is a pure function of
// its fields; the hover flag comes from the drag collaborator.
type ZoneView struct {
	Zone  exercise.DropZoneConfig
	Cards []exercise.ScenarioCard
	Slots int

	Checked bool
	Over    bool

	// DraggingID is the card being dragged, 0 when none.
	DraggingID int
	// FocusIndex is the keyboard cursor inside the zone, -1 when the zone
	// is not focused.
	FocusIndex int

	Width int
}

// Placeholder is the text shown in an empty zone.
func (z ZoneView) Placeholder() string {
	slots := z.Slots
	if slots <= 0 {
		slots = exercise.SlotsPerZone
	}
	return fmt.Sprintf("Drop %d cards here", slots)
}

// CardViews returns the widgets for the zone's cards. Correctness is judged
// against this zone's id.
func (z ZoneView) CardViews() []CardView {
	views := make([]CardView, 0, len(z.Cards))
	inner := z.width() - PanelBorder - CardPaddingH
	for i, card := range z.Cards {
		views = append(views, CardView{
			Card:        card,
			Placed:      true,
			Removable:   true,
			ShowResults: z.Checked,
			Correct:     card.CorrectZone == z.Zone.ID,
			Dragging:    z.DraggingID != 0 && z.DraggingID == card.ID,
			Focused:     z.FocusIndex == i,
			Width:       inner,
		})
	}
	return views
}

// Render draws the zone at z.Width columns.
func (z ZoneView) Render(s Styles) string {
	width := z.width()

	var body string
	if len(z.Cards) == 0 {
		body = s.Placeholder.Render(z.Placeholder())
	} else {
		rendered := make([]string, 0, len(z.Cards))
		for _, v := range z.CardViews() {
			rendered = append(rendered, v.Render(s))
		}
		body = strings.Join(rendered, "\n")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		z.header(s),
		z.surface(s).Width(width-PanelBorder).Render(body),
	)
}

// HitTest maps a point inside the rendered zone, relative to its top left
// corner, to a card index. remove reports a hit on the card's removal
// control. index is -1 when the point holds no card.
func (z ZoneView) HitTest(s Styles, x, row int) (index int, remove bool) {
	surface := z.surface(s)
	top := lipgloss.Height(z.header(s)) + surface.GetBorderTopSize() + surface.GetPaddingTop()
	views := z.CardViews()
	index = rowHit(s, views, row-top)
	if index < 0 {
		return -1, false
	}
	left := surface.GetBorderLeftSize() + surface.GetPaddingLeft()
	cardX := x - left
	if cardX < 0 || cardX >= views[index].Width {
		return -1, false
	}
	remove = views[index].ShowsRemove() && cardX >= views[index].Width-removeHitWidth
	return index, remove
}

func (z ZoneView) width() int {
	if z.Width < MinZoneWidth {
		return MinZoneWidth
	}
	return z.Width
}

func (z ZoneView) header(s Styles) string {
	width := z.width()
	return lipgloss.JoinVertical(lipgloss.Left,
		s.ZoneHeader.Width(width).Render(truncate(z.Zone.Title, width-CardPaddingH)),
		s.ZoneHeaderSub.Width(width).Render(z.Zone.Description),
	)
}

func (z ZoneView) surface(s Styles) lipgloss.Style {
	if z.Over {
		return s.ZoneBodyOver
	}
	return s.ZoneBody
}

func truncate(s string, l int) string {
	if l <= 3 || lipgloss.Width(s) <= l {
		return s
	}
	r := []rune(s)
	if len(r) > l-3 {
		r = r[:l-3]
	}
	return string(r) + "..."
}
