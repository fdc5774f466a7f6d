package app

import (
	"fmt"
	"strings"

	"officerdrill/cmd/drill/ui"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	top, bottom := m.chrome()
	sections := make([]string, 0, len(top)+len(bottom)+1)
	sections = append(sections, top...)
	sections = append(sections, m.body.View())
	sections = append(sections, bottom...)

	return lipgloss.NewStyle().
		Padding(ui.ScreenPaddingV, ui.ScreenPaddingH).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// refresh re-renders the card columns into the scrollable body and sizes
// it to the rows the header and footer leave free.
func (m *Model) refresh() {
	l := m.layout()
	top, bottom := m.chrome()

	used := ui.ScreenPaddingV * 2
	for _, s := range top {
		used += lipgloss.Height(s)
	}
	for _, s := range bottom {
		used += lipgloss.Height(s)
	}
	height := l.TerminalHeight - used
	if height < minBodyHeight {
		height = minBodyHeight
	}

	m.body.Width = l.TerminalWidth - ui.ScreenPaddingH*2
	m.body.Height = height
	m.body.SetContent(m.columns(l))
}

// chrome renders the fixed rows above and below the card columns.
func (m Model) chrome() (top, bottom []string) {
	l := m.layout()
	cat := m.ctrl.Catalog()
	s := m.styles
	contentWidth := l.TerminalWidth - ui.ScreenPaddingH*2

	if l.IsCompact() {
		top = append(top, s.Muted.Render(fmt.Sprintf(
			"Terminal is %dx%d; enlarge to at least %dx%d for the full layout.",
			l.TerminalWidth, l.TerminalHeight, l.MinimumWidth(), ui.MinimumTerminalHeight)))
	}
	top = append(top, ui.Header{
		Title:        cat.Title,
		Instructions: cat.Instructions,
		CanCheck:     m.ctrl.CanCheckAnswers(),
		Checked:      m.ctrl.Checked(),
		Score:        m.ctrl.Score(),
		Width:        contentWidth,
	}.Render(s), "")

	if status := m.dragStatus(); status != "" {
		bottom = append(bottom, s.Info.Render(status))
	}
	if toasts := ui.RenderToasts(s, m.tray.Active(), ui.ToastMaxWidth); toasts != "" {
		bottom = append(bottom, lipgloss.PlaceHorizontal(contentWidth, lipgloss.Right, toasts))
	}
	bottom = append(bottom, "", m.help.View(m.keys))
	return top, bottom
}

// columns renders the scenario list and the zones side by side.
func (m Model) columns(l ui.LayoutConfig) string {
	s := m.styles
	cols := []string{m.listView(l).Render(s)}
	gap := strings.Repeat(" ", ui.ColumnGap)
	for i := range m.ctrl.Catalog().Zones {
		cols = append(cols, gap, m.zoneView(l, i).Render(s))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// listView is the unplaced pile as currently drawn.
func (m Model) listView(l ui.LayoutConfig) ui.ScenarioList {
	return ui.ScenarioList{
		Cards:      m.ctrl.UnplacedCards(),
		DraggingID: m.draggingID(),
		FocusIndex: m.cursorFor(listColumn),
		Width:      l.ListWidth,
	}
}

// zoneView is zone index i as currently drawn.
func (m Model) zoneView(l ui.LayoutConfig, i int) ui.ZoneView {
	cat := m.ctrl.Catalog()
	z := cat.Zones[i]
	return ui.ZoneView{
		Zone:       z,
		Cards:      m.ctrl.CardsInZone(z.ID),
		Slots:      cat.SlotsPerZone,
		Checked:    m.ctrl.Checked(),
		Over:       m.drag.IsOver(z.ID),
		DraggingID: m.draggingID(),
		FocusIndex: m.cursorFor(i + 1),
		Width:      l.ZoneWidth,
	}
}

func (m Model) draggingID() int {
	if item, ok := m.drag.Dragging(); ok {
		return item.ID
	}
	return 0
}

// cursorFor is the row cursor drawn in column col, -1 when hidden.
func (m Model) cursorFor(col int) int {
	if _, dragging := m.drag.Dragging(); dragging || m.focus != col {
		return -1
	}
	return m.cursor[col]
}

// bodyTop is the screen row where the card columns start.
func (m Model) bodyTop() int {
	top, _ := m.chrome()
	row := ui.ScreenPaddingV
	for _, s := range top {
		row += lipgloss.Height(s)
	}
	return row
}

// cardAt maps a screen cell to the card drawn there. col is the focus
// column, idx -1 when the cell holds no card. remove reports a hit on a
// placed card's removal control.
func (m Model) cardAt(x, y int) (col, idx int, remove bool) {
	row := y - m.bodyTop() + m.body.YOffset
	if row < 0 || y-m.bodyTop() >= m.body.Height {
		return listColumn, -1, false
	}
	l := m.layout()
	if x >= ui.ScreenPaddingH && x < ui.ScreenPaddingH+l.ListWidth {
		return listColumn, m.listView(l).CardAt(m.styles, row), false
	}
	zone := l.ZoneAt(x)
	if zone < 0 {
		return listColumn, -1, false
	}
	idx, remove = m.zoneView(l, zone).HitTest(m.styles, x-l.ZoneX(zone), row)
	return zone + 1, idx, remove
}

// dragStatus describes the gesture in progress, or "" when idle.
func (m Model) dragStatus() string {
	item, ok := m.drag.Dragging()
	if !ok {
		return ""
	}
	card, ok := m.ctrl.Catalog().Card(item.ID)
	if !ok {
		return ""
	}
	name := card.Headline()
	if name == "" {
		name = fmt.Sprintf("card %d", card.ID)
	}
	over := m.drag.Over()
	if over == "" {
		return fmt.Sprintf("Moving %q: not over a zone", name)
	}
	zone, _ := m.ctrl.Catalog().Zone(over)
	return fmt.Sprintf("Moving %q over %s", name, zone.Title)
}
