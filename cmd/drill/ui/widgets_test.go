package ui

import (
	"strings"
	"testing"
	"time"

	"officerdrill/internal/exercise"
	"officerdrill/internal/notify"

	"github.com/charmbracelet/lipgloss"
)

func testCatalog(t *testing.T) *exercise.Catalog {
	t.Helper()
	cat, err := exercise.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}
	return cat
}

func TestCardView_Visual(t *testing.T) {
	tests := []struct {
		name string
		view CardView
		want CardVisual
	}{
		{"unplaced", CardView{}, VisualDefault},
		{"placed, not checked", CardView{Placed: true, Correct: true}, VisualDefault},
		{"results but unplaced", CardView{ShowResults: true, Correct: true}, VisualDefault},
		{"checked correct", CardView{Placed: true, ShowResults: true, Correct: true}, VisualCorrect},
		{"checked wrong", CardView{Placed: true, ShowResults: true}, VisualIncorrect},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.view.Visual(); got != tt.want {
				t.Errorf("Visual() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCardView_RemoveControl(t *testing.T) {
	cat := testCatalog(t)
	s := NewStyles(LightTheme())
	card := cat.Cards[0]

	unplaced := CardView{Card: card, Removable: true, Width: 60}
	if unplaced.ShowsRemove() || strings.Contains(unplaced.Render(s), removeGlyph) {
		t.Error("unplaced card must not offer removal")
	}

	noCallback := CardView{Card: card, Placed: true, Width: 60}
	if noCallback.ShowsRemove() {
		t.Error("placed card without a remove handler must not offer removal")
	}

	placed := CardView{Card: card, Placed: true, Removable: true, Width: 60}
	if !placed.ShowsRemove() {
		t.Fatal("expected removal control")
	}
	if !strings.Contains(placed.Render(s), removeGlyph) {
		t.Error("expected remove glyph in rendered card")
	}
}

func TestCardView_RenderShowsHeadline(t *testing.T) {
	cat := testCatalog(t)
	s := NewStyles(DarkTheme())
	out := CardView{Card: cat.Cards[1], Width: 60}.Render(s)
	if !strings.Contains(out, "TIC Battery Low") {
		t.Errorf("expected headline in card, got:\n%s", out)
	}
	if !strings.Contains(out, gripGlyph) {
		t.Error("expected grip glyph")
	}
}

func TestCardItem(t *testing.T) {
	item := CardItem(4)
	if item.ID != 4 || item.Type != ScenarioCardType {
		t.Errorf("unexpected item %+v", item)
	}
}

func TestZoneView_Placeholder(t *testing.T) {
	cat := testCatalog(t)
	s := NewStyles(LightTheme())
	z := ZoneView{Zone: cat.Zones[0], Slots: 2, FocusIndex: -1, Width: 40}

	out := z.Render(s)
	if !strings.Contains(out, "Drop 2 cards here") {
		t.Errorf("expected placeholder, got:\n%s", out)
	}
	if !strings.Contains(out, "Lead the Crew") {
		t.Error("expected zone title in header")
	}
}

func TestZoneView_CardViewsCorrectness(t *testing.T) {
	cat := testCatalog(t)
	lead, _ := cat.Zone("lead")
	one, _ := cat.Card(1)
	two, _ := cat.Card(2)

	z := ZoneView{
		Zone:       lead,
		Cards:      []exercise.ScenarioCard{one, two},
		Checked:    true,
		DraggingID: 2,
		FocusIndex: 0,
		Width:      50,
	}
	views := z.CardViews()
	if len(views) != 2 {
		t.Fatalf("expected 2 card views, got %d", len(views))
	}
	if views[0].Visual() != VisualCorrect {
		t.Error("card 1 belongs in lead")
	}
	if views[1].Visual() != VisualIncorrect {
		t.Error("card 2 does not belong in lead")
	}
	if !views[0].Focused || views[1].Focused {
		t.Error("focus should follow FocusIndex")
	}
	if views[0].Dragging || !views[1].Dragging {
		t.Error("dragging should follow DraggingID")
	}
	for _, v := range views {
		if !v.Placed || !v.ShowsRemove() {
			t.Error("zone cards are placed and removable")
		}
	}

	if strings.Contains(z.Render(NewStyles(LightTheme())), "Drop 2 cards here") {
		t.Error("placeholder must disappear once cards are placed")
	}
}

func TestZoneView_UncheckedShowsNoResults(t *testing.T) {
	cat := testCatalog(t)
	lead, _ := cat.Zone("lead")
	two, _ := cat.Card(2)

	views := ZoneView{Zone: lead, Cards: []exercise.ScenarioCard{two}, FocusIndex: -1, Width: 40}.CardViews()
	if views[0].Visual() != VisualDefault {
		t.Error("results must stay hidden until checked")
	}
}

func TestScenarioList_Render(t *testing.T) {
	cat := testCatalog(t)
	s := NewStyles(LightTheme())

	full := ScenarioList{Cards: cat.Cards[:1], FocusIndex: 0, Width: 60}.Render(s)
	if !strings.Contains(full, "Scenario Cards") || !strings.Contains(full, "Unassigned Door Forcing") {
		t.Errorf("unexpected list render:\n%s", full)
	}

	empty := ScenarioList{FocusIndex: -1, Width: 60}.Render(s)
	if !strings.Contains(empty, EmptyMessage) {
		t.Errorf("expected %q, got:\n%s", EmptyMessage, empty)
	}
}

// rowOf returns the first rendered row containing text and its column.
func rowOf(t *testing.T, rendered, text string) (row, col int) {
	t.Helper()
	for i, line := range strings.Split(rendered, "\n") {
		if idx := strings.Index(line, text); idx >= 0 {
			return i, lipgloss.Width(line[:idx])
		}
	}
	t.Fatalf("%q not found in:\n%s", text, rendered)
	return -1, -1
}

func headlinePrefix(card exercise.ScenarioCard) string {
	r := []rune(card.Headline())
	if len(r) > 8 {
		r = r[:8]
	}
	return string(r)
}

func TestScenarioList_CardAt(t *testing.T) {
	cat := testCatalog(t)
	s := NewStyles(LightTheme())
	l := ScenarioList{Cards: cat.Cards[:3], FocusIndex: -1, Width: 40}
	rendered := l.Render(s)

	for i, card := range l.Cards {
		row, _ := rowOf(t, rendered, headlinePrefix(card))
		if got := l.CardAt(s, row); got != i {
			t.Errorf("row %d: CardAt = %d, want %d", row, got, i)
		}
	}
	titleRow, _ := rowOf(t, rendered, "Scenario Cards")
	if got := l.CardAt(s, titleRow); got != -1 {
		t.Errorf("title row should not hit a card, got %d", got)
	}
	if got := l.CardAt(s, lipgloss.Height(rendered)); got != -1 {
		t.Errorf("row below the panel should miss, got %d", got)
	}
}

func TestZoneView_HitTest(t *testing.T) {
	cat := testCatalog(t)
	s := NewStyles(LightTheme())
	lead, _ := cat.Zone("lead")
	one, _ := cat.Card(1)
	two, _ := cat.Card(2)

	z := ZoneView{Zone: lead, Cards: []exercise.ScenarioCard{one, two}, FocusIndex: -1, Width: 40}
	rendered := z.Render(s)

	row, col := rowOf(t, rendered, headlinePrefix(two))
	if idx, remove := z.HitTest(s, col, row); idx != 1 || remove {
		t.Errorf("headline of card 2: got (%d, %v), want (1, false)", idx, remove)
	}

	row, col = rowOf(t, rendered, removeGlyph)
	if idx, remove := z.HitTest(s, col, row); idx != 0 || !remove {
		t.Errorf("remove control of card 1: got (%d, %v), want (0, true)", idx, remove)
	}

	headerRow, _ := rowOf(t, rendered, lead.Title)
	if idx, _ := z.HitTest(s, 5, headerRow); idx != -1 {
		t.Errorf("zone header should not hit a card, got %d", idx)
	}
	if idx, _ := z.HitTest(s, 0, row); idx != -1 {
		t.Errorf("zone border should not hit a card, got %d", idx)
	}
}

func TestHeader_ActionsFollowGate(t *testing.T) {
	closed := Header{Title: "T", Instructions: "I", Width: 120}
	if got := closed.Actions(); len(got) != 1 || !strings.Contains(got[0], "Reset") {
		t.Errorf("closed gate should only offer reset, got %v", got)
	}

	open := Header{Title: "T", Instructions: "I", CanCheck: true, Width: 120}
	if got := open.Actions(); len(got) != 2 || !strings.Contains(got[0], "Check Answers") {
		t.Errorf("open gate should offer check first, got %v", got)
	}

	out := Header{Title: "Drill", Instructions: "Sort", Checked: true,
		Score: exercise.Result{Correct: 4, Total: 6}, Width: 120}.Render(NewStyles(LightTheme()))
	if !strings.Contains(out, "4/6") {
		t.Errorf("expected score in checked header, got:\n%s", out)
	}
}

func TestRenderToasts(t *testing.T) {
	s := NewStyles(LightTheme())
	if RenderToasts(s, nil, 40) != "" {
		t.Error("no toasts should render nothing")
	}

	out := RenderToasts(s, []notify.Toast{
		{ID: 1, Notification: notify.Notification{Severity: notify.SeverityInfo, Title: "Reset", Description: "All cards have been returned.", Duration: time.Second}},
		{ID: 2, Notification: notify.Notification{Severity: notify.SeverityError, Title: "Not all correct", Description: "2 out of 6"}},
	}, 50)
	for _, want := range []string{"Reset", "Not all correct", "2 out of 6"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in toasts:\n%s", want, out)
		}
	}
}
