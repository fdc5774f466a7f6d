package ui

import "testing"

func TestNewLayoutConfig(t *testing.T) {
	l := NewLayoutConfig(160, 40, 3)
	if l.ListWidth < MinListWidth || l.ListWidth > MaxListWidth {
		t.Errorf("list width %d out of bounds", l.ListWidth)
	}
	if l.ZoneWidth < MinZoneWidth {
		t.Errorf("zone width %d below minimum", l.ZoneWidth)
	}
	total := ScreenPaddingH + l.ListWidth + 3*(ColumnGap+l.ZoneWidth)
	if total > 160 {
		t.Errorf("columns overflow the terminal: %d", total)
	}
	if l.IsCompact() {
		t.Error("160x40 is not compact")
	}
}

func TestNewLayoutConfig_Defaults(t *testing.T) {
	l := NewLayoutConfig(0, 0, 0)
	if l.TerminalWidth != DefaultTerminalWidth || l.TerminalHeight != DefaultTerminalHeight {
		t.Errorf("expected default size, got %dx%d", l.TerminalWidth, l.TerminalHeight)
	}
	if l.Zones != 1 {
		t.Errorf("expected at least one zone, got %d", l.Zones)
	}
	if !NewLayoutConfig(60, 20, 3).IsCompact() {
		t.Error("60x20 should be compact")
	}
}

func TestLayoutConfig_ZoneAt(t *testing.T) {
	l := NewLayoutConfig(160, 40, 3)

	if got := l.ZoneAt(0); got != -1 {
		t.Errorf("screen padding should not hit a zone, got %d", got)
	}
	if got := l.ZoneAt(ScreenPaddingH + 1); got != -1 {
		t.Errorf("scenario list should not hit a zone, got %d", got)
	}
	for i := 0; i < 3; i++ {
		x := l.ZoneX(i)
		if got := l.ZoneAt(x); got != i {
			t.Errorf("ZoneAt(%d) = %d, want %d", x, got, i)
		}
		if got := l.ZoneAt(x + l.ZoneWidth - 1); got != i {
			t.Errorf("last column of zone %d mapped to %d", i, got)
		}
	}
	if got := l.ZoneAt(l.ZoneX(2) + l.ZoneWidth + 5); got != -1 {
		t.Errorf("past the last zone should miss, got %d", got)
	}
}

func TestPanelContentWidth(t *testing.T) {
	if got := PanelContentWidth(40); got != 36 {
		t.Errorf("PanelContentWidth(40) = %d, want 36", got)
	}
	if got := PanelContentWidth(1); got != 1 {
		t.Errorf("PanelContentWidth floors at 1, got %d", got)
	}
}

func TestNewLayoutConfig_ZonesStayOnScreen(t *testing.T) {
	for zones := 1; zones <= 4; zones++ {
		for w := 40; w <= 220; w++ {
			l := NewLayoutConfig(w, 50, zones)
			right := l.ZoneX(zones-1) + l.ZoneWidth
			if !l.IsCompact() && right > w-ScreenPaddingH {
				t.Fatalf("zones=%d width=%d: last zone ends at %d but layout is not compact", zones, w, right)
			}
			if w >= l.MinimumWidth() && l.IsCompact() {
				t.Errorf("zones=%d width=%d: at or above minimum %d but compact", zones, w, l.MinimumWidth())
			}
		}
	}
}

func TestNewLayoutConfig_ShrinksListBeforeZones(t *testing.T) {
	l := NewLayoutConfig(95, 50, 3)
	if l.IsCompact() {
		t.Fatal("95 columns fit three zones")
	}
	if l.ListWidth >= MinListWidth {
		t.Errorf("list should shrink below %d, got %d", MinListWidth, l.ListWidth)
	}
	if l.ZoneWidth < MinZoneWidth {
		t.Errorf("zone width %d below minimum", l.ZoneWidth)
	}
	if !NewLayoutConfig(80, 50, 3).IsCompact() {
		t.Error("80 columns cannot fit three zones")
	}
}
