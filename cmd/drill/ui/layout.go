// Package ui layout constants for consistent spacing and dimensions
package ui

// Layout constants for panel sizing
const (
	// Screen padding
	ScreenPaddingH = 2
	ScreenPaddingV = 1

	// The scenario list takes this share of the width; zones split the rest.
	ListRatio     = 0.34
	MinListWidth  = 30
	MaxListWidth  = 60
	ColumnGap     = 1
	MinZoneWidth  = 22
	PanelBorder   = 2
	CardPaddingH  = 2
	HeaderHeight  = 4
	FooterHeight  = 2
	ToastMaxWidth = 56

	// CompactListWidth is how far the list may shrink to keep every zone
	// on screen.
	CompactListWidth = 20

	// Responsive breakpoints. The minimum width depends on the zone count,
	// see LayoutConfig.MinimumWidth.
	MinimumTerminalHeight = 24
	DefaultTerminalWidth  = 160
	DefaultTerminalHeight = 40
)

// LayoutConfig provides computed layout dimensions based on terminal size.
type LayoutConfig struct {
	TerminalWidth  int
	TerminalHeight int

	ListWidth int
	ZoneWidth int
	Zones     int
}

// NewLayoutConfig splits the terminal width into the scenario list column and
// zones equal zone columns.
func NewLayoutConfig(width, height, zones int) LayoutConfig {
	if width <= 0 {
		width = DefaultTerminalWidth
	}
	if height <= 0 {
		height = DefaultTerminalHeight
	}
	if zones <= 0 {
		zones = 1
	}

	usable := width - ScreenPaddingH*2
	list := int(float64(usable) * ListRatio)
	if list < MinListWidth {
		list = MinListWidth
	}
	if list > MaxListWidth {
		list = MaxListWidth
	}

	zoneWidth := (usable - list - ColumnGap*zones) / zones
	if zoneWidth < MinZoneWidth {
		// Give the zones their minimum first and let the list take the rest.
		list = usable - zones*(MinZoneWidth+ColumnGap)
		if list < CompactListWidth {
			list = CompactListWidth
		}
		zoneWidth = (usable - list - ColumnGap*zones) / zones
		if zoneWidth < MinZoneWidth {
			zoneWidth = MinZoneWidth
		}
	}

	return LayoutConfig{
		TerminalWidth:  width,
		TerminalHeight: height,
		ListWidth:      list,
		ZoneWidth:      zoneWidth,
		Zones:          zones,
	}
}

// MinimumWidth is the narrowest terminal that shows the list and every zone.
func (l LayoutConfig) MinimumWidth() int {
	return ScreenPaddingH*2 + CompactListWidth + l.Zones*(MinZoneWidth+ColumnGap)
}

// Fits reports whether the last zone ends inside the right screen padding.
func (l LayoutConfig) Fits() bool {
	return l.ZoneX(l.Zones-1)+l.ZoneWidth <= l.TerminalWidth-ScreenPaddingH
}

// IsCompact reports whether the terminal is below the comfortable size. A
// compact layout may cut off zones.
func (l LayoutConfig) IsCompact() bool {
	return !l.Fits() || l.TerminalHeight < MinimumTerminalHeight
}

// ZoneX returns the first screen column of zone i.
func (l LayoutConfig) ZoneX(i int) int {
	return ScreenPaddingH + l.ListWidth + ColumnGap + i*(l.ZoneWidth+ColumnGap)
}

// ZoneAt maps a screen column to a zone index, or -1 when x is over the
// scenario list, a gap, or past the last zone.
func (l LayoutConfig) ZoneAt(x int) int {
	for i := 0; i < l.Zones; i++ {
		start := l.ZoneX(i)
		if x >= start && x < start+l.ZoneWidth {
			return i
		}
	}
	return -1
}

// PanelContentWidth returns the content width inside a bordered, padded panel
func PanelContentWidth(panelWidth int) int {
	w := panelWidth - PanelBorder - CardPaddingH
	if w < 1 {
		return 1
	}
	return w
}
