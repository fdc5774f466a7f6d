// Package ui provides the visual building blocks of the drill screen: theme,
// styles, layout math and the card, zone and toast widgets.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	// Light Mode Colors (Default)
	LightBackground = lipgloss.Color("#f8fafc") // slate-50
	LightForeground = lipgloss.Color("#334155") // slate-700
	LightPrimary    = lipgloss.Color("#9f1239") // engine red
	LightAccent     = lipgloss.Color("#be123c")
	LightMuted      = lipgloss.Color("#94a3b8") // slate-400
	LightBorder     = lipgloss.Color("#cbd5e1") // slate-300
	LightCard       = lipgloss.Color("#ffffff")
	LightPlaced     = lipgloss.Color("#f8fafc")

	// Dark Mode Colors
	DarkBackground = lipgloss.Color("#0f172a")
	DarkForeground = lipgloss.Color("#e2e8f0")
	DarkPrimary    = lipgloss.Color("#f43f5e")
	DarkAccent     = lipgloss.Color("#fb7185")
	DarkMuted      = lipgloss.Color("#64748b")
	DarkBorder     = lipgloss.Color("#334155")
	DarkCard       = lipgloss.Color("#1e293b")
	DarkPlaced     = lipgloss.Color("#172033")

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#ef4444") // red-500
	Success     = lipgloss.Color("#22c55e") // green-500
	Info        = lipgloss.Color("#3b82f6") // blue-500

	SuccessTint = lipgloss.Color("#14532d")
	ErrorTint   = lipgloss.Color("#7f1d1d")
)

// Theme holds the current color scheme
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	Placed     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
		Placed:     LightPlaced,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		Placed:     DarkPlaced,
		IsDark:     true,
	}
}

// DetectTheme picks dark when the terminal reports a dark background, light
// otherwise. The dark_mode setting is resolved by config, not here.
func DetectTheme() Theme {
	// COLORFGBG is "foreground;background"; a low background index means dark.
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}

	return LightTheme()
}

// dashedBorder marks a drop surface.
var dashedBorder = lipgloss.Border{
	Top:         "╌",
	Bottom:      "╌",
	Left:        "╎",
	Right:       "╎",
	TopLeft:     "┌",
	TopRight:    "┐",
	BottomLeft:  "└",
	BottomRight: "┘",
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Panels
	Panel      lipgloss.Style
	PanelTitle lipgloss.Style

	// Cards
	CardNeutral lipgloss.Style
	CardPlaced  lipgloss.Style
	CardCorrect lipgloss.Style
	CardWrong   lipgloss.Style
	Grip        lipgloss.Style
	RemoveMark  lipgloss.Style

	// Zones
	ZoneHeader    lipgloss.Style
	ZoneHeaderSub lipgloss.Style
	ZoneBody      lipgloss.Style
	ZoneBodyOver  lipgloss.Style
	Placeholder   lipgloss.Style

	// Actions and status
	Button        lipgloss.Style
	ButtonOutline lipgloss.Style
	Success       lipgloss.Style
	Error         lipgloss.Style
	Info          lipgloss.Style
	Toast         lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Foreground(theme.Foreground)

	return Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		PanelTitle: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true).
			MarginBottom(1),

		CardNeutral: card.
			BorderForeground(theme.Border).
			Background(theme.Card),

		CardPlaced: card.
			BorderForeground(theme.Border).
			Background(theme.Placed),

		CardCorrect: card.
			BorderForeground(Success).
			Background(SuccessTint),

		CardWrong: card.
			BorderForeground(Destructive).
			Background(ErrorTint),

		Grip: lipgloss.NewStyle().
			Foreground(theme.Muted),

		RemoveMark: lipgloss.NewStyle().
			Foreground(theme.Muted),

		ZoneHeader: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true).
			Padding(0, 1),

		ZoneHeaderSub: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#fecdd3")).
			Padding(0, 1),

		ZoneBody: lipgloss.NewStyle().
			Border(dashedBorder).
			BorderForeground(theme.Border).
			Padding(0, 1),

		ZoneBodyOver: lipgloss.NewStyle().
			Border(dashedBorder).
			BorderForeground(theme.Accent).
			Padding(0, 1),

		Placeholder: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Button: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		ButtonOutline: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Border(lipgloss.NormalBorder(), false, true).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(Info).
			Bold(true),

		Toast: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
	}
}

// DefaultStyles returns styles with the detected theme
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}
