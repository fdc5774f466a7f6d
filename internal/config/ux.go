package config

// UIConfig holds terminal interface configuration.
type UIConfig struct {
	// DarkMode forces the dark theme. When false the theme is detected.
	DarkMode bool `json:"dark_mode" yaml:"dark_mode"`

	// TrayCapacity is how many toasts may be visible at once (0 = default)
	TrayCapacity int `json:"tray_capacity,omitempty" yaml:"tray_capacity,omitempty"`

	// ShowHelp starts with the full key help expanded
	ShowHelp bool `json:"show_help,omitempty" yaml:"show_help,omitempty"`
}

// DefaultUIConfig returns sensible UI defaults.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		DarkMode:     false, // Detect from terminal
		TrayCapacity: 3,
	}
}
