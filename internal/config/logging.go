package config

// LoggingConfig controls the drill's debug log. The exercise screen owns the
// terminal, so records only ever go to File.
type LoggingConfig struct {
	Level      string          `yaml:"level" json:"level,omitempty"`           // debug, info, warn, error
	Format     string          `yaml:"format" json:"format,omitempty"`         // json or text lines in File
	File       string          `yaml:"file" json:"file,omitempty"`             // required in debug mode
	DebugMode  bool            `yaml:"debug_mode" json:"debug_mode,omitempty"` // off keeps the drill silent
	Categories map[string]bool `yaml:"categories" json:"categories,omitempty"` // boot, exercise, dnd, notify, ui
}

// IsCategoryEnabled reports whether records for category are written.
// Nothing is written outside debug mode. In debug mode a category is on
// unless Categories switches it off, so a new category logs by default.
func (c *LoggingConfig) IsCategoryEnabled(category string) bool {
	if !c.DebugMode {
		return false
	}
	enabled, listed := c.Categories[category]
	return !listed || enabled
}
