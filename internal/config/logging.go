package config

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level" json:"level,omitempty"`                     // debug, info, warn, error
	Debug      bool            `yaml:"debug" json:"debug,omitempty"`                     // Forces debug level
	Categories map[string]bool `yaml:"categories,omitempty" json:"categories,omitempty"` // Per-category toggles
}

// EffectiveLevel returns the level to log at.
func (c *LoggingConfig) EffectiveLevel() string {
	if c.Debug {
		return "debug"
	}
	if c.Level == "" {
		return "warn"
	}
	return c.Level
}

// IsCategoryEnabled returns whether logging is enabled for a category.
// Returns true if the category is enabled (or not specified).
func (c *LoggingConfig) IsCategoryEnabled(category string) bool {
	if c.Categories == nil {
		return true
	}
	enabled, exists := c.Categories[category]
	if !exists {
		return true // Enable by default if not specified
	}
	return enabled
}

func (c *LoggingConfig) validLevel() bool {
	for _, l := range ValidLevels {
		if c.Level == l {
			return true
		}
	}
	return false
}
