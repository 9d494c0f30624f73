// Package ui provides the visual styling for haikommit's terminal output.
// Light and dark palettes share the same ink-and-moss colors.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Light Mode Colors (Default)
	LightForeground = lipgloss.Color("#2b2b2b") // Sumi ink
	LightPrimary    = lipgloss.Color("#3d5a3a") // Moss
	LightAccent     = lipgloss.Color("#b5452f") // Vermilion seal
	LightMuted      = lipgloss.Color("#8a8a80")
	LightBorder     = lipgloss.Color("#d8d3c4")

	// Dark Mode Colors
	DarkForeground = lipgloss.Color("#ece8dc") // Rice paper
	DarkPrimary    = lipgloss.Color("#9bbf8c") // Young moss
	DarkAccent     = lipgloss.Color("#e0775f")
	DarkMuted      = lipgloss.Color("#7a7f86")
	DarkBorder     = lipgloss.Color("#3a4048")

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#e53935")
	Success     = lipgloss.Color("#8BC34A")
	Warning     = lipgloss.Color("#FFC107")
)

// Theme holds the current color scheme
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		IsDark:     true,
	}
}

// DetectTheme picks a theme from HAIKOMMIT_DARK_MODE, then COLORFGBG,
// then lipgloss' own background detection.
func DetectTheme() Theme {
	switch os.Getenv("HAIKOMMIT_DARK_MODE") {
	case "1", "true":
		return DarkTheme()
	case "0", "false":
		return LightTheme()
	}

	// Format is usually "foreground;background"
	if parts := strings.Split(os.Getenv("COLORFGBG"), ";"); len(parts) == 2 {
		if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
			// 0-6 and 8 (dark grey) are dark backgrounds
			if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
				return DarkTheme()
			}
			return LightTheme()
		}
	}

	if lipgloss.HasDarkBackground() {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	Card    lipgloss.Style // Frame around the poem
	Line    lipgloss.Style
	Generic lipgloss.Style // Lines that fell back to fixed text
	Meter   lipgloss.Style
	Badge   lipgloss.Style // Intent label
	Muted   lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style

	Selected lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Card: lipgloss.NewStyle().
			Padding(1, 3).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),

		Line: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Generic: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Italic(true),

		Meter: lipgloss.NewStyle().
			Foreground(theme.Muted).
			PaddingLeft(2),

		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(theme.Accent).
			Padding(0, 1).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),
	}
}

// DefaultStyles returns styles for the detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}
