package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// markdownStyle picks the glamour style for the theme. Terminals without
// color get the plain "notty" style.
func markdownStyle(theme Theme) string {
	if lipgloss.ColorProfile() == termenv.Ascii {
		return "notty"
	}
	if theme.IsDark {
		return "dark"
	}
	return "light"
}

// RenderMarkdown renders md for the terminal, wrapped at width. If the
// renderer fails the source is returned unchanged.
func (s Styles) RenderMarkdown(md string, width int) string {
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(markdownStyle(s.Theme)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n") + "\n"
}
