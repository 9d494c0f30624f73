package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"haikommit/internal/types"
)

// RenderOptions controls what RenderHaiku shows around the poem.
type RenderOptions struct {
	Intent string // Badge text; empty hides the badge
	Meter  bool   // Show syllable counts next to each line
}

// RenderHaiku draws the poem inside a card.
func (s Styles) RenderHaiku(h types.Haiku, opts RenderOptions) string {
	width := 0
	for _, l := range h.Lines {
		width = max(width, lipgloss.Width(l.Text))
	}

	rows := make([]string, 0, len(h.Lines))
	for i, l := range h.Lines {
		style := s.Line
		if l.Generic {
			style = s.Generic
		}
		row := style.Width(width).Render(l.Text)
		if opts.Meter {
			row += s.meter(l.SyllableCount, types.Targets[i])
		}
		rows = append(rows, row)
	}

	body := s.Card.Render(strings.Join(rows, "\n"))
	if opts.Intent == "" {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, s.Badge.Render(opts.Intent), body)
}

func (s Styles) meter(got, want int) string {
	text := fmt.Sprintf("%d/%d", got, want)
	if got != want {
		return s.Meter.Inherit(s.Warning).Render(text)
	}
	return s.Meter.Render(text)
}

// RenderCount draws one row of the count command.
func (s Styles) RenderCount(word string, syllables int, tier string) string {
	return fmt.Sprintf("%s  %s  %s",
		s.Line.Render(word),
		s.Selected.Render(fmt.Sprintf("%d", syllables)),
		s.Muted.Render(tier))
}
