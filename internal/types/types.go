// Package types provides shared type definitions used across haikommit packages.
// This package exists to break import cycles between compose and haiku.
// Types in this package should be foundational data structures with no complex dependencies.
package types

import (
	"fmt"
	"strings"
)

// Targets are the syllable counts of the three haiku lines.
var Targets = [3]int{5, 7, 5}

// Tolerance is how far a line may drift from its target.
const Tolerance = 1

// Line is one line of a haiku.
type Line struct {
	Text          string   `json:"text"`
	SyllableCount int      `json:"syllables"`
	Keywords      []string `json:"keywords,omitempty"` // Keywords placed into the line
	Generic       bool     `json:"generic,omitempty"`  // Fixed fallback text was used
}

// Haiku is a three line poem.
type Haiku struct {
	Lines [3]Line `json:"lines"`
}

// String joins the lines with newlines.
func (h Haiku) String() string {
	parts := make([]string, len(h.Lines))
	for i, l := range h.Lines {
		parts[i] = l.Text
	}
	return strings.Join(parts, "\n")
}

// Counts returns the syllable count of each line.
func (h Haiku) Counts() [3]int {
	var out [3]int
	for i, l := range h.Lines {
		out[i] = l.SyllableCount
	}
	return out
}

// Meter renders the counts as "5-7-5".
func (h Haiku) Meter() string {
	c := h.Counts()
	return fmt.Sprintf("%d-%d-%d", c[0], c[1], c[2])
}

// Validate checks the hard invariant (three non-empty printable lines) and
// the meter tolerance. It returns the first problem found.
func (h Haiku) Validate() error {
	for i, l := range h.Lines {
		if strings.TrimSpace(l.Text) == "" {
			return fmt.Errorf("line %d is empty", i+1)
		}
		if strings.ContainsAny(l.Text, "\n\r\t") {
			return fmt.Errorf("line %d contains control characters", i+1)
		}
		if d := l.SyllableCount - Targets[i]; d > Tolerance || d < -Tolerance {
			return fmt.Errorf("line %d has %d syllables, want %d±%d", i+1, l.SyllableCount, Targets[i], Tolerance)
		}
	}
	return nil
}

// Exact reports whether every line hits its target.
func (h Haiku) Exact() bool {
	return h.Counts() == Targets
}

// UsedGeneric reports whether any line fell back to fixed text.
func (h Haiku) UsedGeneric() bool {
	for _, l := range h.Lines {
		if l.Generic {
			return true
		}
	}
	return false
}
