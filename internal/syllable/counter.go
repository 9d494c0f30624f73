// Package syllable counts English syllables in identifiers and words.
//
// Counting walks a chain of resolvers: user overrides first, then the
// built-in dictionary of programming terms, then a vowel-group heuristic
// that always produces an answer. Count never fails.
package syllable

import (
	"strings"
	"unicode"

	"haikommit/internal/logging"
)

// Tier identifies which resolver answered a lookup.
type Tier int

const (
	TierNone       Tier = iota // Empty word, nothing to count
	TierOverride               // User supplied override
	TierDictionary             // Built-in dictionary
	TierHeuristic              // Vowel-group heuristic
)

func (t Tier) String() string {
	switch t {
	case TierOverride:
		return "override"
	case TierDictionary:
		return "dictionary"
	case TierHeuristic:
		return "heuristic"
	default:
		return "none"
	}
}

// Resolver returns a syllable count for a normalized word, or false when it
// has no opinion and the next resolver should be asked.
type Resolver func(word string) (int, bool)

type link struct {
	tier    Tier
	resolve Resolver
}

// Counter resolves syllable counts through an ordered resolver chain.
// A Counter is immutable and safe for concurrent use.
type Counter struct {
	chain []link
}

var builtin = New(nil)

// Builtin returns a counter without user overrides.
func Builtin() *Counter {
	return builtin
}

// New creates a counter that consults overrides before the built-in
// dictionary. Override keys are normalized like lookups; counts below 1 are
// ignored. The map is copied.
func New(overrides map[string]int) *Counter {
	chain := make([]link, 0, 3)
	if table := normalizeOverrides(overrides); len(table) > 0 {
		chain = append(chain, link{TierOverride, tableResolver(table)})
	}
	chain = append(chain,
		link{TierDictionary, tableResolver(builtinCounts)},
		link{TierHeuristic, func(word string) (int, bool) { return Heuristic(word), true }},
	)
	return &Counter{chain: chain}
}

func tableResolver(table map[string]int) Resolver {
	return func(word string) (int, bool) {
		n, ok := table[word]
		return n, ok
	}
}

func normalizeOverrides(overrides map[string]int) map[string]int {
	if len(overrides) == 0 {
		return nil
	}
	table := make(map[string]int, len(overrides))
	for word, n := range overrides {
		key := Normalize(word)
		if key == "" || n < 1 {
			continue
		}
		table[key] = n
	}
	return table
}

// Count returns the number of syllables in word. Case and non-alphabetic
// characters are ignored; a word with no letters counts as zero.
func (c *Counter) Count(word string) int {
	n, _ := c.Lookup(word)
	return n
}

// Lookup is Count that also reports which tier answered.
func (c *Counter) Lookup(word string) (int, Tier) {
	key := Normalize(word)
	if key == "" {
		return 0, TierNone
	}
	for _, l := range c.chain {
		if n, ok := l.resolve(key); ok {
			if l.tier == TierHeuristic {
				logging.Get(logging.CategorySyllable).Debug("%q not in dictionary, heuristic says %d", key, n)
			}
			return n, l.tier
		}
	}
	// Unreachable while the heuristic closes the chain.
	return Heuristic(key), TierHeuristic
}

// CountPhrase sums the counts of every alphabetic run in text.
func (c *Counter) CountPhrase(text string) int {
	total := 0
	for _, word := range Words(text) {
		total += c.Count(word)
	}
	return total
}

// Words splits text into maximal runs of ASCII letters.
func Words(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !isLetter(r)
	})
}

// Normalize lower-cases word and drops every non-letter.
func Normalize(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		r = unicode.ToLower(r)
		if isLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
