// Package compose turns an intent and a keyword pool into three metrically
// valid lines.
package compose

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"haikommit/internal/intent"
	"haikommit/internal/keyword"
	"haikommit/internal/logging"
	"haikommit/internal/syllable"
	"haikommit/internal/types"
)

// DefaultMaxSteps caps the search nodes visited for one line.
const DefaultMaxSteps = 4096

// pattern is a template split around its keyword slots
type pattern struct {
	text  string
	parts []string // len(parts) == slots+1
	fixed int      // syllables of the literal text
}

func (p pattern) slots() int { return len(p.parts) - 1 }

func (p pattern) render(words []string) string {
	var b strings.Builder
	for i, part := range p.parts {
		b.WriteString(part)
		if i < len(words) {
			b.WriteString(words[i])
		}
	}
	return capitalize(strings.TrimSpace(b.String()))
}

type compiledSet struct {
	keyword [3][]pattern
	generic [3][2]pattern
}

var compiled = compileAll()

// compileAll counts template syllables with the built-in counter so user
// overrides never change the fixed text's meter.
func compileAll() map[intent.Intent]compiledSet {
	out := make(map[intent.Intent]compiledSet, len(templates))
	for in, set := range templates {
		var cs compiledSet
		for line := range set.keyword {
			for _, text := range set.keyword[line] {
				cs.keyword[line] = append(cs.keyword[line], compile(text))
			}
			for g, text := range set.generic[line] {
				cs.generic[line][g] = compile(text)
			}
		}
		out[in] = cs
	}
	return out
}

func compile(text string) pattern {
	parts := strings.Split(text, Slot)
	return pattern{
		text:  text,
		parts: parts,
		fixed: syllable.Builtin().CountPhrase(strings.Join(parts, " ")),
	}
}

// Composer fills templates with keywords. The zero value is usable.
type Composer struct {
	Counter *syllable.Counter // Counts keywords whose Syllables are unset
	Seed    uint64            // Rotates template order and picks generic lines
	// Variant selects the n-th best candidate per line, wrapping around.
	// Zero always takes the best.
	Variant  int
	MaxSteps int
}

// New creates a composer for one diff.
func New(counter *syllable.Counter, seed uint64) *Composer {
	return &Composer{Counter: counter, Seed: seed, MaxSteps: DefaultMaxSteps}
}

// candidate is one complete assignment of keywords to a template
type candidate struct {
	pattern pattern
	picks   []int // pool indices in slot order
	count   int   // syllables
	dev     int   // |count - target|
	weight  float64
}

// Compose builds the haiku for in from pool. The pool is expected in
// ranked order, as returned by keyword.Extract. Lines that no keyword
// template can fill within tolerance use a generic line.
func (c *Composer) Compose(in intent.Intent, pool []keyword.Keyword) types.Haiku {
	set, ok := compiled[in]
	if !ok {
		set = compiled[intent.Update]
	}
	log := logging.Get(logging.CategoryCompose)

	syl := c.syllables(pool)
	weights := make([]float64, len(pool))
	for i, kw := range pool {
		weights[i] = kw.Weight
	}
	used := make(map[int]bool)

	var h types.Haiku
	for i := range h.Lines {
		cands := c.search(set.keyword[i], syl, used, types.Targets[i], i)
		rank(cands, weights)
		if len(cands) == 0 {
			g := set.generic[i][c.genericIndex(i)]
			h.Lines[i] = types.Line{Text: g.text, SyllableCount: g.fixed, Generic: true}
			log.Debug("line %d: no keyword fit among %d keywords, using generic", i+1, len(pool))
			continue
		}

		best := cands[c.variantIndex(len(cands))]
		words := make([]string, len(best.picks))
		for j, idx := range best.picks {
			words[j] = pool[idx].Text
			used[idx] = true
		}
		h.Lines[i] = types.Line{
			Text:          best.pattern.render(words),
			SyllableCount: best.count,
			Keywords:      words,
		}
		log.Debug("line %d: %q (%d syllables, %d candidates)", i+1, h.Lines[i].Text, best.count, len(cands))
	}
	return h
}

func (c *Composer) syllables(pool []keyword.Keyword) []int {
	counter := c.Counter
	if counter == nil {
		counter = syllable.Builtin()
	}
	out := make([]int, len(pool))
	for i, kw := range pool {
		out[i] = kw.Syllables
		if out[i] <= 0 {
			out[i] = counter.Count(kw.Text)
		}
	}
	return out
}

// search runs a bounded depth-first search over keyword assignments for
// every template of one line and returns the fitting candidates in search
// order.
func (c *Composer) search(patterns []pattern, syl []int, used map[int]bool, target, line int) []candidate {
	if len(patterns) == 0 || len(syl) == 0 {
		return nil
	}
	maxSteps := c.MaxSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}

	steps := 0
	var found []candidate
	start := int((c.Seed + uint64(line)) % uint64(len(patterns)))

	for n := 0; n < len(patterns) && steps < maxSteps; n++ {
		p := patterns[(start+n)%len(patterns)]
		picks := make([]int, 0, p.slots())
		taken := make(map[int]bool, p.slots())

		var dfs func(sum int)
		dfs = func(sum int) {
			if steps >= maxSteps {
				return
			}
			steps++
			if len(picks) == p.slots() {
				if d := abs(sum - target); d <= types.Tolerance {
					found = append(found, candidate{
						pattern: p,
						picks:   append([]int(nil), picks...),
						count:   sum,
						dev:     d,
					})
				}
				return
			}
			for idx := range syl {
				if used[idx] || taken[idx] {
					continue
				}
				next := sum + syl[idx]
				// Every remaining slot adds at least one syllable.
				if next+(p.slots()-len(picks)-1) > target+types.Tolerance {
					continue
				}
				picks = append(picks, idx)
				taken[idx] = true
				dfs(next)
				picks = picks[:len(picks)-1]
				delete(taken, idx)
			}
		}
		dfs(p.fixed)
	}

	if steps >= maxSteps {
		logging.ComposeDebug("line %d: search capped at %d steps", line+1, maxSteps)
	}
	return found
}

func (c *Composer) genericIndex(line int) int {
	return int((c.Seed >> uint(line)) & 1)
}

func (c *Composer) variantIndex(n int) int {
	if c.Variant <= 0 {
		return 0
	}
	return c.Variant % n
}

// rank orders candidates by number of keywords, then distance from the
// target, then total keyword weight. Ties keep search order.
func rank(cands []candidate, weights []float64) {
	for i := range cands {
		w := 0.0
		for _, idx := range cands[i].picks {
			w += weights[idx]
		}
		cands[i].weight = w
	}
	sort.SliceStable(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if len(a.picks) != len(b.picks) {
			return len(a.picks) > len(b.picks)
		}
		if a.dev != b.dev {
			return a.dev < b.dev
		}
		return a.weight > b.weight
	})
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
