// Package keyword extracts ranked candidate words from a parsed diff.
package keyword

import (
	"sort"
	"strings"

	"haikommit/internal/diff"
	"haikommit/internal/logging"
	"haikommit/internal/syllable"
)

// Source records where a keyword was found
type Source int

const (
	SourceFilename Source = iota // Component of a changed file name
	SourceContent                // Identifier in an added or removed line
)

func (s Source) String() string {
	if s == SourceFilename {
		return "filename"
	}
	return "content"
}

// Keyword is a candidate word for the poem with its syllable count attached.
type Keyword struct {
	Text      string
	Syllables int
	Weight    float64
	Source    Source
}

// Options bound the work done by Extract
type Options struct {
	PoolSize         int // Keywords kept after ranking
	MaxContentLines  int // Added+removed lines scanned for identifiers
	MaxTokensPerLine int // Identifiers taken from one line
}

// DefaultOptions returns the standard extraction bounds.
func DefaultOptions() Options {
	return Options{
		PoolSize:         12,
		MaxContentLines:  400,
		MaxTokensPerLine: 3,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.PoolSize <= 0 {
		o.PoolSize = d.PoolSize
	}
	if o.MaxContentLines <= 0 {
		o.MaxContentLines = d.MaxContentLines
	}
	if o.MaxTokensPerLine <= 0 {
		o.MaxTokensPerLine = d.MaxTokensPerLine
	}
	return o
}

// occurrence aggregates every sighting of one normalized word in one tier
type occurrence struct {
	text  string
	first int
	freq  int
}

// tier collects occurrences in first-seen order
type tier struct {
	byKey map[string]*occurrence
	order []string
}

func newTier() *tier {
	return &tier{byKey: make(map[string]*occurrence)}
}

func (t *tier) add(word string) {
	key := stem(word)
	if o, ok := t.byKey[key]; ok {
		o.freq++
		return
	}
	t.byKey[key] = &occurrence{text: word, first: len(t.order), freq: 1}
	t.order = append(t.order, key)
}

// Extract returns the ranked keyword pool for a diff. Filename words always
// outrank content words; within a tier earlier and more frequent words rank
// higher. Each keyword carries its syllable count from counter.
func Extract(s *diff.Summary, counter *syllable.Counter, opts Options) []Keyword {
	if s.Empty() {
		return nil
	}
	if counter == nil {
		counter = syllable.Builtin()
	}
	opts = opts.withDefaults()

	names := newTier()
	for _, f := range s.Files {
		isTest := diff.IsTestPath(f.Path)
		for _, w := range FilenameWords(f.Path) {
			if testWords[w] && !isTest {
				continue
			}
			names.add(w)
		}
	}

	content := newTier()
	scanned := 0
	for _, f := range s.Files {
		for _, lines := range [][]string{f.AddedContent, f.RemovedContent} {
			for _, line := range lines {
				if scanned >= opts.MaxContentLines {
					break
				}
				scanned++
				for _, w := range contentWords(line, opts.MaxTokensPerLine) {
					content.add(w)
				}
			}
		}
	}

	best := make(map[string]Keyword)
	var keys []string
	merge := func(t *tier, src Source, weigh func(*occurrence) float64) {
		for _, key := range t.order {
			o := t.byKey[key]
			kw := Keyword{Text: o.text, Weight: weigh(o), Source: src}
			cur, seen := best[key]
			if !seen {
				keys = append(keys, key)
			}
			if !seen || kw.Weight > cur.Weight {
				best[key] = kw
			}
		}
	}
	merge(names, SourceFilename, filenameWeight)
	merge(content, SourceContent, contentWeight)

	pool := make([]Keyword, 0, len(keys))
	for _, key := range keys {
		pool = append(pool, best[key])
	}
	sort.SliceStable(pool, func(i, j int) bool {
		a, b := pool[i], pool[j]
		if a.Weight != b.Weight {
			return a.Weight > b.Weight
		}
		if len(a.Text) != len(b.Text) {
			return len(a.Text) > len(b.Text)
		}
		return a.Text < b.Text
	})
	if len(pool) > opts.PoolSize {
		pool = pool[:opts.PoolSize]
	}

	for i := range pool {
		pool[i].Syllables = counter.Count(pool[i].Text)
	}
	logging.Get(logging.CategoryKeyword).Debug("pool of %d from %d candidates (%d content lines scanned)",
		len(pool), len(keys), scanned)
	return pool
}

// filenameWeight maps into (1, 2]
func filenameWeight(o *occurrence) float64 {
	return 1 + 0.5/float64(1+o.first) + 0.1*float64(min(o.freq, 5))
}

// contentWeight maps into (0, 0.9]
func contentWeight(o *occurrence) float64 {
	return 0.5/(1+0.1*float64(o.first)) + 0.08*float64(min(o.freq, 5))
}

// FilenameWords returns the lower-case words of a path's file name, with
// short, numeric and stop-listed components removed. Test words are kept;
// Extract decides whether they matter.
func FilenameWords(p string) []string {
	var words []string
	for _, part := range SplitIdentifier(fileStem(p)) {
		w := strings.ToLower(part)
		if len(w) < 2 || hasDigit(w) || filenameStop[w] {
			continue
		}
		words = append(words, w)
	}
	return words
}

// contentWords returns the usable words from at most limit identifiers of line.
func contentWords(line string, limit int) []string {
	var words []string
	taken := 0
	for _, ident := range Identifiers(line) {
		if taken >= limit {
			break
		}
		if languageKeywords[strings.ToLower(ident)] {
			continue
		}
		found := false
		for _, part := range SplitIdentifier(ident) {
			w := strings.ToLower(part)
			if len(w) < 3 || hasDigit(w) || languageKeywords[w] || englishStop[w] {
				continue
			}
			words = append(words, w)
			found = true
		}
		if found {
			taken++
		}
	}
	return words
}
