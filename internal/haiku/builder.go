// Package haiku runs the whole pipeline: parse the diff, classify its
// intent, extract keywords and compose a 5-7-5 poem.
package haiku

import (
	"fmt"

	"haikommit/internal/compose"
	"haikommit/internal/config"
	"haikommit/internal/diff"
	"haikommit/internal/intent"
	"haikommit/internal/keyword"
	"haikommit/internal/logging"
	"haikommit/internal/syllable"
	"haikommit/internal/types"
)

// Builder turns diffs into haiku. It holds no state between calls.
type Builder struct {
	Config  *config.Config
	counter *syllable.Counter
}

// NewBuilder creates a builder. A nil config means the defaults.
func NewBuilder(cfg *config.Config) *Builder {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Builder{Config: cfg, counter: syllable.New(cfg.Syllables)}
}

// Result is everything the pipeline derived from one diff.
type Result struct {
	Haiku    types.Haiku
	Summary  *diff.Summary
	Decision intent.Decision
	Pool     []keyword.Keyword
	Seed     uint64

	// Warnings holds the recoverable conditions met on the way, each
	// wrapping one of the package's sentinel errors.
	Warnings []error
}

// Seed derives the composition seed for a diff and variant.
func Seed(raw string, variant int) uint64 {
	return diff.Hash(raw) + uint64(variant)
}

// Build returns the haiku for a raw diff. Identical input always yields
// identical output.
func (b *Builder) Build(raw string) types.Haiku {
	return b.BuildVariant(raw, 0)
}

// BuildVariant returns an alternative haiku for the same diff. Variant 0
// is the one Build returns.
func (b *Builder) BuildVariant(raw string, variant int) types.Haiku {
	return b.Run(raw, variant).Haiku
}

// Run is BuildVariant with the intermediate results attached.
func (b *Builder) Run(raw string, variant int) Result {
	return b.RunSummary(diff.Parse(raw), Seed(raw, variant), variant)
}

// RunSummary runs the pipeline on an already parsed diff. It never panics:
// any failure inside a stage yields Fallback.
func (b *Builder) RunSummary(s *diff.Summary, seed uint64, variant int) (res Result) {
	log := logging.Get(logging.CategoryBuild)

	defer func() {
		if r := recover(); r != nil {
			log.Error("pipeline failed, using fallback haiku: %v", r)
			res = Result{
				Haiku:    Fallback(),
				Summary:  s,
				Seed:     seed,
				Warnings: append(res.Warnings, fmt.Errorf("%w: pipeline panic: %v", ErrCompositionExhausted, r)),
			}
		}
	}()

	counter := b.syllables()
	res = Result{Summary: s, Seed: seed}

	if s.Degraded {
		res.Warnings = append(res.Warnings, ErrDiffParseDegraded)
		log.Warn("%v: %d files recovered", ErrDiffParseDegraded, len(s.Files))
	}

	res.Decision = intent.Explain(s)
	res.Pool = keyword.Extract(s, counter, b.keywordOptions())

	c := compose.New(counter, seed)
	c.Variant = variant
	res.Haiku = c.Compose(res.Decision.Intent, res.Pool)

	var generic []int
	for i, l := range res.Haiku.Lines {
		if l.Generic {
			generic = append(generic, i+1)
		}
	}
	if len(generic) > 0 {
		res.Warnings = append(res.Warnings, fmt.Errorf("%w: lines %v", ErrCompositionExhausted, generic))
		log.Debug("%v: lines %v", ErrCompositionExhausted, generic)
	}

	if err := res.Haiku.Validate(); err != nil {
		panic(fmt.Sprintf("composed haiku is invalid: %v", err))
	}
	return res
}

func (b *Builder) cfg() *config.Config {
	if b.Config == nil {
		return config.DefaultConfig()
	}
	return b.Config
}

func (b *Builder) syllables() *syllable.Counter {
	if b.counter != nil {
		return b.counter
	}
	return syllable.New(b.cfg().Syllables)
}

func (b *Builder) keywordOptions() keyword.Options {
	k := b.cfg().Keywords
	return keyword.Options{
		PoolSize:         k.PoolSize,
		MaxContentLines:  k.MaxContentLines,
		MaxTokensPerLine: k.MaxTokensPerLine,
	}
}

// Fallback is the minimal haiku used when the pipeline fails.
func Fallback() types.Haiku {
	return types.Haiku{Lines: [3]types.Line{
		{Text: "Code updated now", SyllableCount: 5, Generic: true},
		{Text: "Modified to improve flow", SyllableCount: 7, Generic: true},
		{Text: "Changes applied here", SyllableCount: 5, Generic: true},
	}}
}
