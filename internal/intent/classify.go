package intent

import (
	"fmt"
	"strings"

	"haikommit/internal/diff"
	"haikommit/internal/keyword"
	"haikommit/internal/logging"
)

// family is one content-keyword rule of the cascade
type family struct {
	intent Intent
	words  map[string]bool
}

func wordSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// families are checked in order; the first with a hit wins.
var families = []family{
	{Fix, wordSet(
		"fix", "fixes", "fixed", "fixing", "bug", "bugs", "bugfix", "hotfix",
		"patch", "error", "errors", "issue", "issues", "repair", "correct",
		"crash", "broken", "regression",
	)},
	{Feature, wordSet(
		"feat", "feature", "features", "add", "added", "adds", "create",
		"new", "implement", "implemented", "introduce", "support",
	)},
	{Refactor, wordSet(
		"refactor", "refactored", "refactoring", "cleanup", "clean", "style",
		"restructure", "improve", "optimize", "simplify", "rename", "tidy",
	)},
}

// Rule names the step of the cascade that decided an intent.
type Rule string

const (
	RuleEmpty     Rule = "empty diff"
	RuleTestFiles Rule = "test files"
	RuleDocFiles  Rule = "doc files"
	RuleKeyword   Rule = "content keyword"
	RuleRemoval   Rule = "removal ratio"
	RuleFallback  Rule = "fallback"
)

// Decision is the outcome of the cascade with the evidence behind it.
type Decision struct {
	Intent Intent
	Rule   Rule
	Match  string // Keyword that fired, when Rule is RuleKeyword
}

func (d Decision) String() string {
	if d.Match != "" {
		return fmt.Sprintf("%s (%s %q)", d.Intent, d.Rule, d.Match)
	}
	return fmt.Sprintf("%s (%s)", d.Intent, d.Rule)
}

// Classify assigns exactly one intent to a diff. The result depends only on
// the summary.
func Classify(s *diff.Summary) Intent {
	return Explain(s).Intent
}

// Explain runs the classification cascade and reports which rule fired:
// structural file kinds first, then content keywords (fix, feature,
// refactor), then the added/removed ratio.
func Explain(s *diff.Summary) Decision {
	d := explain(s)
	logging.Get(logging.CategoryIntent).Debug("classified as %s", d)
	return d
}

func explain(s *diff.Summary) Decision {
	if s.Empty() {
		return Decision{Intent: Update, Rule: RuleEmpty}
	}

	tests, docs := 0, 0
	for _, f := range s.Files {
		switch {
		case diff.IsTestPath(f.Path):
			tests++
		case diff.IsDocPath(f.Path):
			docs++
		}
	}
	if majority(tests, len(s.Files)) {
		return Decision{Intent: Test, Rule: RuleTestFiles}
	}
	if majority(docs, len(s.Files)) {
		return Decision{Intent: Docs, Rule: RuleDocFiles}
	}

	tokens := tokenSet(s)
	for _, fam := range families {
		if match, ok := firstHit(tokens, fam.words); ok {
			return Decision{Intent: fam.intent, Rule: RuleKeyword, Match: match}
		}
	}

	if s.TotalRemoved > 2*s.TotalAdded {
		return Decision{Intent: Remove, Rule: RuleRemoval}
	}
	return Decision{Intent: Update, Rule: RuleFallback}
}

// majority reports whether n is at least half of total
func majority(n, total int) bool {
	return total > 0 && 2*n >= total
}

// tokens keeps first-seen order so the reported match is stable.
type tokens struct {
	order []string
	seen  map[string]bool
}

func (t *tokens) addText(text string) {
	for _, part := range keyword.SplitIdentifier(text) {
		w := strings.ToLower(part)
		if !t.seen[w] {
			t.seen[w] = true
			t.order = append(t.order, w)
		}
	}
}

func tokenSet(s *diff.Summary) *tokens {
	t := &tokens{seen: make(map[string]bool)}
	for _, f := range s.Files {
		t.addText(f.Path)
		if f.OldPath != "" {
			t.addText(f.OldPath)
		}
	}
	for _, f := range s.Files {
		for _, line := range f.AddedContent {
			t.addText(line)
		}
		for _, line := range f.RemovedContent {
			t.addText(line)
		}
	}
	return t
}

func firstHit(t *tokens, words map[string]bool) (string, bool) {
	for _, w := range t.order {
		if words[w] {
			return w, true
		}
	}
	return "", false
}
