package intent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haikommit/internal/diff"
)

func lines(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = prefix
	}
	return out
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		files []diff.FileChange
		want  Intent
		rule  Rule
	}{
		{
			name: "empty diff",
			want: Update,
			rule: RuleEmpty,
		},
		{
			name: "fix by filename and content",
			files: []diff.FileChange{{
				Path:           "src/fixLogin.js",
				AddedLines:     40,
				RemovedLines:   2,
				AddedContent:   append([]string{"// guard against the bug in token refresh"}, lines("  retries++;", 39)...),
				RemovedContent: lines("  retries = 0;", 2),
			}},
			want: Fix,
			rule: RuleKeyword,
		},
		{
			name: "pure removal",
			files: []diff.FileChange{{
				Path:           "lib/legacy.go",
				RemovedLines:   30,
				RemovedContent: lines("\tcount := total / size", 30),
			}},
			want: Remove,
			rule: RuleRemoval,
		},
		{
			name: "test file",
			files: []diff.FileChange{{
				Path:         "src/userController.test.js",
				AddedLines:   2,
				AddedContent: []string{"assert.ok(result);", "expect(user).toBeDefined();"},
			}},
			want: Test,
			rule: RuleTestFiles,
		},
		{
			name: "test file mentioning fix stays test",
			files: []diff.FileChange{{
				Path:         "parser_test.go",
				AddedLines:   1,
				AddedContent: []string{"// regression test for the fix in header parsing"},
			}},
			want: Test,
			rule: RuleTestFiles,
		},
		{
			name:  "readme",
			files: []diff.FileChange{{Path: "README.md", AddedLines: 3, AddedContent: []string{"Install with go"}}},
			want:  Docs,
			rule:  RuleDocFiles,
		},
		{
			name: "source file named like a doc is not docs",
			files: []diff.FileChange{{
				Path:         "internal/store/history.go",
				AddedLines:   1,
				AddedContent: []string{"\treturn fixBug(x)"},
			}},
			want: Fix,
			rule: RuleKeyword,
		},
		{
			name: "half tests wins over docs",
			files: []diff.FileChange{
				{Path: "docs/usage.md", AddedLines: 1},
				{Path: "tests/test_usage.py", AddedLines: 1},
			},
			want: Test,
			rule: RuleTestFiles,
		},
		{
			name: "feature keyword",
			files: []diff.FileChange{{
				Path:         "server/routes.go",
				AddedLines:   5,
				AddedContent: []string{"\t// add health endpoint", "\tr.Get(\"/health\", h.Health)"},
			}},
			want: Feature,
			rule: RuleKeyword,
		},
		{
			name: "fix outranks feature",
			files: []diff.FileChange{{
				Path:         "server/routes.go",
				AddedLines:   2,
				AddedContent: []string{"\t// add retry", "\t// fixes the timeout error"},
			}},
			want: Fix,
			rule: RuleKeyword,
		},
		{
			name: "refactor keyword in path",
			files: []diff.FileChange{{
				Path:         "pkg/cleanup/paths.go",
				AddedLines:   3,
				RemovedLines: 3,
			}},
			want: Refactor,
			rule: RuleKeyword,
		},
		{
			name: "keywords match whole words only",
			files: []diff.FileChange{{
				Path:         "pkg/prefix.go",
				AddedLines:   1,
				AddedContent: []string{"suffixes := debugger.addresses()"},
			}},
			want: Update,
			rule: RuleFallback,
		},
		{
			name: "removal at exactly twice is update",
			files: []diff.FileChange{{
				Path:         "pkg/stats.go",
				AddedLines:   5,
				RemovedLines: 10,
			}},
			want: Update,
			rule: RuleFallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s *diff.Summary
			if tt.files != nil {
				s = diff.Summarize(tt.files...)
			} else {
				s = diff.Parse("")
			}
			d := Explain(s)
			assert.Equal(t, tt.want, d.Intent, d.String())
			assert.Equal(t, tt.rule, d.Rule)
			assert.Equal(t, tt.want, Classify(s))
		})
	}
}

func TestClassify_FromParsedDiff(t *testing.T) {
	raw := `diff --git a/src/cache.go b/src/cache.go
--- a/src/cache.go
+++ b/src/cache.go
@@ -1,3 +1,3 @@
 package cache
-// TODO simplify
+// simplify eviction
 var size = 10
`
	d := Explain(diff.Parse(raw))

	assert.Equal(t, Refactor, d.Intent)
	assert.Equal(t, "simplify", d.Match)
	assert.True(t, strings.Contains(d.String(), "refactor"))
}

func TestClassify_Deterministic(t *testing.T) {
	s := diff.Summarize(
		diff.FileChange{Path: "a.go", AddedLines: 1, AddedContent: []string{"implement patch support"}},
		diff.FileChange{Path: "b.go", RemovedLines: 1, RemovedContent: []string{"cleanup"}},
	)
	first := Explain(s)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Explain(s))
	}
	assert.Equal(t, Fix, first.Intent)
	assert.Equal(t, "patch", first.Match)
}

func TestIntentString(t *testing.T) {
	seen := make(map[string]bool)
	for _, i := range All {
		name := i.String()
		assert.NotContains(t, name, "intent(")
		assert.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true
	}
	assert.Equal(t, "intent(42)", Intent(42).String())
}
