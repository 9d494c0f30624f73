package haiku

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"haikommit/internal/config"
	"haikommit/internal/diff"
	"haikommit/internal/intent"
	"haikommit/internal/keyword"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const testFileDiff = `diff --git a/src/userController.test.js b/src/userController.test.js
new file mode 100644
index 0000000..3f2a1b4
--- /dev/null
+++ b/src/userController.test.js
@@ -0,0 +1,5 @@
+const controller = require("./userController");
+test("finds a user", () => {
+  assert.ok(controller.findUser("ada"));
+  expect(profileLookup).toHaveBeenCalled();
+});
`

func hunkDiff(path string, removed, added []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "diff --git a/%s b/%s\n--- a/%s\n+++ b/%s\n", path, path, path, path)
	fmt.Fprintf(&b, "@@ -1,%d +1,%d @@\n", len(removed), len(added))
	for _, l := range removed {
		b.WriteString("-" + l + "\n")
	}
	for _, l := range added {
		b.WriteString("+" + l + "\n")
	}
	return b.String()
}

func repeat(line string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = line
	}
	return out
}

func poolTexts(pool []keyword.Keyword) []string {
	var out []string
	for _, kw := range pool {
		out = append(out, kw.Text)
	}
	return out
}

func TestBuild_EmptyDiff(t *testing.T) {
	res := NewBuilder(nil).Run("", 0)

	assert.Equal(t, intent.Update, res.Decision.Intent)
	assert.Empty(t, res.Pool)
	require.NoError(t, res.Haiku.Validate())
	assert.True(t, res.Haiku.Exact(), res.Haiku.Meter())
	for _, l := range res.Haiku.Lines {
		assert.True(t, l.Generic)
	}
	require.Len(t, res.Warnings, 1)
	assert.ErrorIs(t, res.Warnings[0], ErrCompositionExhausted)
}

func TestBuild_TestFile(t *testing.T) {
	res := NewBuilder(nil).Run(testFileDiff, 0)

	assert.Equal(t, intent.Test, res.Decision.Intent)
	assert.Subset(t, poolTexts(res.Pool), []string{"user", "controller", "test"})
	require.NoError(t, res.Haiku.Validate())

	counts := res.Haiku.Counts()
	assert.InDelta(t, 5, counts[0], 1)
	assert.InDelta(t, 5, counts[2], 1)
}

func TestBuild_Fix(t *testing.T) {
	added := append([]string{"  // guard against the refresh bug"}, repeat("  attempts += 1;", 39)...)
	raw := hunkDiff("src/fixLogin.js", repeat("  attempts = 0;", 2), added)

	res := NewBuilder(nil).Run(raw, 0)

	require.Equal(t, 40, res.Summary.TotalAdded)
	require.Equal(t, 2, res.Summary.TotalRemoved)
	assert.Equal(t, intent.Fix, res.Decision.Intent)
	assert.NoError(t, res.Haiku.Validate())
}

func TestBuild_Remove(t *testing.T) {
	raw := hunkDiff("lib/legacy.go", repeat("\ttotal := count * size", 30), nil)

	res := NewBuilder(nil).Run(raw, 0)

	require.Equal(t, 0, res.Summary.TotalAdded)
	require.Equal(t, 30, res.Summary.TotalRemoved)
	assert.Equal(t, intent.Remove, res.Decision.Intent)
	assert.NoError(t, res.Haiku.Validate())
}

func TestBuild_Deterministic(t *testing.T) {
	first := NewBuilder(nil).Build(testFileDiff)
	second := NewBuilder(nil).Build(testFileDiff)

	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, first, NewBuilder(nil).BuildVariant(testFileDiff, 0))
	assert.Len(t, strings.Split(first.String(), "\n"), 3)
}

func TestBuild_Variants(t *testing.T) {
	b := NewBuilder(nil)
	for v := 0; v < 5; v++ {
		res := b.Run(testFileDiff, v)
		assert.Equal(t, Seed(testFileDiff, 0)+uint64(v), res.Seed)
		assert.NoError(t, res.Haiku.Validate(), "variant %d", v)
	}
}

func TestBuild_Degraded(t *testing.T) {
	raw := "diff --git a/a.go b/a.go\n--- a/a.go\n+++ b/a.go\n@@ -1 +1 @@\n-old\n+new\nstray garbage here\n"

	res := NewBuilder(nil).Run(raw, 0)

	require.True(t, res.Summary.Degraded)
	assert.True(t, containsErr(res.Warnings, ErrDiffParseDegraded))
	assert.NoError(t, res.Haiku.Validate())
}

func TestBuild_SyllableOverrides(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Syllables["controller"] = 1

	res := NewBuilder(cfg).Run(testFileDiff, 0)

	for _, kw := range res.Pool {
		if kw.Text == "controller" {
			assert.Equal(t, 1, kw.Syllables)
			return
		}
	}
	t.Fatal("controller missing from pool")
}

func TestBuild_KeywordBoundsFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Keywords.PoolSize = 2

	res := NewBuilder(cfg).Run(testFileDiff, 0)
	assert.Len(t, res.Pool, 2)
}

func TestBuild_ZeroValueBuilder(t *testing.T) {
	var b Builder
	assert.NoError(t, b.Build(testFileDiff).Validate())
}

func TestBuild_RecoversFromPanic(t *testing.T) {
	// A nil builder fails inside the pipeline; the caller still gets a poem.
	var b *Builder

	res := b.Run(testFileDiff, 0)

	assert.Equal(t, Fallback(), res.Haiku)
	require.NotEmpty(t, res.Warnings)
	assert.True(t, containsErr(res.Warnings, ErrCompositionExhausted))
}

func TestBuild_SummaryFromEngine(t *testing.T) {
	change := diff.NewEngine().Compare("docs/guide.md", "# Guide\n", "# Guide\n\nInstall the hook first.\n")

	res := NewBuilder(nil).RunSummary(diff.Summarize(change), 7, 0)

	assert.Equal(t, intent.Docs, res.Decision.Intent)
	assert.NoError(t, res.Haiku.Validate())
}

func TestFallbackIsValid(t *testing.T) {
	h := Fallback()
	require.NoError(t, h.Validate())
	assert.True(t, h.Exact())
}

func TestErrConfigInvalidMatchesConfigPackage(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", config.ErrInvalid)
	assert.True(t, errors.Is(err, ErrConfigInvalid))
}

func containsErr(errs []error, target error) bool {
	for _, err := range errs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
