package diff

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loginFix = `diff --git a/src/auth/login.js b/src/auth/login.js
index abc123..def456 100644
--- a/src/auth/login.js
+++ b/src/auth/login.js
@@ -10,6 +10,7 @@ export async function loginUser(credentials) {
   try {
     const user = await findUser(credentials.email);
+    if (!user) throw new Error('User not found');
     const token = generateToken(user);
     return { success: true, token };
   } catch (error) {
`

func TestParse_Empty(t *testing.T) {
	for _, raw := range []string{"", "\n", "   \n\t\n"} {
		s := Parse(raw)
		require.NotNil(t, s)
		assert.True(t, s.Empty())
		assert.Zero(t, s.TotalAdded)
		assert.Zero(t, s.TotalRemoved)
		assert.False(t, s.Degraded)
	}
}

func TestParse_SingleFile(t *testing.T) {
	s := Parse(loginFix)

	require.Len(t, s.Files, 1)
	f := s.Files[0]
	assert.Equal(t, "src/auth/login.js", f.Path)
	assert.Equal(t, "src/auth/login.js", f.OldPath)
	assert.Equal(t, 1, f.AddedLines)
	assert.Equal(t, 0, f.RemovedLines)
	assert.Equal(t, []string{"    if (!user) throw new Error('User not found');"}, f.AddedContent)
	assert.Equal(t, 1, s.TotalAdded)
	assert.False(t, s.Degraded)
}

func TestParse_MultipleFiles(t *testing.T) {
	raw := `diff --git a/a.go b/a.go
--- a/a.go
+++ b/a.go
@@ -1,2 +1,2 @@
-old line
+new line
 same
diff --git a/b.go b/b.go
--- a/b.go
+++ b/b.go
@@ -1,3 +1,1 @@
-gone one
-gone two
 kept
`
	s := Parse(raw)

	want := []FileChange{
		{
			Path: "a.go", OldPath: "a.go",
			AddedLines: 1, RemovedLines: 1,
			AddedContent: []string{"new line"}, RemovedContent: []string{"old line"},
		},
		{
			Path: "b.go", OldPath: "b.go",
			RemovedLines:   2,
			RemovedContent: []string{"gone one", "gone two"},
		},
	}
	if diff := cmp.Diff(want, s.Files); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, s.TotalAdded)
	assert.Equal(t, 3, s.TotalRemoved)
	assert.Equal(t, []string{"a.go", "b.go"}, s.Paths())
	assert.Nil(t, (*Summary)(nil).Paths())
}

func TestParse_RemovedLineLooksLikeHeader(t *testing.T) {
	raw := `diff --git a/notes.txt b/notes.txt
--- a/notes.txt
+++ b/notes.txt
@@ -1,2 +1,2 @@
--- a dashed heading
+++ a plus heading
 tail
`
	s := Parse(raw)

	require.Len(t, s.Files, 1)
	f := s.Files[0]
	assert.Equal(t, []string{"-- a dashed heading"}, f.RemovedContent)
	assert.Equal(t, []string{"++ a plus heading"}, f.AddedContent)
	assert.False(t, s.Degraded)
}

func TestParse_Binary(t *testing.T) {
	raw := `diff --git a/assets/logo.png b/assets/logo.png
index 1111111..2222222 100644
Binary files a/assets/logo.png and b/assets/logo.png differ
diff --git a/icon.ico b/icon.ico
GIT binary patch
literal 1234
zcmV;@1Tp*EP)<h;3K|Lk000e1NJLTq000mO000mW1ONa4f1o!J0002-Nkl<ZcmZvX
+this must not be read as an added line

`
	s := Parse(raw)

	require.Len(t, s.Files, 2)
	for _, f := range s.Files {
		assert.True(t, f.IsBinary, f.Path)
		assert.Empty(t, f.AddedContent)
		assert.Zero(t, f.AddedLines)
	}
	assert.Equal(t, "assets/logo.png", s.Files[0].Path)
	assert.Equal(t, "icon.ico", s.Files[1].Path)
}

func TestParse_QuotedPaths(t *testing.T) {
	raw := `diff --git "a/assets/team photo.png" "b/assets/team photo.png"
index 1111111..2222222 100644
Binary files "a/assets/team photo.png" and "b/assets/team photo.png" differ
diff --git "a/docs/release notes.txt" "b/docs/release notes.txt"
--- "a/docs/release notes.txt"
+++ "b/docs/release notes.txt"
@@ -1 +1 @@
-old
+new
`
	s := Parse(raw)

	require.Len(t, s.Files, 2)
	assert.Equal(t, "assets/team photo.png", s.Files[0].Path)
	assert.True(t, s.Files[0].IsBinary)
	assert.Equal(t, "docs/release notes.txt", s.Files[1].Path)
	assert.Equal(t, "docs/release notes.txt", s.Files[1].OldPath)
	assert.False(t, s.Degraded)
}

func TestParseGitHeader(t *testing.T) {
	tests := map[string]string{
		`diff --git a/main.go b/main.go`:                     "main.go",
		`diff --git "a/x y" "b/x y"`:                         "x y",
		`diff --git a/plain "b/with space.go"`:               "with space.go",
		`diff --git "a/caf\303\251.txt" "b/caf\303\251.txt"`: "caf\u00e9.txt",
		`diff --cc conflicted.go`:                            "conflicted.go",
		`diff --git `:                                        "",
	}
	for line, want := range tests {
		assert.Equal(t, want, parseGitHeader(line), line)
	}
}

func TestParse_Rename(t *testing.T) {
	raw := `diff --git a/old/name.go b/new/name.go
similarity index 90%
rename from old/name.go
rename to new/name.go
index 1..2 100644
--- a/old/name.go
+++ b/new/name.go
@@ -1 +1 @@
-package old
+package name
`
	s := Parse(raw)

	require.Len(t, s.Files, 1)
	f := s.Files[0]
	assert.Equal(t, "new/name.go", f.Path)
	assert.Equal(t, "old/name.go", f.OldPath)
	assert.True(t, f.IsRenamed)
	assert.Equal(t, 1, f.AddedLines)
	assert.Equal(t, 1, f.RemovedLines)
}

func TestParse_NewAndDeletedFiles(t *testing.T) {
	raw := `diff --git a/fresh.txt b/fresh.txt
new file mode 100644
--- /dev/null
+++ b/fresh.txt
@@ -0,0 +1,2 @@
+hello
+world
diff --git a/stale.txt b/stale.txt
deleted file mode 100644
--- a/stale.txt
+++ /dev/null
@@ -1 +0,0 @@
-bye
`
	s := Parse(raw)

	require.Len(t, s.Files, 2)
	assert.True(t, s.Files[0].IsNew)
	assert.Equal(t, "fresh.txt", s.Files[0].Path)
	assert.True(t, s.Files[1].IsDeleted)
	assert.Equal(t, "stale.txt", s.Files[1].Path)
	assert.Equal(t, 2, s.TotalAdded)
	assert.Equal(t, 1, s.TotalRemoved)
}

func TestParse_PlainUnifiedDiff(t *testing.T) {
	raw := "--- a/one.py\t2024-01-01 00:00:00\n" +
		"+++ b/one.py\t2024-01-02 00:00:00\n" +
		"@@ -1 +1 @@\n" +
		"-x = 1\n" +
		"+x = 2\n" +
		"--- a/two.py\n" +
		"+++ b/two.py\n" +
		"@@ -1,0 +1 @@\n" +
		"+y = 3\n"
	s := Parse(raw)

	require.Len(t, s.Files, 2)
	assert.Equal(t, "one.py", s.Files[0].Path)
	assert.Equal(t, "two.py", s.Files[1].Path)
	assert.Equal(t, 2, s.TotalAdded)
}

func TestParse_CRLF(t *testing.T) {
	s := Parse(strings.ReplaceAll(loginFix, "\n", "\r\n"))

	require.Len(t, s.Files, 1)
	assert.Equal(t, "src/auth/login.js", s.Files[0].Path)
	assert.Equal(t, 1, s.Files[0].AddedLines)
}

func TestParse_Degraded(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"hunk without file", "@@ -1 +1 @@\n-a\n+b\n"},
		{"garbage hunk header", "diff --git a/x b/x\n@@ nonsense @@\n+added\n"},
		{"stray text between files", "diff --git a/x b/x\n--- a/x\n+++ b/x\nthis is not a diff line\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Parse(tt.raw)
			require.NotNil(t, s)
			assert.True(t, s.Degraded)
		})
	}
}

func TestParse_DegradedKeepsContent(t *testing.T) {
	s := Parse("diff --git a/x b/x\n@@ nonsense @@\n+added\n-removed\n")

	require.Len(t, s.Files, 1)
	assert.Equal(t, "x", s.Files[0].Path)
	assert.Equal(t, []string{"added"}, s.Files[0].AddedContent)
	assert.Equal(t, []string{"removed"}, s.Files[0].RemovedContent)
}

func TestParse_PreambleIgnored(t *testing.T) {
	raw := "commit 0123456789abcdef\nAuthor: someone\n\n    message\n\n" + loginFix
	s := Parse(raw)

	require.Len(t, s.Files, 1)
	assert.False(t, s.Degraded)
}

func TestSummarize(t *testing.T) {
	s := Summarize(
		FileChange{Path: "a", AddedLines: 3},
		FileChange{Path: "b", RemovedLines: 2, AddedLines: 1},
	)
	assert.Equal(t, 4, s.TotalAdded)
	assert.Equal(t, 2, s.TotalRemoved)
	assert.Len(t, s.Files, 2)
}
