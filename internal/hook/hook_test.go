package hook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScript(t *testing.T) {
	s := Script("/usr/local/bin/haikommit")
	assert.Contains(t, s, "#!/bin/sh\n")
	assert.Contains(t, s, marker)
	assert.Contains(t, s, `'/usr/local/bin/haikommit' hook run "$1" "$2"`)
	assert.Contains(t, s, "|| true")

	assert.Contains(t, Script("/opt/it's/haikommit"), `'/opt/it'\''s/haikommit'`)
}

func TestInstallUninstall(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "hooks")

	path, err := Install(dir, "/bin/haikommit", false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, Name), path)
	assert.True(t, Installed(dir))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0100, "hook is executable")

	_, err = Install(dir, "/bin/haikommit", false)
	assert.NoError(t, err, "reinstalling over our own hook is fine")

	require.NoError(t, Uninstall(dir))
	assert.False(t, Installed(dir))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	assert.ErrorIs(t, Uninstall(dir), ErrNotInstalled)
}

func TestInstall_ForeignHook(t *testing.T) {
	dir := t.TempDir()
	foreign := "#!/bin/sh\necho custom\n"
	require.NoError(t, os.WriteFile(Path(dir), []byte(foreign), 0755))

	_, err := Install(dir, "haikommit", false)
	assert.ErrorIs(t, err, ErrForeignHook)
	assert.ErrorIs(t, Uninstall(dir), ErrNotInstalled)

	_, err = Install(dir, "haikommit", true)
	require.NoError(t, err)
	backup, err := os.ReadFile(Path(dir) + ".bak")
	require.NoError(t, err)
	assert.Equal(t, foreign, string(backup))

	require.NoError(t, Uninstall(dir))
	restored, err := os.ReadFile(Path(dir))
	require.NoError(t, err)
	assert.Equal(t, foreign, string(restored))
}

func TestShouldSkip(t *testing.T) {
	for _, src := range []string{"message", "merge", "squash", "commit"} {
		assert.True(t, ShouldSkip(src), src)
	}
	for _, src := range []string{"", "template"} {
		assert.False(t, ShouldSkip(src), src)
	}
}

func TestPrependMessage(t *testing.T) {
	tests := []struct {
		name     string
		existing *string
		want     string
	}{
		{"missing file", nil, "line one\nline two\nline three\n"},
		{"empty file", strPtr(""), "line one\nline two\nline three\n"},
		{"git template", strPtr("# Please enter the commit message\n"), "line one\nline two\nline three\n\n# Please enter the commit message\n"},
		{"leading blank line", strPtr("\n# comment\n"), "line one\nline two\nline three\n\n# comment\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
			if tt.existing != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.existing), 0644))
			}

			require.NoError(t, PrependMessage(path, "line one\nline two\nline three\n"))

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func strPtr(s string) *string { return &s }
