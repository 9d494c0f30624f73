// Package hook installs and runs the prepare-commit-msg hook.
package hook

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"haikommit/internal/logging"
)

// Name is the git hook haikommit manages.
const Name = "prepare-commit-msg"

// marker identifies scripts written by Install.
const marker = "# managed by haikommit"

var (
	// ErrForeignHook means a hook exists that haikommit did not write.
	ErrForeignHook = errors.New("existing prepare-commit-msg hook is not managed by haikommit")

	// ErrNotInstalled means there is no haikommit hook to remove.
	ErrNotInstalled = errors.New("haikommit hook is not installed")
)

// Script returns the hook script that runs binary.
func Script(binary string) string {
	return fmt.Sprintf(`#!/bin/sh
%s
# Prepends a haiku to the commit message. Never blocks the commit.
%s hook run "$1" "$2" >/dev/null 2>&1 || true
exit 0
`, marker, shellQuote(binary))
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Path returns the hook file inside hooksDir.
func Path(hooksDir string) string {
	return filepath.Join(hooksDir, Name)
}

// Installed reports whether hooksDir holds a haikommit hook.
func Installed(hooksDir string) bool {
	data, err := os.ReadFile(Path(hooksDir))
	return err == nil && bytes.Contains(data, []byte(marker))
}

// Install writes the hook into hooksDir. An existing hook that haikommit
// did not write is left alone unless force is set, in which case it is
// kept as prepare-commit-msg.bak.
func Install(hooksDir, binary string, force bool) (string, error) {
	path := Path(hooksDir)

	if data, err := os.ReadFile(path); err == nil && !bytes.Contains(data, []byte(marker)) {
		if !force {
			return "", fmt.Errorf("%w: %s", ErrForeignHook, path)
		}
		if err := os.Rename(path, path+".bak"); err != nil {
			return "", fmt.Errorf("failed to back up existing hook: %w", err)
		}
		logging.HookWarn("moved existing hook to %s.bak", path)
	}

	if err := os.MkdirAll(hooksDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create hooks directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(Script(binary)), 0755); err != nil {
		return "", fmt.Errorf("failed to write hook: %w", err)
	}
	// WriteFile keeps the mode of an existing file.
	if err := os.Chmod(path, 0755); err != nil {
		return "", fmt.Errorf("failed to make hook executable: %w", err)
	}

	logging.Hook("installed %s", path)
	return path, nil
}

// Uninstall removes the haikommit hook and restores a backup left by a
// forced Install.
func Uninstall(hooksDir string) error {
	path := Path(hooksDir)
	if !Installed(hooksDir) {
		return fmt.Errorf("%w: %s", ErrNotInstalled, path)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove hook: %w", err)
	}
	if _, err := os.Stat(path + ".bak"); err == nil {
		if err := os.Rename(path+".bak", path); err != nil {
			return fmt.Errorf("failed to restore previous hook: %w", err)
		}
		logging.Hook("restored previous hook %s", path)
	}
	logging.Hook("uninstalled %s", path)
	return nil
}

// skipSources are commit message sources that already carry a message
// the user or git chose.
var skipSources = map[string]bool{
	"message": true, // -m or -F
	"merge":   true,
	"squash":  true,
	"commit":  true, // -c, -C or --amend
}

// ShouldSkip reports whether the hook leaves a message of this source alone.
func ShouldSkip(source string) bool {
	return skipSources[strings.TrimSpace(source)]
}

// PrependMessage writes text at the top of the commit message file,
// followed by a blank line and the previous content.
func PrependMessage(path, text string) error {
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read commit message: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(strings.TrimRight(text, "\n"))
	buf.WriteString("\n")
	if len(existing) > 0 {
		if existing[0] != '\n' {
			buf.WriteString("\n")
		}
		buf.Write(existing)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write commit message: %w", err)
	}
	return nil
}
