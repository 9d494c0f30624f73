// Package git wraps the few git subprocesses haikommit needs.
package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"haikommit/internal/logging"
)

// ErrNotRepository is returned when dir is not inside a git work tree.
var ErrNotRepository = errors.New("not a git repository")

// run executes git in dir and returns trimmed stdout. Stderr is folded
// into the error.
func run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logging.GitDebug("git %s (dir=%s)", strings.Join(args, " "), dir)
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if strings.Contains(msg, "not a git repository") {
			return "", fmt.Errorf("%w: %s", ErrNotRepository, dir)
		}
		if msg != "" {
			return "", fmt.Errorf("git %s failed: %w: %s", args[0], err, msg)
		}
		return "", fmt.Errorf("git %s failed: %w", args[0], err)
	}
	return stdout.String(), nil
}

// RepoRoot returns the top-level directory of the work tree containing dir.
func RepoRoot(ctx context.Context, dir string) (string, error) {
	out, err := run(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return filepath.Clean(strings.TrimSpace(out)), nil
}

// HooksDir returns the absolute hooks directory, honouring core.hooksPath.
func HooksDir(ctx context.Context, dir string) (string, error) {
	return gitPath(ctx, dir, "hooks")
}

// IndexPath returns the absolute path of the index file, which changes
// whenever the staging area does.
func IndexPath(ctx context.Context, dir string) (string, error) {
	return gitPath(ctx, dir, "index")
}

func gitPath(ctx context.Context, dir, name string) (string, error) {
	out, err := run(ctx, dir, "rev-parse", "--git-path", name)
	if err != nil {
		return "", err
	}
	p := strings.TrimSpace(out)
	if !filepath.IsAbs(p) {
		p = filepath.Join(dir, p)
	}
	return filepath.Clean(p), nil
}

// StagedDiff returns `git diff --staged` for the repository at dir.
func StagedDiff(ctx context.Context, dir string) (string, error) {
	return run(ctx, dir, "diff", "--staged", "--no-color", "--no-ext-diff")
}

// Commit records the staged changes with message.
func Commit(ctx context.Context, dir, message string) error {
	if strings.TrimSpace(message) == "" {
		return errors.New("empty commit message")
	}
	_, err := run(ctx, dir, "commit", "-m", message)
	return err
}
