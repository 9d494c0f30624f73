package diff

import (
	"path"
	"strings"
)

var docExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".rst":      true,
	".adoc":     true,
	".mdx":      true,
}

var docBasenames = []string{"readme", "changelog", "contributing", "changes", "history"}

// proseExtensions may follow a doc base name; source extensions may not.
var proseExtensions = map[string]bool{
	"":      true,
	".txt":  true,
	".text": true,
}

// IsTestPath reports whether the path names a test file by convention
// (foo.test.js, foo.spec.ts, foo_test.go, test_foo.py, __tests__/, tests/).
func IsTestPath(p string) bool {
	lower := normalizePath(p)
	if lower == "" {
		return false
	}
	base := path.Base(lower)

	switch {
	case strings.Contains(base, ".test."), strings.Contains(base, ".spec."):
		return true
	case strings.Contains(base, "_test."), strings.Contains(base, "_spec."):
		return true
	case strings.HasPrefix(base, "test_"):
		return true
	}
	return hasDir(lower, "__tests__") || hasDir(lower, "tests") || hasDir(lower, "test")
}

// IsDocPath reports whether the path names documentation.
func IsDocPath(p string) bool {
	lower := normalizePath(p)
	if lower == "" {
		return false
	}
	base := path.Base(lower)

	if docExtensions[path.Ext(base)] {
		return true
	}
	if proseExtensions[path.Ext(base)] {
		stem := strings.TrimSuffix(base, path.Ext(base))
		for _, name := range docBasenames {
			if strings.HasPrefix(stem, name) {
				return true
			}
		}
	}
	return hasDir(lower, "docs") || hasDir(lower, "doc")
}

func normalizePath(p string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(p), "\\", "/"))
}

// hasDir reports whether dir appears as a directory component of p
func hasDir(p, dir string) bool {
	return strings.HasPrefix(p, dir+"/") || strings.Contains(p, "/"+dir+"/")
}
