// Package diff turns unified diff text into a per-file change summary.
// Parsing is best-effort: malformed input yields a partial summary marked
// as degraded instead of an error.
package diff

import (
	"regexp"
	"strconv"
	"strings"

	"haikommit/internal/logging"
)

// LineType represents the type of a line inside a hunk
type LineType int

const (
	LineContext LineType = iota // Unchanged context line
	LineAdded                   // Added line
	LineRemoved                 // Removed line
	LineMeta                    // "\ No newline at end of file" and similar
	LineUnknown                 // Anything without a recognised marker
)

// FileChange represents the changes to a single file
type FileChange struct {
	Path           string
	OldPath        string
	AddedLines     int
	RemovedLines   int
	AddedContent   []string
	RemovedContent []string
	IsNew          bool
	IsDeleted      bool
	IsRenamed      bool
	IsBinary       bool
}

// Summary is the parsed form of a whole diff. It is not modified after
// Parse or Summarize returns.
type Summary struct {
	Files        []FileChange
	TotalAdded   int
	TotalRemoved int

	// Degraded is set when some input could not be understood and was skipped.
	Degraded bool
}

// Empty reports whether the summary contains no changed files.
func (s *Summary) Empty() bool {
	return s == nil || len(s.Files) == 0
}

// Paths returns the changed paths in diff order.
func (s *Summary) Paths() []string {
	if s == nil {
		return nil
	}
	paths := make([]string, 0, len(s.Files))
	for _, f := range s.Files {
		paths = append(paths, f.Path)
	}
	return paths
}

// Summarize builds a Summary from already computed file changes.
func Summarize(changes ...FileChange) *Summary {
	s := &Summary{Files: make([]FileChange, 0, len(changes))}
	for _, c := range changes {
		s.Files = append(s.Files, c)
		s.TotalAdded += c.AddedLines
		s.TotalRemoved += c.RemovedLines
	}
	return s
}

var hunkHeaderRe = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)

// parser holds the state of a single Parse call
type parser struct {
	summary *Summary
	current *FileChange

	inHunk      bool
	countsKnown bool
	oldLeft     int
	newLeft     int
	binaryPatch bool
}

// Parse converts raw unified diff text (as produced by `git diff`) into a
// Summary. Empty input yields an empty summary.
func Parse(raw string) (summary *Summary) {
	p := &parser{summary: &Summary{}}

	log := logging.Get(logging.CategoryDiff)
	defer func() {
		if r := recover(); r != nil {
			log.Warn("parser panic, keeping partial summary: %v", r)
			p.summary.Degraded = true
			p.flush()
			summary = p.summary
		}
	}()

	if strings.TrimSpace(raw) == "" {
		return p.summary
	}

	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	for _, line := range strings.Split(raw, "\n") {
		p.consume(line)
	}
	p.flush()

	log.Debug("parsed %d files (+%d -%d) degraded=%v",
		len(p.summary.Files), p.summary.TotalAdded, p.summary.TotalRemoved, p.summary.Degraded)
	return p.summary
}

func (p *parser) consume(line string) {
	if strings.HasPrefix(line, "diff --git ") || strings.HasPrefix(line, "diff --cc ") {
		p.flush()
		p.current = &FileChange{Path: parseGitHeader(line)}
		return
	}

	if p.binaryPatch {
		return
	}

	if p.inHunk {
		p.consumeHunkLine(line)
		return
	}

	switch {
	case strings.HasPrefix(line, "@@"):
		p.startHunk(line)
	case strings.HasPrefix(line, "--- "):
		if p.current == nil || p.current.AddedLines+p.current.RemovedLines > 0 {
			// Plain `diff -u` output has no "diff --git" line.
			p.flush()
			p.current = &FileChange{}
		}
		path := cleanPath(strings.TrimPrefix(line, "--- "))
		if path == "" {
			p.current.IsNew = true
		} else {
			p.current.OldPath = path
		}
	case strings.HasPrefix(line, "+++ "):
		p.ensureFile()
		path := cleanPath(strings.TrimPrefix(line, "+++ "))
		if path == "" {
			p.current.IsDeleted = true
		} else {
			p.current.Path = path
		}
	case strings.HasPrefix(line, "new file mode"):
		p.ensureFile()
		p.current.IsNew = true
	case strings.HasPrefix(line, "deleted file mode"):
		p.ensureFile()
		p.current.IsDeleted = true
	case strings.HasPrefix(line, "rename from "):
		p.ensureFile()
		p.current.IsRenamed = true
		p.current.OldPath = unquote(strings.TrimPrefix(line, "rename from "))
	case strings.HasPrefix(line, "rename to "):
		p.ensureFile()
		p.current.IsRenamed = true
		p.current.Path = unquote(strings.TrimPrefix(line, "rename to "))
	case strings.HasPrefix(line, "Binary files ") && strings.HasSuffix(line, " differ"):
		p.ensureFile()
		p.current.IsBinary = true
		if p.current.Path == "" {
			p.current.Path = parseBinaryLine(line)
		}
	case strings.HasPrefix(line, "GIT binary patch"):
		p.ensureFile()
		p.current.IsBinary = true
		p.binaryPatch = true
	case isIgnorableHeader(line):
	case strings.TrimSpace(line) == "":
	default:
		// Preamble before the first file (e.g. `git show` output) is expected;
		// stray text between files is not.
		if p.current != nil {
			p.summary.Degraded = true
		}
	}
}

func (p *parser) startHunk(line string) {
	if p.current == nil {
		p.summary.Degraded = true
		p.current = &FileChange{}
	}
	p.inHunk = true
	p.countsKnown = false

	m := hunkHeaderRe.FindStringSubmatch(line)
	if m == nil {
		p.summary.Degraded = true
		return
	}
	p.oldLeft = atoiDefault(m[2], 1)
	p.newLeft = atoiDefault(m[4], 1)
	p.countsKnown = true
	p.closeHunkIfDone()
}

func (p *parser) consumeHunkLine(line string) {
	// Without counts a new section can only be recognised by its header.
	if !p.countsKnown && (strings.HasPrefix(line, "@@") || strings.HasPrefix(line, "--- ")) {
		p.inHunk = false
		p.consume(line)
		return
	}

	switch classifyLine(line) {
	case LineAdded:
		p.current.AddedLines++
		p.current.AddedContent = append(p.current.AddedContent, line[1:])
		p.newLeft--
	case LineRemoved:
		p.current.RemovedLines++
		p.current.RemovedContent = append(p.current.RemovedContent, line[1:])
		p.oldLeft--
	case LineContext:
		p.oldLeft--
		p.newLeft--
	case LineMeta:
	default:
		if line != "" {
			p.summary.Degraded = true
		}
		// A bare empty line is a context line whose leading space was stripped.
		p.oldLeft--
		p.newLeft--
	}

	p.closeHunkIfDone()
}

func (p *parser) closeHunkIfDone() {
	if p.countsKnown && p.oldLeft <= 0 && p.newLeft <= 0 {
		p.inHunk = false
	}
}

func (p *parser) ensureFile() {
	if p.current == nil {
		p.current = &FileChange{}
	}
}

// flush appends the file in progress to the summary
func (p *parser) flush() {
	p.inHunk = false
	p.countsKnown = false
	p.binaryPatch = false

	if p.current == nil {
		return
	}
	f := *p.current
	p.current = nil

	if f.Path == "" {
		f.Path = f.OldPath
	}
	if f.Path == "" && f.AddedLines+f.RemovedLines == 0 && !f.IsBinary {
		return
	}
	if f.IsBinary {
		f.AddedContent = nil
		f.RemovedContent = nil
	}

	p.summary.Files = append(p.summary.Files, f)
	p.summary.TotalAdded += f.AddedLines
	p.summary.TotalRemoved += f.RemovedLines
}

func classifyLine(line string) LineType {
	if line == "" {
		return LineUnknown
	}
	switch line[0] {
	case '+':
		return LineAdded
	case '-':
		return LineRemoved
	case ' ':
		return LineContext
	case '\\':
		return LineMeta
	default:
		return LineUnknown
	}
}

var ignorableHeaders = []string{
	"index ",
	"similarity index",
	"dissimilarity index",
	"old mode",
	"new mode",
	"copy from ",
	"copy to ",
	"literal ",
	"delta ",
}

func isIgnorableHeader(line string) bool {
	for _, prefix := range ignorableHeaders {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// parseGitHeader extracts the new path from "diff --git a/x b/y"
func parseGitHeader(line string) string {
	rest := strings.TrimPrefix(strings.TrimPrefix(line, "diff --git "), "diff --cc ")
	// git quotes paths with spaces or special characters: "a/x y" "b/x y"
	if tok, ok := lastQuotedToken(rest); ok {
		return cleanPath(tok)
	}
	if idx := strings.LastIndex(rest, " b/"); idx >= 0 {
		return unquote(rest[idx+3:])
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return ""
	}
	return cleanPath(fields[len(fields)-1])
}

// lastQuotedToken returns the trailing double-quoted token of s, quotes
// included. An opening quote must start s or follow a space.
func lastQuotedToken(s string) (string, bool) {
	if len(s) < 2 || s[len(s)-1] != '"' {
		return "", false
	}
	for i := len(s) - 2; i >= 0; i-- {
		if s[i] == '"' && (i == 0 || s[i-1] == ' ') {
			return s[i:], true
		}
	}
	return "", false
}

// parseBinaryLine extracts the new path from "Binary files a/x and b/y differ"
func parseBinaryLine(line string) string {
	rest := strings.TrimSuffix(strings.TrimPrefix(line, "Binary files "), " differ")
	parts := strings.SplitN(rest, " and ", 2)
	if len(parts) != 2 {
		return ""
	}
	if path := cleanPath(parts[1]); path != "" {
		return path
	}
	return cleanPath(parts[0])
}

// cleanPath strips a/ b/ prefixes, quoting and trailing timestamps.
// It returns "" for /dev/null.
func cleanPath(raw string) string {
	raw = strings.TrimSpace(raw)
	if idx := strings.Index(raw, "\t"); idx >= 0 {
		raw = raw[:idx]
	}
	raw = unquote(raw)
	if raw == "/dev/null" {
		return ""
	}
	if strings.HasPrefix(raw, "a/") || strings.HasPrefix(raw, "b/") {
		raw = raw[2:]
	}
	return raw
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		if u, err := strconv.Unquote(s); err == nil {
			return u
		}
		return s[1 : len(s)-1]
	}
	return s
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
