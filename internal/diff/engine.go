package diff

import (
	"hash/fnv"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Engine computes file changes from two versions of a file using the
// sergi/go-diff line mode.
type Engine struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// NewEngine creates a new diff engine with settings suited to source files
func NewEngine() *Engine {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0 // Disable timeout for accuracy
	return &Engine{dmp: dmp}
}

// Compare computes the change from oldContent to newContent and labels it
// with path. An empty old side marks the file as new, an empty new side as
// deleted.
func (e *Engine) Compare(path, oldContent, newContent string) FileChange {
	change := FileChange{
		Path:      path,
		IsNew:     oldContent == "" && newContent != "",
		IsDeleted: newContent == "" && oldContent != "",
	}

	// Line-level reduction avoids newline boundary artifacts.
	a, b, lineArray := e.dmp.DiffLinesToChars(oldContent, newContent)
	diffs := e.dmp.DiffMain(a, b, false)
	diffs = e.dmp.DiffCharsToLines(diffs, lineArray)

	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				change.AddedLines++
				change.AddedContent = append(change.AddedContent, line)
			case diffmatchpatch.DiffDelete:
				change.RemovedLines++
				change.RemovedContent = append(change.RemovedContent, line)
			}
		}
	}

	return change
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Hash computes the 64-bit FNV-1a hash of s
func Hash(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}
