// Package intent assigns a single commit intent to a parsed diff.
package intent

import "fmt"

// Intent is the category of change a diff represents
type Intent int

const (
	Update Intent = iota // Fallback when nothing more specific applies
	Fix
	Feature
	Refactor
	Test
	Docs
	Remove
)

// All lists every intent in declaration order.
var All = []Intent{Update, Fix, Feature, Refactor, Test, Docs, Remove}

var names = map[Intent]string{
	Update:   "update",
	Fix:      "fix",
	Feature:  "feature",
	Refactor: "refactor",
	Test:     "test",
	Docs:     "docs",
	Remove:   "remove",
}

func (i Intent) String() string {
	if name, ok := names[i]; ok {
		return name
	}
	return fmt.Sprintf("intent(%d)", int(i))
}
