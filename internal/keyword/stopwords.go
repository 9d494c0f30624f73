package keyword

// filenameStop lists file name components that say nothing about a change.
var filenameStop = setOf(
	"index", "main", "init", "mod", "src", "lib", "app", "file", "files",
	"tmp", "temp", "new", "old", "copy", "default", "common", "misc", "base",
	"core", "min", "dist", "out", "bin", "pkg", "internal", "go", "sum",
)

// testWords are dropped from file names unless the file is itself a test.
var testWords = setOf("test", "tests", "spec", "specs")

// languageKeywords covers reserved words and builtins of common languages.
var languageKeywords = setOf(
	// shared
	"if", "else", "for", "while", "do", "switch", "case", "default", "break",
	"continue", "return", "true", "false", "null", "nil", "none", "void",
	"new", "delete", "try", "catch", "finally", "throw", "throws", "class",
	"interface", "extends", "implements", "import", "export", "from", "as",
	"package", "public", "private", "protected", "static", "final", "const",
	"let", "var", "this", "self", "super", "typeof", "instanceof", "in", "is",
	"not", "and", "or", "async", "await", "yield", "enum", "struct", "type",
	"undefined", "function", "abstract", "override", "virtual",
	// go
	"func", "go", "defer", "chan", "select", "range", "map", "fallthrough",
	"goto", "err", "ctx", "fmt", "int", "int64", "string", "bool", "byte",
	"rune", "float64", "make", "len", "cap", "append", "panic",
	// python
	"def", "elif", "lambda", "pass", "raise", "except", "with", "global",
	"nonlocal", "assert", "print", "str", "dict", "list", "tuple", "cls",
	"args", "kwargs",
	// rust, ruby, shell, misc
	"fn", "pub", "impl", "mut", "use", "crate", "match", "where", "loop",
	"mod", "end", "then", "unless", "begin", "rescue", "ensure", "require",
	"module", "echo", "fi", "esac", "done", "local", "readonly",
	// js/ts
	"require", "module", "exports", "console", "log", "string", "number",
	"boolean", "object", "any", "unknown", "never", "readonly", "props",
	"div", "span", "classname",
)

// englishStop keeps comment prose from flooding the content tier.
var englishStop = setOf(
	"the", "and", "for", "with", "that", "this", "from", "into", "are", "was",
	"were", "but", "has", "have", "had", "will", "can", "could", "should",
	"would", "when", "than", "its", "you", "your", "our", "not", "all", "any",
	"get", "set", "out", "one", "two", "may", "also", "only", "just", "some",
	"todo", "fixme", "xxx", "http", "https", "www", "com",
)

func setOf(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}
