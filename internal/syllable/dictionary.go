package syllable

// builtinCounts covers programming vocabulary the heuristic mis-scores
// (acronyms, compounds, -ed endings) plus words used by the line templates.
// Keys are lower-case letters only.
var builtinCounts = map[string]int{
	"added": 2, "admin": 2, "angular": 3, "api": 3, "applied": 2, "apply": 2,
	"area": 3, "array": 2, "arrives": 2, "async": 2, "auth": 1, "await": 2,
	"babel": 2, "before": 2, "being": 2, "better": 2, "boolean": 3, "breathes": 1,
	"bug": 1, "bugfix": 2, "bugs": 1, "build": 1, "bundle": 2, "business": 2,
	"button": 2, "cache": 1, "changed": 1, "changelog": 2, "checked": 1, "class": 1,
	"cleaned": 1, "cleanup": 2, "cleared": 1, "cli": 3, "codebase": 2, "codes": 1,
	"come": 1, "compile": 2, "complete": 2, "component": 3, "components": 3,
	"config": 2, "const": 1, "controller": 3, "create": 2, "created": 3, "cron": 1,
	"css": 3, "database": 3, "db": 2, "def": 1, "deleted": 3, "deploy": 2, "docker": 2,
	"docs": 1, "documentation": 5, "done": 1, "dropped": 1, "endpoint": 2, "enum": 2,
	"error": 2, "errors": 2, "eslint": 2, "every": 2, "everything": 3, "explained": 2,
	"export": 2, "fades": 1, "failed": 1, "false": 1, "farewell": 2, "feature": 2,
	"features": 2, "file": 1, "files": 1, "fine": 1, "fixed": 1, "func": 1,
	"function": 2, "git": 1, "golang": 2, "gone": 1, "goroutine": 3, "guide": 1,
	"handler": 2, "handlers": 2, "helper": 2, "helpers": 2, "here": 1, "hook": 1,
	"hooks": 1, "hotfix": 2, "html": 4, "http": 4, "https": 5, "id": 2, "idea": 3,
	"ids": 2, "import": 2, "improved": 2, "integer": 3, "io": 2, "issue": 2,
	"javascript": 3, "js": 2, "json": 2, "jsx": 3, "kubernetes": 4, "lambda": 2,
	"leaves": 1, "license": 2, "lines": 1, "login": 2, "logout": 2, "make": 1,
	"middleware": 3, "minor": 2, "mock": 1, "mocks": 1, "model": 2, "modified": 3,
	"more": 1, "moved": 1, "moves": 1, "named": 1, "namespace": 2, "nil": 1,
	"node": 1, "nodes": 1, "none": 1, "notes": 1, "npm": 3, "null": 1, "object": 2,
	"once": 1, "one": 1, "optimize": 3, "parser": 2, "passed": 1, "patch": 1,
	"patched": 1, "payload": 2, "plumbing": 2, "polished": 2, "prettier": 3,
	"prose": 1, "proved": 1, "pruned": 1, "py": 2, "python": 2, "query": 2,
	"queue": 1, "queues": 1, "quiet": 2, "react": 2, "readme": 2, "ready": 2,
	"realm": 1, "redux": 2, "refactor": 3, "refactored": 3, "regex": 2, "release": 2,
	"removed": 2, "renamed": 2, "reshaped": 2, "return": 2, "reused": 2, "router": 2,
	"runtime": 2, "safety": 2, "schema": 2, "science": 2, "sealed": 1, "service": 2,
	"services": 3, "shaped": 1, "smoothed": 1, "some": 1, "something": 2, "spec": 1,
	"sql": 3, "string": 1, "strings": 1, "stripped": 1, "struct": 1, "sync": 1,
	"table": 2, "takes": 1, "test": 1, "tested": 2, "tests": 1, "there": 1,
	"tidied": 2, "timeout": 2, "token": 2, "toml": 1, "touched": 1, "traced": 1,
	"trimmed": 1, "true": 1, "ts": 2, "tsx": 3, "tuned": 1, "type": 1, "types": 1,
	"typescript": 3, "ui": 2, "undefined": 4, "unused": 2, "updated": 3, "uri": 3,
	"url": 3, "used": 1, "user": 2, "users": 2, "util": 2, "utils": 2, "value": 2,
	"values": 2, "view": 1, "views": 1, "vue": 1, "webpack": 2, "websocket": 3,
	"were": 1, "where": 1, "whole": 1, "working": 2, "written": 2, "xml": 3,
	"yaml": 2,
}

// DictionarySize returns the number of built-in entries.
func DictionarySize() int {
	return len(builtinCounts)
}
