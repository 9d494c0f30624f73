// Package logging provides categorized logging for haikommit backed by zap.
// Every category writes through a named child of the root logger installed
// by Initialize. Until then, and for disabled categories, loggers are no-ops.
package logging

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot     Category = "boot"     // CLI startup and configuration
	CategoryDiff     Category = "diff"     // Diff parsing and comparison
	CategorySyllable Category = "syllable" // Syllable resolution
	CategoryKeyword  Category = "keyword"  // Keyword extraction
	CategoryIntent   Category = "intent"   // Intent classification
	CategoryCompose  Category = "compose"  // Line composition
	CategoryBuild    Category = "build"    // Pipeline orchestration
	CategoryGit      Category = "git"      // git subprocesses
	CategoryHook     Category = "hook"     // prepare-commit-msg hook
	CategoryWatch    Category = "watch"    // Staging area watcher
)

// Options controls which categories emit.
type Options struct {
	// Categories disables a category when mapped to false. Unlisted
	// categories are enabled.
	Categories map[string]bool
}

// Logger wraps a sugared zap logger for one category
type Logger struct {
	category Category
	sugar    *zap.SugaredLogger
}

var (
	loggers   = make(map[Category]*Logger)
	loggersMu sync.RWMutex
	root      *zap.Logger
	opts      Options
)

// Initialize installs base as the root logger. Passing nil restores the
// no-op state.
func Initialize(base *zap.Logger, o Options) {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	root = base
	opts = o
	loggers = make(map[Category]*Logger)

	if root != nil {
		root.Named(string(CategoryBoot)).Debug("logging initialized",
			zap.Int("disabled_categories", countDisabled(o.Categories)))
	}
}

func countDisabled(cats map[string]bool) int {
	n := 0
	for _, enabled := range cats {
		if !enabled {
			n++
		}
	}
	return n
}

// IsCategoryEnabled returns whether a specific category is enabled
func IsCategoryEnabled(category Category) bool {
	loggersMu.RLock()
	defer loggersMu.RUnlock()
	return isEnabled(category)
}

func isEnabled(category Category) bool {
	if root == nil {
		return false
	}
	enabled, exists := opts.Categories[string(category)]
	return !exists || enabled
}

// Get returns (or creates) a logger for the given category.
// Returns a no-op logger if logging is not initialized or the category is disabled.
func Get(category Category) *Logger {
	loggersMu.RLock()
	if l, ok := loggers[category]; ok {
		loggersMu.RUnlock()
		return l
	}
	loggersMu.RUnlock()

	loggersMu.Lock()
	defer loggersMu.Unlock()

	// Double-check after acquiring write lock
	if l, ok := loggers[category]; ok {
		return l
	}

	l := &Logger{category: category}
	if isEnabled(category) {
		l.sugar = root.Named(string(category)).Sugar()
	}
	loggers[category] = l
	return l
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.sugar == nil {
		return
	}
	l.sugar.Debugf(format, args...)
}

// Info logs an informational message
func (l *Logger) Info(format string, args ...interface{}) {
	if l.sugar == nil {
		return
	}
	l.sugar.Infof(format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.sugar == nil {
		return
	}
	l.sugar.Warnf(format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	if l.sugar == nil {
		return
	}
	l.sugar.Errorf(format, args...)
}

// ParseLevel maps a level name to a zap level. Unknown names yield info.
func ParseLevel(name string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// =============================================================================
// Convenience functions for common categories
// =============================================================================

// BootDebug logs debug to the boot category
func BootDebug(format string, args ...interface{}) {
	Get(CategoryBoot).Debug(format, args...)
}

// ComposeDebug logs debug to the compose category
func ComposeDebug(format string, args ...interface{}) {
	Get(CategoryCompose).Debug(format, args...)
}

// Hook logs to the hook category
func Hook(format string, args ...interface{}) {
	Get(CategoryHook).Info(format, args...)
}

// HookWarn logs a warning to the hook category
func HookWarn(format string, args ...interface{}) {
	Get(CategoryHook).Warn(format, args...)
}

// GitDebug logs debug to the git category
func GitDebug(format string, args ...interface{}) {
	Get(CategoryGit).Debug(format, args...)
}

// WatchDebug logs a debug message to the watch category
func WatchDebug(format string, args ...interface{}) {
	Get(CategoryWatch).Debug(format, args...)
}
