package logging

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed(t *testing.T, o Options) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	Initialize(zap.New(core), o)
	t.Cleanup(func() { Initialize(nil, Options{}) })
	return logs
}

func TestGet_NoopBeforeInitialize(t *testing.T) {
	Initialize(nil, Options{})

	l := Get(CategoryCompose)
	require.NotNil(t, l)
	assert.NotPanics(t, func() {
		l.Debug("x %d", 1)
		l.Info("x")
		l.Warn("x")
		l.Error("x")
	})
	assert.False(t, IsCategoryEnabled(CategoryCompose))
}

func TestGet_WritesNamedEntries(t *testing.T) {
	logs := observed(t, Options{})

	Get(CategoryCompose).Info("line %d filled", 2)
	ComposeDebug("generic fallback")
	HookWarn("skipped %s", "message")

	entries := logs.FilterMessage("line 2 filled").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "compose", entries[0].LoggerName)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)

	require.Equal(t, 1, logs.FilterMessage("generic fallback").Len())

	hook := logs.FilterMessage("skipped message").All()
	require.Len(t, hook, 1)
	assert.Equal(t, "hook", hook[0].LoggerName)
	assert.Equal(t, zapcore.WarnLevel, hook[0].Level)
}

func TestCategoriesCanBeDisabled(t *testing.T) {
	logs := observed(t, Options{Categories: map[string]bool{"compose": false, "git": true}})

	assert.False(t, IsCategoryEnabled(CategoryCompose))
	assert.True(t, IsCategoryEnabled(CategoryGit))
	assert.True(t, IsCategoryEnabled(CategoryIntent), "unlisted categories are enabled")

	ComposeDebug("hidden")
	GitDebug("shown")

	assert.Zero(t, logs.FilterMessage("hidden").Len())
	assert.Equal(t, 1, logs.FilterMessage("shown").Len())
}

func TestGet_Cached(t *testing.T) {
	observed(t, Options{})

	var wg sync.WaitGroup
	got := make([]*Logger, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = Get(CategoryBuild)
		}(i)
	}
	wg.Wait()
	for _, l := range got {
		assert.Same(t, got[0], l)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		" error ": zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"loud":    zapcore.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}
