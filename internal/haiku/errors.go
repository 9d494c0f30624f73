package haiku

import (
	"errors"

	"haikommit/internal/config"
)

// Conditions the pipeline recovers from. None of them stop a haiku from
// being produced; they are logged and surfaced through Result.Warnings.
var (
	// ErrDiffParseDegraded means part of the diff was malformed and skipped.
	ErrDiffParseDegraded = errors.New("diff parsed in degraded mode")

	// ErrConfigInvalid means a configuration file was ignored in whole or part.
	ErrConfigInvalid = config.ErrInvalid

	// ErrCompositionExhausted means no keyword template fit a line and a
	// generic line was used.
	ErrCompositionExhausted = errors.New("no keyword template fits")
)
