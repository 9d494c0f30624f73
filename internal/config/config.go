package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the per-repository and per-user configuration file.
const FileName = ".haikommitrc"

// Environment variables read by applyEnvOverrides and Discover.
const (
	EnvConfigPath = "HAIKOMMIT_CONFIG"
	EnvLogLevel   = "HAIKOMMIT_LOG_LEVEL"
)

// ErrInvalid marks a configuration file that could not be used.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all haikommit configuration. It is loaded once per
// invocation and passed explicitly to every stage.
type Config struct {
	// Syllables overrides word syllable counts, e.g. {"kubectl": 3}.
	Syllables map[string]int `yaml:"syllables,omitempty" json:"syllables,omitempty"`

	// Keyword extraction bounds
	Keywords KeywordConfig `yaml:"keywords" json:"keywords,omitempty"`

	// Logging
	Logging LoggingConfig `yaml:"logging" json:"logging,omitempty"`
}

// KeywordConfig bounds keyword extraction. Zero values use the defaults.
type KeywordConfig struct {
	PoolSize         int `yaml:"pool_size" json:"pool_size,omitempty"`
	MaxContentLines  int `yaml:"max_content_lines" json:"max_content_lines,omitempty"`
	MaxTokensPerLine int `yaml:"max_tokens_per_line" json:"max_tokens_per_line,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Syllables: map[string]int{},
		Keywords: KeywordConfig{
			PoolSize:         12,
			MaxContentLines:  400,
			MaxTokensPerLine: 3,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// Load loads configuration from a YAML or JSON file. A missing file yields
// the defaults. A file that cannot be read or parsed yields the defaults
// together with an error wrapping ErrInvalid, so callers can warn and go on.
func Load(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

// load is Load that also reports whether the file itself was used. It is
// false when the file is missing, unreadable or unparseable.
func load(path string) (*Config, bool, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		cfg.applyEnvOverrides()
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			return cfg, false, nil
		}
		return cfg, false, fmt.Errorf("%w: failed to read %s: %w", ErrInvalid, path, err)
	}

	parsed := DefaultConfig()
	if err := yaml.Unmarshal(data, parsed); err != nil {
		cfg.applyEnvOverrides()
		return cfg, false, fmt.Errorf("%w: failed to parse %s: %w", ErrInvalid, path, err)
	}

	// Override with environment variables
	parsed.applyEnvOverrides()

	if err := parsed.Validate(); err != nil {
		// Keep what is usable; Validate only reports.
		parsed.prune()
		return parsed, true, fmt.Errorf("%s: %w", path, err)
	}
	return parsed, true, nil
}

// Discover finds and loads the configuration for a repository. The
// HAIKOMMIT_CONFIG environment variable wins; otherwise .haikommitrc in
// repoRoot, then in home. A file that cannot be read or parsed is skipped
// and the next one is tried; its error is still returned alongside the
// configuration that was used. The returned path is "" for defaults.
func Discover(repoRoot, home string) (*Config, string, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		cfg, err := Load(path)
		return cfg, path, err
	}
	var errs []error
	for _, dir := range []string{repoRoot, home} {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, used, err := load(path)
		if used {
			return cfg, path, errors.Join(append(errs, err)...)
		}
		errs = append(errs, err)
	}
	cfg := DefaultConfig()
	cfg.applyEnvOverrides()
	return cfg, "", errors.Join(errs...)
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}
}

// ValidLevels lists the accepted logging levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	var problems []string
	for word, n := range c.Syllables {
		if n < 1 {
			problems = append(problems, fmt.Sprintf("syllables[%q] = %d, must be at least 1", word, n))
		}
	}
	if c.Keywords.PoolSize < 0 || c.Keywords.MaxContentLines < 0 || c.Keywords.MaxTokensPerLine < 0 {
		problems = append(problems, "keyword bounds must not be negative")
	}
	if c.Logging.Level != "" && !c.Logging.validLevel() {
		problems = append(problems, fmt.Sprintf("invalid logging level: %s (valid: %v)", c.Logging.Level, ValidLevels))
	}
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
}

// prune drops the settings Validate rejects.
func (c *Config) prune() {
	for word, n := range c.Syllables {
		if n < 1 {
			delete(c.Syllables, word)
		}
	}
	d := DefaultConfig()
	if c.Keywords.PoolSize < 0 {
		c.Keywords.PoolSize = d.Keywords.PoolSize
	}
	if c.Keywords.MaxContentLines < 0 {
		c.Keywords.MaxContentLines = d.Keywords.MaxContentLines
	}
	if c.Keywords.MaxTokensPerLine < 0 {
		c.Keywords.MaxTokensPerLine = d.Keywords.MaxTokensPerLine
	}
	if !c.Logging.validLevel() {
		c.Logging.Level = d.Logging.Level
	}
}
