package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"haikommit/internal/config"
	"haikommit/internal/git"
	"haikommit/internal/haiku"
	"haikommit/internal/logging"
)

var (
	// Global flags
	verbose   bool
	workspace string
	timeout   time.Duration

	// Logger
	logger *zap.Logger

	// Loaded once per invocation in PersistentPreRunE
	cfg        *config.Config
	configPath string
)

// errNoChanges mirrors git's own wording when nothing is staged.
var errNoChanges = errors.New("no changes staged")

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "haikommit",
	Short: "Write commit messages as 5-7-5 haiku",
	Long: `haikommit reads the staged diff, decides what kind of change it is,
picks keywords from the changed files and writes a three-line haiku
you can use as the commit message.

Run without arguments to print a haiku for the staged changes.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Repository directory (default: current)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Timeout for git operations")

	addGenerateFlags(rootCmd)

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(hookCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(commitCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the configuration and builds the logger.
func setup() error {
	root := repoRoot()
	home, _ := os.UserHomeDir()

	var cfgErr error
	cfg, configPath, cfgErr = config.Discover(root, home)

	// Initialize logger
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(logging.ParseLevel(cfg.Logging.EffectiveLevel()))
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	var err error
	logger, err = zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logging.Initialize(logger, logging.Options{Categories: cfg.Logging.Categories})

	if cfgErr != nil {
		logger.Warn("configuration partly ignored", zap.String("using", configPath), zap.Error(cfgErr))
	}
	logging.BootDebug("config=%q repo=%q", configPath, root)
	return nil
}

// workDir returns the directory commands operate in.
func workDir() string {
	if workspace != "" {
		return workspace
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}

// gitContext bounds a git subprocess by --timeout.
func gitContext() (context.Context, context.CancelFunc) {
	d := timeout
	if d <= 0 {
		d = 30 * time.Second
	}
	return context.WithTimeout(context.Background(), d)
}

// repoRoot returns the repository top level, or workDir outside a repository.
func repoRoot() string {
	ctx, cancel := gitContext()
	defer cancel()
	if root, err := git.RepoRoot(ctx, workDir()); err == nil {
		return root
	}
	return workDir()
}

// loadedConfig returns the configuration setup found, or the defaults.
func loadedConfig() *config.Config {
	if cfg == nil {
		return config.DefaultConfig()
	}
	return cfg
}

func newBuilder() *haiku.Builder {
	return haiku.NewBuilder(loadedConfig())
}

// logWarnings reports the recoverable conditions of one pipeline run.
func logWarnings(res haiku.Result) {
	if logger == nil {
		return
	}
	for _, w := range res.Warnings {
		switch {
		case errors.Is(w, haiku.ErrDiffParseDegraded):
			logger.Warn("diff partly unreadable", zap.Error(w))
		default:
			logger.Debug("pipeline note", zap.Error(w))
		}
	}
}
