package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"haikommit/internal/git"
	"haikommit/internal/hook"
)

var hookForce bool

// hookCmd groups the git hook subcommands
var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Manage the prepare-commit-msg hook",
	Long: `Installs a prepare-commit-msg hook that writes a haiku at the top of
every commit message. The hook never blocks a commit.`,
}

var hookInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the hook in the current repository",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := hooksDir()
		if err != nil {
			return err
		}
		binary, err := os.Executable()
		if err != nil {
			return fmt.Errorf("failed to locate haikommit binary: %w", err)
		}
		if resolved, err := filepath.EvalSymlinks(binary); err == nil {
			binary = resolved
		}

		path, err := hook.Install(dir, binary, hookForce)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Installed %s\n", path)
		return nil
	},
}

var hookUninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the hook from the current repository",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := hooksDir()
		if err != nil {
			return err
		}
		if err := hook.Uninstall(dir); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", hook.Path(dir))
		return nil
	},
}

// hookRunCmd is what the installed script calls. It always exits zero.
var hookRunCmd = &cobra.Command{
	Use:    "run <message-file> [source] [sha]",
	Short:  "Prepend a haiku to a commit message file",
	Args:   cobra.RangeArgs(1, 3),
	Hidden: true,
	RunE:   runHook,
}

func init() {
	hookInstallCmd.Flags().BoolVarP(&hookForce, "force", "f", false, "Replace an existing hook (kept as .bak)")

	hookCmd.AddCommand(hookInstallCmd)
	hookCmd.AddCommand(hookUninstallCmd)
	hookCmd.AddCommand(hookRunCmd)
}

func hooksDir() (string, error) {
	ctx, cancel := gitContext()
	defer cancel()
	dir, err := git.HooksDir(ctx, workDir())
	if err != nil {
		return "", fmt.Errorf("failed to locate hooks directory: %w", err)
	}
	return dir, nil
}

func runHook(cmd *cobra.Command, args []string) error {
	msgFile := args[0]
	source := ""
	if len(args) > 1 {
		source = args[1]
	}
	if hook.ShouldSkip(source) {
		logger.Debug("hook skipped", zap.String("source", source))
		return nil
	}

	ctx, cancel := gitContext()
	defer cancel()
	raw, err := git.StagedDiff(ctx, workDir())
	if err != nil {
		logger.Warn("hook could not read staged diff", zap.Error(err))
		return nil
	}
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	res := newBuilder().Run(raw, 0)
	logWarnings(res)

	if err := hook.PrependMessage(msgFile, res.Haiku.String()); err != nil {
		logger.Warn("hook could not write commit message", zap.Error(err))
	}
	return nil
}
