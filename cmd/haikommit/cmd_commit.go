package main

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"haikommit/internal/git"
)

var commitYes bool

// errCommitCancelled is returned when the preview is dismissed.
var errCommitCancelled = errors.New("commit cancelled")

// commitCmd previews a haiku and commits with it
var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Preview a haiku and commit the staged changes with it",
	Long: `Shows the haiku for the staged changes and asks for confirmation.
Press r for another haiku, c to copy it, y to commit or n to cancel.`,
	Args: cobra.NoArgs,
	RunE: runCommit,
}

func init() {
	commitCmd.Flags().BoolVarP(&commitYes, "yes", "y", false, "Commit without the preview")
	commitCmd.Flags().IntVar(&genVariant, "variant", 0, "Start from an alternative haiku")
}

func runCommit(cmd *cobra.Command, args []string) error {
	ctx, cancel := gitContext()
	defer cancel()

	raw, err := git.StagedDiff(ctx, workDir())
	if err != nil {
		return fmt.Errorf("failed to read staged diff: %w", err)
	}
	if strings.TrimSpace(raw) == "" {
		return errNoChanges
	}

	b := newBuilder()
	message := ""
	if commitYes {
		res := b.Run(raw, genVariant)
		logWarnings(res)
		message = res.Haiku.String()
	} else {
		p := tea.NewProgram(newCommitModel(b, raw, genVariant),
			tea.WithInput(cmd.InOrStdin()),
			tea.WithOutput(cmd.OutOrStdout()))
		final, err := p.Run()
		if err != nil {
			return fmt.Errorf("preview failed: %w", err)
		}
		m, ok := final.(commitModel)
		if !ok || m.choice != choiceAccept {
			return errCommitCancelled
		}
		logWarnings(m.result)
		message = m.result.Haiku.String()
	}

	// Fresh deadline; the preview has no time limit.
	commitCtx, commitCancel := gitContext()
	defer commitCancel()
	if err := git.Commit(commitCtx, workDir(), message); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), message)
	return nil
}
