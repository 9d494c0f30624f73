package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"haikommit/cmd/haikommit/ui"
	"haikommit/internal/syllable"
)

// countCmd shows how haikommit counts syllables
var countCmd = &cobra.Command{
	Use:   "count <text>...",
	Short: "Show syllable counts and where each came from",
	Long: `Counts the syllables of every word in the arguments. Each word is
labelled with the source of its count: override (from .haikommitrc),
dictionary or heuristic.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCount,
}

func runCount(cmd *cobra.Command, args []string) error {
	counter := syllable.New(loadedConfig().Syllables)
	styles := ui.DefaultStyles()
	out := cmd.OutOrStdout()

	words := syllable.Words(strings.Join(args, " "))
	if len(words) == 0 {
		return fmt.Errorf("no words in %q", strings.Join(args, " "))
	}

	total := 0
	for _, w := range words {
		n, tier := counter.Lookup(w)
		total += n
		fmt.Fprintln(out, styles.RenderCount(w, n, tier.String()))
	}
	if len(words) > 1 {
		fmt.Fprintln(out, styles.Muted.Render(fmt.Sprintf("total %d", total)))
	}
	return nil
}
