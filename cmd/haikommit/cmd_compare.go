package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"haikommit/internal/diff"
	"haikommit/internal/haiku"
)

var comparePath string

// compareCmd writes a haiku for the change between two files
var compareCmd = &cobra.Command{
	Use:   "compare <old-file> <new-file>",
	Short: "Print a haiku for the change between two files",
	Long: `Diffs two files directly, without git, and prints a haiku for the
change. The new file's path is used for keywords unless --path is given.

Examples:
  haikommit compare main.go.orig main.go
  haikommit compare old.txt new.txt --path internal/cache/lru.go`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&comparePath, "path", "", "Path to report for the changed file")
	compareCmd.Flags().IntVar(&genVariant, "variant", 0, "Pick an alternative haiku for the same change")
	compareCmd.Flags().BoolVar(&genPretty, "pretty", false, "Render the haiku in a styled card")
	compareCmd.Flags().BoolVar(&genJSON, "json", false, "Print the haiku and its analysis as JSON")
}

func runCompare(cmd *cobra.Command, args []string) error {
	oldContent, err := os.ReadFile(args[0])
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	newContent, err := os.ReadFile(args[1])
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read %s: %w", args[1], err)
	}
	if oldContent == nil && newContent == nil {
		return fmt.Errorf("neither %s nor %s exists", args[0], args[1])
	}

	path := comparePath
	if path == "" {
		path = args[1]
	}

	change := diff.NewEngine().Compare(path, string(oldContent), string(newContent))
	s := diff.Summarize(change)
	if s.TotalAdded == 0 && s.TotalRemoved == 0 {
		return errNoChanges
	}

	seed := haiku.Seed(string(oldContent)+"\x00"+string(newContent), genVariant)
	res := newBuilder().RunSummary(s, seed, genVariant)
	logWarnings(res)
	return printResult(cmd.OutOrStdout(), res)
}
