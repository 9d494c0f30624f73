package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"haikommit/cmd/haikommit/ui"
	"haikommit/internal/git"
	"haikommit/internal/haiku"
	"haikommit/internal/types"
)

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

var (
	diffFromStdin bool
	genVariant    int
	genPretty     bool
	genJSON       bool
	genExplain    bool
	genCopy       bool
)

// generateCmd prints a haiku for the staged diff
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a haiku for the staged changes",
	Long: `Reads the staged diff (or a diff on stdin with --diff) and prints a
three-line 5-7-5 haiku describing it.

Examples:
  haikommit generate
  git diff HEAD~1 | haikommit generate --diff
  haikommit generate --variant 2 --pretty`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	addGenerateFlags(generateCmd)
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&diffFromStdin, "diff", false, "Read the diff from stdin instead of git")
	cmd.Flags().IntVar(&genVariant, "variant", 0, "Pick an alternative haiku for the same diff")
	cmd.Flags().BoolVar(&genPretty, "pretty", false, "Render the haiku in a styled card")
	cmd.Flags().BoolVar(&genJSON, "json", false, "Print the haiku and its analysis as JSON")
	cmd.Flags().BoolVar(&genExplain, "explain", false, "Print the intent and keywords to stderr")
	cmd.Flags().BoolVar(&genCopy, "copy", false, "Copy the haiku to the clipboard")
}

// runGenerate is the default command.
func runGenerate(cmd *cobra.Command, args []string) error {
	raw, err := readDiff(cmd)
	if err != nil {
		return err
	}
	if strings.TrimSpace(raw) == "" {
		return errNoChanges
	}

	res := newBuilder().Run(raw, genVariant)
	logWarnings(res)

	if genExplain {
		writeExplain(cmd.ErrOrStderr(), res)
	}
	if genCopy {
		if err := clipboardWriteAll(res.Haiku.String()); err != nil {
			logger.Warn("clipboard unavailable", zap.Error(err))
		}
	}
	return printResult(cmd.OutOrStdout(), res)
}

// readDiff returns stdin with --diff, otherwise the staged diff.
func readDiff(cmd *cobra.Command) (string, error) {
	if diffFromStdin {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read diff from stdin: %w", err)
		}
		return string(data), nil
	}

	ctx, cancel := gitContext()
	defer cancel()
	raw, err := git.StagedDiff(ctx, workDir())
	if err != nil {
		return "", fmt.Errorf("failed to read staged diff: %w", err)
	}
	return raw, nil
}

type jsonResult struct {
	Intent   string      `json:"intent"`
	Rule     string      `json:"rule"`
	Keywords []string    `json:"keywords"`
	Haiku    types.Haiku `json:"haiku"`
	Text     string      `json:"text"`
	Degraded bool        `json:"degraded,omitempty"`
}

func printResult(w io.Writer, res haiku.Result) error {
	switch {
	case genJSON:
		out := jsonResult{
			Intent:   res.Decision.Intent.String(),
			Rule:     string(res.Decision.Rule),
			Keywords: make([]string, 0, len(res.Pool)),
			Haiku:    res.Haiku,
			Text:     res.Haiku.String(),
			Degraded: res.Summary != nil && res.Summary.Degraded,
		}
		for _, kw := range res.Pool {
			out.Keywords = append(out.Keywords, kw.Text)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case genPretty:
		styles := ui.DefaultStyles()
		_, err := fmt.Fprintln(w, styles.RenderHaiku(res.Haiku, ui.RenderOptions{
			Intent: res.Decision.Intent.String(),
			Meter:  true,
		}))
		return err
	default:
		_, err := fmt.Fprintln(w, res.Haiku.String())
		return err
	}
}

// explainMarkdown describes how the pipeline arrived at the haiku.
func explainMarkdown(res haiku.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Intent: %s\n\n", res.Decision.Intent)
	fmt.Fprintf(&b, "Rule: %s", res.Decision.Rule)
	if res.Decision.Match != "" {
		fmt.Fprintf(&b, " (matched %q)", res.Decision.Match)
	}
	b.WriteString("\n\n")

	if res.Summary != nil {
		fmt.Fprintf(&b, "## Files\n\n%d changed, %d added, %d removed lines\n\n",
			len(res.Summary.Files), res.Summary.TotalAdded, res.Summary.TotalRemoved)
		for _, p := range res.Summary.Paths() {
			fmt.Fprintf(&b, "- `%s`\n", p)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Keywords\n\n")
	if len(res.Pool) == 0 {
		b.WriteString("none\n")
	}
	for _, kw := range res.Pool {
		fmt.Fprintf(&b, "- %s: %d syllables, weight %.2f, from %s\n", kw.Text, kw.Syllables, kw.Weight, kw.Source)
	}

	fmt.Fprintf(&b, "\n## Meter: %s\n", res.Haiku.Meter())
	for _, w := range res.Warnings {
		fmt.Fprintf(&b, "\n> %v\n", w)
	}
	return b.String()
}

func writeExplain(w io.Writer, res haiku.Result) {
	fmt.Fprint(w, ui.DefaultStyles().RenderMarkdown(explainMarkdown(res), 80))
}
