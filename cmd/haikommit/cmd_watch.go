package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"haikommit/cmd/haikommit/ui"
	"haikommit/internal/diff"
	"haikommit/internal/git"
	"haikommit/internal/watch"
)

var watchDebounce time.Duration

// watchCmd reprints the haiku as the staging area changes
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print a new haiku whenever the staged changes change",
	Long: `Watches the git index and prints the haiku for the staged diff each
time it changes. Stop with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "Quiet time before the index is re-read")
	watchCmd.Flags().BoolVar(&genPretty, "pretty", false, "Render each haiku in a styled card")
}

// stagedPrinter prints a haiku for each distinct staged diff it is given.
type stagedPrinter struct {
	out   io.Writer
	last  uint64
	shown bool
}

// show prints raw's haiku unless raw is the diff shown last. It reports
// whether anything was printed.
func (p *stagedPrinter) show(raw string) (bool, error) {
	h := diff.Hash(raw)
	if p.shown && h == p.last {
		return false, nil
	}
	p.last, p.shown = h, true

	if strings.TrimSpace(raw) == "" {
		_, err := fmt.Fprintln(p.out, ui.DefaultStyles().Muted.Render("(nothing staged)"))
		return true, err
	}

	res := newBuilder().Run(raw, 0)
	logWarnings(res)
	if err := printResult(p.out, res); err != nil {
		return true, err
	}
	_, err := fmt.Fprintln(p.out)
	return true, err
}

func (p *stagedPrinter) refresh() error {
	ctx, cancel := gitContext()
	defer cancel()
	raw, err := git.StagedDiff(ctx, workDir())
	if err != nil {
		logger.Warn("could not read staged diff", zap.Error(err))
		return nil
	}
	_, err = p.show(raw)
	return err
}

func runWatch(cmd *cobra.Command, args []string) error {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ictx, cancel := gitContext()
	index, err := git.IndexPath(ictx, workDir())
	cancel()
	if err != nil {
		return fmt.Errorf("failed to locate git index: %w", err)
	}

	w, err := watch.New([]string{index}, watchDebounce)
	if err != nil {
		return err
	}
	defer w.Close()

	printer := &stagedPrinter{out: cmd.OutOrStdout()}
	if err := printer.refresh(); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return w.Run(gctx)
	})
	g.Go(func() error {
		for range w.Changes() {
			if err := printer.refresh(); err != nil {
				return err
			}
		}
		return nil
	})
	return g.Wait()
}
