package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/gridgraph"
	"github.com/katalvlaran/hillclimb/pathfinder"
)

// Run reads the heightmap named by cfg.Input (stdin for "-" or ""), answers
// every configured mode and renders the answers to out.
// Modes are searched concurrently against the same read-only grid.
func Run(ctx context.Context, cfg *Config, stdin io.Reader, out io.Writer, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	modes, err := cfg.Modes()
	if err != nil {
		return err
	}

	gg, err := readGrid(cfg.Input, stdin)
	if err != nil {
		return err
	}
	logger.Debug("heightmap loaded",
		zap.String("input", cfg.Input),
		zap.Int("rows", gg.Rows()),
		zap.Int("cols", gg.Cols()),
		zap.Stringer("start", gg.Start()),
		zap.Stringer("end", gg.End()),
	)

	timer := time.Now()
	answers, err := solve(ctx, gg, modes, cfg.MaxSteps, logger)
	if err != nil {
		return err
	}

	if err := render(out, answers, cfg.Output); err != nil {
		return fmt.Errorf("failed to write answers: %w", err)
	}
	if cfg.Time {
		if _, err := fmt.Fprintf(out, "Total Runtime: %v\n", time.Since(timer)); err != nil {
			return fmt.Errorf("failed to write runtime: %w", err)
		}
	}
	return nil
}

// solve runs one search per mode in its own goroutine. Each search owns its
// queue and ledger; the grid is shared read-only.
// maxSteps > 0 caps the search depth.
func solve(ctx context.Context, gg *gridgraph.GridGraph, modes []pathfinder.Mode, maxSteps int, logger *zap.Logger) ([]pathfinder.Answer, error) {
	answers := make([]pathfinder.Answer, len(modes))
	eg, egctx := errgroup.WithContext(ctx)
	for i, m := range modes {
		i, m := i, m // per-iteration copies (go directive is 1.21)
		eg.Go(func() error {
			// queue length, tracked through the hooks
			var frontier, peak int
			ans, err := pathfinder.SolveMode(gg, m,
				bfs.WithContext[gridgraph.Coord](egctx),
				bfs.WithMaxDepth[gridgraph.Coord](maxSteps),
				bfs.WithOnEnqueue(func(gridgraph.Coord, int) {
					frontier++
					peak = max(peak, frontier)
				}),
				bfs.WithOnDequeue(func(gridgraph.Coord, int) { frontier-- }),
			)
			if err != nil {
				logger.Error("search failed", zap.Stringer("mode", m), zap.Error(err))
				return err
			}
			logger.Debug("search finished",
				zap.Stringer("mode", m),
				zap.Int("origins", ans.Origins),
				zap.Int("distance", ans.Distance),
				zap.Int("visited", ans.Visited),
				zap.Int("stale", ans.Stale),
				zap.Int("peak_frontier", peak),
			)
			answers[i] = ans
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return answers, nil
}

// readGrid parses the heightmap from path, or from stdin for "-" and "".
func readGrid(path string, stdin io.Reader) (*gridgraph.GridGraph, error) {
	if path == "" || path == StdinInput {
		gg, err := gridgraph.Read(stdin)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return gg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	gg, err := gridgraph.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return gg, nil
}
