// Package cli: the bench subcommand.
package cli

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridlock/catalog"
	"github.com/katalvlaran/gridlock/grid"
	"github.com/katalvlaran/gridlock/solver"
)

// defaultRepeats is used for puzzles that do not set their own count.
const defaultRepeats = 3

// BenchOptions holds flags for the bench command.
type BenchOptions struct {
	*RootOptions
	TimeLimit time.Duration
}

// NewBenchCommand creates the bench command.
func NewBenchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BenchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "bench [catalog.yaml]",
		Short: "Time every puzzle in a catalog and verify known solutions",
		Long: `Bench constructs and solves every puzzle in the catalog.

Each case runs its configured number of repeats, keeps the fastest run,
replays the winning move trail onto a fresh grid, and checks the result
against the recorded solution when the catalog carries one.

Example:
  gridlock bench
  gridlock bench puzzles.yaml --time-limit 1m`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(opts, args, cmd)
		},
	}

	cmd.Flags().DurationVar(&opts.TimeLimit, "time-limit", 0, "per-solution search budget (0 = none)")

	return cmd
}

func runBench(opts *BenchOptions, args []string, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	puzzles, err := loadPuzzles(args)
	if err != nil {
		return err
	}

	failures := 0
	for _, p := range puzzles {
		if err := benchCase(out, opts, p); err != nil {
			failures++
			fmt.Fprintf(out, "%-14s FAIL: %v\n", p.Name, err)
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d cases failed", failures, len(puzzles))
	}

	return nil
}

// benchCase times one puzzle and verifies its outcome.
func benchCase(out io.Writer, opts *BenchOptions, p catalog.Puzzle) error {
	repeats := p.Repeats
	if repeats < 1 {
		repeats = defaultRepeats
	}

	start := time.Now()
	g, err := p.Grid()
	built := time.Since(start)
	if err != nil {
		return err
	}
	if g.Solved() {
		if ref := p.Reference(); ref != nil && !slices.Equal(g.Rows(), ref) {
			return errors.New("propagation result differs from the recorded solution")
		}
		fmt.Fprintf(out, "%-14s resolved by propagation in %s\n",
			p.Name, built.Round(time.Microsecond))

		return nil
	}

	var (
		fastest time.Duration
		trail   []grid.Move
		stats   solver.Stats
	)
	for i := 0; i < repeats; i++ {
		var sopts []solver.Option
		if opts.TimeLimit > 0 {
			sopts = append(sopts, solver.WithTimeLimit(opts.TimeLimit))
		}
		s, err := solver.New(g, sopts...)
		if err != nil {
			return err
		}

		t, err := s.First()
		if errors.Is(err, solver.ErrNoSolution) {
			if p.Reference() != nil {
				return errors.New("no solution found for a puzzle with a recorded solution")
			}
			st := s.Stats()
			fmt.Fprintf(out, "%-14s no solution: %d states, %d moves, exhausted=%t\n",
				p.Name, st.Iterations, st.Moves, s.Exhausted())

			return nil
		}
		if err != nil {
			return err
		}
		if run := s.Stats().Elapsed; fastest == 0 || run < fastest {
			fastest = run
			trail = t
			stats = s.Stats()
		}
	}

	// replay the winning trail in place and verify the outcome
	end := g.Clone()
	for _, m := range trail {
		if err := end.Apply(m); err != nil {
			return fmt.Errorf("replaying %s: %w", m, err)
		}
	}
	if !end.Solved() {
		return errors.New("replayed trail leaves the grid unsolved")
	}
	if ref := p.Reference(); ref != nil && !slices.Equal(end.Rows(), ref) {
		return errors.New("solution differs from the recorded one")
	}

	perMove := float64(fastest.Microseconds()) / 1000 / float64(stats.Moves)
	fmt.Fprintf(out, "%-14s %d-move solution, fastest %s (%.4f ms/move, %d moves, %d states)\n",
		p.Name, len(trail), fastest.Round(time.Microsecond), perMove, stats.Moves, stats.Iterations)

	return nil
}
