// Package cli: the solve subcommand.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridlock/solver"
)

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	*RootOptions
	Name          string
	All           int
	TimeLimit     time.Duration
	CheckInterval int
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "solve [catalog.yaml]",
		Short: "Solve one puzzle and print every solution found",
		Long: `Solve constructs the named puzzle and searches for solutions.

Easy puzzles resolve during construction by propagation alone; harder ones
go through breadth-first search, printing each completed grid as it is
found. Interrupting with Ctrl-C cancels the search cleanly.

Example:
  gridlock solve --name hard-9x9
  gridlock solve puzzles.yaml --name tricky --all 0 --time-limit 30s`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "puzzle name within the catalog")
	cmd.Flags().IntVar(&opts.All, "all", 1, "how many solutions to search for (0 = every solution)")
	cmd.Flags().DurationVar(&opts.TimeLimit, "time-limit", 0, "per-solution search budget (0 = none)")
	cmd.Flags().IntVar(&opts.CheckInterval, "check-interval", solver.DefaultCheckInterval,
		"moves between budget and cancellation checks")

	return cmd
}

func runSolve(opts *SolveOptions, args []string, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	log := opts.logger()

	puzzles, err := loadPuzzles(args)
	if err != nil {
		return err
	}
	p, err := pickPuzzle(puzzles, opts.Name)
	if err != nil {
		return err
	}

	log.Debug("constructing grid", slog.String("puzzle", p.Name))
	g, err := p.Grid()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s: %d×%d, %d cells unresolved after propagation\n",
		p.Name, g.Size(), g.Size(), g.Unresolved())
	if g.Solved() {
		fmt.Fprintln(out, "resolved by propagation, no search needed")
		fmt.Fprint(out, g)

		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sopts := []solver.Option{
		solver.WithContext(ctx),
		solver.WithMaxSolutions(opts.All),
		solver.WithCheckInterval(opts.CheckInterval),
	}
	if opts.TimeLimit > 0 {
		sopts = append(sopts, solver.WithTimeLimit(opts.TimeLimit))
	}
	if opts.Verbose {
		sopts = append(sopts, solver.WithLogger(log))
	}

	s, err := solver.New(g, sopts...)
	if err != nil {
		return err
	}

	found := 0
	for trail, err := range s.Solutions() {
		if err != nil {
			return err
		}
		found++
		end := g
		for _, m := range trail {
			if end, err = end.CopyAndMove(m); err != nil {
				return fmt.Errorf("replaying solution %d: %w", found, err)
			}
		}
		fmt.Fprintf(out, "solution %d (%d moves):\n", found, len(trail))
		fmt.Fprint(out, end)
	}

	st := s.Stats()
	fmt.Fprintf(out, "%d solutions in %s: %d states expanded, %d moves tried, peak frontier %d\n",
		st.Solutions, st.Elapsed.Round(time.Microsecond), st.Iterations, st.Moves, st.MaxQueue)
	if s.Exhausted() {
		fmt.Fprintln(out, "search space exhausted")
	}
	if found == 0 {
		return solver.ErrNoSolution
	}

	return nil
}
