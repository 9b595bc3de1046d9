// Package cli implements the gridlock command line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridlock/catalog"
)

// RootOptions holds global flags shared by every subcommand.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand builds the gridlock root command with all subcommands
// attached.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "gridlock",
		Short: "Solver for Sudoku-family placement puzzles",
		Long: `gridlock solves Sudoku-family placement puzzles by constraint
propagation backed by breadth-first search.

Puzzles come from the builtin catalog or from a YAML catalog file:

  gridlock solve --name hard-9x9
  gridlock solve puzzles.yaml --name tricky --all 0
  gridlock bench
  gridlock bench puzzles.yaml`,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false,
		"verbose logging, including search progress")

	cmd.AddCommand(NewSolveCommand(opts))
	cmd.AddCommand(NewBenchCommand(opts))

	return cmd
}

// logger builds the stderr logger honoring the verbose flag.
func (o *RootOptions) logger() *slog.Logger {
	level := slog.LevelInfo
	if o.Verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadPuzzles returns the catalog named by args, or the builtin set.
func loadPuzzles(args []string) ([]catalog.Puzzle, error) {
	if len(args) == 0 {
		return catalog.Builtin(), nil
	}

	return catalog.LoadFile(args[0])
}

// pickPuzzle selects one puzzle by name; with no name a single-entry
// catalog selects itself.
func pickPuzzle(puzzles []catalog.Puzzle, name string) (catalog.Puzzle, error) {
	if name == "" {
		if len(puzzles) == 1 {
			return puzzles[0], nil
		}

		return catalog.Puzzle{}, fmt.Errorf("--name is required; available: %s", puzzleNames(puzzles))
	}
	for _, p := range puzzles {
		if p.Name == name {
			return p, nil
		}
	}

	return catalog.Puzzle{}, fmt.Errorf("unknown puzzle %q; available: %s", name, puzzleNames(puzzles))
}

func puzzleNames(puzzles []catalog.Puzzle) string {
	names := make([]string, len(puzzles))
	for i, p := range puzzles {
		names[i] = p.Name
	}

	return strings.Join(names, ", ")
}
