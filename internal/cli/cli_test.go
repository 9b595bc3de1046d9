package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridlock/catalog"
	"github.com/katalvlaran/gridlock/solver"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "gridlock", cmd.Use)

	for _, name := range []string{"solve", "bench"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return buf.String(), err
}

func TestSolve_PropagationOnly(t *testing.T) {
	out, err := execute(t, "solve", "--name", "easy-9x9-a")
	require.NoError(t, err)
	assert.Contains(t, out, "resolved by propagation")
	assert.Contains(t, out, " 5  4  1  3  7  2  8  9  6 ")
}

func TestSolve_Search(t *testing.T) {
	out, err := execute(t, "solve", "--name", "hard-9x9")
	require.NoError(t, err)
	assert.Contains(t, out, "60 cells unresolved")
	assert.Contains(t, out, "solution 1 (2 moves):")
	assert.Contains(t, out, "1 solutions in")
}

func TestSolve_Unsolvable(t *testing.T) {
	out, err := execute(t, "solve", "--name", "diagonal-2x2")
	require.ErrorIs(t, err, solver.ErrNoSolution)
	assert.Contains(t, out, "search space exhausted")
}

func TestSolve_UnknownName(t *testing.T) {
	_, err := execute(t, "solve", "--name", "no-such-puzzle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available:")
}

func TestSolve_CatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
puzzles:
  - name: mini
    size: 2
    regions:
      - "AA"
      - "BB"
    givens:
      - "1."
      - ".."
`), 0o644))

	// a single-entry catalog needs no --name
	out, err := execute(t, "solve", path)
	require.NoError(t, err)
	assert.Contains(t, out, "mini: 2×2")
	assert.Contains(t, out, "resolved by propagation")
}

func TestBench_Builtin(t *testing.T) {
	out, err := execute(t, "bench")
	require.NoError(t, err)

	assert.Contains(t, out, "easy-9x9-a")
	assert.Contains(t, out, "resolved by propagation")
	assert.Contains(t, out, "hard-9x9")
	assert.Contains(t, out, "2-move solution")
	assert.Contains(t, out, "diagonal-2x2")
	assert.Contains(t, out, "no solution")
}

func TestPickPuzzle(t *testing.T) {
	puzzles := catalog.Builtin()

	_, err := pickPuzzle(puzzles, "")
	require.Error(t, err)

	p, err := pickPuzzle(puzzles, "dozen-12x12")
	require.NoError(t, err)
	assert.Equal(t, 12, p.BoxRows*p.BoxCols)

	only := puzzles[:1]
	p, err = pickPuzzle(only, "")
	require.NoError(t, err)
	assert.Equal(t, puzzles[0].Name, p.Name)
}
