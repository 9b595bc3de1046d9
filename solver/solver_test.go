package solver_test

import (
	"bytes"
	"context"
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridlock/geometry"
	"github.com/katalvlaran/gridlock/grid"
	"github.com/katalvlaran/gridlock/solver"
)

// The grid package must satisfy the search contract.
var _ solver.State[*grid.Grid, grid.Move] = (*grid.Grid)(nil)

// ---------------------------------------------------------------------------
// A second State implementation: Tower of Hanoi. Three pegs, n disks, move
// the whole stack to the last peg. Keeps the engine honest about being
// puzzle-agnostic, and its known optimum (2^n - 1 moves) pins the
// breadth-first shortest-solution guarantee.
// ---------------------------------------------------------------------------

type pegMove struct{ from, to int }

type hanoi struct{ pegs [3][]int }

func newHanoi(disks int) hanoi {
	var h hanoi
	for d := disks; d >= 1; d-- {
		h.pegs[0] = append(h.pegs[0], d)
	}

	return h
}

func (h hanoi) LegalMoves() iter.Seq[pegMove] {
	return func(yield func(pegMove) bool) {
		for from := range h.pegs {
			n := len(h.pegs[from])
			if n == 0 {
				continue
			}
			disk := h.pegs[from][n-1]
			for to := range h.pegs {
				if to == from {
					continue
				}
				if k := len(h.pegs[to]); k > 0 && h.pegs[to][k-1] < disk {
					continue
				}
				if !yield(pegMove{from: from, to: to}) {
					return
				}
			}
		}
	}
}

func (h hanoi) CopyAndMove(m pegMove) (hanoi, error) {
	var out hanoi
	for i := range h.pegs {
		out.pegs[i] = slices.Clone(h.pegs[i])
	}
	n := len(out.pegs[m.from])
	if n == 0 {
		return hanoi{}, fmt.Errorf("peg %d is empty", m.from)
	}
	disk := out.pegs[m.from][n-1]
	if k := len(out.pegs[m.to]); k > 0 && out.pegs[m.to][k-1] < disk {
		return hanoi{}, fmt.Errorf("disk %d cannot rest on a smaller disk", disk)
	}
	out.pegs[m.from] = out.pegs[m.from][:n-1]
	out.pegs[m.to] = append(out.pegs[m.to], disk)

	return out, nil
}

func (h hanoi) Fingerprint() string { return fmt.Sprintf("%v", h.pegs) }

func (h hanoi) Solved() bool {
	return len(h.pegs[0]) == 0 && len(h.pegs[1]) == 0
}

// ---------------------------------------------------------------------------
// Shared puzzle fixtures.
// ---------------------------------------------------------------------------

// hard9 resists propagation: construction leaves 60 open cells, so solving
// it exercises genuine search.
var hard9 = []string{
	"..9...2..",
	".8.5...1.",
	"7.......6",
	"..6.9....",
	".5.8..3..",
	"4....7...",
	".....4..9",
	".3..1..8.",
	"...2..5..",
}

var hard9Solution = []string{
	"319468275",
	"682573914",
	"745921836",
	"876392451",
	"251846397",
	"493157628",
	"528734169",
	"934615782",
	"167289543",
}

// minimal17 construction-solves through the full strategy pipeline; the
// engine sees an already-terminal start.
var minimal17 = []string{
	".......1.",
	"4........",
	".2.......",
	"....5.4.7",
	"..8...3..",
	"..1.9....",
	"3..4..2..",
	".5.1.....",
	"...8.6...",
}

var minimal17Solution = []string{
	"693784512",
	"487512936",
	"125963874",
	"932651487",
	"568247391",
	"741398625",
	"319475268",
	"856129743",
	"274836159",
}

var twelveByTwelve = []string{
	"..1.6.2.A7..",
	"62.5B...1...",
	".8....C3B.62",
	"A97.2.6..B5.",
	".5.......37C",
	"3B.....7...9",
	"57B.4......1",
	"8......A.9..",
	".4..97...6..",
	".1C........B",
	"4......2.C..",
	"....5C..7126",
}

var twelveByTwelveSolution = []string{
	"C31B6425A798",
	"62A5B97814C3",
	"7894A1C3B562",
	"A97C23618B54",
	"15468BA9237C",
	"3B28C5476A19",
	"57B9468C32A1",
	"8C61325A49B7",
	"243A971BC685",
	"91C27A36584B",
	"465718B29C3A",
	"BA835C947126",
}

func mustGrid(t *testing.T, opts ...grid.Option) *grid.Grid {
	t.Helper()
	g, err := grid.New(opts...)
	require.NoError(t, err)

	return g
}

// replay drives a fresh copy of g through trail and returns the end state.
func replay(t *testing.T, g *grid.Grid, trail []grid.Move) *grid.Grid {
	t.Helper()
	cur := g
	for _, m := range trail {
		next, err := cur.CopyAndMove(m)
		require.NoError(t, err)
		cur = next
	}

	return cur
}

// diagonal2x2 builds the 2×2 grid whose diagonal regions admit no solution.
func diagonal2x2(t *testing.T) *grid.Grid {
	t.Helper()

	return mustGrid(t, grid.WithSize(2), grid.WithRegions([]geometry.Group{
		{{Row: 0, Col: 0}, {Row: 1, Col: 1}},
		{{Row: 0, Col: 1}, {Row: 1, Col: 0}},
	}))
}

// latin2x2 builds an empty 2×2 grid with row-shaped regions; it has exactly
// two completions.
func latin2x2(t *testing.T) *grid.Grid {
	t.Helper()

	return mustGrid(t, grid.WithSize(2), grid.WithRegions([]geometry.Group{
		{{Row: 0, Col: 0}, {Row: 0, Col: 1}},
		{{Row: 1, Col: 0}, {Row: 1, Col: 1}},
	}))
}

// ---------------------------------------------------------------------------
// Engine behavior.
// ---------------------------------------------------------------------------

func TestSolver_HanoiShortestSolution(t *testing.T) {
	for disks, want := range map[int]int{2: 3, 3: 7} {
		s, err := solver.New(newHanoi(disks))
		require.NoError(t, err)

		trail, err := s.First()
		require.NoError(t, err)
		require.Len(t, trail, want)

		cur := newHanoi(disks)
		for _, m := range trail {
			cur, err = cur.CopyAndMove(m)
			require.NoError(t, err)
		}
		require.True(t, cur.Solved())
	}
}

func TestSolver_HanoiExhaustFindsUniqueTerminal(t *testing.T) {
	// every trail funnels into the same end state, so dedup leaves one
	s, err := solver.New(newHanoi(2), solver.WithMaxSolutions(0))
	require.NoError(t, err)

	sols, err := s.Solve()
	require.NoError(t, err)
	require.Len(t, sols, 1)
	require.Len(t, sols[0], 3)
	require.True(t, s.Exhausted())
}

func TestSolver_HardNineByNine(t *testing.T) {
	g := mustGrid(t, grid.WithGivens(hard9...))
	require.Equal(t, 60, g.Unresolved())

	s, err := solver.New(g, solver.WithTimeLimit(time.Minute))
	require.NoError(t, err)

	trail, err := s.First()
	require.NoError(t, err)
	require.Len(t, trail, 2)

	end := replay(t, g, trail)
	require.True(t, end.Solved())
	require.Equal(t, hard9Solution, end.Rows())

	// the search is deterministic, so its effort is pinned exactly
	st := s.Stats()
	require.Equal(t, 43, st.Iterations)
	require.Equal(t, 7639, st.Moves)
	require.Equal(t, 5944, st.MaxQueue)
	require.Equal(t, 1, st.Solutions)
	require.Greater(t, st.Elapsed, time.Duration(0))
	require.False(t, s.Exhausted())
}

func TestSolver_TwelveByTwelve(t *testing.T) {
	g := mustGrid(t,
		grid.WithSize(12),
		grid.WithRegions(geometry.Boxes(3, 4)),
		grid.WithGivens(twelveByTwelve...),
	)
	require.Equal(t, 75, g.Unresolved())

	s, err := solver.New(g, solver.WithTimeLimit(time.Minute))
	require.NoError(t, err)

	trail, err := s.First()
	require.NoError(t, err)
	require.Len(t, trail, 1)
	require.Equal(t, twelveByTwelveSolution, replay(t, g, trail).Rows())

	st := s.Stats()
	require.Equal(t, 1, st.Iterations)
	require.Equal(t, 32, st.Moves)
	require.Equal(t, 26, st.MaxQueue)
}

func TestSolver_AlreadySolvedStart(t *testing.T) {
	// seventeen givens, yet propagation finishes the grid at construction;
	// the engine yields the empty trail as the one shortest solution
	g := mustGrid(t, grid.WithGivens(minimal17...))
	require.True(t, g.Solved())
	require.Equal(t, minimal17Solution, g.Rows())

	s, err := solver.New(g, solver.WithTimeLimit(time.Minute))
	require.NoError(t, err)

	sols, err := s.Solve()
	require.NoError(t, err)
	require.Len(t, sols, 1)
	require.Empty(t, sols[0])

	st := s.Stats()
	require.Equal(t, 1, st.Solutions)
	require.Equal(t, 0, st.Iterations)
	require.Equal(t, 0, st.Moves)
	require.False(t, s.Exhausted())
}

func TestSolver_AlreadySolvedStartExhaust(t *testing.T) {
	g := mustGrid(t, grid.WithGivens(minimal17...))

	s, err := solver.New(g, solver.WithMaxSolutions(0))
	require.NoError(t, err)

	sols, err := s.Solve()
	require.NoError(t, err)
	require.Len(t, sols, 1)
	require.True(t, s.Exhausted())
	require.Equal(t, 1, s.Stats().Iterations) // the solved root still dequeues
}

func TestSolver_UnsolvableExhaustsCleanly(t *testing.T) {
	s, err := solver.New(diagonal2x2(t), solver.WithTimeLimit(time.Minute))
	require.NoError(t, err)

	trail, err := s.First()
	require.Nil(t, trail)
	require.ErrorIs(t, err, solver.ErrNoSolution)
	require.NotErrorIs(t, err, solver.ErrTimeLimit)
	require.True(t, s.Exhausted())

	st := s.Stats()
	require.Equal(t, 1, st.Iterations)
	require.Equal(t, 0, st.Moves)
	require.Equal(t, 0, st.MaxQueue)
	require.Equal(t, 0, st.Solutions)
}

func TestSolver_ExhaustEnumeratesAllCompletions(t *testing.T) {
	g := latin2x2(t)

	s, err := solver.New(g, solver.WithMaxSolutions(0))
	require.NoError(t, err)

	sols, err := s.Solve()
	require.NoError(t, err)
	require.Len(t, sols, 2)
	require.Len(t, sols[0], 1)
	require.Len(t, sols[1], 1)
	require.Equal(t, []string{"12", "21"}, replay(t, g, sols[0]).Rows())
	require.Equal(t, []string{"21", "12"}, replay(t, g, sols[1]).Rows())
	require.True(t, s.Exhausted())

	st := s.Stats()
	require.Equal(t, 1, st.Iterations)
	require.Equal(t, 8, st.Moves)
	require.Equal(t, 0, st.MaxQueue)
	require.Equal(t, 2, st.Solutions)
}

func TestSolver_QuotaStopsTheStream(t *testing.T) {
	s, err := solver.New(latin2x2(t), solver.WithMaxSolutions(2))
	require.NoError(t, err)

	sols, err := s.Solve()
	require.NoError(t, err)
	require.Len(t, sols, 2)
	// stopped by quota, not by covering the space
	require.False(t, s.Exhausted())
	require.Equal(t, 2, s.Stats().Moves)
}

func TestSolver_SecondCallAfterQuota(t *testing.T) {
	s, err := solver.New(latin2x2(t))
	require.NoError(t, err)

	_, err = s.First()
	require.NoError(t, err)

	// the quota was met mid-expansion; the remaining work was abandoned
	_, err = s.First()
	require.ErrorIs(t, err, solver.ErrNoSolution)
	require.False(t, s.Exhausted())
}

func TestSolver_TimeLimit(t *testing.T) {
	g := mustGrid(t, grid.WithGivens(hard9...))

	s, err := solver.New(g,
		solver.WithTimeLimit(time.Nanosecond),
		solver.WithCheckInterval(1),
	)
	require.NoError(t, err)

	trail, err := s.First()
	require.Nil(t, trail)
	require.ErrorIs(t, err, solver.ErrTimeLimit)
	require.False(t, s.Exhausted())
	require.Equal(t, 1, s.Stats().Moves)
}

func TestSolver_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := mustGrid(t, grid.WithGivens(hard9...))
	s, err := solver.New(g,
		solver.WithContext(ctx),
		solver.WithCheckInterval(1),
	)
	require.NoError(t, err)

	_, err = s.First()
	require.ErrorIs(t, err, context.Canceled)
}

func TestSolver_SolveKeepsPartialResultsOnTimeout(t *testing.T) {
	// both completions fall on moves 1 and 2, off the poll cadence; the
	// poll at move 3 then blows the clock, and Solve hands back what the
	// stream already produced alongside the error
	g := latin2x2(t)
	s, err := solver.New(g,
		solver.WithMaxSolutions(0),
		solver.WithTimeLimit(time.Nanosecond),
		solver.WithCheckInterval(3),
	)
	require.NoError(t, err)

	sols, err := s.Solve()
	require.ErrorIs(t, err, solver.ErrTimeLimit)
	require.Len(t, sols, 2)
	require.True(t, replay(t, g, sols[0]).Solved())
	require.False(t, s.Exhausted())
}

func TestSolver_OptionViolations(t *testing.T) {
	g := latin2x2(t)

	for name, opt := range map[string]solver.Option{
		"negative time limit":     solver.WithTimeLimit(-time.Second),
		"zero check interval":     solver.WithCheckInterval(0),
		"negative check interval": solver.WithCheckInterval(-5),
		"zero log interval":       solver.WithLogInterval(0),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := solver.New(g, opt)
			require.ErrorIs(t, err, solver.ErrOptionViolation)
		})
	}
}

func TestSolver_Hooks(t *testing.T) {
	g := mustGrid(t, grid.WithGivens(hard9...))

	var enq, deq int
	var firstFP string
	var firstDepth int
	s, err := solver.New(g,
		solver.WithOnEnqueue(func(string, int) { enq++ }),
		solver.WithOnDequeue(func(fp string, depth int) {
			if deq == 0 {
				firstFP, firstDepth = fp, depth
			}
			deq++
		}),
	)
	require.NoError(t, err)

	_, err = s.First()
	require.NoError(t, err)

	require.Equal(t, s.Stats().Iterations, deq)
	require.Equal(t, g.Fingerprint(), firstFP)
	require.Equal(t, 0, firstDepth)
	require.Positive(t, enq)
}

func TestSolver_ProgressLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	s, err := solver.New(latin2x2(t),
		solver.WithMaxSolutions(0),
		solver.WithLogger(logger),
		solver.WithLogInterval(1),
	)
	require.NoError(t, err)

	_, err = s.Solve()
	require.NoError(t, err)
	require.Contains(t, buf.String(), "search progress")
	require.Contains(t, buf.String(), "moves=")
	require.Contains(t, buf.String(), "frontier=")
}

func TestSolver_SolutionsStreamOrder(t *testing.T) {
	// breadth-first: the empty-grid latin square yields both one-move
	// solutions before anything deeper could exist
	s, err := solver.New(latin2x2(t), solver.WithMaxSolutions(0))
	require.NoError(t, err)

	var lengths []int
	for trail, err := range s.Solutions() {
		require.NoError(t, err)
		lengths = append(lengths, len(trail))
	}
	require.Equal(t, []int{1, 1}, lengths)
	require.True(t, slices.IsSorted(lengths))
}
