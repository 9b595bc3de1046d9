// Package solver implements breadth-first search over cloneable puzzle
// states: shortest move sequences first, duplicate positions pruned by
// fingerprint, with cooperative deadline and cancellation polling.
package solver

import (
	"fmt"
	"iter"
	"log/slog"
	"time"
)

// State is the contract a puzzle position must satisfy to be searched.
// S is the implementing type itself; M is its move type. Implementations
// carry whole-position semantics: the engine never inspects a move or a
// fingerprint beyond equality.
type State[S, M any] interface {
	// LegalMoves yields the moves worth trying from this position.
	LegalMoves() iter.Seq[M]

	// CopyAndMove returns a successor with m applied, leaving the receiver
	// untouched. An error rejects the move; the engine discards it and
	// moves on.
	CopyAndMove(m M) (S, error)

	// Fingerprint is the canonical rendering used for duplicate pruning.
	// Equal fingerprints must mean interchangeable positions.
	Fingerprint() string

	// Solved reports whether the position is an end state.
	Solved() bool
}

// item pairs a frontier state with the move trail that produced it.
type item[M any, S State[S, M]] struct {
	state S
	trail []M
	fp    string
}

// Solver drives one breadth-first search across the states reachable from
// a start position. Construct with New. A Solver is single-owner, not safe
// for concurrent use, and runs one search in its lifetime: the frontier
// and the seen set persist across Solutions calls.
type Solver[M any, S State[S, M]] struct {
	opts      Options
	frontier  []item[M, S]
	seen      map[string]struct{}
	stats     Stats
	started   bool
	exhausted bool
	t0        time.Time
}

// New prepares a breadth-first search from start. The frontier is seeded
// with (start, empty trail) and the seen set with start's fingerprint.
// Returns ErrOptionViolation for invalid options.
func New[M any, S State[S, M]](start S, opts ...Option) (*Solver[M, S], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	fp := start.Fingerprint()

	return &Solver[M, S]{
		opts:     o,
		frontier: []item[M, S]{{state: start, fp: fp}},
		seen:     map[string]struct{}{fp: {}},
	}, nil
}

// Solutions streams move trails that drive the start state to an end
// state, shortest first, until the quota is met, the space is exhausted,
// or a deadline fires. A deadline or cancellation surfaces as the final
// (nil, error) pair; exhaustion just ends the stream.
//
// The stream is lazy: each solution is searched for when the caller asks.
// Breaking out of the range abandons the expansion in flight, so states
// reachable only through it are lost to later calls; size MaxSolutions to
// the number of solutions wanted instead of breaking early.
func (s *Solver[M, S]) Solutions() iter.Seq2[[]M, error] {
	return func(yield func([]M, error) bool) {
		begin := time.Now()
		s.t0 = begin
		defer func() { s.stats.Elapsed += time.Since(begin) }()

		// An already-solved start is its own shortest solution.
		if !s.started {
			s.started = true
			if len(s.frontier) == 1 && s.frontier[0].state.Solved() {
				s.stats.Solutions++
				if !yield(nil, nil) || s.quotaMet() {
					return
				}
				s.t0 = time.Now()
			}
		}

		for len(s.frontier) > 0 {
			if s.quotaMet() {
				return
			}
			cur := s.frontier[0]
			s.frontier = s.frontier[1:]
			s.stats.Iterations++
			s.opts.OnDequeue(cur.fp, len(cur.trail))

			for m := range cur.state.LegalMoves() {
				s.stats.Moves++
				if err := s.poll(); err != nil {
					yield(nil, err)
					return
				}

				next, err := cur.state.CopyAndMove(m)
				if err != nil {
					continue
				}
				fp := next.Fingerprint()
				if _, dup := s.seen[fp]; dup {
					continue
				}
				s.seen[fp] = struct{}{}

				trail := make([]M, len(cur.trail)+1)
				copy(trail, cur.trail)
				trail[len(cur.trail)] = m

				if next.Solved() {
					s.stats.Solutions++
					if !yield(trail, nil) {
						return
					}
					s.t0 = time.Now()
					if s.quotaMet() {
						return
					}

					continue
				}

				s.frontier = append(s.frontier, item[M, S]{state: next, trail: trail, fp: fp})
				s.opts.OnEnqueue(fp, len(trail))
				if len(s.frontier) > s.stats.MaxQueue {
					s.stats.MaxQueue = len(s.frontier)
				}
			}
		}
		// A quota stop abandons unexpanded work, so only an unmet quota
		// proves the space was truly covered.
		if !s.quotaMet() {
			s.exhausted = true
		}
	}
}

// First returns the shortest solution, ErrNoSolution after exhausting the
// reachable space, or the deadline/cancellation error.
func (s *Solver[M, S]) First() ([]M, error) {
	for trail, err := range s.Solutions() {
		return trail, err
	}

	return nil, ErrNoSolution
}

// Solve collects solutions until the quota is met or the space is
// exhausted. On a deadline or cancellation it returns the solutions found
// so far alongside the error; the caller decides whether to keep them.
// Exhaustion with nothing found returns ErrNoSolution.
func (s *Solver[M, S]) Solve() ([][]M, error) {
	var out [][]M
	for trail, err := range s.Solutions() {
		if err != nil {
			return out, err
		}
		out = append(out, trail)
	}
	if len(out) == 0 {
		return nil, ErrNoSolution
	}

	return out, nil
}

// Stats reports the work performed so far.
func (s *Solver[M, S]) Stats() Stats { return s.stats }

// Exhausted reports whether the frontier emptied: every reachable,
// deduplicated state has been expanded, so no further solution exists.
func (s *Solver[M, S]) Exhausted() bool { return s.exhausted }

// quotaMet reports whether the configured solution quota is satisfied.
// A non-positive quota never satisfies: the search runs to exhaustion.
func (s *Solver[M, S]) quotaMet() bool {
	return s.opts.MaxSolutions > 0 && s.stats.Solutions >= s.opts.MaxSolutions
}

// poll enforces the cooperative deadline, cancellation, and progress
// logging cadence. Called once per examined move; cheap when the move
// count is off-cadence.
func (s *Solver[M, S]) poll() error {
	interval := s.opts.CheckInterval
	if s.opts.Logger != nil {
		if s.opts.LogInterval < interval {
			interval = s.opts.LogInterval
		}
		if s.stats.Moves%s.opts.LogInterval == 0 {
			s.opts.Logger.Info("search progress",
				slog.Int("moves", s.stats.Moves),
				slog.Int("states", s.stats.Iterations),
				slog.Int("frontier", len(s.frontier)),
				slog.Int("solutions", s.stats.Solutions),
				slog.Duration("elapsed", time.Since(s.t0)),
			)
		}
	}
	if s.stats.Moves%interval != 0 {
		return nil
	}

	select {
	case <-s.opts.Ctx.Done():
		return fmt.Errorf("solver: search canceled: %w", s.opts.Ctx.Err())
	default:
	}
	if s.opts.TimeLimit > 0 && time.Since(s.t0) > s.opts.TimeLimit {
		return fmt.Errorf("%w (%s per solution)", ErrTimeLimit, s.opts.TimeLimit)
	}

	return nil
}
