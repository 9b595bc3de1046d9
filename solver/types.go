// Package solver provides tunable options, statistics, and error
// definitions for breadth-first puzzle search.
package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Default polling cadences, in examined moves.
const (
	// DefaultCheckInterval is how often the deadline and context are polled.
	DefaultCheckInterval = 100

	// DefaultLogInterval is how often progress is logged when a logger is set.
	DefaultLogInterval = 1000
)

// Sentinel errors for search execution.
var (
	// ErrTimeLimit is returned when a solve exceeds its time budget. The
	// budget is scoped per requested solution: the clock restarts after
	// every yield.
	ErrTimeLimit = errors.New("solver: time limit exceeded")

	// ErrNoSolution is returned by First and Solve when the reachable state
	// space is exhausted without finding anything. Exhaustion is a normal
	// outcome, not a defect; the Solutions stream just ends cleanly.
	ErrNoSolution = errors.New("solver: no solution")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
)

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. a negative interval), it is recorded
// internally and surfaced as ErrOptionViolation when New is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing a search.
type Options struct {
	// Ctx allows cancellation and deadlines; polled every CheckInterval
	// examined moves.
	Ctx context.Context

	// MaxSolutions caps how many solutions the stream yields.
	//   n == 1: just the shortest (the default)
	//   n > 1:  up to n, each the shortest still reachable
	//   n <= 0: exhaust the entire reachable space
	MaxSolutions int

	// TimeLimit bounds the wall time spent finding each solution; zero
	// means no limit. Enforcement is cooperative: the deadline is noticed
	// at the next poll, so a solve can overrun by up to one interval's
	// worth of work.
	TimeLimit time.Duration

	// CheckInterval is how many examined moves pass between deadline and
	// cancellation polls.
	CheckInterval int

	// Logger, when set, records search progress every LogInterval moves.
	// The poll cadence tightens to LogInterval when it is the smaller, so
	// a logged search never misses its deadline by more than one record.
	Logger *slog.Logger

	// LogInterval is how many examined moves pass between progress records.
	LogInterval int

	// OnEnqueue is called when a successor joins the frontier.
	// Receives the successor's fingerprint and its move-trail length.
	OnEnqueue func(fingerprint string, depth int)

	// OnDequeue is called when a state leaves the frontier for expansion.
	OnDequeue func(fingerprint string, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - one solution, no time limit
//   - polling every 100 moves, logging (if any) every 1000
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxSolutions:  1,
		TimeLimit:     0,
		CheckInterval: DefaultCheckInterval,
		LogInterval:   DefaultLogInterval,
		OnEnqueue:     func(string, int) {},
		OnDequeue:     func(string, int) {},
		err:           nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSolutions sets the solution quota.
//
//	n == 1: shortest solution only
//	n > 1:  up to n solutions
//	n <= 0: exhaust the reachable space
func WithMaxSolutions(n int) Option {
	return func(o *Options) {
		o.MaxSolutions = n
	}
}

// WithTimeLimit bounds the wall time per requested solution.
//
//	d > 0: cooperative deadline
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: TimeLimit cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.TimeLimit = d
	}
}

// WithCheckInterval sets how many examined moves pass between polls.
//
//	n >= 1: valid
//	n < 1: invalid option → ErrOptionViolation
func WithCheckInterval(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: CheckInterval must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.CheckInterval = n
	}
}

// WithLogger enables progress logging through l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithLogInterval sets how many examined moves pass between progress
// records.
//
//	n >= 1: valid
//	n < 1: invalid option → ErrOptionViolation
func WithLogInterval(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: LogInterval must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.LogInterval = n
	}
}

// WithOnEnqueue registers a callback to run when a state is enqueued.
func WithOnEnqueue(fn func(fingerprint string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run when a state is dequeued.
func WithOnDequeue(fn func(fingerprint string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// Stats reports the work one search has performed so far.
type Stats struct {
	// Iterations counts states dequeued and expanded.
	Iterations int

	// Moves counts legal moves examined across all expansions.
	Moves int

	// MaxQueue is the frontier's high-water mark.
	MaxQueue int

	// Solutions counts solutions yielded so far.
	Solutions int

	// Elapsed is the wall time spent inside the search loop.
	Elapsed time.Duration
}
