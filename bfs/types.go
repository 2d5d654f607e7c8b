// Package bfs provides tunable options and error definitions
// for breadth-first search over an implicit unweighted graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrNoSeeds is returned when the seed set is empty.
	ErrNoSeeds = errors.New("bfs: at least one seed is required")

	// ErrNeighborFuncNil is returned if a nil NeighborFunc is passed.
	ErrNeighborFuncNil = errors.New("bfs: neighbor function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreachable is returned when the queue drains before the target is dequeued.
	ErrUnreachable = errors.New("bfs: target unreachable")
)

// NeighborFunc enumerates the nodes reachable in one step from a node.
// It must be pure for the duration of a search.
type NeighborFunc[T comparable] func(T) []T

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Search is invoked.
type Option[T comparable] func(*Options[T])

// Options holds parameters and callbacks to customize BFS execution.
type Options[T comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a node is appended to the queue.
	// Receives the node and its depth from the nearest seed.
	OnEnqueue func(node T, depth int)

	// OnDequeue is called for every pop, including stale duplicates.
	OnDequeue func(node T, depth int)

	// OnVisit is called the first time a node is dequeued. If it returns an
	// error, Search aborts and propagates that error.
	OnVisit func(node T, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions[T comparable]() Options[T] {
	return Options[T]{
		Ctx:       context.Background(),
		OnEnqueue: func(T, int) {},
		OnDequeue: func(T, int) {},
		OnVisit:   func(T, int) error { return nil },
		MaxDepth:  0,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[T comparable](ctx context.Context) Option[T] {
	return func(o *Options[T]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[T comparable](fn func(node T, depth int)) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on every dequeue.
func WithOnDequeue[T comparable](fn func(node T, depth int)) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit[T comparable](fn func(node T, depth int) error) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: nodes deeper than d are never enqueued
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[T comparable](d int) Option[T] {
	return func(o *Options[T]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of a successful search.
//   - Distance: edges from the nearest seed to the target.
//   - Visited:  distinct nodes settled, target included.
//   - Stale:    pops discarded because the node was already visited.
//   - Enqueued: total appends, seeds included.
type Result struct {
	Distance int
	Visited  int
	Stale    int
	Enqueued int
}
