// Package bfs provides multi-source breadth-first search over an implicit,
// unweighted graph, returning the fewest-edge distance from a seed set to a target.
package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a node with its BFS depth.
type queueItem[T comparable] struct {
	node  T
	depth int
}

// walker encapsulates mutable BFS state.
type walker[T comparable] struct {
	next    NeighborFunc[T]
	target  T
	opts    Options[T]
	ctx     context.Context
	queue   []queueItem[T]
	visited map[T]struct{}
	res     Result
}

// Search runs breadth-first search from every seed at once towards target,
// expanding nodes with next and applying any number of functional Options.
//
// Duplicate suppression is lazy: a node may sit in the queue several times,
// and only its first dequeue, which FIFO layering guarantees is at minimal
// depth, is honored. Later pops of the same node are counted as stale.
//
// Returns ErrNoSeeds, ErrNeighborFuncNil or ErrOptionViolation for invalid input,
// ErrUnreachable when the queue drains first, the context error on cancellation,
// or any OnVisit hook error.
func Search[T comparable](seeds []T, target T, next NeighborFunc[T], opts ...Option[T]) (*Result, error) {
	if next == nil {
		return nil, ErrNeighborFuncNil
	}
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[T]{
		next:    next,
		target:  target,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem[T], 0, len(seeds)),
		visited: make(map[T]struct{}, len(seeds)),
	}

	// Every seed starts at depth 0: a virtual super-source one step behind them all
	for _, s := range seeds {
		w.enqueue(s, 0)
	}
	// Main loop
	found, err := w.loop()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %v after %d visits", ErrUnreachable, target, w.res.Visited)
	}

	return &w.res, nil
}

// enqueue calls OnEnqueue and appends node at depth d.
func (w *walker[T]) enqueue(node T, d int) {
	w.opts.OnEnqueue(node, d)
	w.queue = append(w.queue, queueItem[T]{node: node, depth: d})
	w.res.Enqueued++
}

// loop processes the queue until the target is visited, the queue drains,
// an error occurs or the context is cancelled.
func (w *walker[T]) loop() (bool, error) {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return false, w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if _, seen := w.visited[item.node]; seen {
			w.res.Stale++
			continue
		}
		if err := w.visit(item); err != nil {
			return false, err
		}
		if item.node == w.target {
			w.res.Distance = item.depth
			return true, nil
		}
		w.enqueueNeighbors(item)
	}
	return false, nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[T]) dequeue() queueItem[T] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.node, item.depth)
	return item
}

// visit marks the node settled and calls OnVisit.
func (w *walker[T]) visit(item queueItem[T]) error {
	w.visited[item.node] = struct{}{}
	w.res.Visited++
	if err := w.opts.OnVisit(item.node, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.node, err)
	}
	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues every neighbor not yet visited.
// Neighbors that are merely queued are enqueued again; dequeue discards the extras.
func (w *walker[T]) enqueueNeighbors(item queueItem[T]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.next(item.node) {
		if _, seen := w.visited[nbr]; !seen {
			w.enqueue(nbr, nextDepth)
		}
	}
}
