// Package bfs provides a production-grade multi-source breadth-first search
// over any implicit, unweighted graph whose nodes are comparable values.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a seed set.
//   - Search stops as soon as the target is dequeued and returns a Result:
//   - Distance: fewest edges from the nearest seed to the target
//   - Visited:  distinct nodes settled
//   - Stale:    duplicate pops discarded by lazy deletion
//   - Enqueued: total queue appends
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a node is appended)
//   - OnDequeue (every pop, stale ones included)
//   - OnVisit   (first pop of a node; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Fewest-step searches on grids, state spaces and other graphs that are
//     cheaper to describe with a neighbor function than to materialize.
//   - Multi-source distance: seeding many origins at depth 0 is equivalent to a
//     single-source search from a virtual super-source linked to each of them.
//
// Lazy deletion
//
//	Neighbors are filtered only against the visited ledger, so a node can be
//	queued more than once before its first pop. FIFO order guarantees that the
//	first pop carries the minimal depth; later pops are discarded. The extra
//	work is bounded by the edge count.
//
// Complexity (V = |nodes reached|, E = |edges examined|)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E)   (queue may hold duplicates, visited ledger holds V)
//
// Usage
//
//	res, err := bfs.Search(seeds, target, neighbors)
//	if errors.Is(err, bfs.ErrUnreachable) {
//		// the target lies outside every seed's reach
//	}
//
//	res, err := bfs.Search(
//	    seeds, target, neighbors,
//	    bfs.WithContext[Node](ctx),
//	    bfs.WithMaxDepth[Node](50),
//	    bfs.WithOnVisit(func(n Node, depth int) error { /* ... */ return nil }),
//	)
//
// Errors
//
//   - ErrNeighborFuncNil  if the neighbor function is nil.
//   - ErrNoSeeds          if the seed set is empty.
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//   - ErrUnreachable      if the queue drains before the target is dequeued.
//   - ctx.Err()           if the context is cancelled.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
