package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/tripgraph/core"
)

// queueItem pairs a station ID with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g from start, ignoring edge weights.
// Neighbors are expanded in ascending station order, so the visit sequence
// and parent links are reproducible.
// Returns ErrGraphNil, ErrStartNotFound, ErrOptionViolation, a context error
// or any error returned by the OnVisit hook.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasStation(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	n := g.StationCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem{id: start})

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors enqueues every unseen neighbor within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, e := range w.graph.Neighbors(item.id) {
		if _, seen := w.res.Depth[e.To]; seen {
			continue
		}
		w.res.Depth[e.To] = next
		w.res.Parent[e.To] = item.id
		w.queue = append(w.queue, queueItem{id: e.To, depth: next})
	}
}
