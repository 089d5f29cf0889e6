package dijkstra

import (
	"container/heap"

	"golang.org/x/exp/slices"
)

// frontier yields the next station to settle.
//
// push is called whenever a station is reached or its distance improves.
// pop returns the unsettled station with the smallest (distance, ID), or
// ok == false when no reached station remains.
type frontier interface {
	push(id int, dist int64)
	pop() (id int, dist int64, ok bool)
}

// newFrontier builds the frontier for the requested strategy.
// stations must be sorted ascending; dist is the runner's distance map.
func newFrontier(s Strategy, stations []int, dist map[int]int64) frontier {
	if s == StrategyHeap {
		pq := make(stationPQ, 0, len(stations))
		heap.Init(&pq)

		return &heapFrontier{pq: pq}
	}

	return &scanFrontier{pending: stations, dist: dist}
}

// scanFrontier re-scans every pending station each round.
// pending keeps ascending ID order, so the first minimum found is the lowest ID.
type scanFrontier struct {
	pending []int
	dist    map[int]int64
}

func (f *scanFrontier) push(int, int64) {}

func (f *scanFrontier) pop() (int, int64, bool) {
	best := -1
	var bestDist int64
	for i, id := range f.pending {
		d, reached := f.dist[id]
		if !reached {
			continue
		}
		if best == -1 || d < bestDist {
			best, bestDist = i, d
		}
	}
	// Every remaining station is unreached.
	if best == -1 {
		return 0, 0, false
	}
	id := f.pending[best]
	f.pending = slices.Delete(f.pending, best, best+1)

	return id, bestDist, true
}

// heapFrontier is a lazy decrease-key min-heap; stale entries are skipped by
// the runner because their station is already settled when they surface.
type heapFrontier struct {
	pq stationPQ
}

func (f *heapFrontier) push(id int, dist int64) {
	heap.Push(&f.pq, stationItem{id: id, dist: dist})
}

func (f *heapFrontier) pop() (int, int64, bool) {
	if f.pq.Len() == 0 {
		return 0, 0, false
	}
	item := heap.Pop(&f.pq).(stationItem)

	return item.id, item.dist, true
}

// stationItem is a heap entry: a station and the distance it was pushed with.
type stationItem struct {
	id   int
	dist int64
}

// stationPQ orders entries by distance, then by station ID.
type stationPQ []stationItem

func (pq stationPQ) Len() int { return len(pq) }

func (pq stationPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq stationPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *stationPQ) Push(x interface{}) { *pq = append(*pq, x.(stationItem)) }

func (pq *stationPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
