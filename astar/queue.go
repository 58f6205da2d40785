package astar

import (
	"container/heap"

	"github.com/dkuijer/chiproute/grid"
)

// openItem is one entry in the open set: a candidate coordinate awaiting
// expansion, ordered by priority = g + h.
type openItem struct {
	coord    grid.Coordinate
	priority int
	g        int
	seq      int // insertion order, used as a deterministic tie-break
}

// openHeap is a min-heap of *openItem ordered by priority, then by
// insertion order. Grounded on dijkstra.nodePQ's container/heap shape.
type openHeap []*openItem

func (h openHeap) Len() int { return len(h) }

func (h openHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h openHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *openHeap) Push(x any) { *h = append(*h, x.(*openItem)) }

func (h *openHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// openSet wraps openHeap with heap.Init/Push/Pop plumbing and an insertion
// sequence counter.
type openSet struct {
	h   openHeap
	seq int
}

func (s *openSet) push(coord grid.Coordinate, priority, g int) {
	s.seq++
	heap.Push(&s.h, &openItem{coord: coord, priority: priority, g: g, seq: s.seq})
}

func (s *openSet) empty() bool { return len(s.h) == 0 }

func (s *openSet) pop() *openItem {
	return heap.Pop(&s.h).(*openItem)
}
