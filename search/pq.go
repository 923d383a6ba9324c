package search

import (
	"container/heap"

	"github.com/katalvlaran/roadgraph/geo"
)

// Item is one queue entry: a Location with its ordering priority.
type Item struct {
	Loc      geo.Location
	Priority float64

	seq uint64 // insertion sequence, secondary key
}

// itemHeap is a min-heap of *Item ordered by Priority, then by seq.
type itemHeap []*Item

func (h itemHeap) Len() int { return len(h) }

func (h itemHeap) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority < h[j].Priority
	}

	return h[i].seq < h[j].seq
}

func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap) Push(x interface{}) { *h = append(*h, x.(*Item)) }

func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}

// Queue is a lazy-decrease-key min-priority queue.
//
// Improved distances are pushed as new entries; stale entries stay in the heap
// and are skipped by the caller's finalized check when popped.
// The zero value is ready to use.
type Queue struct {
	h   itemHeap
	seq uint64
}

// NewQueue returns an empty Queue with room for capacity entries.
func NewQueue(capacity int) *Queue {
	return &Queue{h: make(itemHeap, 0, capacity)}
}

// Push adds loc with the given priority.
// Complexity: O(log n).
func (q *Queue) Push(loc geo.Location, priority float64) {
	q.seq++
	heap.Push(&q.h, &Item{Loc: loc, Priority: priority, seq: q.seq})
}

// Pop removes and returns the entry with the lowest priority;
// among equals, the one pushed first.
// Complexity: O(log n).
func (q *Queue) Pop() (Item, bool) {
	if len(q.h) == 0 {
		return Item{}, false
	}
	it := heap.Pop(&q.h).(*Item)

	return *it, true
}

// Len returns the number of entries, stale ones included.
func (q *Queue) Len() int { return len(q.h) }
