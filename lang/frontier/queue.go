// Package frontier implements the search frontier: a max-priority queue
// over search nodes, keyed by Score, with deterministic tie-breaking so
// that the solution stream is reproducible for equivalent inputs. It is
// modeled on the container/heap-based priority queues elsewhere in this
// corpus (see e.g. the transaction pool's effective-tip ordering), reduced
// to a single-dimensional score plus the tie-break chain spec.md requires.
package frontier

import (
	"container/heap"

	"github.com/6elphegor/bf-search/lang/interp"
)

// Node is one entry of the frontier: a search state together with the
// score it was pushed with. MinLen and Steps are duplicated out of State
// purely so Less can break ties without re-deriving them.
type Node struct {
	State  *interp.State
	Score  float64
	MinLen int
	Steps  uint64

	seq   uint64 // insertion order, for the final tie-break
	index int    // heap.Interface bookkeeping
}

// Queue is a max-priority queue of *Node, highest Score first.
type Queue struct {
	h   scoreHeap
	seq uint64
}

// New returns an empty frontier.
func New() *Queue {
	q := &Queue{}
	heap.Init(&q.h)
	return q
}

// Push adds n to the frontier.
func (q *Queue) Push(n *Node) {
	n.seq = q.seq
	q.seq++
	heap.Push(&q.h, n)
}

// Pop removes and returns the highest-scored node. It reports false if the
// frontier is empty.
func (q *Queue) Pop() (*Node, bool) {
	if q.h.Len() == 0 {
		return nil, false
	}
	return heap.Pop(&q.h).(*Node), true
}

// Len returns the number of nodes currently in the frontier.
func (q *Queue) Len() int { return q.h.Len() }

type scoreHeap []*Node

func (h scoreHeap) Len() int { return len(h) }

func (h scoreHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.Score != b.Score {
		return a.Score > b.Score // max-heap: highest score first
	}
	if a.MinLen != b.MinLen {
		return a.MinLen < b.MinLen // then shorter programs first
	}
	if a.Steps != b.Steps {
		return a.Steps < b.Steps // then cheaper execution first
	}
	return a.seq < b.seq // then insertion order, for reproducibility
}

func (h scoreHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *scoreHeap) Push(x interface{}) {
	n := x.(*Node)
	n.index = len(*h)
	*h = append(*h, n)
}

func (h *scoreHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}
