package search

import (
	"container/heap"

	"github.com/katalvlaran/pathgrid/grid"
)

// move is a candidate transition from one cell to a neighboring cell.
// priority ranks it inside heap frontiers; seq is the per-run insertion
// counter used for deterministic tie-breaking (first discovered wins);
// stepsSoFar counts unit-cost moves from the start along the route
// that discovered the destination.
type move struct {
	from, to   grid.Coord
	priority   float64
	seq        uint64
	stepsSoFar int
}

// compareMoves orders moves by ascending priority, ties broken by
// ascending insertion sequence. This total order makes ranked
// exploration reproducible across runs with identical input.
func compareMoves(a, b move) bool {
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	return a.seq < b.seq
}

// frontier is the container holding discovered-but-unvisited moves.
// The three implementations (stack, queue, heap) give each strategy
// its pop order; the expansion loop is identical otherwise.
type frontier interface {
	push(m move)
	pop() (move, bool)
	len() int
}

// stackFrontier pops last-in-first-out (depth-first).
type stackFrontier struct {
	items []move
}

func (s *stackFrontier) push(m move) { s.items = append(s.items, m) }

func (s *stackFrontier) pop() (move, bool) {
	if len(s.items) == 0 {
		return move{}, false
	}
	m := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]

	return m, true
}

func (s *stackFrontier) len() int { return len(s.items) }

// queueFrontier pops first-in-first-out (breadth-first). A moving head
// index avoids reslicing churn on every dequeue.
type queueFrontier struct {
	items []move
	head  int
}

func (q *queueFrontier) push(m move) { q.items = append(q.items, m) }

func (q *queueFrontier) pop() (move, bool) {
	if q.head >= len(q.items) {
		return move{}, false
	}
	m := q.items[q.head]
	q.head++
	// Reclaim the consumed prefix once it dominates the backing array.
	if q.head > 64 && q.head*2 >= len(q.items) {
		q.items = append([]move(nil), q.items[q.head:]...)
		q.head = 0
	}

	return m, true
}

func (q *queueFrontier) len() int { return len(q.items) - q.head }

// heapFrontier pops the minimum move under compareMoves.
type heapFrontier struct {
	items moveHeap
}

func (h *heapFrontier) push(m move) { heap.Push(&h.items, m) }

func (h *heapFrontier) pop() (move, bool) {
	if len(h.items) == 0 {
		return move{}, false
	}

	return heap.Pop(&h.items).(move), true
}

func (h *heapFrontier) len() int { return len(h.items) }

// moveHeap implements heap.Interface over moves with compareMoves.
type moveHeap []move

func (h moveHeap) Len() int           { return len(h) }
func (h moveHeap) Less(i, j int) bool { return compareMoves(h[i], h[j]) }
func (h moveHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *moveHeap) Push(x any)        { *h = append(*h, x.(move)) }

func (h *moveHeap) Pop() any {
	old := *h
	n := len(old)
	m := old[n-1]
	*h = old[:n-1]

	return m
}
