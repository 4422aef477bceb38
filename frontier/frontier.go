package frontier

import "container/heap"

// Entry is one pending search node.
type Entry[S any] struct {
	Priority int64 // extraction key: g + heuristic, or g alone
	G        int64 // accumulated cost from the nearest start
	State    S     // the state to expand
	seq      uint64
}

// Queue is a min-priority queue of Entry values with FIFO tie-breaking.
// The zero value is not usable; call New.
type Queue[S any] struct {
	h       entryHeap[S]
	nextSeq uint64
}

// New returns an empty queue with room for capacity entries.
func New[S any](capacity int) *Queue[S] {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue[S]{h: make(entryHeap[S], 0, capacity)}
}

// Push queues s with accumulated cost g and extraction priority.
func (q *Queue[S]) Push(s S, g, priority int64) {
	heap.Push(&q.h, Entry[S]{Priority: priority, G: g, State: s, seq: q.nextSeq})
	q.nextSeq++
}

// Pop removes and returns the entry with the lowest priority. The boolean is
// false when the queue is empty.
func (q *Queue[S]) Pop() (Entry[S], bool) {
	if len(q.h) == 0 {
		var zero Entry[S]
		return zero, false
	}
	return heap.Pop(&q.h).(Entry[S]), true
}

// Peek returns the entry Pop would return, without removing it.
func (q *Queue[S]) Peek() (Entry[S], bool) {
	if len(q.h) == 0 {
		var zero Entry[S]
		return zero, false
	}
	return q.h[0], true
}

// Len returns the number of queued entries, stale duplicates included.
func (q *Queue[S]) Len() int { return len(q.h) }

// Reset empties the queue, keeping its storage. Sequence numbers restart.
func (q *Queue[S]) Reset() {
	clear(q.h)
	q.h = q.h[:0]
	q.nextSeq = 0
}

// entryHeap implements heap.Interface ordered by (Priority, seq).
type entryHeap[S any] []Entry[S]

func (h entryHeap[S]) Len() int { return len(h) }

func (h entryHeap[S]) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority < h[j].Priority
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap[S]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[S]) Push(x any) { *h = append(*h, x.(Entry[S])) }

func (h *entryHeap[S]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	var zero Entry[S]
	old[n-1] = zero // drop the reference for the GC
	*h = old[:n-1]

	return item
}
