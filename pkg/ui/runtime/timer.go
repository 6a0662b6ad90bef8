package runtime

import (
	"container/heap"
	"time"
)

type timerEntry struct {
	at  time.Time
	msg Msg
	seq uint64 // tie-break: equal deadlines fire in schedule order
}

type timerHeap []timerEntry

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].at.Equal(h[j].at) {
		return h[i].seq < h[j].seq
	}
	return h[i].at.Before(h[j].at)
}

func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *timerHeap) Push(x any) {
	*h = append(*h, x.(timerEntry))
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	entry := old[n-1]
	*h = old[:n-1]
	return entry
}

// timerQueue is a min-ordered collection of (deadline, msg) pairs checked
// once per outer loop iteration. No spawned tasks, no cross-goroutine state.
type timerQueue struct {
	heap timerHeap
	seq  uint64
}

func (q *timerQueue) schedule(at time.Time, msg Msg) {
	q.seq++
	heap.Push(&q.heap, timerEntry{at: at, msg: msg, seq: q.seq})
}

// next returns the earliest deadline, if any timer is pending.
func (q *timerQueue) next() (time.Time, bool) {
	if len(q.heap) == 0 {
		return time.Time{}, false
	}
	return q.heap[0].at, true
}

// popDue removes and returns the messages of every timer due at now,
// in deadline order.
func (q *timerQueue) popDue(now time.Time) []Msg {
	var msgs []Msg
	for len(q.heap) > 0 && !q.heap[0].at.After(now) {
		entry := heap.Pop(&q.heap).(timerEntry)
		msgs = append(msgs, entry.msg)
	}
	return msgs
}

func (q *timerQueue) pending() int {
	return len(q.heap)
}
