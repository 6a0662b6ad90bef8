package runtime

import (
	"testing"
	"time"
)

func TestTimerQueue_OrderedByDeadline(t *testing.T) {
	var q timerQueue
	base := time.Now()

	q.schedule(base.Add(30*time.Millisecond), "third")
	q.schedule(base.Add(10*time.Millisecond), "first")
	q.schedule(base.Add(20*time.Millisecond), "second")

	if q.pending() != 3 {
		t.Fatalf("pending() = %d, want 3", q.pending())
	}

	at, ok := q.next()
	if !ok || !at.Equal(base.Add(10*time.Millisecond)) {
		t.Errorf("next() = %v, %v", at, ok)
	}

	msgs := q.popDue(base.Add(25 * time.Millisecond))
	if len(msgs) != 2 || msgs[0] != "first" || msgs[1] != "second" {
		t.Errorf("popDue = %v, want [first second]", msgs)
	}
	if q.pending() != 1 {
		t.Errorf("pending() = %d, want 1", q.pending())
	}
}

func TestTimerQueue_EqualDeadlinesFireInScheduleOrder(t *testing.T) {
	var q timerQueue
	at := time.Now()

	q.schedule(at, "a")
	q.schedule(at, "b")
	q.schedule(at, "c")

	msgs := q.popDue(at)
	if len(msgs) != 3 || msgs[0] != "a" || msgs[1] != "b" || msgs[2] != "c" {
		t.Errorf("popDue = %v, want [a b c]", msgs)
	}
}

func TestTimerQueue_NothingDue(t *testing.T) {
	var q timerQueue
	now := time.Now()

	if _, ok := q.next(); ok {
		t.Error("next() on empty queue reported a deadline")
	}

	q.schedule(now.Add(time.Hour), "later")
	if msgs := q.popDue(now); len(msgs) != 0 {
		t.Errorf("popDue = %v, want empty", msgs)
	}
	if q.pending() != 1 {
		t.Error("future timer was dropped")
	}
}
