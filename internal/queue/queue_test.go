package queue

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestQueue(opts ...Option) (*Queue, *fakeClock) {
	clk := &fakeClock{t: time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)}
	return New(append([]Option{WithClock(clk.now)}, opts...)...), clk
}

func TestAdd_DedupAcrossQueueAndCache(t *testing.T) {
	q, _ := newTestQueue()

	if !q.Add("A", 10*time.Second, true) {
		t.Fatal("first add should succeed")
	}
	if q.Add("A", 10*time.Second, true) {
		t.Error("duplicate add should be rejected")
	}
	if q.Len() != 1 {
		t.Errorf("expected length 1, got %d", q.Len())
	}

	got, ok := q.Take()
	if !ok || got != "A" {
		t.Fatalf("expected A, got %q (ok=%v)", got, ok)
	}
	if q.Add("A", 10*time.Second, true) {
		t.Error("add after take should be rejected while cached")
	}
	if q.Len() != 0 {
		t.Errorf("expected empty queue, got %d", q.Len())
	}
}

func TestAdd_CacheRetentionIsFixed(t *testing.T) {
	q, clk := newTestQueue()

	q.Add("A", time.Second, true)
	q.Take()

	clk.advance(14 * time.Second)
	if q.Add("A", time.Second, true) {
		t.Error("payload should still be cached after 14s")
	}

	clk.advance(time.Second)
	if !q.Add("A", time.Second, true) {
		t.Error("payload should be accepted once the 15s retention elapses")
	}
}

func TestAdd_CapacityEvictsOldestExcludable(t *testing.T) {
	q, _ := newTestQueue(WithCapacity(2))

	q.Add("a", 10*time.Second, true)
	q.Add("b", 10*time.Second, true)
	q.Add("c", 10*time.Second, true)

	pending, _ := q.Snapshot()
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending, got %d", len(pending))
	}
	if pending[0].Payload != "b" || pending[1].Payload != "c" {
		t.Errorf("expected [b c], got [%s %s]", pending[0].Payload, pending[1].Payload)
	}
}

func TestAdd_CapacitySkipsProtectedEntries(t *testing.T) {
	q, _ := newTestQueue(WithCapacity(2))

	q.Add("gift-1", 15*time.Second, false)
	q.Add("follow", 10*time.Second, true)
	q.Add("gift-2", 15*time.Second, false)

	pending, _ := q.Snapshot()
	if len(pending) != 2 || pending[0].Payload != "gift-1" || pending[1].Payload != "gift-2" {
		t.Errorf("expected protected gifts to survive, got %+v", pending)
	}
}

func TestAdd_CapacityMayOverflowWithoutExcludable(t *testing.T) {
	q, _ := newTestQueue(WithCapacity(2))

	q.Add("x", 15*time.Second, false)
	q.Add("y", 15*time.Second, false)
	q.Add("z", 15*time.Second, false)

	if q.Len() != 3 {
		t.Errorf("expected overflow to 3, got %d", q.Len())
	}
}

func TestExpiry_LazyPurge(t *testing.T) {
	q, clk := newTestQueue()

	q.Add("short", 5*time.Second, true)
	q.Add("long", 30*time.Second, true)

	clk.advance(6 * time.Second)
	got, ok := q.Take()
	if !ok || got != "long" {
		t.Errorf("expected expired entry skipped, got %q (ok=%v)", got, ok)
	}
	if !q.Add("short", 5*time.Second, true) {
		t.Error("expired payload should be accepted again")
	}
}

func TestTake_Empty(t *testing.T) {
	q, _ := newTestQueue()

	if got, ok := q.Take(); ok || got != "" {
		t.Errorf("expected empty take, got %q (ok=%v)", got, ok)
	}
	_, dispatched := q.Snapshot()
	if len(dispatched) != 0 {
		t.Errorf("empty take should cache nothing, got %d", len(dispatched))
	}
}

func TestTake_FIFO(t *testing.T) {
	q, _ := newTestQueue()

	for _, p := range []string{"1", "2", "3"} {
		q.Add(p, time.Minute, true)
	}
	for _, want := range []string{"1", "2", "3"} {
		if got, _ := q.Take(); got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	}
}

func TestReady_SignalsOnAdd(t *testing.T) {
	q, _ := newTestQueue()

	select {
	case <-q.Ready():
		t.Fatal("ready should not fire on an empty queue")
	default:
	}

	q.Add("hello", time.Minute, true)

	select {
	case <-q.Ready():
	case <-time.After(time.Second):
		t.Fatal("expected ready signal after add")
	}
}
