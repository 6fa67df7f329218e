// Package queue implements the expiring selection queue that throttles and
// deduplicates announcement text between the feed and a slow consumer.
package queue

import (
	"sync"
	"time"
)

const (
	// DefaultCapacity is the pending size above which excludable entries
	// are evicted.
	DefaultCapacity = 20

	// DispatchRetention is how long a taken payload is remembered for
	// deduplication.
	DispatchRetention = 15 * time.Second
)

// Entry is one queued payload.
type Entry struct {
	Payload string        `json:"payload"`
	Created time.Time     `json:"created"`
	Exclude bool          `json:"exclude"`
	Timeout time.Duration `json:"timeout"`
}

func (e Entry) expired(now time.Time) bool {
	return now.Sub(e.Created) >= e.Timeout
}

// Queue is a bounded FIFO with per-entry expiry and a dispatched cache.
// A payload is never present twice across the pending queue and the cache.
type Queue struct {
	mu       sync.Mutex
	pending  []Entry
	cache    []Entry
	capacity int
	now      func() time.Time
	ready    chan struct{}
}

// Option configures a Queue.
type Option func(*Queue)

// WithCapacity overrides DefaultCapacity.
func WithCapacity(n int) Option {
	return func(q *Queue) {
		q.capacity = n
	}
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(q *Queue) {
		q.now = now
	}
}

// New creates an empty Queue.
func New(opts ...Option) *Queue {
	q := &Queue{
		capacity: DefaultCapacity,
		now:      time.Now,
		ready:    make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Add enqueues payload unless a live copy already exists in the queue or the
// dispatched cache. Excludable entries may be evicted under capacity
// pressure, oldest first. It reports whether the payload was enqueued.
func (q *Queue) Add(payload string, timeout time.Duration, exclude bool) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	q.purge(now)

	if q.contains(payload) {
		return false
	}

	q.pending = append(q.pending, Entry{
		Payload: payload,
		Created: now,
		Exclude: exclude,
		Timeout: timeout,
	})

	if len(q.pending) > q.capacity {
		for i, e := range q.pending {
			if e.Exclude {
				q.pending = append(q.pending[:i], q.pending[i+1:]...)
				break
			}
		}
	}

	select {
	case q.ready <- struct{}{}:
	default:
	}
	return true
}

// Take pops the oldest pending payload and remembers it for
// DispatchRetention. ok is false when nothing is pending.
func (q *Queue) Take() (payload string, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	q.purge(now)

	if len(q.pending) == 0 {
		return "", false
	}

	e := q.pending[0]
	q.pending = q.pending[1:]
	q.cache = append(q.cache, Entry{
		Payload: e.Payload,
		Created: now,
		Exclude: e.Exclude,
		Timeout: DispatchRetention,
	})

	if len(q.pending) > 0 {
		select {
		case q.ready <- struct{}{}:
		default:
		}
	}
	return e.Payload, true
}

// Len returns the number of pending entries, including ones that have
// expired but not yet been purged.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Ready is signalled whenever an Add succeeds or a Take leaves entries
// behind. Consumers should still call Take until it reports empty.
func (q *Queue) Ready() <-chan struct{} {
	return q.ready
}

// Snapshot returns copies of the pending queue and dispatched cache after
// purging expired entries.
func (q *Queue) Snapshot() (pending, dispatched []Entry) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.purge(q.now())
	pending = append([]Entry(nil), q.pending...)
	dispatched = append([]Entry(nil), q.cache...)
	return pending, dispatched
}

func (q *Queue) contains(payload string) bool {
	for _, e := range q.pending {
		if e.Payload == payload {
			return true
		}
	}
	for _, e := range q.cache {
		if e.Payload == payload {
			return true
		}
	}
	return false
}

func (q *Queue) purge(now time.Time) {
	q.pending = filterLive(q.pending, now)
	q.cache = filterLive(q.cache, now)
}

func filterLive(entries []Entry, now time.Time) []Entry {
	live := entries[:0]
	for _, e := range entries {
		if !e.expired(now) {
			live = append(live, e)
		}
	}
	// Drop references held past the live prefix.
	for i := len(live); i < len(entries); i++ {
		entries[i] = Entry{}
	}
	return live
}
