package feed

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dgnsrekt/livefeed/internal/protocol"
)

// Subscriber buffer size.
const subscriberBufferSize = 256

// Subscription receives events published on a Bus.
type Subscription struct {
	ID    string
	C     <-chan protocol.Event
	ch    chan protocol.Event
	kinds map[protocol.Kind]bool
}

func (s *Subscription) wants(k protocol.Kind) bool {
	return len(s.kinds) == 0 || s.kinds[k]
}

// Bus fans decoded events out to subscribers. Publish never blocks: a
// subscriber whose buffer is full misses the event.
type Bus struct {
	mu      sync.RWMutex
	subs    map[*Subscription]bool
	closed  bool
	dropped func()
	logger  *zap.Logger
}

// NewBus creates a new Bus.
func NewBus(logger *zap.Logger) *Bus {
	return &Bus{
		subs:   make(map[*Subscription]bool),
		logger: logger,
	}
}

// OnDrop registers a hook called for every dropped delivery.
func (b *Bus) OnDrop(fn func()) {
	b.mu.Lock()
	b.dropped = fn
	b.mu.Unlock()
}

// Subscribe registers a subscriber. With no kinds it receives every event.
func (b *Bus) Subscribe(kinds ...protocol.Kind) *Subscription {
	ch := make(chan protocol.Event, subscriberBufferSize)
	sub := &Subscription{ID: uuid.NewString(), C: ch, ch: ch}
	if len(kinds) > 0 {
		sub.kinds = make(map[protocol.Kind]bool, len(kinds))
		for _, k := range kinds {
			sub.kinds[k] = true
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return sub
	}
	b.subs[sub] = true

	b.logger.Debug("subscriber registered", zap.String("subID", sub.ID), zap.Int("subscribers", len(b.subs)))
	return sub
}

// Unsubscribe removes sub and closes its channel.
func (b *Bus) Unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subs[sub]; ok {
		delete(b.subs, sub)
		close(sub.ch)
		b.logger.Debug("subscriber unregistered", zap.String("subID", sub.ID))
	}
}

// Publish delivers ev to every interested subscriber without blocking.
func (b *Bus) Publish(ev protocol.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.subs {
		if !sub.wants(ev.Kind()) {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
			if b.dropped != nil {
				b.dropped()
			}
			b.logger.Debug("subscriber full, event dropped",
				zap.String("subID", sub.ID),
				zap.String("kind", string(ev.Kind())),
			)
		}
	}
}

// Len returns the number of active subscribers.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Close closes every subscriber channel. Later subscriptions are closed
// immediately.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for sub := range b.subs {
		close(sub.ch)
		delete(b.subs, sub)
	}
}
