// Package announce turns follow, gift and enter events into templated
// announcements, throttles them through the selection queue and hands them
// to a Speaker.
package announce

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dgnsrekt/livefeed/internal/feed"
	"github.com/dgnsrekt/livefeed/internal/metrics"
	"github.com/dgnsrekt/livefeed/internal/protocol"
	"github.com/dgnsrekt/livefeed/internal/queue"
)

// Queue retention per announcement kind.
const (
	FollowTimeout  = 10 * time.Second
	WelcomeTimeout = 10 * time.Second
	GiftTimeout    = 15 * time.Second

	defaultPollInterval = time.Second
)

// Templates lists the phrasings per kind. One is chosen at random for each
// event. An empty list disables that kind.
type Templates struct {
	Welcome []string `mapstructure:"welcome"`
	Follow  []string `mapstructure:"follow"`
	Gift    []string `mapstructure:"gift"`
}

// Announcer feeds the queue from events and drains it into a Speaker.
type Announcer struct {
	queue   *queue.Queue
	metrics *metrics.Metrics
	logger  *zap.Logger
	poll    time.Duration
	pick    func(n int) int

	mu        sync.RWMutex
	templates Templates
}

// Option configures an Announcer.
type Option func(*Announcer)

// WithMetrics records queue activity.
func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Announcer) { a.metrics = m }
}

// WithPollInterval bounds how long Run waits between empty checks.
func WithPollInterval(d time.Duration) Option {
	return func(a *Announcer) { a.poll = d }
}

// WithPicker replaces the random template choice.
func WithPicker(pick func(n int) int) Option {
	return func(a *Announcer) { a.pick = pick }
}

func New(q *queue.Queue, templates Templates, logger *zap.Logger, opts ...Option) *Announcer {
	a := &Announcer{
		queue:     q,
		templates: templates,
		logger:    logger,
		poll:      defaultPollInterval,
		pick:      rand.IntN,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SetTemplates swaps the templates, e.g. after a config reload.
func (a *Announcer) SetTemplates(t Templates) {
	a.mu.Lock()
	a.templates = t
	a.mu.Unlock()
	a.logger.Info("announcement templates updated",
		zap.Int("welcome", len(t.Welcome)),
		zap.Int("follow", len(t.Follow)),
		zap.Int("gift", len(t.Gift)),
	)
}

// Sinks returns the feed callbacks that enqueue announcements.
func (a *Announcer) Sinks() feed.Sinks {
	return feed.Sinks{
		OnFollow:    a.Follow,
		OnGift:      a.Gift,
		OnEnterRoom: a.Welcome,
	}
}

// Follow enqueues a follow announcement.
func (a *Announcer) Follow(e protocol.SocialEvent) {
	a.enqueue("follow", a.choose(func(t Templates) []string { return t.Follow }),
		map[string]string{"username": e.User.Nickname}, FollowTimeout, true)
}

// Welcome enqueues a room-entry announcement.
func (a *Announcer) Welcome(e protocol.MemberEvent) {
	a.enqueue("welcome", a.choose(func(t Templates) []string { return t.Welcome }),
		map[string]string{"username": e.User.Nickname}, WelcomeTimeout, true)
}

// Gift enqueues a gift thank-you. These are never evicted for capacity.
func (a *Announcer) Gift(e protocol.GiftEvent) {
	a.enqueue("gift", a.choose(func(t Templates) []string { return t.Gift }),
		map[string]string{"username": e.User.Nickname, "gift": e.Gift.Name}, GiftTimeout, false)
}

func (a *Announcer) choose(list func(Templates) []string) string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	l := list(a.templates)
	if len(l) == 0 {
		return ""
	}
	return l[a.pick(len(l))]
}

func (a *Announcer) enqueue(kind, tpl string, vars map[string]string, timeout time.Duration, exclude bool) {
	if tpl == "" {
		return
	}
	text, err := Render(tpl, vars)
	if err != nil {
		a.logger.Warn("skipping announcement", zap.String("kind", kind), zap.Error(err))
		return
	}

	if a.queue.Add(text, timeout, exclude) {
		if a.metrics != nil {
			a.metrics.QueueAdded.Inc()
		}
		a.logger.Debug("announcement queued", zap.String("kind", kind), zap.String("text", text))
		return
	}
	if a.metrics != nil {
		a.metrics.QueueRejected.Inc()
	}
}

// Run speaks queued announcements until ctx ends. A failed announcement is
// logged and counted; the loop carries on with the next one.
func (a *Announcer) Run(ctx context.Context, speaker Speaker) {
	a.logger.Info("announcer starting")
	defer a.logger.Info("announcer stopped")

	timer := time.NewTimer(a.poll)
	defer timer.Stop()

	for {
		text, ok := a.queue.Take()
		if !ok {
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(a.poll)

			select {
			case <-ctx.Done():
				return
			case <-a.queue.Ready():
			case <-timer.C:
			}
			continue
		}

		if a.metrics != nil {
			a.metrics.QueueTaken.Inc()
		}
		if err := speaker.Speak(ctx, text); err != nil {
			if ctx.Err() != nil {
				return
			}
			if a.metrics != nil {
				a.metrics.SpeakerErrors.Inc()
			}
			a.logger.Warn("announcement not spoken", zap.String("text", text), zap.Error(err))
		}
	}
}
