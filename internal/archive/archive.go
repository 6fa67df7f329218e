// Package archive appends periodic LiveData snapshots and a message log to
// daily JSON-lines files.
package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dgnsrekt/livefeed/internal/feed"
	"github.com/dgnsrekt/livefeed/internal/protocol"
)

const (
	DefaultInterval = 5 * time.Second

	liveSuffix = "_live.jsonl"
	msgSuffix  = "_msg.jsonl"
	dateLayout = "2006-01-02"
)

// Snapshotter provides the statistics to archive.
type Snapshotter interface {
	Snapshot() feed.Snapshot
}

// Writer buffers message log lines and flushes them together with a
// statistics snapshot on every tick.
type Writer struct {
	dir      string
	live     Snapshotter
	interval time.Duration
	now      func() time.Time
	logger   *zap.Logger

	mu      sync.Mutex
	pending []string
}

// Option configures a Writer.
type Option func(*Writer)

func WithInterval(d time.Duration) Option {
	return func(w *Writer) { w.interval = d }
}

func WithClock(now func() time.Time) Option {
	return func(w *Writer) { w.now = now }
}

func New(dir string, live Snapshotter, logger *zap.Logger, opts ...Option) *Writer {
	w := &Writer{
		dir:      dir,
		live:     live,
		interval: DefaultInterval,
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Sinks returns callbacks that record follow, chat, gift and enter events
// in the message log.
func (w *Writer) Sinks() feed.Sinks {
	return feed.Sinks{
		OnFollow: func(e protocol.SocialEvent) {
			w.Record(fmt.Sprintf("[关注回调] %s", e.User.Nickname))
		},
		OnChatMessage: func(e protocol.ChatEvent) {
			w.Record(fmt.Sprintf("[用户消息回调] %s --> %s", e.User.Nickname, e.Content))
		},
		OnGift: func(e protocol.GiftEvent) {
			w.Record(fmt.Sprintf("[礼物回调] %s --> %s", e.User.Nickname, e.Gift.Name))
		},
		OnEnterRoom: func(e protocol.MemberEvent) {
			w.Record(fmt.Sprintf("[进入直播间回调] %s", e.User.Nickname))
		},
	}
}

// Record buffers one message log line.
func (w *Writer) Record(line string) {
	w.mu.Lock()
	w.pending = append(w.pending, line)
	w.mu.Unlock()
}

// Run flushes every interval until ctx ends, then flushes once more.
func (w *Writer) Run(ctx context.Context) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("creating archive dir: %w", err)
	}

	w.logger.Info("archive writer starting",
		zap.String("dir", w.dir),
		zap.Duration("interval", w.interval),
	)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if err := w.Flush(); err != nil {
				w.logger.Warn("final archive flush failed", zap.Error(err))
			}
			w.logger.Info("archive writer stopped")
			return nil
		case <-ticker.C:
			if err := w.Flush(); err != nil {
				w.logger.Warn("archive flush failed", zap.Error(err))
			}
		}
	}
}

// Flush appends the current snapshot to the day's live file and, when any
// lines are buffered, appends them as one JSON array to the day's message
// file.
func (w *Writer) Flush() error {
	day := w.now().Format(dateLayout)

	snap, err := json.Marshal(w.live.Snapshot())
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := appendLine(w.path(day, liveSuffix), snap); err != nil {
		return err
	}

	w.mu.Lock()
	lines := w.pending
	w.pending = nil
	w.mu.Unlock()

	if len(lines) == 0 {
		return nil
	}

	msgs, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encoding messages: %w", err)
	}
	if err := appendLine(w.path(day, msgSuffix), msgs); err != nil {
		w.mu.Lock()
		w.pending = append(lines, w.pending...)
		w.mu.Unlock()
		return err
	}

	w.logger.Debug("archive flushed", zap.String("day", day), zap.Int("messages", len(lines)))
	return nil
}

func (w *Writer) path(day, suffix string) string {
	return filepath.Join(w.dir, day+suffix)
}

func appendLine(path string, b []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	if _, err := f.Write(append(b, '\n')); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
