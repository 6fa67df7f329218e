package archive

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dgnsrekt/livefeed/internal/feed"
	"github.com/dgnsrekt/livefeed/internal/protocol"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines
}

func fixedClock() time.Time {
	return time.Date(2024, 3, 9, 21, 30, 0, 0, time.Local)
}

func TestFlush_WritesDailyFiles(t *testing.T) {
	dir := t.TempDir()
	live := feed.NewLiveData()
	live.SetTitle("archive test")
	live.Apply(protocol.LikeEvent{Total: 10})

	w := New(dir, live, zap.NewNop(), WithClock(fixedClock))
	sinks := w.Sinks()
	sinks.OnChatMessage(protocol.ChatEvent{User: protocol.User{Nickname: "amy"}, Content: "hello"})
	sinks.OnGift(protocol.GiftEvent{User: protocol.User{Nickname: "bob"}, Gift: protocol.Gift{Name: "Rose"}})

	if err := w.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("second flush: %v", err)
	}

	liveLines := readLines(t, filepath.Join(dir, "2024-03-09_live.jsonl"))
	if len(liveLines) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(liveLines))
	}
	var snap feed.Snapshot
	if err := json.Unmarshal([]byte(liveLines[0]), &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if snap.Title != "archive test" || snap.LikeCount != 10 {
		t.Errorf("unexpected snapshot: %+v", snap)
	}

	msgLines := readLines(t, filepath.Join(dir, "2024-03-09_msg.jsonl"))
	if len(msgLines) != 1 {
		t.Fatalf("empty buffer should not be written, got %d lines", len(msgLines))
	}
	var msgs []string
	if err := json.Unmarshal([]byte(msgLines[0]), &msgs); err != nil {
		t.Fatalf("decode messages: %v", err)
	}
	if len(msgs) != 2 || msgs[0] != "[用户消息回调] amy --> hello" || msgs[1] != "[礼物回调] bob --> Rose" {
		t.Errorf("unexpected messages: %v", msgs)
	}
}

func TestRun_FinalFlushOnCancel(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "live_data")
	w := New(dir, feed.NewLiveData(), zap.NewNop(), WithClock(fixedClock), WithInterval(time.Hour))
	w.Record("[关注回调] amy")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("run: %v", err)
	}

	if lines := readLines(t, filepath.Join(dir, "2024-03-09_msg.jsonl")); len(lines) != 1 {
		t.Errorf("expected final flush, got %d lines", len(lines))
	}
}
