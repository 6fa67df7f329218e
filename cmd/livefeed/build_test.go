package main

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dgnsrekt/livefeed/internal/announce"
	"github.com/dgnsrekt/livefeed/internal/config"
	"github.com/dgnsrekt/livefeed/internal/queue"
)

func TestCheckSpeaker(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.AnnounceConfig
		serving bool
		wantErr bool
	}{
		{"external with server", config.AnnounceConfig{Enabled: true, Speaker: config.SpeakerExternal}, true, false},
		{"external without server", config.AnnounceConfig{Enabled: true, Speaker: config.SpeakerExternal}, false, true},
		{"external but announce off", config.AnnounceConfig{Speaker: config.SpeakerExternal}, false, false},
		{"log speaker", config.AnnounceConfig{Enabled: true, Speaker: config.SpeakerLog}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkSpeaker(&tt.cfg, tt.serving)
			if (err != nil) != tt.wantErr {
				t.Fatalf("checkSpeaker() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), "--server") {
				t.Errorf("expected hint about --server, got %v", err)
			}
		})
	}
}

type brokenSpeaker struct {
	calls chan struct{}
}

func (s brokenSpeaker) Speak(context.Context, string) error {
	select {
	case s.calls <- struct{}{}:
	default:
	}
	return errors.New("no audio device")
}

func TestGoAnnounce_SpeakerFailureKeepsGroupAlive(t *testing.T) {
	q := queue.New()
	q.Add("welcome", time.Minute, true)
	ann := announce.New(q, announce.Templates{}, zap.NewNop(), announce.WithPollInterval(10*time.Millisecond))
	sp := brokenSpeaker{calls: make(chan struct{}, 1)}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	goAnnounce(gctx, g, ann, sp)

	select {
	case <-sp.calls:
	case <-time.After(5 * time.Second):
		t.Fatal("speaker never called")
	}
	// Give a failing announcer the chance to cancel its siblings.
	time.Sleep(50 * time.Millisecond)
	if err := gctx.Err(); err != nil {
		t.Fatalf("speaker failure cancelled the group: %v", err)
	}

	cancel()
	if err := g.Wait(); err != nil {
		t.Errorf("expected clean group exit, got %v", err)
	}
}
