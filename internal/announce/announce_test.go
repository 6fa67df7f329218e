package announce

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"go.uber.org/zap"

	"github.com/dgnsrekt/livefeed/internal/metrics"
	"github.com/dgnsrekt/livefeed/internal/protocol"
	"github.com/dgnsrekt/livefeed/internal/queue"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		tpl     string
		want    string
		wantErr bool
	}{
		{"plain", "欢迎$username来到直播间", "欢迎alice来到直播间", false},
		{"braced", "谢谢${username}的${gift}", "谢谢alice的Rose", false},
		{"escaped dollar", "$$5 from $username", "$5 from alice", false},
		{"no placeholders", "hello", "hello", false},
		{"unknown placeholder", "hi $nickname", "", true},
	}

	vars := map[string]string{"username": "alice", "gift": "Rose"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.tpl, vars)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Render() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func newTestAnnouncer(q *queue.Queue, tpl Templates) *Announcer {
	return New(q, tpl, zap.NewNop(), WithPicker(func(int) int { return 0 }), WithPollInterval(10*time.Millisecond))
}

func TestAnnouncer_EnqueuesWithKindPolicy(t *testing.T) {
	q := queue.New()
	a := newTestAnnouncer(q, Templates{
		Welcome: []string{"欢迎$username"},
		Follow:  []string{"感谢$username的关注"},
		Gift:    []string{"感谢$username送出的$gift"},
	})

	sinks := a.Sinks()
	sinks.OnEnterRoom(protocol.MemberEvent{User: protocol.User{Nickname: "amy"}})
	sinks.OnFollow(protocol.SocialEvent{User: protocol.User{Nickname: "bob"}})
	sinks.OnGift(protocol.GiftEvent{User: protocol.User{Nickname: "cat"}, Gift: protocol.Gift{Name: "小心心"}})

	pending, _ := q.Snapshot()
	if len(pending) != 3 {
		t.Fatalf("expected 3 announcements, got %d", len(pending))
	}

	want := []struct {
		text    string
		timeout time.Duration
		exclude bool
	}{
		{"欢迎amy", WelcomeTimeout, true},
		{"感谢bob的关注", FollowTimeout, true},
		{"感谢cat送出的小心心", GiftTimeout, false},
	}
	for i, w := range want {
		e := pending[i]
		if e.Payload != w.text || e.Timeout != w.timeout || e.Exclude != w.exclude {
			t.Errorf("entry %d: expected %+v, got %+v", i, w, e)
		}
	}
}

func TestAnnouncer_DuplicateSuppressed(t *testing.T) {
	q := queue.New()
	a := newTestAnnouncer(q, Templates{Welcome: []string{"欢迎$username"}})

	for i := 0; i < 3; i++ {
		a.Welcome(protocol.MemberEvent{User: protocol.User{Nickname: "amy"}})
	}
	if q.Len() != 1 {
		t.Errorf("expected duplicates suppressed, got %d", q.Len())
	}
}

func TestAnnouncer_EmptyTemplatesDisableKind(t *testing.T) {
	q := queue.New()
	a := newTestAnnouncer(q, Templates{})

	a.Follow(protocol.SocialEvent{User: protocol.User{Nickname: "bob"}})
	if q.Len() != 0 {
		t.Errorf("expected nothing queued, got %d", q.Len())
	}

	a.SetTemplates(Templates{Follow: []string{"thanks $username"}})
	a.Follow(protocol.SocialEvent{User: protocol.User{Nickname: "bob"}})
	if q.Len() != 1 {
		t.Errorf("expected reload to take effect, got %d", q.Len())
	}
}

type recordingSpeaker struct {
	mu    sync.Mutex
	said  []string
	fail  error
	spoke chan struct{}
}

func (s *recordingSpeaker) Speak(_ context.Context, text string) error {
	s.mu.Lock()
	s.said = append(s.said, text)
	s.mu.Unlock()
	select {
	case s.spoke <- struct{}{}:
	default:
	}
	return s.fail
}

func TestAnnouncer_RunSpeaksInOrder(t *testing.T) {
	q := queue.New()
	a := newTestAnnouncer(q, Templates{Welcome: []string{"hi $username"}})
	sp := &recordingSpeaker{spoke: make(chan struct{}, 10)}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		a.Run(ctx, sp)
		close(done)
	}()

	for _, n := range []string{"a", "b", "c"} {
		a.Welcome(protocol.MemberEvent{User: protocol.User{Nickname: n}})
	}

	deadline := time.After(5 * time.Second)
	for i := 0; i < 3; i++ {
		select {
		case <-sp.spoke:
		case <-deadline:
			t.Fatal("announcements not spoken")
		}
	}
	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop on cancel")
	}

	sp.mu.Lock()
	defer sp.mu.Unlock()
	if len(sp.said) != 3 || sp.said[0] != "hi a" || sp.said[2] != "hi c" {
		t.Errorf("unexpected speech: %v", sp.said)
	}
}

func TestAnnouncer_RunSurvivesSpeakerError(t *testing.T) {
	q := queue.New()
	q.Add("first", time.Minute, true)
	q.Add("second", time.Minute, true)

	mt := metrics.New()
	a := New(q, Templates{}, zap.NewNop(), WithMetrics(mt), WithPollInterval(10*time.Millisecond))
	sp := &recordingSpeaker{fail: errors.New("audio device lost"), spoke: make(chan struct{}, 2)}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		a.Run(ctx, sp)
		close(done)
	}()

	deadline := time.After(5 * time.Second)
	for i := 0; i < 2; i++ {
		select {
		case <-sp.spoke:
		case <-deadline:
			t.Fatal("speaker error stopped the announcer")
		}
	}
	select {
	case <-done:
		t.Fatal("run returned while its context was live")
	default:
	}

	cancel()
	<-done
	var m dto.Metric
	_ = mt.SpeakerErrors.Write(&m)
	if n := m.GetCounter().GetValue(); n != 2 {
		t.Errorf("expected two speaker errors, got %v", n)
	}
}

func TestLogSpeaker(t *testing.T) {
	if err := (LogSpeaker{Logger: zap.NewNop()}).Speak(context.Background(), "hello"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
