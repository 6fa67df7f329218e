package server

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dgnsrekt/livefeed/internal/feed"
	"github.com/dgnsrekt/livefeed/internal/metrics"
	"github.com/dgnsrekt/livefeed/internal/protocol"
	"github.com/dgnsrekt/livefeed/internal/queue"
	"github.com/dgnsrekt/livefeed/internal/room"
)

type fakeFeed struct {
	live  *feed.LiveData
	bus   *feed.Bus
	state feed.State
	info  *room.Info
	last  time.Time
}

func newFakeFeed() *fakeFeed {
	return &fakeFeed{
		live:  feed.NewLiveData(),
		bus:   feed.NewBus(zap.NewNop()),
		state: feed.StateStreaming,
		info:  &room.Info{Room: "646454278948", RoomID: "7380000000000000001", Title: "evening stream"},
		last:  time.Unix(1700000000, 0),
	}
}

func (f *fakeFeed) LiveData() *feed.LiveData { return f.live }
func (f *fakeFeed) Bus() *feed.Bus           { return f.bus }
func (f *fakeFeed) State() feed.State        { return f.state }
func (f *fakeFeed) Room() *room.Info         { return f.info }
func (f *fakeFeed) SessionID() string        { return "session-1" }
func (f *fakeFeed) LastMessage() time.Time   { return f.last }

func newTestServer(f Feed, q *queue.Queue, m *metrics.Metrics) *httptest.Server {
	s := NewServer(f, q, m, zap.NewNop())
	return httptest.NewServer(NewRouter(s, zap.NewNop()))
}

func TestGetLive(t *testing.T) {
	f := newFakeFeed()
	f.live.SetTitle("evening stream")
	f.live.Apply(protocol.LikeEvent{Count: 1, Total: 321})
	srv := newTestServer(f, nil, nil)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/live")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var snap feed.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.Title != "evening stream" {
		t.Errorf("expected title, got %q", snap.Title)
	}
	if snap.LikeCount != 321 {
		t.Errorf("expected 321 likes, got %d", snap.LikeCount)
	}
}

func TestGetRanking_EmptyIsArray(t *testing.T) {
	srv := newTestServer(newFakeFeed(), nil, nil)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/live/ranking")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(raw) != "[]" {
		t.Errorf("expected empty array, got %s", raw)
	}
}

func TestGetState(t *testing.T) {
	srv := newTestServer(newFakeFeed(), nil, nil)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/state")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["state"] != feed.StateStreaming.String() {
		t.Errorf("expected state %q, got %v", feed.StateStreaming.String(), body["state"])
	}
	if body["session_id"] != "session-1" {
		t.Errorf("unexpected session id: %v", body["session_id"])
	}
	roomInfo, _ := body["room"].(map[string]any)
	if roomInfo["room_id"] != "7380000000000000001" {
		t.Errorf("unexpected room: %v", body["room"])
	}
}

func TestQueueEndpoints(t *testing.T) {
	q := queue.New()
	q.Add("welcome alice", 10*time.Second, true)
	m := metrics.New()
	srv := newTestServer(newFakeFeed(), q, m)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/queue")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	var listed QueueResponse
	if err := json.NewDecoder(resp.Body).Decode(&listed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	resp.Body.Close()
	if len(listed.Pending) != 1 || listed.Pending[0].Payload != "welcome alice" {
		t.Fatalf("unexpected pending: %+v", listed.Pending)
	}

	resp, err = http.Post(srv.URL+"/queue/take", "application/json", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	var took takeResponse
	if err := json.NewDecoder(resp.Body).Decode(&took); err != nil {
		t.Fatalf("decode: %v", err)
	}
	resp.Body.Close()
	if took.Payload != "welcome alice" {
		t.Errorf("expected payload, got %q", took.Payload)
	}

	resp, err = http.Post(srv.URL+"/queue/take", "application/json", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("expected 204 on empty queue, got %d", resp.StatusCode)
	}
}

func TestQueueDisabled(t *testing.T) {
	srv := newTestServer(newFakeFeed(), nil, nil)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/queue/take", "application/json", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	m := metrics.New()
	m.Reconnects.Inc()
	srv := newTestServer(newFakeFeed(), nil, m)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	scanner := bufio.NewScanner(resp.Body)
	found := false
	for scanner.Scan() {
		if strings.HasPrefix(scanner.Text(), "livefeed_reconnects_total") {
			found = true
		}
	}
	if !found {
		t.Error("expected livefeed_reconnects_total in metrics output")
	}
}

func TestHandleEvents_StreamsFilteredEvents(t *testing.T) {
	f := newFakeFeed()
	srv := newTestServer(f, nil, nil)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/events?kinds=chat", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("expected event stream, got %q", ct)
	}

	reader := bufio.NewReader(resp.Body)
	events := readEventNames(t, reader, 1)
	if events[0] != "snapshot" {
		t.Fatalf("expected initial snapshot, got %q", events[0])
	}

	// The subscription is registered before the snapshot is written.
	f.bus.Publish(protocol.GiftEvent{User: protocol.User{Nickname: "bob"}})
	f.bus.Publish(protocol.ChatEvent{User: protocol.User{Nickname: "alice"}, Content: "hi"})

	events = readEventNames(t, reader, 1)
	if events[0] != string(protocol.KindChat) {
		t.Errorf("expected chat event after filter, got %q", events[0])
	}
}

func readEventNames(t *testing.T, r *bufio.Reader, n int) []string {
	t.Helper()
	var names []string
	for len(names) < n {
		line, err := r.ReadString('\n')
		if err != nil {
			t.Fatalf("reading stream: %v", err)
		}
		if name, ok := strings.CutPrefix(strings.TrimSpace(line), "event: "); ok {
			names = append(names, name)
		}
	}
	return names
}
