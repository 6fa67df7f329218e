package feed

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/dgnsrekt/livefeed/internal/protocol"
)

func TestLiveData_Apply(t *testing.T) {
	l := NewLiveData()
	l.SetTitle("evening show")

	l.Apply(protocol.MemberEvent{MemberCount: 10})
	l.Apply(protocol.MemberEvent{MemberCount: 12})
	l.Apply(protocol.LikeEvent{Count: 5, Total: 500})
	l.Apply(protocol.ChatEvent{Content: "a"})
	l.Apply(protocol.ChatEvent{Content: "b"})
	l.Apply(protocol.ScoreEvent{RoomFanTicketCount: 77})
	l.Apply(protocol.GiftEvent{})
	l.Apply(protocol.SocialEvent{})

	s := l.Snapshot()
	if s.Title != "evening show" {
		t.Errorf("unexpected title: %s", s.Title)
	}
	if s.UserCount != 12 || s.LikeCount != 500 || s.MessageCount != 2 || s.Score != 77 {
		t.Errorf("unexpected snapshot: %+v", s)
	}
}

func TestLiveData_RankingReplaced(t *testing.T) {
	l := NewLiveData()
	l.Apply(protocol.RankingEvent{Ranks: []protocol.Rank{
		{User: protocol.User{ID: 1, Nickname: "a"}, Rank: 1},
		{User: protocol.User{ID: 2, Nickname: "b"}, Rank: 2},
	}})
	l.Apply(protocol.RankingEvent{Ranks: []protocol.Rank{
		{User: protocol.User{ID: 9, Nickname: "z", Avatar: "https://x/z.jpg"}, Rank: 1},
	}, TotalUser: 30})

	r := l.Ranking()
	if len(r) != 1 || r[0].ID != 9 || r[0].Avatar != "https://x/z.jpg" {
		t.Errorf("ranking not replaced: %+v", r)
	}
	if l.Snapshot().TotalUserCount != 30 {
		t.Error("total user count not updated")
	}
}

func TestSnapshot_JSONKeys(t *testing.T) {
	l := NewLiveData()
	l.now = func() time.Time { return time.Unix(1700000000, 0) }

	b, err := json.Marshal(l.Snapshot())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, k := range []string{"live_title", "time", "create_time", "user_count", "total_user_count", "like_count", "message_count", "score", "ranking"} {
		if _, ok := m[k]; !ok {
			t.Errorf("missing key %s", k)
		}
	}
	if m["time"].(float64) != 1700000000 {
		t.Errorf("unexpected time: %v", m["time"])
	}
	if m["live_title"] != DefaultTitle {
		t.Errorf("unexpected default title: %v", m["live_title"])
	}
	if _, ok := m["ranking"].([]any); !ok {
		t.Errorf("ranking should encode as an array, got %T", m["ranking"])
	}
}

func TestSnapshot_String(t *testing.T) {
	l := NewLiveData()
	l.Apply(protocol.MemberEvent{MemberCount: 3})
	l.Apply(protocol.RankingEvent{Ranks: []protocol.Rank{
		{User: protocol.User{Nickname: "a"}, Rank: 1},
		{User: protocol.User{Nickname: "b"}, Rank: 2},
	}})

	s := l.String()
	if !strings.HasPrefix(s, "在线人数: 3 |") || !strings.HasSuffix(s, "排名: a, b") {
		t.Errorf("unexpected summary: %s", s)
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	l := NewLiveData()
	l.Apply(protocol.RankingEvent{Ranks: []protocol.Rank{{User: protocol.User{Nickname: "a"}, Rank: 1}}})

	s := l.Snapshot()
	s.Ranking[0].Username = "mutated"
	if l.Ranking()[0].Username != "a" {
		t.Error("snapshot shares ranking storage with LiveData")
	}
}
