package feed

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dgnsrekt/livefeed/internal/protocol"
)

// DefaultTitle is shown until the room page has been resolved.
const DefaultTitle = "直播间标题"

// RankEntry is one row of the audience ranking.
type RankEntry struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Rank     uint64 `json:"rank"`
	Avatar   string `json:"avatar"`
}

// Snapshot is a consistent copy of LiveData.
type Snapshot struct {
	Title          string      `json:"live_title"`
	Time           int64       `json:"time"`
	CreateTime     uint64      `json:"create_time"`
	UserCount      uint64      `json:"user_count"`
	TotalUserCount int64       `json:"total_user_count"`
	LikeCount      uint64      `json:"like_count"`
	MessageCount   uint64      `json:"message_count"`
	Score          uint64      `json:"score"`
	Ranking        []RankEntry `json:"ranking"`
}

// String mirrors the console status line.
func (s Snapshot) String() string {
	names := make([]string, len(s.Ranking))
	for i, r := range s.Ranking {
		names[i] = r.Username
	}
	return fmt.Sprintf("在线人数: %d | 点赞数: %d | 消息数: %d | 总榜: %d | 排名: %s",
		s.UserCount, s.LikeCount, s.MessageCount, s.Score, strings.Join(names, ", "))
}

// LiveData aggregates room statistics. The manager's receive goroutine is
// the only writer; readers take snapshots.
type LiveData struct {
	mu   sync.RWMutex
	data Snapshot
	now  func() time.Time
}

// NewLiveData creates LiveData with the placeholder title.
func NewLiveData() *LiveData {
	return &LiveData{
		data: Snapshot{Title: DefaultTitle, Ranking: []RankEntry{}},
		now:  time.Now,
	}
}

// SetTitle records the room title found during resolution.
func (l *LiveData) SetTitle(title string) {
	if title == "" {
		return
	}
	l.mu.Lock()
	l.data.Title = title
	l.mu.Unlock()
}

// Apply folds a decoded event into the statistics.
func (l *LiveData) Apply(ev protocol.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch e := ev.(type) {
	case protocol.MemberEvent:
		l.data.UserCount = e.MemberCount
	case protocol.LikeEvent:
		l.data.LikeCount = e.Total
	case protocol.ChatEvent:
		l.data.MessageCount++
	case protocol.RankingEvent:
		ranking := make([]RankEntry, len(e.Ranks))
		for i, r := range e.Ranks {
			ranking[i] = RankEntry{
				ID:       r.User.ID,
				Username: r.User.Nickname,
				Rank:     r.Rank,
				Avatar:   r.User.Avatar,
			}
		}
		l.data.Ranking = ranking
		l.data.CreateTime = e.CreateTime
		l.data.TotalUserCount = e.TotalUser
	case protocol.ScoreEvent:
		l.data.Score = e.RoomFanTicketCount
	}
}

// Snapshot returns a copy taken under the read lock.
func (l *LiveData) Snapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s := l.data
	s.Ranking = append([]RankEntry(nil), l.data.Ranking...)
	s.Time = l.now().Unix()
	return s
}

// Ranking returns a copy of the current ranking.
func (l *LiveData) Ranking() []RankEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]RankEntry{}, l.data.Ranking...)
}

func (l *LiveData) String() string {
	return l.Snapshot().String()
}
