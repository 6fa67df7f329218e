package protocol

// Kind identifies a decoded event variant.
type Kind string

const (
	KindLike    Kind = "like"
	KindMember  Kind = "member"
	KindGift    Kind = "gift"
	KindChat    Kind = "chat"
	KindSocial  Kind = "social"
	KindRanking Kind = "ranking"
	KindScore   Kind = "score"
)

// AnonymousName is used for ranked users that carry no nickname.
const AnonymousName = "匿名用户"

// Event is the closed set of decoded feed events.
type Event interface {
	Kind() Kind
	event()
}

// User is the subset of the platform's user record the feed consumes.
type User struct {
	ID       uint64 `json:"id"`
	ShortID  uint64 `json:"short_id,omitempty"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar,omitempty"`
}

// Gift describes the gift item of a GiftEvent.
type Gift struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	Describe     string `json:"describe,omitempty"`
	DiamondCount uint32 `json:"diamond_count,omitempty"`
}

// LikeEvent reports a like and the room's running like total.
type LikeEvent struct {
	Count uint64 `json:"count"`
	Total uint64 `json:"total"`
	User  User   `json:"user"`
}

// MemberEvent reports a user entering the room.
type MemberEvent struct {
	MemberCount uint64 `json:"member_count"`
	Action      uint64 `json:"action,omitempty"`
	User        User   `json:"user"`
}

// GiftEvent reports a gift sent to the anchor.
type GiftEvent struct {
	User        User   `json:"user"`
	Gift        Gift   `json:"gift"`
	GroupCount  uint64 `json:"group_count,omitempty"`
	RepeatCount uint64 `json:"repeat_count,omitempty"`
	ComboCount  uint64 `json:"combo_count,omitempty"`
}

// ChatEvent is a chat (danmaku) message.
type ChatEvent struct {
	User    User   `json:"user"`
	Content string `json:"content"`
}

// SocialEvent reports a follow or share.
type SocialEvent struct {
	User        User   `json:"user"`
	Action      uint64 `json:"action,omitempty"`
	ShareType   uint64 `json:"share_type,omitempty"`
	FollowCount uint64 `json:"follow_count,omitempty"`
}

// Rank is one contributor in a ranking snapshot.
type Rank struct {
	User  User   `json:"user"`
	Rank  uint64 `json:"rank"`
	Score uint64 `json:"score,omitempty"`
}

// RankingEvent is a full audience ranking snapshot. Ranks are sorted
// ascending by Rank.
type RankingEvent struct {
	Ranks      []Rank `json:"ranks"`
	Total      int64  `json:"total"`
	TotalUser  int64  `json:"total_user"`
	CreateTime uint64 `json:"create_time"`
}

// ScoreEvent carries the room's aggregate fan ticket count.
type ScoreEvent struct {
	RoomFanTicketCount uint64 `json:"room_fan_ticket_count"`
}

func (LikeEvent) Kind() Kind    { return KindLike }
func (MemberEvent) Kind() Kind  { return KindMember }
func (GiftEvent) Kind() Kind    { return KindGift }
func (ChatEvent) Kind() Kind    { return KindChat }
func (SocialEvent) Kind() Kind  { return KindSocial }
func (RankingEvent) Kind() Kind { return KindRanking }
func (ScoreEvent) Kind() Kind   { return KindScore }

func (LikeEvent) event()    {}
func (MemberEvent) event()  {}
func (GiftEvent) event()    {}
func (ChatEvent) event()    {}
func (SocialEvent) event()  {}
func (RankingEvent) event() {}
func (ScoreEvent) event()   {}
