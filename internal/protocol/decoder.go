package protocol

import (
	"sort"

	"google.golang.org/protobuf/proto"

	"github.com/dgnsrekt/livefeed/internal/protocol/pb"
)

// Sub-message method tags.
const (
	MethodLike      = "WebcastLikeMessage"
	MethodMember    = "WebcastMemberMessage"
	MethodGift      = "WebcastGiftMessage"
	MethodChat      = "WebcastChatMessage"
	MethodSocial    = "WebcastSocialMessage"
	MethodRoomSeq   = "WebcastRoomUserSeqMessage"
	MethodFanTicket = "WebcastUpdateFanTicketMessage"
)

type decodeFunc func(payload []byte) (Event, error)

var decoders = map[string]decodeFunc{
	MethodLike:      decodeLike,
	MethodMember:    decodeMember,
	MethodGift:      decodeGift,
	MethodChat:      decodeChat,
	MethodSocial:    decodeSocial,
	MethodRoomSeq:   decodeRanking,
	MethodFanTicket: decodeScore,
}

// Known reports whether a method tag has a decoder.
func Known(method string) bool {
	_, ok := decoders[method]
	return ok
}

// DecodeMessage maps a sub-message to its typed event. Unknown methods yield
// a nil event and a nil error. Failures are returned as *DecodeError.
func DecodeMessage(msg *pb.Message) (Event, error) {
	fn, ok := decoders[msg.GetMethod()]
	if !ok {
		return nil, nil
	}
	ev, err := fn(msg.GetPayload())
	if err != nil {
		return nil, &DecodeError{Method: msg.GetMethod(), Err: err}
	}
	return ev, nil
}

func userFromPB(u *pb.User) User {
	out := User{
		ID:       u.GetId(),
		ShortID:  u.GetShortId(),
		Nickname: u.GetNickname(),
	}
	if urls := u.GetAvatarThumb().GetUrlList(); len(urls) > 0 {
		out.Avatar = urls[0]
	}
	return out
}

func decodeLike(b []byte) (Event, error) {
	var m pb.LikeMessage
	if err := proto.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return LikeEvent{
		Count: m.GetCount(),
		Total: m.GetTotal(),
		User:  userFromPB(m.GetUser()),
	}, nil
}

func decodeMember(b []byte) (Event, error) {
	var m pb.MemberMessage
	if err := proto.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return MemberEvent{
		MemberCount: m.GetMemberCount(),
		Action:      m.GetAction(),
		User:        userFromPB(m.GetUser()),
	}, nil
}

func decodeGift(b []byte) (Event, error) {
	var m pb.GiftMessage
	if err := proto.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	g := m.GetGift()
	ev := GiftEvent{
		User: userFromPB(m.GetUser()),
		Gift: Gift{
			ID:           g.GetId(),
			Name:         g.GetName(),
			Describe:     g.GetDescribe(),
			DiamondCount: g.GetDiamondCount(),
		},
		GroupCount:  m.GetGroupCount(),
		RepeatCount: m.GetRepeatCount(),
		ComboCount:  m.GetComboCount(),
	}
	if ev.Gift.ID == 0 {
		ev.Gift.ID = m.GetGiftId()
	}
	return ev, nil
}

func decodeChat(b []byte) (Event, error) {
	var m pb.ChatMessage
	if err := proto.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return ChatEvent{
		User:    userFromPB(m.GetUser()),
		Content: m.GetContent(),
	}, nil
}

func decodeSocial(b []byte) (Event, error) {
	var m pb.SocialMessage
	if err := proto.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return SocialEvent{
		User:        userFromPB(m.GetUser()),
		Action:      m.GetAction(),
		ShareType:   m.GetShareType(),
		FollowCount: m.GetFollowCount(),
	}, nil
}

func decodeRanking(b []byte) (Event, error) {
	var m pb.RoomUserSeqMessage
	if err := proto.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	ev := RankingEvent{
		Total:      m.GetTotal(),
		TotalUser:  m.GetTotalUser(),
		CreateTime: m.GetCommon().GetCreateTime(),
	}
	for _, c := range m.GetRanks() {
		r := Rank{
			User:  userFromPB(c.GetUser()),
			Rank:  c.GetRank(),
			Score: c.GetScore(),
		}
		if r.User.Nickname == "" {
			r.User.Nickname = AnonymousName
		}
		ev.Ranks = append(ev.Ranks, r)
	}
	sort.SliceStable(ev.Ranks, func(i, j int) bool {
		return ev.Ranks[i].Rank < ev.Ranks[j].Rank
	})
	return ev, nil
}

func decodeScore(b []byte) (Event, error) {
	var m pb.UpdateFanTicketMessage
	if err := proto.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return ScoreEvent{RoomFanTicketCount: m.GetRoomFanTicketCount()}, nil
}
