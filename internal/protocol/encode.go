package protocol

import (
	"fmt"

	"google.golang.org/protobuf/proto"

	"github.com/dgnsrekt/livefeed/internal/protocol/pb"
)

// EncodeMessage serializes an event back into the platform's sub-message
// form. It is the inverse of DecodeMessage for the fields the feed reads and
// is used to replay captured events and to drive fake push servers.
func EncodeMessage(ev Event) (*pb.Message, error) {
	var (
		method string
		body   proto.Message
	)
	switch e := ev.(type) {
	case LikeEvent:
		method = MethodLike
		body = &pb.LikeMessage{Count: e.Count, Total: e.Total, User: userToPB(e.User)}

	case MemberEvent:
		method = MethodMember
		body = &pb.MemberMessage{User: userToPB(e.User), MemberCount: e.MemberCount, Action: e.Action}

	case GiftEvent:
		method = MethodGift
		body = &pb.GiftMessage{
			GiftId:      e.Gift.ID,
			GroupCount:  e.GroupCount,
			RepeatCount: e.RepeatCount,
			ComboCount:  e.ComboCount,
			User:        userToPB(e.User),
			Gift: &pb.GiftStruct{
				Describe:     e.Gift.Describe,
				Id:           e.Gift.ID,
				DiamondCount: e.Gift.DiamondCount,
				Name:         e.Gift.Name,
			},
		}

	case ChatEvent:
		method = MethodChat
		body = &pb.ChatMessage{User: userToPB(e.User), Content: e.Content}

	case SocialEvent:
		method = MethodSocial
		body = &pb.SocialMessage{
			User:        userToPB(e.User),
			ShareType:   e.ShareType,
			Action:      e.Action,
			FollowCount: e.FollowCount,
		}

	case RankingEvent:
		m := &pb.RoomUserSeqMessage{
			Common:    &pb.Common{Method: MethodRoomSeq, CreateTime: e.CreateTime},
			Total:     e.Total,
			TotalUser: e.TotalUser,
		}
		for _, r := range e.Ranks {
			m.Ranks = append(m.Ranks, &pb.RoomUserSeqMessageContributor{
				Score: r.Score,
				User:  userToPB(r.User),
				Rank:  r.Rank,
			})
		}
		method, body = MethodRoomSeq, m

	case ScoreEvent:
		method = MethodFanTicket
		body = &pb.UpdateFanTicketMessage{
			RoomFanTicketCountText: fmt.Sprint(e.RoomFanTicketCount),
			RoomFanTicketCount:     e.RoomFanTicketCount,
		}

	default:
		return nil, fmt.Errorf("encode: unsupported event %T", ev)
	}

	payload, err := proto.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", method, err)
	}
	return &pb.Message{Method: method, Payload: payload}, nil
}

func userToPB(u User) *pb.User {
	out := &pb.User{Id: u.ID, ShortId: u.ShortID, Nickname: u.Nickname}
	if u.Avatar != "" {
		out.AvatarThumb = &pb.Image{UrlList: []string{u.Avatar}}
	}
	return out
}
