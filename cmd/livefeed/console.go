package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/dgnsrekt/livefeed/internal/feed"
	"github.com/dgnsrekt/livefeed/internal/protocol"
)

var kindColors = map[protocol.Kind]*color.Color{
	protocol.KindChat:    color.New(color.FgCyan),
	protocol.KindGift:    color.New(color.FgYellow, color.Bold),
	protocol.KindLike:    color.New(color.FgMagenta),
	protocol.KindMember:  color.New(color.FgGreen),
	protocol.KindSocial:  color.New(color.FgBlue),
	protocol.KindRanking: color.New(color.Faint),
	protocol.KindScore:   color.New(color.Faint),
}

func describe(ev protocol.Event) string {
	switch e := ev.(type) {
	case protocol.ChatEvent:
		return fmt.Sprintf("【聊天msg】[%d]%s: %s", e.User.ID, e.User.Nickname, e.Content)
	case protocol.GiftEvent:
		return fmt.Sprintf("【礼物msg】%s 送出了 %s x%d", e.User.Nickname, e.Gift.Name, e.ComboCount)
	case protocol.LikeEvent:
		return fmt.Sprintf("【点赞msg】%s 点了%d个赞", e.User.Nickname, e.Count)
	case protocol.MemberEvent:
		return fmt.Sprintf("【进场msg】[%d]%s 进入了直播间", e.User.ID, e.User.Nickname)
	case protocol.SocialEvent:
		return fmt.Sprintf("【关注msg】[%d]%s 关注了主播", e.User.ID, e.User.Nickname)
	case protocol.RankingEvent:
		return fmt.Sprintf("【统计msg】当前观看人数: %d, 累计观看人数: %d", e.Total, e.TotalUser)
	case protocol.ScoreEvent:
		return fmt.Sprintf("【粉丝团msg】粉丝团灯牌: %d", e.RoomFanTicketCount)
	}
	return fmt.Sprintf("%+v", ev)
}

// printEvents writes one coloured line per event until ctx ends or the
// subscription closes.
func printEvents(ctx context.Context, sub *feed.Subscription, out io.Writer) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sub.C:
			if !ok {
				return
			}
			line := describe(ev)
			if c, ok := kindColors[ev.Kind()]; ok {
				c.Fprintln(out, line)
			} else {
				fmt.Fprintln(out, line)
			}
		}
	}
}
