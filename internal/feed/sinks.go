package feed

import (
	"github.com/dgnsrekt/livefeed/internal/protocol"
)

// Sinks are optional callbacks run synchronously on the decode path. A nil
// field is skipped. Each is invoked at most once per decoded event.
type Sinks struct {
	OnFollow      func(protocol.SocialEvent)
	OnChatMessage func(protocol.ChatEvent)
	OnGift        func(protocol.GiftEvent)
	OnEnterRoom   func(protocol.MemberEvent)
}

// dispatch routes ev to its sink. It reports whether a sink ran.
func (s Sinks) dispatch(ev protocol.Event) bool {
	switch e := ev.(type) {
	case protocol.SocialEvent:
		if s.OnFollow != nil {
			s.OnFollow(e)
			return true
		}
	case protocol.ChatEvent:
		if s.OnChatMessage != nil {
			s.OnChatMessage(e)
			return true
		}
	case protocol.GiftEvent:
		if s.OnGift != nil {
			s.OnGift(e)
			return true
		}
	case protocol.MemberEvent:
		if s.OnEnterRoom != nil {
			s.OnEnterRoom(e)
			return true
		}
	}
	return false
}

// MergeSinks combines several Sinks into one that calls each non-nil
// callback in argument order.
func MergeSinks(all ...Sinks) Sinks {
	var out Sinks
	for _, s := range all {
		out.OnFollow = chain(out.OnFollow, s.OnFollow)
		out.OnChatMessage = chain(out.OnChatMessage, s.OnChatMessage)
		out.OnGift = chain(out.OnGift, s.OnGift)
		out.OnEnterRoom = chain(out.OnEnterRoom, s.OnEnterRoom)
	}
	return out
}

func chain[E any](a, b func(E)) func(E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(e E) {
		a(e)
		b(e)
	}
}
