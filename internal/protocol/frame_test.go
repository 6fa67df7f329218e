package protocol

import (
	"errors"
	"testing"

	"google.golang.org/protobuf/proto"

	"github.com/dgnsrekt/livefeed/internal/protocol/pb"
)

func mustMarshal(t *testing.T, m proto.Message) []byte {
	t.Helper()
	data, err := proto.Marshal(m)
	if err != nil {
		t.Fatalf("marshal %T: %v", m, err)
	}
	return data
}

func TestDecodeFrame_DataFrame(t *testing.T) {
	chat, err := EncodeMessage(ChatEvent{User: User{ID: 7, Nickname: "alice"}, Content: "hello"})
	if err != nil {
		t.Fatalf("encode chat: %v", err)
	}

	resp := &pb.Response{
		Messages:    []*pb.Message{chat},
		Cursor:      "c-1",
		InternalExt: "internal_src:dim|wss_push_room_id:1",
		NeedAck:     true,
	}
	data, err := EncodeDataFrame(42, resp)
	if err != nil {
		t.Fatalf("encode frame: %v", err)
	}

	pkt, err := DecodeFrame(data)
	if err != nil {
		t.Fatalf("decode frame: %v", err)
	}

	if pkt.IsControl() {
		t.Fatal("expected data frame, got control frame")
	}
	if pkt.Frame.GetLogId() != 42 {
		t.Errorf("expected log id 42, got %d", pkt.Frame.GetLogId())
	}
	if pkt.Frame.GetPayloadType() != PayloadTypeMessage {
		t.Errorf("expected payload type %q, got %q", PayloadTypeMessage, pkt.Frame.GetPayloadType())
	}
	if !pkt.Response.GetNeedAck() {
		t.Error("expected needAck to survive the round trip")
	}
	if pkt.Response.GetInternalExt() != resp.InternalExt {
		t.Errorf("expected internal ext %q, got %q", resp.InternalExt, pkt.Response.GetInternalExt())
	}
	if msgs := pkt.Response.GetMessages(); len(msgs) != 1 || msgs[0].GetMethod() != MethodChat {
		t.Fatalf("unexpected messages: %v", msgs)
	}
}

func TestDecodeFrame_UncompressedPayload(t *testing.T) {
	body := mustMarshal(t, &pb.Response{Cursor: "plain"})
	frame := mustMarshal(t, &pb.PushFrame{LogId: 1, PayloadType: PayloadTypeMessage, Payload: body})

	pkt, err := DecodeFrame(frame)
	if err != nil {
		t.Fatalf("decode frame: %v", err)
	}
	if pkt.Response.GetCursor() != "plain" {
		t.Errorf("expected plain response, got %v", pkt.Response)
	}
}

func TestDecodeFrame_HeartbeatIsControl(t *testing.T) {
	hb, err := HeartbeatFrame()
	if err != nil {
		t.Fatalf("heartbeat: %v", err)
	}
	pkt, err := DecodeFrame(hb)
	if err != nil {
		t.Fatalf("decode heartbeat: %v", err)
	}
	if !pkt.IsControl() {
		t.Error("heartbeat frame should be a control frame")
	}
	if pkt.Frame.GetPayloadType() != PayloadTypeHeartbeat {
		t.Errorf("expected payload type hb, got %q", pkt.Frame.GetPayloadType())
	}
}

func TestDecodeFrame_CorruptGzip(t *testing.T) {
	frame := mustMarshal(t, &pb.PushFrame{
		PayloadEncoding: "gzip",
		PayloadType:     PayloadTypeMessage,
		Payload:         []byte{0x1f, 0x8b, 0x00},
	})

	_, err := DecodeFrame(frame)
	if !errors.Is(err, ErrDecompress) {
		t.Errorf("expected ErrDecompress, got %v", err)
	}
}

func TestDecodeFrame_Truncated(t *testing.T) {
	data, err := HeartbeatFrame()
	if err != nil {
		t.Fatalf("heartbeat: %v", err)
	}
	if _, err := DecodeFrame(data[:len(data)-1]); err == nil {
		t.Error("expected error for truncated frame")
	}
}

func TestAckFrame_EchoesLogIDAndInternalExt(t *testing.T) {
	data, err := AckFrame(99, "ext-token")
	if err != nil {
		t.Fatalf("ack: %v", err)
	}
	var f pb.PushFrame
	if err := proto.Unmarshal(data, &f); err != nil {
		t.Fatalf("unmarshal ack: %v", err)
	}
	if f.GetLogId() != 99 {
		t.Errorf("expected log id 99, got %d", f.GetLogId())
	}
	if f.GetPayloadType() != "ext-token" {
		t.Errorf("expected internal ext echoed as payload type, got %q", f.GetPayloadType())
	}
	if len(f.GetPayload()) != 0 {
		t.Errorf("ack should carry no payload, got %d bytes", len(f.GetPayload()))
	}
}

func TestDecodeFrame_KeepsHeaders(t *testing.T) {
	frame := mustMarshal(t, &pb.PushFrame{
		SeqId: 3,
		Headers: []*pb.HeadersEntry{
			{Key: "compress_type", Value: "gzip"},
			{Key: "im-cursor", Value: "t-1"},
		},
	})
	pkt, err := DecodeFrame(frame)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	h := pkt.Frame.GetHeaders()
	if len(h) != 2 || h[1].GetKey() != "im-cursor" || h[1].GetValue() != "t-1" {
		t.Errorf("unexpected headers: %v", h)
	}
}
