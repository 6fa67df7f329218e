package protocol

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"google.golang.org/protobuf/proto"

	"github.com/dgnsrekt/livefeed/internal/protocol/pb"
)

const (
	// PayloadTypeHeartbeat marks a client heartbeat frame.
	PayloadTypeHeartbeat = "hb"
	// PayloadTypeAck marks an acknowledgment frame.
	PayloadTypeAck = "ack"
	// PayloadTypeMessage marks a data frame carrying a compressed Response.
	PayloadTypeMessage = "msg"

	// Decompressed payloads larger than this are rejected.
	maxPayloadSize = 8 << 20
)

var gzipMagic = []byte{0x1f, 0x8b}

// Packet is one decoded inbound frame. Response is nil for control frames.
type Packet struct {
	Frame    *pb.PushFrame
	Response *pb.Response
}

// IsControl reports whether the packet carries no response body.
func (p *Packet) IsControl() bool {
	return p.Response == nil
}

// DecodeFrame parses an inbound binary message: envelope, gzip payload and
// the response it wraps.
func DecodeFrame(data []byte) (*Packet, error) {
	frame := &pb.PushFrame{}
	if err := proto.Unmarshal(data, frame); err != nil {
		return nil, fmt.Errorf("unmarshal push frame: %w", err)
	}

	pkt := &Packet{Frame: frame}
	if frame.GetPayloadType() == PayloadTypeHeartbeat || len(frame.GetPayload()) == 0 {
		return pkt, nil
	}

	body := frame.GetPayload()
	if frame.GetPayloadEncoding() == "gzip" || bytes.HasPrefix(body, gzipMagic) {
		var err error
		body, err = Decompress(body)
		if err != nil {
			return nil, err
		}
	}

	resp := &pb.Response{}
	if err := proto.Unmarshal(body, resp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	pkt.Response = resp
	return pkt, nil
}

// HeartbeatFrame returns the encoded client heartbeat.
func HeartbeatFrame() ([]byte, error) {
	return proto.Marshal(&pb.PushFrame{PayloadType: PayloadTypeHeartbeat})
}

// AckFrame returns the encoded acknowledgment for a response that asked for
// one. The platform expects the response's internal ext echoed as the
// payload type, together with the frame's log id.
func AckFrame(logID uint64, internalExt string) ([]byte, error) {
	return proto.Marshal(&pb.PushFrame{
		LogId:       logID,
		PayloadType: internalExt,
	})
}

// Decompress inflates a gzip payload.
func Decompress(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompress, err)
	}
	defer zr.Close()

	out, err := io.ReadAll(io.LimitReader(zr, maxPayloadSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompress, err)
	}
	if len(out) > maxPayloadSize {
		return nil, ErrPayloadTooLarge
	}
	return out, nil
}

// Compress gzips a payload the way the platform does for data frames.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("gzip write: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("gzip close: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeDataFrame wraps a response into a gzip data frame.
func EncodeDataFrame(logID uint64, resp *pb.Response) ([]byte, error) {
	body, err := proto.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("marshal response: %w", err)
	}
	payload, err := Compress(body)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(&pb.PushFrame{
		LogId:           logID,
		PayloadEncoding: "gzip",
		PayloadType:     PayloadTypeMessage,
		Payload:         payload,
	})
}
