// Package proto contains the protobuf definitions of the push wire protocol.
package proto

//go:generate protoc --proto_path=. --go_out=../internal/protocol/pb --go_opt=paths=source_relative webcast.proto
