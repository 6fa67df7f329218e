package protocol

import (
	"errors"
	"fmt"
)

var (
	ErrDecompress      = errors.New("decompress payload")
	ErrPayloadTooLarge = errors.New("decompressed payload too large")
)

// DecodeError reports a sub-message that could not be decoded. It is
// scoped to that one message; siblings in the same response are unaffected.
type DecodeError struct {
	Method string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Method, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
