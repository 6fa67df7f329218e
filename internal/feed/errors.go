package feed

import "errors"

var (
	ErrRetriesExhausted = errors.New("reconnect attempts exhausted")
	ErrClosed           = errors.New("feed closed")
	ErrStale            = errors.New("no message received within staleness window")
	ErrAlreadyRunning   = errors.New("feed already running")
)
