package room

import (
	"errors"
	"fmt"
)

var (
	ErrNoSessionCookie = errors.New("room page did not set a ttwid cookie")
	ErrRoomClosed      = errors.New("room is closed")
	ErrRoomIDNotFound  = errors.New("numeric room id not found in page")
	ErrRateLimited     = errors.New("rate limited by live page")
	ErrPageTooLarge    = errors.New("live page exceeds size limit")
)

// ResolutionError reports why a room could not be resolved.
type ResolutionError struct {
	Room string
	Err  error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolving room %s: %v", e.Room, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}
