package sign

import (
	"errors"
	"fmt"
)

// Sentinel is sent in place of a signature when the oracle fails.
const Sentinel = "00000000"

var (
	ErrEmptySignature = errors.New("oracle returned an empty signature")
	ErrNoSignFunc     = errors.New("script does not define get_sign")
)

// SigningError wraps an oracle failure for a given stub.
type SigningError struct {
	Stub string
	Err  error
}

func (e *SigningError) Error() string {
	return fmt.Sprintf("signing stub %s: %v", e.Stub, e.Err)
}

func (e *SigningError) Unwrap() error {
	return e.Err
}
