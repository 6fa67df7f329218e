// Package sign produces the anti-abuse signature required to open a push
// socket. The signature algorithm itself is opaque; it is delegated to an
// Oracle.
package sign

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Oracle turns an MD5 stub into a signature token.
type Oracle interface {
	Sign(ctx context.Context, stub string) (string, error)
}

// StaticOracle always returns the same token.
type StaticOracle string

func (s StaticOracle) Sign(context.Context, string) (string, error) {
	return string(s), nil
}

// FuncOracle adapts a function to the Oracle interface.
type FuncOracle func(ctx context.Context, stub string) (string, error)

func (f FuncOracle) Sign(ctx context.Context, stub string) (string, error) {
	return f(ctx, stub)
}

// WithTimeout bounds every call to o by d. A non-positive d returns o.
func WithTimeout(o Oracle, d time.Duration) Oracle {
	if d <= 0 {
		return o
	}
	return FuncOracle(func(ctx context.Context, stub string) (string, error) {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return o.Sign(ctx, stub)
	})
}

// Signer wraps an Oracle with the sentinel fallback: a failing oracle never
// blocks a connection attempt, the platform simply rejects or tolerates the
// sentinel.
type Signer struct {
	oracle Oracle
	logger *zap.Logger
}

// NewSigner creates a Signer.
func NewSigner(oracle Oracle, logger *zap.Logger) *Signer {
	return &Signer{oracle: oracle, logger: logger}
}

// Sign returns the signature for params, or Sentinel on any failure.
func (s *Signer) Sign(ctx context.Context, params Params) string {
	token, err := s.Try(ctx, params)
	if err != nil {
		s.logger.Warn("signing failed, using sentinel", zap.Error(err))
		return Sentinel
	}
	return token
}

// Try is like Sign but reports the failure instead of substituting the
// sentinel.
func (s *Signer) Try(ctx context.Context, params Params) (string, error) {
	stub := params.Stub()
	token, err := s.oracle.Sign(ctx, stub)
	if err != nil {
		return "", &SigningError{Stub: stub, Err: err}
	}
	if token == "" {
		return "", &SigningError{Stub: stub, Err: ErrEmptySignature}
	}
	s.logger.Debug("signed", zap.String("stub", stub))
	return token, nil
}
