package feed

import "time"

// BackoffConfig bounds the reconnect delay.
type BackoffConfig struct {
	Initial    time.Duration `mapstructure:"initial"`
	Max        time.Duration `mapstructure:"max"`
	MaxRetries int           `mapstructure:"max_retries"` // 0 = unlimited
}

// backoff doubles its delay after each failed attempt, capped at Max.
type backoff struct {
	cfg      BackoffConfig
	next     time.Duration
	attempts int
}

func newBackoff(cfg BackoffConfig) *backoff {
	if cfg.Initial <= 0 {
		cfg.Initial = time.Second
	}
	if cfg.Max < cfg.Initial {
		cfg.Max = cfg.Initial
	}
	return &backoff{cfg: cfg, next: cfg.Initial}
}

// Next returns the delay before the next attempt, or false once the retry
// budget is spent.
func (b *backoff) Next() (time.Duration, bool) {
	if b.cfg.MaxRetries > 0 && b.attempts >= b.cfg.MaxRetries {
		return 0, false
	}
	b.attempts++

	d := b.next
	b.next *= 2
	if b.next > b.cfg.Max {
		b.next = b.cfg.Max
	}
	return d, true
}

// Reset is called after a session opened successfully.
func (b *backoff) Reset() {
	b.next = b.cfg.Initial
	b.attempts = 0
}

// Attempts reports consecutive failed attempts since the last reset.
func (b *backoff) Attempts() int {
	return b.attempts
}
