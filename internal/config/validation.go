package config

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// ValidationErrors collects every configuration problem found.
type ValidationErrors struct {
	Problems []string
}

// HasErrors returns true if any validation errors exist
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Problems) > 0
}

func (e *ValidationErrors) add(format string, args ...any) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}

// Error formats all validation errors into a clear message
func (e *ValidationErrors) Error() string {
	var sb strings.Builder
	sb.WriteString("configuration validation failed:\n")
	for _, p := range e.Problems {
		sb.WriteString(fmt.Sprintf("  - %s\n", p))
	}
	return sb.String()
}

func (c *Config) Validate() error {
	errs := &ValidationErrors{}

	if c.Room.RatePerSecond <= 0 {
		errs.add("room.rate_per_second must be > 0")
	}
	if c.Room.RetryCount < 0 {
		errs.add("room.retry_count must be >= 0")
	}

	conn := c.Connection
	if conn.HeartbeatInterval <= 0 {
		errs.add("connection.heartbeat_interval must be > 0")
	}
	if conn.StaleAfter <= conn.HeartbeatInterval {
		errs.add("connection.stale_after (%s) must exceed heartbeat_interval (%s)", conn.StaleAfter, conn.HeartbeatInterval)
	}
	if conn.Backoff.Max < conn.Backoff.Initial {
		errs.add("connection.backoff.max must be >= backoff.initial")
	}
	if conn.Backoff.MaxRetries < 0 {
		errs.add("connection.backoff.max_retries must be >= 0 (0 = unlimited)")
	}

	switch c.Signing.Mode {
	case SigningStatic:
	case SigningScript:
		if c.Signing.Script == "" {
			errs.add("signing.script is required when signing.mode is %q", SigningScript)
		}
	case SigningCommand:
		if c.Signing.Command == "" {
			errs.add("signing.command is required when signing.mode is %q", SigningCommand)
		}
	default:
		errs.add("invalid signing.mode: %q (valid: static, script, command)", c.Signing.Mode)
	}

	if c.Queue.Capacity < 1 {
		errs.add("queue.capacity must be >= 1")
	}

	if c.Announce.Enabled {
		switch c.Announce.Speaker {
		case SpeakerLog:
		case SpeakerCommand:
			if c.Announce.Command == "" {
				errs.add("announce.command is required when announce.speaker is %q", SpeakerCommand)
			}
		case SpeakerExternal:
		default:
			errs.add("invalid announce.speaker: %q (valid: log, command, external)", c.Announce.Speaker)
		}
	}

	if c.Archive.Enabled {
		if c.Archive.Directory == "" {
			errs.add("archive.directory is required when archiving is enabled")
		}
		if c.Archive.Interval <= 0 {
			errs.add("archive.interval must be > 0")
		}
	}

	if c.Server.Enabled && c.Server.Addr == "" {
		errs.add("server.addr is required when the server is enabled")
	}

	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		errs.add("invalid logging.level: %q", c.Logging.Level)
	}

	if err := c.Notify.Validate(); err != nil {
		errs.add("%v", err)
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
