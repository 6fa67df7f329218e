package notify

import (
	"errors"
	"fmt"
)

// Config holds ntfy notification settings. It is populated from the
// notify section of the application config, which also honours the
// NTFY_* environment variables.
type Config struct {
	Enabled  bool   `mapstructure:"enabled"`
	Server   string `mapstructure:"server"`   // default https://ntfy.sh
	Topic    string `mapstructure:"topic"`    // required when enabled
	Priority string `mapstructure:"priority"` // min, low, default, high, urgent
	Tags     string `mapstructure:"tags"`     // comma-separated emoji tags
	Token    string `mapstructure:"token"`    // optional, for private topics
}

var validPriorities = map[string]bool{
	"min": true, "low": true, "default": true, "high": true, "urgent": true,
}

// Validate checks configuration is valid when enabled.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Topic == "" {
		return errors.New("notify.topic (NTFY_TOPIC) is required when notifications are enabled")
	}
	if !validPriorities[c.Priority] {
		return fmt.Errorf("invalid notify.priority: %s (valid: min, low, default, high, urgent)", c.Priority)
	}
	return nil
}
