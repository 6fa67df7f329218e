package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Notifier is told when a live feed cannot be kept open.
type Notifier interface {
	SendConnectionFailure(ctx context.Context, room string, attempts int, err error) error
}

// Client implements the ntfy notification client.
type Client struct {
	httpClient *http.Client
	config     *Config
	logger     *zap.Logger
}

// NewClient creates a new ntfy client.
func NewClient(cfg *Config, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
	}
}

// SendConnectionFailure reports that reconnect attempts for room were
// exhausted. Failures are always sent at high priority.
func (c *Client) SendConnectionFailure(ctx context.Context, room string, attempts int, err error) error {
	if !c.config.Enabled {
		return nil
	}

	title := fmt.Sprintf("Live feed lost: %s", room)
	message := FormatConnectionFailure(room, attempts, err)
	tags := c.config.Tags + ",x"

	return c.send(ctx, title, message, tags, "high")
}

func (c *Client) send(ctx context.Context, title, message, tags, priority string) error {
	url := fmt.Sprintf("%s/%s", strings.TrimSuffix(c.config.Server, "/"), c.config.Topic)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(message))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Title", title)
	req.Header.Set("Priority", priority)
	req.Header.Set("Tags", tags)

	if c.config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("failed to send notification", zap.Error(err))
		return fmt.Errorf("sending notification: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("notification failed",
			zap.Int("status", resp.StatusCode),
			zap.String("url", url),
		)
		return fmt.Errorf("notification failed with status: %d", resp.StatusCode)
	}

	c.logger.Debug("notification sent", zap.String("title", title))
	return nil
}

// NoopNotifier is used when notifications are disabled.
type NoopNotifier struct{}

func (NoopNotifier) SendConnectionFailure(context.Context, string, int, error) error {
	return nil
}

// New creates the appropriate notifier based on config.
func New(cfg *Config, logger *zap.Logger) Notifier {
	if cfg == nil || !cfg.Enabled {
		return NoopNotifier{}
	}
	return NewClient(cfg, logger)
}
