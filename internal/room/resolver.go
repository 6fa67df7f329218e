// Package room resolves a public room identifier into the session material
// needed to open the push socket.
package room

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the live page host.
const DefaultBaseURL = "https://live.douyin.com"

const sessionCookie = "ttwid"

// Live pages are a few hundred KB; anything past this is not a room page.
const maxPageSize = 4 << 20

// Info is the result of a successful resolution.
type Info struct {
	Room       string `json:"room" yaml:"room"`
	RoomID     string `json:"room_id" yaml:"room_id"`
	Title      string `json:"title" yaml:"title"`
	Status     string `json:"status" yaml:"status"`
	Cookie     string `json:"-" yaml:"-"`
	AnchorID   string `json:"anchor_id,omitempty" yaml:"anchor_id,omitempty"`
	AnchorName string `json:"anchor_name,omitempty" yaml:"anchor_name,omitempty"`
	HLSURL     string `json:"hls_url,omitempty" yaml:"hls_url,omitempty"`
	FLVURL     string `json:"flv_url,omitempty" yaml:"flv_url,omitempty"`
}

// Resolver interface for testability
type Resolver interface {
	Resolve(ctx context.Context, room string) (*Info, error)
}

type HTTPResolver struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	retryCount int
	retryDelay time.Duration
	extract    Extractor
	logger     *zap.Logger
}

// Option configures an HTTPResolver.
type Option func(*HTTPResolver)

// WithExtractor replaces ExtractPage.
func WithExtractor(fn Extractor) Option {
	return func(r *HTTPResolver) {
		r.extract = fn
	}
}

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) Option {
	return func(r *HTTPResolver) {
		r.httpClient = c
	}
}

func NewResolver(baseURL, userAgent string, ratePerSec float64, timeout, retryDelay time.Duration, retryCount int, logger *zap.Logger, opts ...Option) *HTTPResolver {
	transport := &http.Transport{
		MaxIdleConns:    10,
		MaxConnsPerHost: 2,
		IdleConnTimeout: 90 * time.Second,
	}

	burst := int(ratePerSec)
	if burst < 1 {
		burst = 1
	}

	r := &HTTPResolver{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		limiter:    rate.NewLimiter(rate.Limit(ratePerSec), burst),
		retryCount: retryCount,
		retryDelay: retryDelay,
		extract:    ExtractPage,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve fetches the live page for room and extracts the numeric room id,
// title and the ttwid session cookie. Failures are *ResolutionError.
func (r *HTTPResolver) Resolve(ctx context.Context, room string) (*Info, error) {
	info, err := r.resolve(ctx, room)
	if err != nil {
		return nil, &ResolutionError{Room: room, Err: err}
	}
	return info, nil
}

func (r *HTTPResolver) resolve(ctx context.Context, room string) (*Info, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	url := fmt.Sprintf("%s/%s", r.baseURL, room)
	r.logger.Debug("requesting room page", zap.String("url", url))

	var lastErr error
	for attempt := 0; attempt <= r.retryCount; attempt++ {
		if attempt > 0 {
			delay := r.retryDelay * time.Duration(1<<(attempt-1))
			r.logger.Debug("retrying room page", zap.Int("attempt", attempt), zap.Duration("delay", delay))

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		r.setHeaders(req)

		resp, err := r.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxPageSize+1))
		_ = resp.Body.Close()

		if readErr != nil {
			lastErr = readErr
			continue
		}
		if len(body) > maxPageSize {
			return nil, ErrPageTooLarge
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			lastErr = ErrRateLimited
			continue
		}

		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}

		var cookie string
		for _, c := range resp.Cookies() {
			if c.Name == sessionCookie {
				cookie = c.Value
				break
			}
		}
		if cookie == "" {
			return nil, ErrNoSessionCookie
		}

		info, err := r.extract(string(body))
		if err != nil {
			return nil, err
		}
		info.Room = room
		info.Cookie = cookie

		r.logger.Info("room resolved",
			zap.String("room", room),
			zap.String("room_id", info.RoomID),
			zap.String("title", info.Title),
			zap.String("anchor", info.AnchorName))
		return info, nil
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

func (r *HTTPResolver) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,image/apng,*/*;q=0.8")
	req.Header.Set("Accept-Language", "zh-CN,zh;q=0.9,en;q=0.8,en-GB;q=0.7,en-US;q=0.6")
	req.Header.Set("Cache-Control", "max-age=0")
	req.Header.Set("Referer", r.baseURL+"/")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	req.Header.Set("User-Agent", r.userAgent)
}
