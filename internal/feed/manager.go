// Package feed owns the live push socket: it resolves the room, signs and
// opens the connection, keeps it alive with heartbeats, decodes frames into
// events and reconnects with backoff.
package feed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/dgnsrekt/livefeed/internal/metrics"
	"github.com/dgnsrekt/livefeed/internal/notify"
	"github.com/dgnsrekt/livefeed/internal/protocol"
	"github.com/dgnsrekt/livefeed/internal/protocol/pb"
	"github.com/dgnsrekt/livefeed/internal/room"
	"github.com/dgnsrekt/livefeed/internal/sign"
)

// Config holds connection tuning. Zero fields take the defaults below.
type Config struct {
	PushURL           string        `mapstructure:"push_url"`
	UserAgent         string        `mapstructure:"user_agent"`
	HeartbeatInterval time.Duration `mapstructure:"heartbeat_interval"`
	StaleAfter        time.Duration `mapstructure:"stale_after"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	HandshakeTimeout  time.Duration `mapstructure:"handshake_timeout"`
	MaxMessageSize    int64         `mapstructure:"max_message_size"`
	Backoff           BackoffConfig `mapstructure:"backoff"`
}

const (
	DefaultHeartbeatInterval = 10 * time.Second
	DefaultStaleAfter        = 60 * time.Second
	defaultWriteTimeout      = 10 * time.Second
	defaultHandshakeTimeout  = 15 * time.Second
	defaultMaxMessageSize    = 8 << 20
)

func (c Config) withDefaults() Config {
	if c.PushURL == "" {
		c.PushURL = DefaultPushURL
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.HeartbeatInterval <= 0 {
		c.HeartbeatInterval = DefaultHeartbeatInterval
	}
	if c.StaleAfter <= 0 {
		c.StaleAfter = DefaultStaleAfter
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = defaultWriteTimeout
	}
	if c.HandshakeTimeout <= 0 {
		c.HandshakeTimeout = defaultHandshakeTimeout
	}
	if c.MaxMessageSize <= 0 {
		c.MaxMessageSize = defaultMaxMessageSize
	}
	if c.Backoff.Initial <= 0 {
		c.Backoff.Initial = time.Second
	}
	if c.Backoff.Max <= 0 {
		c.Backoff.Max = time.Minute
	}
	return c
}

// Manager drives one room's push connection.
type Manager struct {
	cfg      Config
	resolver room.Resolver
	signer   *sign.Signer
	dialer   *websocket.Dialer
	live     *LiveData
	sinks    Sinks
	bus      *Bus
	notifier notify.Notifier
	metrics  *metrics.Metrics
	logger   *zap.Logger

	state       atomic.Int32
	lastMessage atomic.Int64 // unix nanos
	info        atomic.Pointer[room.Info]
	session     atomic.Pointer[string]

	mu      sync.Mutex
	conn    *websocket.Conn
	running bool
	closed  bool
	done    chan struct{}
	wait    chan struct{}
	runErr  error

	writeMu   sync.Mutex
	closeOnce sync.Once
}

// Option configures a Manager.
type Option func(*Manager)

func WithSinks(s Sinks) Option {
	return func(m *Manager) { m.sinks = s }
}

func WithBus(b *Bus) Option {
	return func(m *Manager) { m.bus = b }
}

func WithLiveData(l *LiveData) Option {
	return func(m *Manager) { m.live = l }
}

func WithNotifier(n notify.Notifier) Option {
	return func(m *Manager) { m.notifier = n }
}

func WithMetrics(mt *metrics.Metrics) Option {
	return func(m *Manager) { m.metrics = mt }
}

func WithDialer(d *websocket.Dialer) Option {
	return func(m *Manager) { m.dialer = d }
}

// NewManager creates an idle Manager.
func NewManager(cfg Config, resolver room.Resolver, signer *sign.Signer, logger *zap.Logger, opts ...Option) *Manager {
	cfg = cfg.withDefaults()
	m := &Manager{
		cfg:      cfg,
		resolver: resolver,
		signer:   signer,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: cfg.HandshakeTimeout,
		},
		notifier: notify.NoopNotifier{},
		logger:   logger,
		done:     make(chan struct{}),
		wait:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.live == nil {
		m.live = NewLiveData()
	}
	if m.bus == nil {
		m.bus = NewBus(logger)
	}
	if m.metrics == nil {
		m.metrics = metrics.New()
	}
	m.bus.OnDrop(m.metrics.BusDropped.Inc)
	return m
}

// LiveData returns the aggregated room statistics.
func (m *Manager) LiveData() *LiveData { return m.live }

// Bus returns the event bus.
func (m *Manager) Bus() *Bus { return m.bus }

// State returns the current lifecycle state.
func (m *Manager) State() State { return State(m.state.Load()) }

// Room returns the last resolved room, or nil.
func (m *Manager) Room() *room.Info { return m.info.Load() }

// SessionID identifies the current socket session in logs.
func (m *Manager) SessionID() string {
	if id := m.session.Load(); id != nil {
		return *id
	}
	return ""
}

// LastMessage is the arrival time of the most recent frame, or the zero
// time when no session has opened yet.
func (m *Manager) LastMessage() time.Time {
	ns := m.lastMessage.Load()
	if ns == 0 {
		return time.Time{}
	}
	return time.Unix(0, ns)
}

func (m *Manager) setState(s State) {
	old := State(m.state.Swap(int32(s)))
	if old == s {
		return
	}
	m.metrics.State.Set(float64(s))
	m.logger.Info("state changed",
		zap.Stringer("from", old),
		zap.Stringer("to", s),
		zap.String("session", m.SessionID()),
	)
}

func (m *Manager) touch() {
	m.lastMessage.Store(time.Now().UnixNano())
}

func (m *Manager) isClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Start runs the manager in the background. Use Wait for the result.
func (m *Manager) Start(ctx context.Context, roomID string) {
	go func() {
		err := m.Run(ctx, roomID)
		if err != nil && !errors.Is(err, ErrAlreadyRunning) {
			m.logger.Error("feed stopped", zap.String("room", roomID), zap.Error(err))
		}
	}()
}

// Wait blocks until Run returns and reports its error. It must only be
// called once Run or Start has been invoked.
func (m *Manager) Wait() error {
	<-m.wait
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runErr
}

// Run connects to roomID and keeps the feed alive until ctx is cancelled or
// Close is called, both of which return nil. When a retry limit is set and
// spent, Run returns an error wrapping ErrRetriesExhausted.
func (m *Manager) Run(ctx context.Context, roomID string) (err error) {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return ErrAlreadyRunning
	}
	m.running = true
	closed := m.closed
	m.mu.Unlock()

	// The first Run owns wait, even when it only reports ErrClosed.
	defer func() {
		m.mu.Lock()
		m.runErr = err
		m.mu.Unlock()
		close(m.wait)
	}()
	if closed {
		return ErrClosed
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-m.done:
			cancel()
		case <-ctx.Done():
		}
	}()

	logger := m.logger.With(zap.String("room", roomID))
	bo := newBackoff(m.cfg.Backoff)

	for {
		opened, err := m.connect(ctx, roomID)
		if ctx.Err() != nil || m.isClosed() {
			m.setState(StateClosed)
			return nil
		}
		if opened {
			bo.Reset()
		}

		logger.Warn("session ended",
			zap.Stringer("state", m.State()),
			zap.String("session", m.SessionID()),
			zap.Error(err),
		)

		delay, ok := bo.Next()
		if !ok {
			attempts := bo.Attempts()
			logger.Error("giving up on room", zap.Int("attempts", attempts), zap.Error(err))
			if nerr := m.notifier.SendConnectionFailure(context.WithoutCancel(ctx), roomID, attempts, err); nerr != nil {
				logger.Warn("connection failure notification not sent", zap.Error(nerr))
			}
			m.setState(StateClosed)
			return fmt.Errorf("%w after %d attempts: %v", ErrRetriesExhausted, attempts, err)
		}

		m.setState(StateReconnecting)
		m.metrics.Reconnects.Inc()
		logger.Info("reconnecting", zap.Duration("delay", delay), zap.Int("attempt", bo.Attempts()))

		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			m.setState(StateClosed)
			return nil
		case <-t.C:
		}
	}
}

// connect runs one session: resolve, sign, dial, then stream until the
// socket fails, goes stale or ctx ends. opened reports whether the socket
// was established.
func (m *Manager) connect(ctx context.Context, roomID string) (opened bool, err error) {
	sessionID := uuid.NewString()
	m.session.Store(&sessionID)
	logger := m.logger.With(zap.String("room", roomID), zap.String("session", sessionID))

	m.setState(StateResolving)
	info, err := m.resolver.Resolve(ctx, roomID)
	if err != nil {
		return false, err
	}
	m.info.Store(info)
	m.live.SetTitle(info.Title)

	m.setState(StateHandshaking)
	uid := NewUserUniqueID()
	signature := m.signer.Sign(ctx, SignatureParams(info.RoomID, uid))
	target := socketURL(m.cfg.PushURL, info.RoomID, uid, signature, m.cfg.UserAgent)

	header := http.Header{}
	header.Set("Cookie", "ttwid="+info.Cookie)
	header.Set("User-Agent", m.cfg.UserAgent)

	logger.Debug("dialing push socket", zap.String("room_id", info.RoomID))
	conn, resp, err := m.dialer.DialContext(ctx, target, header)
	if err != nil {
		if resp != nil {
			return false, fmt.Errorf("dial push socket: %w (status %d)", err, resp.StatusCode)
		}
		return false, fmt.Errorf("dial push socket: %w", err)
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		_ = conn.Close()
		return false, ErrClosed
	}
	m.conn = conn
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.conn = nil
		m.mu.Unlock()
		_ = conn.Close()
	}()

	m.touch()
	m.metrics.SessionsOpened.Inc()
	m.setState(StateOpen)
	logger.Info("push socket open", zap.String("room_id", info.RoomID), zap.String("title", info.Title))

	sessCtx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	// Closing the socket is the only way to unblock ReadMessage.
	stop := context.AfterFunc(sessCtx, func() { _ = conn.Close() })
	defer stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		m.heartbeat(sessCtx, conn, cancel, logger)
	}()

	err = m.receive(conn, logger)
	cancel(err)
	wg.Wait()

	if cause := context.Cause(sessCtx); errors.Is(cause, ErrStale) {
		return true, ErrStale
	}
	return true, err
}

// heartbeat writes a heartbeat frame every interval and tears the session
// down once no frame has arrived for StaleAfter.
func (m *Manager) heartbeat(ctx context.Context, conn *websocket.Conn, cancel context.CancelCauseFunc, logger *zap.Logger) {
	ticker := time.NewTicker(m.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if idle := time.Since(m.LastMessage()); idle > m.cfg.StaleAfter {
			m.setState(StateStale)
			m.metrics.StaleSessions.Inc()
			logger.Warn("feed stale, restarting", zap.Duration("idle", idle))
			cancel(ErrStale)
			return
		}

		frame, err := protocol.HeartbeatFrame()
		if err == nil {
			err = m.write(conn, frame)
		}
		if err != nil {
			logger.Debug("heartbeat write failed", zap.Error(err))
		}
	}
}

// receive reads frames until the socket fails.
func (m *Manager) receive(conn *websocket.Conn, logger *zap.Logger) error {
	conn.SetReadLimit(m.cfg.MaxMessageSize)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("read frame: %w", err)
		}
		m.touch()
		if m.State() == StateOpen {
			m.setState(StateStreaming)
		}
		m.handleFrame(conn, data, logger)
	}
}

func (m *Manager) handleFrame(conn *websocket.Conn, data []byte, logger *zap.Logger) {
	pkt, err := protocol.DecodeFrame(data)
	if err != nil {
		m.metrics.DecodeErrors.WithLabelValues("frame").Inc()
		logger.Warn("dropping undecodable frame", zap.Int("bytes", len(data)), zap.Error(err))
		return
	}
	m.metrics.FramesReceived.WithLabelValues(pkt.Frame.GetPayloadType()).Inc()

	if pkt.IsControl() {
		return
	}

	if pkt.Response.GetNeedAck() {
		m.ack(conn, pkt.Frame.GetLogId(), pkt.Response.GetInternalExt(), logger)
	}

	for _, msg := range pkt.Response.GetMessages() {
		m.dispatch(msg, logger)
	}
}

func (m *Manager) ack(conn *websocket.Conn, logID uint64, internalExt string, logger *zap.Logger) {
	frame, err := protocol.AckFrame(logID, internalExt)
	if err == nil {
		err = m.write(conn, frame)
	}
	if err != nil {
		m.metrics.AckErrors.Inc()
		logger.Warn("ack write failed", zap.Uint64("log_id", logID), zap.Error(err))
		return
	}
	m.metrics.AcksSent.Inc()
}

func (m *Manager) dispatch(msg *pb.Message, logger *zap.Logger) {
	ev, err := protocol.DecodeMessage(msg)
	if err != nil {
		m.metrics.DecodeErrors.WithLabelValues("message").Inc()
		logger.Warn("dropping undecodable message", zap.String("method", msg.GetMethod()), zap.Error(err))
		return
	}
	if ev == nil {
		logger.Debug("ignoring message", zap.String("method", msg.GetMethod()))
		return
	}

	m.metrics.Events.WithLabelValues(string(ev.Kind())).Inc()
	m.live.Apply(ev)
	m.runSinks(ev, logger)
	m.bus.Publish(ev)
}

func (m *Manager) runSinks(ev protocol.Event, logger *zap.Logger) {
	defer func() {
		if r := recover(); r != nil {
			m.metrics.SinkPanics.Inc()
			logger.Error("event sink panicked", zap.String("kind", string(ev.Kind())), zap.Any("panic", r))
		}
	}()
	m.sinks.dispatch(ev)
}

// write serialises socket writes; the websocket permits one writer at a time.
func (m *Manager) write(conn *websocket.Conn, frame []byte) error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	_ = conn.SetWriteDeadline(time.Now().Add(m.cfg.WriteTimeout))
	return conn.WriteMessage(websocket.BinaryMessage, frame)
}

// Close stops the feed. It is safe to call more than once and from any
// goroutine; an in-flight reconnect observes it and exits.
func (m *Manager) Close() error {
	m.closeOnce.Do(func() {
		m.mu.Lock()
		m.closed = true
		conn := m.conn
		m.mu.Unlock()

		close(m.done)
		if conn != nil {
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second))
			_ = conn.Close()
		}
		m.setState(StateClosed)
	})
	return nil
}
