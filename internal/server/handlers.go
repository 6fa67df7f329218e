package server

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/dgnsrekt/livefeed/internal/feed"
	"github.com/dgnsrekt/livefeed/internal/metrics"
	"github.com/dgnsrekt/livefeed/internal/queue"
	"github.com/dgnsrekt/livefeed/internal/room"
)

// Feed is the read side of a connection manager.
type Feed interface {
	LiveData() *feed.LiveData
	Bus() *feed.Bus
	State() feed.State
	Room() *room.Info
	SessionID() string
	LastMessage() time.Time
}

var _ Feed = (*feed.Manager)(nil)

type Server struct {
	feed    Feed
	queue   *queue.Queue
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewServer creates a Server. q and m may be nil.
func NewServer(f Feed, q *queue.Queue, m *metrics.Metrics, logger *zap.Logger) *Server {
	return &Server{
		feed:    f,
		queue:   q,
		metrics: m,
		logger:  logger,
	}
}

// StateResponse describes the connection.
type StateResponse struct {
	State       feed.State `json:"state"`
	SessionID   string     `json:"session_id,omitempty"`
	Room        *room.Info `json:"room,omitempty"`
	LastMessage *time.Time `json:"last_message,omitempty"`
}

// QueueResponse lists pending and recently dispatched announcements.
type QueueResponse struct {
	Pending    []queue.Entry `json:"pending"`
	Dispatched []queue.Entry `json:"dispatched"`
}

type takeResponse struct {
	Payload string `json:"payload"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// GetLive returns the current LiveData snapshot.
func (s *Server) GetLive(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.feed.LiveData().Snapshot())
}

// GetRanking returns the current audience ranking.
func (s *Server) GetRanking(w http.ResponseWriter, r *http.Request) {
	ranking := s.feed.LiveData().Ranking()
	if ranking == nil {
		ranking = []feed.RankEntry{}
	}
	s.writeJSON(w, http.StatusOK, ranking)
}

// GetState returns the connection state.
func (s *Server) GetState(w http.ResponseWriter, r *http.Request) {
	resp := StateResponse{
		State:     s.feed.State(),
		SessionID: s.feed.SessionID(),
		Room:      s.feed.Room(),
	}
	if last := s.feed.LastMessage(); !last.IsZero() {
		resp.LastMessage = &last
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// GetQueue returns the live queue contents.
func (s *Server) GetQueue(w http.ResponseWriter, r *http.Request) {
	if s.queue == nil {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "announcement queue disabled"})
		return
	}
	pending, dispatched := s.queue.Snapshot()
	s.writeJSON(w, http.StatusOK, QueueResponse{Pending: nonNil(pending), Dispatched: nonNil(dispatched)})
}

// TakeQueue pops the next announcement for an external speaker.
func (s *Server) TakeQueue(w http.ResponseWriter, r *http.Request) {
	if s.queue == nil {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "announcement queue disabled"})
		return
	}
	payload, ok := s.queue.Take()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if s.metrics != nil {
		s.metrics.QueueTaken.Inc()
	}
	s.writeJSON(w, http.StatusOK, takeResponse{Payload: payload})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Debug("failed to write response", zap.Error(err))
	}
}

func nonNil(entries []queue.Entry) []queue.Entry {
	if entries == nil {
		return []queue.Entry{}
	}
	return entries
}
