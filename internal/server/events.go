package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dgnsrekt/livefeed/internal/protocol"
)

// keepAliveInterval is how often an idle event stream receives a comment.
const keepAliveInterval = 15 * time.Second

// HandleEvents streams bus events as server-sent events. The optional
// "kinds" query parameter is a comma-separated filter (chat,gift,...).
func (s *Server) HandleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "SSE not supported", http.StatusInternalServerError)
		return
	}

	var kinds []protocol.Kind
	if raw := r.URL.Query().Get("kinds"); raw != "" {
		for _, k := range strings.Split(raw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				kinds = append(kinds, protocol.Kind(k))
			}
		}
	}

	bus := s.feed.Bus()
	sub := bus.Subscribe(kinds...)
	defer bus.Unsubscribe(sub)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	logger := s.logger.With(zap.String("subscriber", sub.ID), zap.String("remote_addr", r.RemoteAddr))
	logger.Info("event client connected")

	// Initial snapshot so clients do not wait for the next event.
	if err := writeEvent(w, "snapshot", 0, s.feed.LiveData().Snapshot()); err != nil {
		logger.Debug("failed to send snapshot", zap.Error(err))
		return
	}
	flusher.Flush()

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	var seq uint64
	for {
		select {
		case <-r.Context().Done():
			logger.Info("event client disconnected")
			return
		case <-keepAlive.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case ev, ok := <-sub.C:
			if !ok {
				return
			}
			seq++
			if err := writeEvent(w, string(ev.Kind()), seq, ev); err != nil {
				logger.Debug("failed to write to client", zap.Error(err))
				return
			}
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, eventType string, seq uint64, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\nid: %d\ndata: %s\n\n", eventType, seq, jsonData)
	return err
}
