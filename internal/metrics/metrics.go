// Package metrics provides the Prometheus collectors for the live feed.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the feed collectors on their own registry.
type Metrics struct {
	registry *prometheus.Registry

	// connection
	State          prometheus.Gauge
	Reconnects     prometheus.Counter
	StaleSessions  prometheus.Counter
	SessionsOpened prometheus.Counter

	// frames
	FramesReceived *prometheus.CounterVec // payload type
	AcksSent       prometheus.Counter
	AckErrors      prometheus.Counter
	DecodeErrors   *prometheus.CounterVec // stage: frame, message
	Events         *prometheus.CounterVec // event kind
	SinkPanics     prometheus.Counter

	// bus
	BusDropped prometheus.Counter

	// queue
	QueueAdded    prometheus.Counter
	QueueRejected prometheus.Counter
	QueueTaken    prometheus.Counter
	SpeakerErrors prometheus.Counter
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,

		State: f.NewGauge(prometheus.GaugeOpts{
			Name: "livefeed_connection_state",
			Help: "Current connection state (0=idle .. 7=closed)",
		}),
		Reconnects: f.NewCounter(prometheus.CounterOpts{
			Name: "livefeed_reconnects_total",
			Help: "Total reconnect attempts",
		}),
		StaleSessions: f.NewCounter(prometheus.CounterOpts{
			Name: "livefeed_stale_sessions_total",
			Help: "Sessions torn down because no message arrived in time",
		}),
		SessionsOpened: f.NewCounter(prometheus.CounterOpts{
			Name: "livefeed_sessions_opened_total",
			Help: "Push sockets successfully opened",
		}),

		FramesReceived: f.NewCounterVec(prometheus.CounterOpts{
			Name: "livefeed_frames_received_total",
			Help: "Push frames received by payload type",
		}, []string{"payload_type"}),
		AcksSent: f.NewCounter(prometheus.CounterOpts{
			Name: "livefeed_acks_sent_total",
			Help: "Ack frames written",
		}),
		AckErrors: f.NewCounter(prometheus.CounterOpts{
			Name: "livefeed_ack_errors_total",
			Help: "Ack frames that failed to write",
		}),
		DecodeErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "livefeed_decode_errors_total",
			Help: "Decode failures by stage",
		}, []string{"stage"}),
		Events: f.NewCounterVec(prometheus.CounterOpts{
			Name: "livefeed_events_total",
			Help: "Decoded events by kind",
		}, []string{"kind"}),
		SinkPanics: f.NewCounter(prometheus.CounterOpts{
			Name: "livefeed_sink_panics_total",
			Help: "Panics recovered from event sinks",
		}),

		BusDropped: f.NewCounter(prometheus.CounterOpts{
			Name: "livefeed_bus_dropped_total",
			Help: "Events dropped because a subscriber was full",
		}),

		QueueAdded: f.NewCounter(prometheus.CounterOpts{
			Name: "livefeed_queue_added_total",
			Help: "Announcements accepted by the selection queue",
		}),
		QueueRejected: f.NewCounter(prometheus.CounterOpts{
			Name: "livefeed_queue_rejected_total",
			Help: "Announcements rejected as duplicates",
		}),
		QueueTaken: f.NewCounter(prometheus.CounterOpts{
			Name: "livefeed_queue_taken_total",
			Help: "Announcements dispatched from the selection queue",
		}),
		SpeakerErrors: f.NewCounter(prometheus.CounterOpts{
			Name: "livefeed_speaker_errors_total",
			Help: "Announcements the speaker failed to voice",
		}),
	}
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
