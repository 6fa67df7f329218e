package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandler_ExposesFeedMetrics(t *testing.T) {
	m := New()
	m.Reconnects.Inc()
	m.Events.WithLabelValues("chat").Add(3)
	m.State.Set(4)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	for _, want := range []string{
		"livefeed_reconnects_total 1",
		`livefeed_events_total{kind="chat"} 3`,
		"livefeed_connection_state 4",
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("expected %q in exposition", want)
		}
	}
}

func TestNew_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.AcksSent.Inc()

	rec := httptest.NewRecorder()
	b.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if strings.Contains(rec.Body.String(), "livefeed_acks_sent_total 1") {
		t.Error("registries should not share state")
	}
}
