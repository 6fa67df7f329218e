package notify

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestSendConnectionFailure(t *testing.T) {
	var gotTitle, gotPriority, gotTags, gotAuth, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/alerts" {
			t.Errorf("expected path /alerts, got %s", r.URL.Path)
		}
		gotTitle = r.Header.Get("Title")
		gotPriority = r.Header.Get("Priority")
		gotTags = r.Header.Get("Tags")
		gotAuth = r.Header.Get("Authorization")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
	}))
	defer server.Close()

	cfg := &Config{Enabled: true, Server: server.URL + "/", Topic: "alerts", Priority: "default", Tags: "tv", Token: "tk"}
	c := NewClient(cfg, zap.NewNop())

	if err := c.SendConnectionFailure(context.Background(), "8848", 5, errors.New("dial refused")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotTitle != "Live feed lost: 8848" {
		t.Errorf("unexpected title: %s", gotTitle)
	}
	if gotPriority != "high" {
		t.Errorf("failures should be high priority, got %s", gotPriority)
	}
	if gotTags != "tv,x" {
		t.Errorf("unexpected tags: %s", gotTags)
	}
	if gotAuth != "Bearer tk" {
		t.Errorf("unexpected auth: %s", gotAuth)
	}
	if !strings.Contains(gotBody, "Attempts: 5") || !strings.Contains(gotBody, "dial refused") {
		t.Errorf("unexpected body: %s", gotBody)
	}
}

func TestSendConnectionFailure_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	c := NewClient(&Config{Enabled: true, Server: server.URL, Topic: "t"}, zap.NewNop())
	if err := c.SendConnectionFailure(context.Background(), "1", 1, nil); err == nil {
		t.Error("expected error for non-2xx status")
	}
}

func TestNew_DisabledIsNoop(t *testing.T) {
	n := New(&Config{Enabled: false}, zap.NewNop())
	if _, ok := n.(NoopNotifier); !ok {
		t.Errorf("expected NoopNotifier, got %T", n)
	}
	if New(nil, zap.NewNop()) == nil {
		t.Error("nil config should still yield a notifier")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"disabled", Config{}, false},
		{"missing topic", Config{Enabled: true, Priority: "default"}, true},
		{"bad priority", Config{Enabled: true, Topic: "t", Priority: "loud"}, true},
		{"ok", Config{Enabled: true, Topic: "t", Priority: "urgent"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
