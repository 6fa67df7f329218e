package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dgnsrekt/livefeed/internal/feed"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("expected defaults to load, got error: %v", err)
	}

	if cfg.Connection.HeartbeatInterval != 10*time.Second {
		t.Errorf("expected 10s heartbeat, got %s", cfg.Connection.HeartbeatInterval)
	}
	if cfg.Connection.StaleAfter != 60*time.Second {
		t.Errorf("expected 60s staleness, got %s", cfg.Connection.StaleAfter)
	}
	if cfg.Connection.PushURL != feed.DefaultPushURL {
		t.Errorf("unexpected push url: %s", cfg.Connection.PushURL)
	}
	if cfg.Queue.Capacity != 20 {
		t.Errorf("expected capacity 20, got %d", cfg.Queue.Capacity)
	}
	if cfg.Signing.Mode != SigningStatic {
		t.Errorf("expected static signing, got %s", cfg.Signing.Mode)
	}
	if len(cfg.Announce.Templates.Gift) != 1 {
		t.Errorf("expected a default gift template, got %v", cfg.Announce.Templates.Gift)
	}
	if cfg.Archive.Directory != "live_data" || cfg.Archive.Interval != 5*time.Second {
		t.Errorf("unexpected archive defaults: %+v", cfg.Archive)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LIVEFEED_ROOM_ID", "646454278948")
	t.Setenv("LIVEFEED_CONNECTION_BACKOFF_MAX_RETRIES", "7")
	t.Setenv("NTFY_ENABLED", "true")
	t.Setenv("NTFY_TOPIC", "livefeed-alerts")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Room.ID != "646454278948" {
		t.Errorf("expected room id from env, got %q", cfg.Room.ID)
	}
	if cfg.Connection.Backoff.MaxRetries != 7 {
		t.Errorf("expected max retries 7, got %d", cfg.Connection.Backoff.MaxRetries)
	}
	if !cfg.Notify.Enabled || cfg.Notify.Topic != "livefeed-alerts" {
		t.Errorf("expected ntfy settings from env, got %+v", cfg.Notify)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "livefeed.yaml")
	content := `
room:
  id: "123"
connection:
  heartbeat_interval: 5s
  stale_after: 30s
announce:
  enabled: true
  templates:
    welcome: ["hi $username", "hello $username"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Room.ID != "123" {
		t.Errorf("unexpected room id: %s", cfg.Room.ID)
	}
	if cfg.Connection.HeartbeatInterval != 5*time.Second || cfg.Connection.StaleAfter != 30*time.Second {
		t.Errorf("unexpected connection timings: %+v", cfg.Connection)
	}
	if len(cfg.Announce.Templates.Welcome) != 2 {
		t.Errorf("expected two welcome templates, got %v", cfg.Announce.Templates.Welcome)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	content := `
connection:
  heartbeat_interval: 60s
  stale_after: 10s
signing:
  mode: script
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error")
	}
}
