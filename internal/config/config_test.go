package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	p := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoad_Defaults(t *testing.T) {
	p := writeConfig(t, `server: {}
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.HTTPPort != DefaultHTTPPort {
		t.Errorf("http_port: got %d, want %d", cfg.Server.HTTPPort, DefaultHTTPPort)
	}
	if cfg.Server.Retention.TTL != DefaultSummaryTTL {
		t.Errorf("retention.ttl: got %v, want %v", cfg.Server.Retention.TTL, DefaultSummaryTTL)
	}
	if cfg.Server.Broadcast.Interval != DefaultBroadcastInterval {
		t.Errorf("broadcast.interval: got %v, want %v", cfg.Server.Broadcast.Interval, DefaultBroadcastInterval)
	}
	if cfg.Server.Rules.LateArrivalDelay != DefaultLateArrivalDelay {
		t.Errorf("rules.late_arrival_delay: got %v, want %v", cfg.Server.Rules.LateArrivalDelay, DefaultLateArrivalDelay)
	}
}

func TestLoad_Full(t *testing.T) {
	p := writeConfig(t, `server:
  http_port: 9091
  retention:
    ttl: 10m
  broadcast:
    interval: 2s
  rules:
    late_arrival_delay: 3h
    unusual_gap: 12h
    duplicate_window: 30m
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.HTTPPort != 9091 {
		t.Errorf("http_port: got %d, want 9091", cfg.Server.HTTPPort)
	}
	if cfg.Server.Retention.TTL != 10*time.Minute {
		t.Errorf("retention.ttl: got %v, want 10m", cfg.Server.Retention.TTL)
	}
	if cfg.Server.Rules.UnusualGap != 12*time.Hour {
		t.Errorf("rules.unusual_gap: got %v, want 12h", cfg.Server.Rules.UnusualGap)
	}
	if cfg.Server.Rules.DuplicateWindow != 30*time.Minute {
		t.Errorf("rules.duplicate_window: got %v, want 30m", cfg.Server.Rules.DuplicateWindow)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	p := writeConfig(t, `server:
  http_port: 70000
`)
	if _, err := Load(p); err == nil {
		t.Fatal("Load: expected error for out-of-range port")
	}
}

func TestLoad_NegativeThreshold(t *testing.T) {
	p := writeConfig(t, `server:
  rules:
    unusual_gap: -1h
`)
	if _, err := Load(p); err == nil {
		t.Fatal("Load: expected error for negative threshold")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	p := writeConfig(t, "server: [not: a: mapping\n")
	if _, err := Load(p); err == nil {
		t.Fatal("Load: expected parse error")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Load: expected error for missing file")
	}
}
