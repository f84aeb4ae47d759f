package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values for the service configuration.
const (
	DefaultHTTPPort          = 8080
	DefaultSummaryTTL        = time.Hour
	DefaultBroadcastInterval = 5 * time.Second

	DefaultLateArrivalDelay = 2 * time.Hour
	DefaultUnusualGap       = 24 * time.Hour
	DefaultDuplicateWindow  = time.Hour
)

// Config holds the configuration parsed from the `server:` section of
// config.yaml.
type Config struct {
	Server ServerConfig `yaml:"server"`
}

// ServerConfig holds all service settings.
type ServerConfig struct {
	// HTTPPort is the port the REST API, WebSocket hub and metrics
	// endpoint listen on (default 8080).
	HTTPPort int `yaml:"http_port"`

	// Retention controls in-memory summary retention.
	Retention RetentionConfig `yaml:"retention"`

	// Broadcast controls the WebSocket summary broadcast.
	Broadcast BroadcastConfig `yaml:"broadcast"`

	// Rules holds the anomaly detection thresholds.
	Rules RulesConfig `yaml:"rules"`
}

// RetentionConfig controls in-memory summary retention.
type RetentionConfig struct {
	// TTL is how long a container's summary remains in the store after its
	// last update. Default: 1h.
	TTL time.Duration `yaml:"ttl"`
}

// BroadcastConfig controls the WebSocket hub.
type BroadcastConfig struct {
	// Interval is the cadence of summary broadcasts to connected
	// dashboards. Default: 5s.
	Interval time.Duration `yaml:"interval"`
}

// RulesConfig holds the anomaly rule thresholds.
type RulesConfig struct {
	// LateArrivalDelay is the delay past expected_arrival beyond which a
	// port_arrival is flagged. Default: 2h.
	LateArrivalDelay time.Duration `yaml:"late_arrival_delay"`

	// UnusualGap is the maximum silence between consecutive events.
	// Default: 24h.
	UnusualGap time.Duration `yaml:"unusual_gap"`

	// DuplicateWindow is how close two same-type events must be to count
	// as duplicates. Default: 1h.
	DuplicateWindow time.Duration `yaml:"duplicate_window"`
}

// Load reads and parses the config file at path. Missing fields are filled
// with defaults before validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// defaults returns a Config pre-populated with default values.
func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort: DefaultHTTPPort,
			Retention: RetentionConfig{
				TTL: DefaultSummaryTTL,
			},
			Broadcast: BroadcastConfig{
				Interval: DefaultBroadcastInterval,
			},
			Rules: RulesConfig{
				LateArrivalDelay: DefaultLateArrivalDelay,
				UnusualGap:       DefaultUnusualGap,
				DuplicateWindow:  DefaultDuplicateWindow,
			},
		},
	}
}

// validate checks structural constraints on the parsed configuration.
func validate(cfg *Config) error {
	if cfg.Server.HTTPPort <= 0 || cfg.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port %d is out of range [1, 65535]", cfg.Server.HTTPPort)
	}
	if cfg.Server.Retention.TTL <= 0 {
		return fmt.Errorf("server.retention.ttl must be positive")
	}
	if cfg.Server.Broadcast.Interval <= 0 {
		return fmt.Errorf("server.broadcast.interval must be positive")
	}
	r := cfg.Server.Rules
	if r.LateArrivalDelay <= 0 || r.UnusualGap <= 0 || r.DuplicateWindow <= 0 {
		return fmt.Errorf("server.rules thresholds must all be positive")
	}
	return nil
}
