// Package config loads the service configuration from the `server:` section
// of config.yaml.
//
// Config fields:
//   - HTTPPort: port for the REST API, WebSocket hub and metrics (default 8080)
//   - Retention.TTL: how long a container summary stays live (default 1h)
//   - Broadcast.Interval: WebSocket broadcast cadence (default 5s)
//   - Rules.*: anomaly rule thresholds (defaults 2h / 24h / 1h)
//
// Load(path) applies defaults before unmarshalling, then validates.
// Watch(ctx, path, onChange) hot-reloads the file on change; a failed reload
// keeps the previous config.
package config
