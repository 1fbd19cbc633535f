// Package config loads the workpulse-server configuration from config.yaml.
//
// Config fields:
//   - Server.HTTPPort              — port for the REST API, WebSocket hub and /metrics (default 8080)
//   - Server.Auth.Mode             — "apikey" or "none"
//   - Server.Auth.KeyEnv           — environment variable holding the expected API key
//   - Server.Auth.Header           — HTTP header name (default "x-api-key")
//   - Server.CORS.AllowedOrigins   — browser origins allowed to call the API
//   - Server.Dashboard.BroadcastInterval — WebSocket push interval (default 5s)
//   - Dataset.Path                 — employee CSV read once at startup
//   - Risk.*                       — high-burnout-risk thresholds (defaults 1 / 2 / 2.5)
//
// Load(path) applies defaults before unmarshalling, then validates.
// Watch(ctx, path, onChange) hot-reloads the file on change so risk
// thresholds can be tuned without a restart; Holder makes the live config
// readable from request handlers.
package config
