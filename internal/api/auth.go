package api

import (
	"net/http"

	"github.com/workpulse/workpulse/internal/config"
)

// apiKeyMiddleware enforces API key authentication on the routes it wraps.
//
// Behaviour:
//   - If mode != "apikey" or no key is configured, all requests pass through.
//   - Otherwise the request header must carry the exact configured key.
//   - A missing, empty, or incorrect key returns 401.
//
// The mode, header name and key are re-read from the holder on every
// request, so a config reload takes effect without a restart.
func apiKeyMiddleware(cfg *config.Holder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := cfg.Get().Server.Auth
			key := auth.Key()
			if auth.Mode != "apikey" || key == "" {
				next.ServeHTTP(w, r)
				return
			}
			if r.Header.Get(auth.EffectiveHeader()) != key {
				jsonErr(w, http.StatusUnauthorized, "invalid api key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
