package config

import "sync/atomic"

// Holder publishes the live configuration to handlers. Watch swaps in each
// successfully reloaded config via Set; readers call Get on every request and
// never block writers.
type Holder struct {
	v atomic.Pointer[Config]
}

// NewHolder creates a Holder seeded with cfg. cfg must not be nil.
func NewHolder(cfg *Config) *Holder {
	h := &Holder{}
	h.v.Store(cfg)
	return h
}

// Get returns the current configuration. Callers must not modify it.
func (h *Holder) Get() *Config {
	return h.v.Load()
}

// Set replaces the current configuration.
func (h *Holder) Set(cfg *Config) {
	h.v.Store(cfg)
}
