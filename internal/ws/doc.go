// Package ws pushes live dashboard updates to connected browsers.
//
// Hub upgrades HTTP connections to WebSocket and broadcasts the full
// dashboard bundle (the same payload as GET /api/v1/snapshot, computed over
// the whole dataset) on a fixed interval. Each client gets the current bundle
// immediately on connect. Slow clients whose outgoing buffer fills up are
// disconnected rather than allowed to stall the broadcast loop.
package ws
