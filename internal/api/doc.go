// Package api implements the REST surface of workpulse-server.
//
// New(src, cfg) returns an http.Handler that serves:
//
//	GET /api/v1/health                           — dataset shape and load state
//	GET /api/v1/departments                      — filter options (default "all" selection)
//	GET /api/v1/kpis                             — the four header cards
//	GET /api/v1/charts/engagement-distribution   — exact-value histogram, ascending
//	GET /api/v1/charts/burnout-by-role           — role summaries, ascending by overtime mean
//	GET /api/v1/charts/satisfaction-by-balance   — line chart points
//	GET /api/v1/charts/overtime-balance          — raw box-plot pairs
//	GET /api/v1/risk                             — high-risk count, share, first 10 rows
//	GET /api/v1/snapshot                         — full dashboard bundle
//
// Every data endpoint accepts a repeatable, comma-splittable ?departments=
// parameter: absent means all departments, present-but-empty is an explicit
// empty selection (empty dataset, zero-default KPIs).
//
// All endpoints respond with Content-Type: application/json and 405 for
// non-GET methods. Everything except /health sits behind the optional
// API-key middleware. JSON types are defined in types.go.
package api
