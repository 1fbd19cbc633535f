// Package telemetry exposes the workforce KPIs as Prometheus gauges.
//
// Exporter handles GET /metrics with a text exposition of the headline
// numbers (headcount, engagement average, overtime, attrition and burnout
// percentages, high-risk count) plus a per-department headcount gauge.
// Everything is recomputed from the cached dataset on each scrape.
package telemetry
