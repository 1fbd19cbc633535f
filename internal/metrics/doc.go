// Package metrics is the analytics engine behind the dashboard: a single
// pass of derived-column aggregation, group-by summaries and threshold
// classification over the in-memory employee table.
//
// The engine is pure — no I/O, no shared state, no goroutines. Undefined
// values (unknown Yes/No flags, undefined engagement indexes, off-scale
// ordinals) are skipped by means and fail every threshold comparison;
// percentage denominators still count the full dataset. Every percentage
// and mean substitutes 0 for a zero-sized input instead of propagating NaN.
//
// The one consequential business rule lives in ClassifyHighBurnoutRisk: the
// conjunction of overtime flag, low work-life balance and low engagement
// index, with thresholds from config (defaults 1 / 2 / 2.5).
package metrics
