// Package dataset models the employee table behind the dashboard.
//
// A Record is one employee row with a fixed, known schema: four categorical
// columns (Department, JobRole, Attrition, OverTime) and three 1-4 ordinal
// columns (JobSatisfaction, EnvironmentSatisfaction, WorkLifeBalance).
// Enrich adds the derived columns used everywhere downstream:
//
//	AttritionFlag, OverTimeFlag — tri-state Yes/No/Unknown flags
//	EngagementIndex             — mean of the three ordinals (NaN if undefined)
//
// Decode reads the table from CSV (BOM-stripping, Windows-1252 fallback for
// spreadsheet exports); malformed values become load warnings and explicit
// unknown/undefined markers, never silent zeros. Source is the load-once
// process-wide cache the API and WebSocket hub read from.
package dataset
