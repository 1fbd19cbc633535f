package metrics

import (
	"math"
	"sort"
	"strconv"

	"github.com/workpulse/workpulse/internal/dataset"
)

// Field names a numeric column of the enriched table.
type Field string

// Measure fields usable with Value, Mean and GroupMeans.
const (
	FieldOverTimeFlag            Field = "OverTimeFlag"
	FieldAttritionFlag           Field = "AttritionFlag"
	FieldEngagementIndex         Field = "EngagementIndex"
	FieldJobSatisfaction         Field = "JobSatisfaction"
	FieldEnvironmentSatisfaction Field = "EnvironmentSatisfaction"
	FieldWorkLifeBalance         Field = "WorkLifeBalance"
)

// Value extracts a measure from a record. ok is false when the value is
// undefined for that record — an unknown flag, an undefined engagement
// index, an out-of-scale ordinal. Undefined values are skipped by every
// aggregation, never counted as zero.
func Value(r dataset.Record, f Field) (float64, bool) {
	switch f {
	case FieldOverTimeFlag:
		return r.OverTimeFlag.Value()
	case FieldAttritionFlag:
		return r.AttritionFlag.Value()
	case FieldEngagementIndex:
		if math.IsNaN(r.EngagementIndex) {
			return 0, false
		}
		return r.EngagementIndex, true
	case FieldJobSatisfaction:
		return ordinalValue(r.JobSatisfaction)
	case FieldEnvironmentSatisfaction:
		return ordinalValue(r.EnvironmentSatisfaction)
	case FieldWorkLifeBalance:
		return ordinalValue(r.WorkLifeBalance)
	default:
		return 0, false
	}
}

func ordinalValue(v int) (float64, bool) {
	if !dataset.ValidOrdinal(v) {
		return 0, false
	}
	return float64(v), true
}

// FilterByCategory returns the subsequence of records whose field value is a
// member of allowed, relative order preserved. An empty allowed set selects
// nothing — it never defaults to "all". Membership is exact and
// case-sensitive. The input slice is not modified.
func FilterByCategory(records []dataset.Record, field string, allowed []string) []dataset.Record {
	out := make([]dataset.Record, 0, len(records))
	if len(allowed) == 0 {
		return out
	}
	set := make(map[string]bool, len(allowed))
	for _, v := range allowed {
		set[v] = true
	}
	for _, r := range records {
		if v, ok := r.Category(field); ok && set[v] {
			out = append(out, r)
		}
	}
	return out
}

// Mean computes the mean of f over records, skipping records where the value
// is undefined. ok is false when no record contributed — empty input or all
// values undefined — so callers substitute their own zero default instead of
// propagating NaN into a displayed KPI.
func Mean(records []dataset.Record, f Field) (float64, bool) {
	var sum float64
	n := 0
	for _, r := range records {
		if v, ok := Value(r, f); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// Group is one partition of a group-by, with the mean of each requested
// field.
type Group struct {
	Key   string
	Count int
	Means map[Field]float64
}

// GroupMeans partitions records by groupField, in order of first appearance,
// and computes the mean of each field per partition. Records whose group key
// is missing are left out. An empty partition mean defaults to 0.
func GroupMeans(records []dataset.Record, groupField string, fields []Field) []Group {
	var order []string
	parts := make(map[string][]dataset.Record)
	for _, r := range records {
		key, ok := groupKey(r, groupField)
		if !ok {
			continue
		}
		if _, seen := parts[key]; !seen {
			order = append(order, key)
		}
		parts[key] = append(parts[key], r)
	}

	groups := make([]Group, 0, len(order))
	for _, key := range order {
		g := Group{Key: key, Count: len(parts[key]), Means: make(map[Field]float64, len(fields))}
		for _, f := range fields {
			m, _ := Mean(parts[key], f)
			g.Means[f] = m
		}
		groups = append(groups, g)
	}
	return groups
}

// groupKey resolves a record's group-by key: categorical columns by name,
// plus WorkLifeBalance as its integer value for the satisfaction line chart.
func groupKey(r dataset.Record, field string) (string, bool) {
	if v, ok := r.Category(field); ok {
		return v, v != ""
	}
	if field == "WorkLifeBalance" {
		if !dataset.ValidOrdinal(r.WorkLifeBalance) {
			return "", false
		}
		return strconv.Itoa(r.WorkLifeBalance), true
	}
	return "", false
}

// SortGroupsByMean sorts groups ascending by the named mean. The sort is
// stable: groups with equal means keep their first-appearance order, which
// the dashboard relies on for deterministic bar ordering.
func SortGroupsByMean(groups []Group, f Field) {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Means[f] < groups[j].Means[f]
	})
}

// Round2 rounds to 2 decimal places.
func Round2(v float64) float64 { return math.Round(v*100) / 100 }

// Round1 rounds to 1 decimal place.
func Round1(v float64) float64 { return math.Round(v*10) / 10 }
