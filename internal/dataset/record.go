package dataset

import "math"

// Flag is the tri-state numeric form of a Yes/No categorical column.
// Unknown is distinct from No: a value that is neither "Yes" nor "No" must
// stay visible as unknown, because silently coercing it to 0 would bias every
// mean computed over the column.
type Flag int8

// Flag values. FlagNo and FlagYes double as the numeric values used in
// aggregations.
const (
	FlagUnknown Flag = -1
	FlagNo      Flag = 0
	FlagYes     Flag = 1
)

// ParseFlag maps the exact strings "Yes" and "No" to FlagYes and FlagNo.
// Anything else — blanks, different casing, typos — is FlagUnknown.
func ParseFlag(s string) Flag {
	switch s {
	case "Yes":
		return FlagYes
	case "No":
		return FlagNo
	default:
		return FlagUnknown
	}
}

// Known reports whether the flag holds a defined value.
func (f Flag) Known() bool { return f != FlagUnknown }

// Value returns the flag as a float64 for aggregation. ok is false for
// FlagUnknown; callers must skip unknown flags, never count them as zero.
func (f Flag) Value() (v float64, ok bool) {
	if f == FlagUnknown {
		return 0, false
	}
	return float64(f), true
}

func (f Flag) String() string {
	switch f {
	case FlagYes:
		return "Yes"
	case FlagNo:
		return "No"
	default:
		return "Unknown"
	}
}

// Bounds of the ordinal scale used by the three satisfaction/balance columns.
const (
	OrdinalMin = 1
	OrdinalMax = 4
)

// ValidOrdinal reports whether v is on the 1-4 scale. Zero is the sentinel
// left by the CSV decoder for a missing or unparsable value.
func ValidOrdinal(v int) bool { return v >= OrdinalMin && v <= OrdinalMax }

// Record is one employee row. The first block mirrors the source table; the
// derived block is filled in by Enrich and never recomputed afterwards.
type Record struct {
	EmployeeNumber          string
	Department              string
	JobRole                 string
	Attrition               string
	OverTime                string
	JobSatisfaction         int
	EnvironmentSatisfaction int
	WorkLifeBalance         int

	// Derived by Enrich.
	AttritionFlag   Flag
	OverTimeFlag    Flag
	EngagementIndex float64
}

// Category returns the value of a categorical field by name. ok is false for
// field names that are not categorical columns of the table.
func (r Record) Category(field string) (string, bool) {
	switch field {
	case "Department":
		return r.Department, true
	case "JobRole":
		return r.JobRole, true
	case "Attrition":
		return r.Attrition, true
	case "OverTime":
		return r.OverTime, true
	default:
		return "", false
	}
}

// EngagementKnown reports whether the engagement index is defined for r.
// It is undefined when any of the three input ordinals was missing or off
// the 1-4 scale.
func (r Record) EngagementKnown() bool { return !math.IsNaN(r.EngagementIndex) }

// Enrich computes the derived columns for every record in place and returns
// the same slice:
//
//	AttritionFlag   = 1 if Attrition == "Yes", 0 if "No", else unknown
//	OverTimeFlag    = same mapping over OverTime
//	EngagementIndex = mean(JobSatisfaction, EnvironmentSatisfaction, WorkLifeBalance)
//
// The engagement index is NaN when any input ordinal is invalid, so that the
// record drops out of means and threshold comparisons instead of skewing
// them. Enrich is idempotent: the derived values are pure functions of the
// raw columns.
func Enrich(records []Record) []Record {
	for i := range records {
		r := &records[i]
		r.AttritionFlag = ParseFlag(r.Attrition)
		r.OverTimeFlag = ParseFlag(r.OverTime)
		if ValidOrdinal(r.JobSatisfaction) &&
			ValidOrdinal(r.EnvironmentSatisfaction) &&
			ValidOrdinal(r.WorkLifeBalance) {
			r.EngagementIndex = float64(r.JobSatisfaction+r.EnvironmentSatisfaction+r.WorkLifeBalance) / 3
		} else {
			r.EngagementIndex = math.NaN()
		}
	}
	return records
}
