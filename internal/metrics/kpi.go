package metrics

import "github.com/workpulse/workpulse/internal/dataset"

// KPISet holds the four scalars surfaced in the dashboard header, rounded
// for display.
type KPISet struct {
	// TotalEmployees is the size of the current (possibly filtered) dataset.
	TotalEmployees int

	// AvgEngagement is the mean engagement index, 2 decimals.
	AvgEngagement float64

	// OvertimePct is the mean of the overtime flag as a percentage,
	// 1 decimal. Unknown flags are skipped in the mean.
	OvertimePct float64

	// AttritionRatePct is count(AttritionFlag == Yes) / total * 100,
	// 2 decimals.
	AttritionRatePct float64

	// HighBurnoutPct is count(OverTimeFlag == required AND WorkLifeBalance
	// <= max) / total * 100, 1 decimal. This header variant deliberately
	// omits the engagement ceiling — it is a broader signal than the
	// three-condition classifier behind the risk table.
	HighBurnoutPct float64
}

// ComputeKPISet derives the header scalars. Every percentage guards its own
// denominator: an empty dataset yields zeros, never NaN.
func ComputeKPISet(records []dataset.Record, th Thresholds) KPISet {
	set := KPISet{TotalEmployees: len(records)}

	if m, ok := Mean(records, FieldEngagementIndex); ok {
		set.AvgEngagement = Round2(m)
	}
	if m, ok := Mean(records, FieldOverTimeFlag); ok {
		set.OvertimePct = Round1(m * 100)
	}

	total := len(records)
	if total == 0 {
		return set
	}
	attrition := 0
	burnout := 0
	for _, r := range records {
		if r.AttritionFlag == dataset.FlagYes {
			attrition++
		}
		ot, ok := Value(r, FieldOverTimeFlag)
		if !ok || int(ot) != th.OvertimeFlagEquals {
			continue
		}
		if wlb, ok := Value(r, FieldWorkLifeBalance); ok && wlb <= float64(th.WorkLifeBalanceMax) {
			burnout++
		}
	}
	set.AttritionRatePct = Round2(float64(attrition) / float64(total) * 100)
	set.HighBurnoutPct = Round1(float64(burnout) / float64(total) * 100)
	return set
}
