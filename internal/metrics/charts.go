package metrics

import (
	"sort"
	"strconv"

	"github.com/workpulse/workpulse/internal/dataset"
)

// DistributionBucket is one bar of the engagement index histogram. Each
// distinct computed index value is its own bucket — the dashboard draws one
// bar per exact value, not binned ranges. Records with an undefined index
// are excluded.
type DistributionBucket struct {
	EngagementIndex float64
	Count           int
}

// EngagementDistribution counts records per exact engagement index value,
// sorted ascending by value. Every record computes the index with the same
// expression, so equal inputs yield bit-equal floats and the map keys are
// well behaved.
func EngagementDistribution(records []dataset.Record) []DistributionBucket {
	counts := make(map[float64]int)
	for _, r := range records {
		if v, ok := Value(r, FieldEngagementIndex); ok {
			counts[v]++
		}
	}
	out := make([]DistributionBucket, 0, len(counts))
	for v, c := range counts {
		out = append(out, DistributionBucket{EngagementIndex: v, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EngagementIndex < out[j].EngagementIndex })
	return out
}

// RoleSummary is the per-JobRole aggregate behind the two horizontal bar
// charts (overtime by role, engagement by role).
type RoleSummary struct {
	JobRole        string
	Count          int
	OverTimeMean   float64
	EngagementMean float64
	AttritionMean  float64
}

// BurnoutByRole groups records by JobRole and sorts ascending by mean
// overtime — higher bars mean more burnout pressure, and the sort puts them
// at the bottom of the horizontal chart. Ties keep first-appearance order
// (stable sort).
func BurnoutByRole(records []dataset.Record) []RoleSummary {
	groups := GroupMeans(records, "JobRole",
		[]Field{FieldOverTimeFlag, FieldEngagementIndex, FieldAttritionFlag})
	SortGroupsByMean(groups, FieldOverTimeFlag)

	out := make([]RoleSummary, 0, len(groups))
	for _, g := range groups {
		out = append(out, RoleSummary{
			JobRole:        g.Key,
			Count:          g.Count,
			OverTimeMean:   g.Means[FieldOverTimeFlag],
			EngagementMean: g.Means[FieldEngagementIndex],
			AttritionMean:  g.Means[FieldAttritionFlag],
		})
	}
	return out
}

// BalancePoint is one point of the work-life balance vs job satisfaction
// line chart.
type BalancePoint struct {
	WorkLifeBalance     int
	MeanJobSatisfaction float64
	Count               int
}

// SatisfactionByBalance computes the mean job satisfaction per work-life
// balance value, sorted ascending by balance.
func SatisfactionByBalance(records []dataset.Record) []BalancePoint {
	groups := GroupMeans(records, "WorkLifeBalance", []Field{FieldJobSatisfaction})

	out := make([]BalancePoint, 0, len(groups))
	for _, g := range groups {
		wlb, err := strconv.Atoi(g.Key)
		if err != nil {
			continue
		}
		out = append(out, BalancePoint{
			WorkLifeBalance:     wlb,
			MeanJobSatisfaction: g.Means[FieldJobSatisfaction],
			Count:               g.Count,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WorkLifeBalance < out[j].WorkLifeBalance })
	return out
}

// BoxPair is one raw (OverTime, WorkLifeBalance) observation for the box
// plot. Records with an unknown overtime value or off-scale balance are
// excluded.
type BoxPair struct {
	OverTime        string
	WorkLifeBalance int
}

// OvertimeBalancePairs extracts the box-plot observations, row order
// preserved.
func OvertimeBalancePairs(records []dataset.Record) []BoxPair {
	out := make([]BoxPair, 0, len(records))
	for _, r := range records {
		if !r.OverTimeFlag.Known() || !dataset.ValidOrdinal(r.WorkLifeBalance) {
			continue
		}
		out = append(out, BoxPair{OverTime: r.OverTime, WorkLifeBalance: r.WorkLifeBalance})
	}
	return out
}
