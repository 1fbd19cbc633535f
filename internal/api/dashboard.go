package api

import (
	"time"

	"github.com/workpulse/workpulse/internal/dataset"
	"github.com/workpulse/workpulse/internal/metrics"
)

// BuildDashboard assembles the full render bundle for one dataset selection.
// The WebSocket hub reuses it for broadcasts.
func BuildDashboard(records []dataset.Record, selected []string, th metrics.Thresholds) DashboardResponse {
	return DashboardResponse{
		KPIs:                   toKPIsResponse(metrics.ComputeKPISet(records, th)),
		EngagementDistribution: toDistribution(metrics.EngagementDistribution(records)),
		BurnoutByRole:          toRoleSummaries(metrics.BurnoutByRole(records)),
		SatisfactionByBalance:  toBalancePoints(metrics.SatisfactionByBalance(records)),
		OvertimeBalance:        toBoxPairs(metrics.OvertimeBalancePairs(records)),
		Risk:                   toRiskResponse(metrics.BuildRiskReport(records, th)),
		Departments:            selected,
		GeneratedAt:            time.Now().UTC().Format(time.RFC3339),
	}
}

// toKPIsResponse shapes the four header cards with their display labels and
// icons.
func toKPIsResponse(set metrics.KPISet) KPIsResponse {
	return KPIsResponse{
		TotalEmployees: set.TotalEmployees,
		KPIs: []KPIResponse{
			{Key: "avg_engagement_index", Label: "Avg Engagement Index", Icon: "📊", Value: set.AvgEngagement},
			{Key: "overtime_pct", Label: "Overtime %", Icon: "⏱️", Value: set.OvertimePct, Unit: "%"},
			{Key: "attrition_rate", Label: "Attrition Rate", Icon: "📉", Value: set.AttritionRatePct, Unit: "%"},
			{Key: "high_burnout_risk_pct", Label: "High Burnout Risk %", Icon: "🔥", Value: set.HighBurnoutPct, Unit: "%"},
		},
	}
}

func toDistribution(buckets []metrics.DistributionBucket) []DistributionPoint {
	out := make([]DistributionPoint, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, DistributionPoint{EngagementIndex: b.EngagementIndex, Count: b.Count})
	}
	return out
}

func toRoleSummaries(summaries []metrics.RoleSummary) []RoleSummaryResponse {
	out := make([]RoleSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, RoleSummaryResponse{
			JobRole:        s.JobRole,
			Count:          s.Count,
			OverTimeMean:   s.OverTimeMean,
			EngagementMean: s.EngagementMean,
			AttritionMean:  s.AttritionMean,
		})
	}
	return out
}

func toBalancePoints(points []metrics.BalancePoint) []BalancePointResponse {
	out := make([]BalancePointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, BalancePointResponse{
			WorkLifeBalance:     p.WorkLifeBalance,
			MeanJobSatisfaction: p.MeanJobSatisfaction,
			Count:               p.Count,
		})
	}
	return out
}

func toBoxPairs(pairs []metrics.BoxPair) []BoxPairResponse {
	out := make([]BoxPairResponse, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, BoxPairResponse{OverTime: p.OverTime, WorkLifeBalance: p.WorkLifeBalance})
	}
	return out
}

func toRiskResponse(report metrics.RiskReport) RiskResponse {
	resp := RiskResponse{
		Count:     report.Count,
		Pct:       report.Pct,
		Employees: make([]RiskRowResponse, 0, len(report.Employees)),
	}
	for _, r := range report.Employees {
		resp.Employees = append(resp.Employees, RiskRowResponse{
			EmployeeNumber:  r.EmployeeNumber,
			Department:      r.Department,
			JobRole:         r.JobRole,
			WorkLifeBalance: r.WorkLifeBalance,
			JobSatisfaction: r.JobSatisfaction,
			EngagementIndex: r.EngagementIndex,
		})
	}
	return resp
}
