package metrics

import "github.com/workpulse/workpulse/internal/dataset"

// Thresholds configure the high-burnout-risk rule.
type Thresholds struct {
	// OvertimeFlagEquals is the required overtime flag value (default 1).
	OvertimeFlagEquals int

	// WorkLifeBalanceMax is the highest work-life balance still considered
	// at risk (default 2).
	WorkLifeBalanceMax int

	// EngagementIndexMax is the highest engagement index still considered
	// at risk (default 2.5).
	EngagementIndexMax float64
}

// DefaultThresholds returns the dashboard's original rule values.
func DefaultThresholds() Thresholds {
	return Thresholds{
		OvertimeFlagEquals: 1,
		WorkLifeBalanceMax: 2,
		EngagementIndexMax: 2.5,
	}
}

// ClassifyHighBurnoutRisk returns the subsequence of records satisfying ALL
// three conditions:
//
//	OverTimeFlag == OvertimeFlagEquals
//	WorkLifeBalance <= WorkLifeBalanceMax
//	EngagementIndex <= EngagementIndexMax
//
// The rule is a conjunction: overtime alone, or poor balance alone, is not
// high risk. A record with an unknown overtime flag or an undefined
// engagement index never classifies. Relative order is preserved.
func ClassifyHighBurnoutRisk(records []dataset.Record, th Thresholds) []dataset.Record {
	out := make([]dataset.Record, 0)
	for _, r := range records {
		ot, ok := Value(r, FieldOverTimeFlag)
		if !ok || int(ot) != th.OvertimeFlagEquals {
			continue
		}
		wlb, ok := Value(r, FieldWorkLifeBalance)
		if !ok || wlb > float64(th.WorkLifeBalanceMax) {
			continue
		}
		ei, ok := Value(r, FieldEngagementIndex)
		if !ok || ei > th.EngagementIndexMax {
			continue
		}
		out = append(out, r)
	}
	return out
}

// riskTableLimit caps the tabular display at the first matching records.
const riskTableLimit = 10

// RiskRow is one line of the dashboard's high-risk table.
type RiskRow struct {
	EmployeeNumber  string
	Department      string
	JobRole         string
	WorkLifeBalance int
	JobSatisfaction int
	EngagementIndex float64
}

// RiskReport is the preventive-insights block: how many employees classify
// as high burnout risk, their share of the current dataset, and the first
// matches shaped for the table.
type RiskReport struct {
	Count     int
	Pct       float64
	Employees []RiskRow
}

// BuildRiskReport classifies records and shapes the first riskTableLimit
// matches for display. Pct is the share of the current (possibly filtered)
// dataset, rounded to 1 decimal, and 0 when the dataset is empty.
func BuildRiskReport(records []dataset.Record, th Thresholds) RiskReport {
	matched := ClassifyHighBurnoutRisk(records, th)
	report := RiskReport{Count: len(matched), Employees: make([]RiskRow, 0, riskTableLimit)}
	if total := len(records); total > 0 {
		report.Pct = Round1(float64(len(matched)) / float64(total) * 100)
	}
	for i, r := range matched {
		if i == riskTableLimit {
			break
		}
		report.Employees = append(report.Employees, RiskRow{
			EmployeeNumber:  r.EmployeeNumber,
			Department:      r.Department,
			JobRole:         r.JobRole,
			WorkLifeBalance: r.WorkLifeBalance,
			JobSatisfaction: r.JobSatisfaction,
			EngagementIndex: Round2(r.EngagementIndex),
		})
	}
	return report
}
