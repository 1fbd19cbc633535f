package api

// HealthResponse is the payload for GET /api/v1/health.
type HealthResponse struct {
	Status         string `json:"status"`
	TotalEmployees int    `json:"total_employees"`
	Departments    int    `json:"departments"`
	LoadWarnings   int    `json:"load_warnings"`
}

// DepartmentsResponse is the payload for GET /api/v1/departments: the
// distinct departments in first-appearance order, the filter widget's
// default "all" selection.
type DepartmentsResponse struct {
	Departments []string `json:"departments"`
}

// KPIResponse is one dashboard header card: a scalar with its display label
// and icon.
type KPIResponse struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Icon  string  `json:"icon"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
}

// KPIsResponse is the payload for GET /api/v1/kpis.
type KPIsResponse struct {
	TotalEmployees int           `json:"total_employees"`
	KPIs           []KPIResponse `json:"kpis"`
}

// DistributionPoint is one bar of the engagement index histogram.
type DistributionPoint struct {
	EngagementIndex float64 `json:"engagement_index"`
	Count           int     `json:"count"`
}

// RoleSummaryResponse is one row of the burnout-by-role chart data, already
// sorted ascending by overtime mean.
type RoleSummaryResponse struct {
	JobRole        string  `json:"job_role"`
	Count          int     `json:"count"`
	OverTimeMean   float64 `json:"overtime_mean"`
	EngagementMean float64 `json:"engagement_mean"`
	AttritionMean  float64 `json:"attrition_mean"`
}

// BalancePointResponse is one point of the balance vs satisfaction line
// chart.
type BalancePointResponse struct {
	WorkLifeBalance     int     `json:"work_life_balance"`
	MeanJobSatisfaction float64 `json:"mean_job_satisfaction"`
	Count               int     `json:"count"`
}

// BoxPairResponse is one raw observation for the overtime box plot.
type BoxPairResponse struct {
	OverTime        string `json:"overtime"`
	WorkLifeBalance int    `json:"work_life_balance"`
}

// RiskRowResponse is one line of the high-risk table.
type RiskRowResponse struct {
	EmployeeNumber  string  `json:"employee_number,omitempty"`
	Department      string  `json:"department"`
	JobRole         string  `json:"job_role"`
	WorkLifeBalance int     `json:"work_life_balance"`
	JobSatisfaction int     `json:"job_satisfaction"`
	EngagementIndex float64 `json:"engagement_index"`
}

// RiskResponse is the payload for GET /api/v1/risk: total matches, share of
// the current dataset, and the first rows for the table.
type RiskResponse struct {
	Count     int               `json:"count"`
	Pct       float64           `json:"pct"`
	Employees []RiskRowResponse `json:"employees"`
}

// DashboardResponse is the full render bundle: everything one dashboard
// paint needs, in one payload. Served by GET /api/v1/snapshot and pushed by
// the WebSocket hub.
type DashboardResponse struct {
	KPIs                   KPIsResponse           `json:"kpis"`
	EngagementDistribution []DistributionPoint    `json:"engagement_distribution"`
	BurnoutByRole          []RoleSummaryResponse  `json:"burnout_by_role"`
	SatisfactionByBalance  []BalancePointResponse `json:"satisfaction_by_balance"`
	OvertimeBalance        []BoxPairResponse      `json:"overtime_balance"`
	Risk                   RiskResponse           `json:"risk"`
	Departments            []string               `json:"departments"` // selected filter
	GeneratedAt            string                 `json:"generated_at"` // RFC3339
}

// errorResponse is a generic JSON error body.
type errorResponse struct {
	Error string `json:"error"`
}
