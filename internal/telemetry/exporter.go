package telemetry

import (
	"net/http"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	"github.com/workpulse/workpulse/internal/config"
	"github.com/workpulse/workpulse/internal/dataset"
	"github.com/workpulse/workpulse/internal/metrics"
)

// Exporter serves the workforce KPIs in Prometheus text exposition format so
// an external scraper can watch them drift between dataset refreshes. Values
// are computed from the cached dataset on every scrape; thresholds come from
// the live config.
type Exporter struct {
	src *dataset.Source
	cfg *config.Holder
}

// New creates an Exporter over the dataset source and live config.
func New(src *dataset.Source, cfg *config.Holder) *Exporter {
	return &Exporter{src: src, cfg: cfg}
}

func (e *Exporter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	records, err := e.src.Records()
	if err != nil {
		http.Error(w, "dataset unavailable", http.StatusInternalServerError)
		return
	}

	risk := e.cfg.Get().Risk
	th := metrics.Thresholds{
		OvertimeFlagEquals: risk.OvertimeFlagEquals,
		WorkLifeBalanceMax: risk.WorkLifeBalanceMax,
		EngagementIndexMax: risk.EngagementIndexMax,
	}
	kpis := metrics.ComputeKPISet(records, th)
	report := metrics.BuildRiskReport(records, th)

	families := []*dto.MetricFamily{
		gauge("workpulse_employees",
			"Number of employee records in the loaded dataset.",
			float64(kpis.TotalEmployees)),
		gauge("workpulse_engagement_index_avg",
			"Mean engagement index across records where it is defined.",
			kpis.AvgEngagement),
		gauge("workpulse_overtime_percent",
			"Share of employees with overtime, in percent.",
			kpis.OvertimePct),
		gauge("workpulse_attrition_rate_percent",
			"Share of employees marked as attrition, in percent.",
			kpis.AttritionRatePct),
		gauge("workpulse_high_burnout_risk_percent",
			"Share of employees flagged by the burnout header variant, in percent.",
			kpis.HighBurnoutPct),
		gauge("workpulse_high_risk_employees",
			"Number of employees matching all high-risk conditions.",
			float64(report.Count)),
		departmentHeadcount(records),
	}

	format := expfmt.NewFormat(expfmt.TypeTextPlain)
	w.Header().Set("Content-Type", string(format))
	enc := expfmt.NewEncoder(w, format)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return
		}
	}
}

// departmentHeadcount builds one gauge family with a department label per
// distinct department, in first-appearance order.
func departmentHeadcount(records []dataset.Record) *dto.MetricFamily {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, r := range records {
		if _, seen := counts[r.Department]; !seen {
			order = append(order, r.Department)
		}
		counts[r.Department]++
	}

	mf := &dto.MetricFamily{
		Name: strPtr("workpulse_department_employees"),
		Help: strPtr("Number of employee records per department."),
		Type: metricType(dto.MetricType_GAUGE),
	}
	for _, dept := range order {
		mf.Metric = append(mf.Metric, &dto.Metric{
			Label: []*dto.LabelPair{
				{Name: strPtr("department"), Value: strPtr(dept)},
			},
			Gauge: &dto.Gauge{Value: f64Ptr(float64(counts[dept]))},
		})
	}
	return mf
}

// gauge builds a single-sample, unlabelled gauge family.
func gauge(name, help string, value float64) *dto.MetricFamily {
	return &dto.MetricFamily{
		Name: strPtr(name),
		Help: strPtr(help),
		Type: metricType(dto.MetricType_GAUGE),
		Metric: []*dto.Metric{
			{Gauge: &dto.Gauge{Value: f64Ptr(value)}},
		},
	}
}

func strPtr(s string) *string { return &s }

func f64Ptr(f float64) *float64 { return &f }

func metricType(t dto.MetricType) *dto.MetricType { return &t }
