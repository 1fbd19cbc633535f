package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/workpulse/workpulse/internal/api"
	"github.com/workpulse/workpulse/internal/config"
	"github.com/workpulse/workpulse/internal/dataset"
)

// --- test helpers -----------------------------------------------------------

const testCSV = `EmployeeNumber,Department,JobRole,Attrition,OverTime,JobSatisfaction,EnvironmentSatisfaction,WorkLifeBalance
1,Sales,Sales Executive,No,Yes,2,2,1
2,Research & Development,Research Scientist,No,No,4,4,4
3,Sales,Sales Executive,Yes,Yes,1,1,2
4,Human Resources,HR Specialist,No,No,3,3,3
`

func newSource(t *testing.T) *dataset.Source {
	t.Helper()
	p := filepath.Join(t.TempDir(), "employees.csv")
	if err := os.WriteFile(p, []byte(testCSV), 0o600); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return dataset.NewSource(p)
}

func newHolder(t *testing.T) *config.Holder {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte("dataset:\n  path: unused.csv\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.Load(p)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	return config.NewHolder(cfg)
}

func newHandler(t *testing.T) http.Handler {
	t.Helper()
	return api.New(newSource(t), newHolder(t))
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
}

// --- tests ------------------------------------------------------------------

func TestHealth(t *testing.T) {
	var resp api.HealthResponse
	decode(t, get(t, newHandler(t), "/api/v1/health"), &resp)

	if resp.Status != "ok" {
		t.Errorf("status: got %q, want ok", resp.Status)
	}
	if resp.TotalEmployees != 4 {
		t.Errorf("total_employees: got %d, want 4", resp.TotalEmployees)
	}
	if resp.Departments != 3 {
		t.Errorf("departments: got %d, want 3", resp.Departments)
	}
}

func TestDepartments_FirstAppearanceOrder(t *testing.T) {
	var resp api.DepartmentsResponse
	decode(t, get(t, newHandler(t), "/api/v1/departments"), &resp)

	want := []string{"Sales", "Research & Development", "Human Resources"}
	if len(resp.Departments) != len(want) {
		t.Fatalf("departments: got %v, want %v", resp.Departments, want)
	}
	for i := range want {
		if resp.Departments[i] != want[i] {
			t.Errorf("departments[%d]: got %q, want %q", i, resp.Departments[i], want[i])
		}
	}
}

func TestKPIs_AllDepartments(t *testing.T) {
	var resp api.KPIsResponse
	decode(t, get(t, newHandler(t), "/api/v1/kpis"), &resp)

	if resp.TotalEmployees != 4 {
		t.Errorf("total_employees: got %d, want 4", resp.TotalEmployees)
	}
	if len(resp.KPIs) != 4 {
		t.Fatalf("kpis: got %d cards, want 4", len(resp.KPIs))
	}
	byKey := map[string]float64{}
	for _, k := range resp.KPIs {
		byKey[k.Key] = k.Value
	}
	// Overtime: 2 of 4. Attrition: 1 of 4. Burnout: records 1 and 3.
	if byKey["overtime_pct"] != 50.0 {
		t.Errorf("overtime_pct: got %v, want 50", byKey["overtime_pct"])
	}
	if byKey["attrition_rate"] != 25.0 {
		t.Errorf("attrition_rate: got %v, want 25", byKey["attrition_rate"])
	}
	if byKey["high_burnout_risk_pct"] != 50.0 {
		t.Errorf("high_burnout_risk_pct: got %v, want 50", byKey["high_burnout_risk_pct"])
	}
}

func TestKPIs_DepartmentFilter(t *testing.T) {
	var resp api.KPIsResponse
	decode(t, get(t, newHandler(t), "/api/v1/kpis?departments=Sales"), &resp)

	if resp.TotalEmployees != 2 {
		t.Errorf("total_employees: got %d, want 2", resp.TotalEmployees)
	}
}

func TestKPIs_EmptySelection(t *testing.T) {
	// departments= present but empty: explicit empty selection, zero KPIs.
	var resp api.KPIsResponse
	decode(t, get(t, newHandler(t), "/api/v1/kpis?departments="), &resp)

	if resp.TotalEmployees != 0 {
		t.Errorf("total_employees: got %d, want 0", resp.TotalEmployees)
	}
	for _, k := range resp.KPIs {
		if k.Value != 0 {
			t.Errorf("%s: got %v, want 0 on empty selection", k.Key, k.Value)
		}
	}
}

func TestKPIs_CommaSeparatedFilter(t *testing.T) {
	var resp api.KPIsResponse
	decode(t, get(t, newHandler(t), "/api/v1/kpis?departments=Sales,Human%20Resources"), &resp)

	if resp.TotalEmployees != 3 {
		t.Errorf("total_employees: got %d, want 3", resp.TotalEmployees)
	}
}

func TestBurnoutByRole_Sorted(t *testing.T) {
	var resp []api.RoleSummaryResponse
	decode(t, get(t, newHandler(t), "/api/v1/charts/burnout-by-role"), &resp)

	if len(resp) != 3 {
		t.Fatalf("roles: got %d, want 3", len(resp))
	}
	for i := 1; i < len(resp); i++ {
		if resp[i-1].OverTimeMean > resp[i].OverTimeMean {
			t.Errorf("not ascending by overtime mean: %+v", resp)
		}
	}
	if resp[len(resp)-1].JobRole != "Sales Executive" {
		t.Errorf("highest overtime role: got %q, want Sales Executive", resp[len(resp)-1].JobRole)
	}
}

func TestEngagementDistribution_Ascending(t *testing.T) {
	var resp []api.DistributionPoint
	decode(t, get(t, newHandler(t), "/api/v1/charts/engagement-distribution"), &resp)

	if len(resp) == 0 {
		t.Fatal("empty distribution")
	}
	for i := 1; i < len(resp); i++ {
		if resp[i-1].EngagementIndex >= resp[i].EngagementIndex {
			t.Errorf("not strictly ascending: %+v", resp)
		}
	}
}

func TestRisk(t *testing.T) {
	var resp api.RiskResponse
	decode(t, get(t, newHandler(t), "/api/v1/risk"), &resp)

	// Records 1 and 3 satisfy all three conditions.
	if resp.Count != 2 {
		t.Errorf("count: got %d, want 2", resp.Count)
	}
	if resp.Pct != 50.0 {
		t.Errorf("pct: got %v, want 50", resp.Pct)
	}
	if len(resp.Employees) != 2 {
		t.Fatalf("employees: got %d rows, want 2", len(resp.Employees))
	}
	if resp.Employees[0].EmployeeNumber != "1" || resp.Employees[1].EmployeeNumber != "3" {
		t.Errorf("rows: got %+v", resp.Employees)
	}
}

func TestSnapshot(t *testing.T) {
	var resp api.DashboardResponse
	decode(t, get(t, newHandler(t), "/api/v1/snapshot"), &resp)

	if resp.GeneratedAt == "" {
		t.Error("generated_at: missing")
	}
	if resp.KPIs.TotalEmployees != 4 {
		t.Errorf("kpis.total_employees: got %d, want 4", resp.KPIs.TotalEmployees)
	}
	if len(resp.Departments) != 3 {
		t.Errorf("departments: got %v", resp.Departments)
	}
	if len(resp.OvertimeBalance) != 4 {
		t.Errorf("overtime_balance: got %d pairs, want 4", len(resp.OvertimeBalance))
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := newHandler(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/kpis", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST status: got %d, want 405", rec.Code)
	}
}

func TestAPIKey(t *testing.T) {
	t.Setenv("WP_TEST_KEY", "sesame")

	p := filepath.Join(t.TempDir(), "config.yaml")
	content := "server:\n  auth:\n    mode: apikey\n    key_env: WP_TEST_KEY\n"
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.Load(p)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	h := api.New(newSource(t), config.NewHolder(cfg))

	// No key → 401.
	if rec := get(t, h, "/api/v1/kpis"); rec.Code != http.StatusUnauthorized {
		t.Errorf("no key: got %d, want 401", rec.Code)
	}

	// Health stays open.
	if rec := get(t, h, "/api/v1/health"); rec.Code != http.StatusOK {
		t.Errorf("health: got %d, want 200", rec.Code)
	}

	// Correct key → 200.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/kpis", nil)
	req.Header.Set("x-api-key", "sesame")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("with key: got %d, want 200", rec.Code)
	}
}
