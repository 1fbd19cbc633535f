package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/workpulse/workpulse/internal/config"
	"github.com/workpulse/workpulse/internal/dataset"
	"github.com/workpulse/workpulse/internal/metrics"
)

// Handler is the HTTP handler for all /api/v1/* endpoints. It reads the
// cached dataset and computes every response on the fly — the engine is a
// single pass over an in-memory table, there is nothing worth caching
// per-request.
type Handler struct {
	src    *dataset.Source
	cfg    *config.Holder
	router chi.Router
}

// New creates a Handler wired to the dataset source and live config, and
// registers all routes.
func New(src *dataset.Source, cfg *config.Holder) http.Handler {
	h := &Handler{src: src, cfg: cfg}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	// CORS is configured once at startup; the hot-reloadable part of the
	// config is the risk thresholds, not the origin list.
	c := cfg.Get().Server.CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: c.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", cfg.Get().Server.Auth.EffectiveHeader()},
		MaxAge:         300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.health)

		r.Group(func(r chi.Router) {
			r.Use(apiKeyMiddleware(cfg))
			r.Get("/departments", h.departments)
			r.Get("/kpis", h.kpis)
			r.Get("/charts/engagement-distribution", h.engagementDistribution)
			r.Get("/charts/burnout-by-role", h.burnoutByRole)
			r.Get("/charts/satisfaction-by-balance", h.satisfactionByBalance)
			r.Get("/charts/overtime-balance", h.overtimeBalance)
			r.Get("/risk", h.risk)
			r.Get("/snapshot", h.snapshot)
		})
	})

	h.router = r
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// thresholds reads the live risk thresholds from the config holder.
func (h *Handler) thresholds() metrics.Thresholds {
	risk := h.cfg.Get().Risk
	return metrics.Thresholds{
		OvertimeFlagEquals: risk.OvertimeFlagEquals,
		WorkLifeBalanceMax: risk.WorkLifeBalanceMax,
		EngagementIndexMax: risk.EngagementIndexMax,
	}
}

// selection resolves the ?departments= filter against the cached dataset.
// No parameter selects every department (the UI default). A present but
// empty parameter is an explicit empty selection and yields an empty
// dataset — it must not fall back to "all".
func (h *Handler) selection(r *http.Request) ([]dataset.Record, []string, error) {
	records, err := h.src.Records()
	if err != nil {
		return nil, nil, err
	}

	values, present := r.URL.Query()["departments"]
	if !present {
		depts, err := h.src.Departments()
		if err != nil {
			return nil, nil, err
		}
		return records, depts, nil
	}

	selected := splitParam(values)
	return metrics.FilterByCategory(records, "Department", selected), selected, nil
}

// splitParam flattens repeated and comma-separated parameter values,
// dropping empties.
func splitParam(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// --- route handlers ---------------------------------------------------------

// health returns GET /api/v1/health — dataset shape and load state.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	records, err := h.src.Records()
	if err != nil {
		jsonErr(w, http.StatusServiceUnavailable, "dataset unavailable")
		return
	}
	depts, _ := h.src.Departments()
	warnings, _ := h.src.Warnings()

	jsonResp(w, http.StatusOK, HealthResponse{
		Status:         "ok",
		TotalEmployees: len(records),
		Departments:    len(depts),
		LoadWarnings:   len(warnings),
	})
}

// departments returns GET /api/v1/departments — the filter options.
func (h *Handler) departments(w http.ResponseWriter, r *http.Request) {
	depts, err := h.src.Departments()
	if err != nil {
		jsonErr(w, http.StatusServiceUnavailable, "dataset unavailable")
		return
	}
	if depts == nil {
		depts = []string{}
	}
	jsonResp(w, http.StatusOK, DepartmentsResponse{Departments: depts})
}

// kpis returns GET /api/v1/kpis — the four header cards for the current
// selection.
func (h *Handler) kpis(w http.ResponseWriter, r *http.Request) {
	records, _, err := h.selection(r)
	if err != nil {
		jsonErr(w, http.StatusServiceUnavailable, "dataset unavailable")
		return
	}
	jsonResp(w, http.StatusOK, toKPIsResponse(metrics.ComputeKPISet(records, h.thresholds())))
}

// engagementDistribution returns GET /api/v1/charts/engagement-distribution.
func (h *Handler) engagementDistribution(w http.ResponseWriter, r *http.Request) {
	records, _, err := h.selection(r)
	if err != nil {
		jsonErr(w, http.StatusServiceUnavailable, "dataset unavailable")
		return
	}
	jsonResp(w, http.StatusOK, toDistribution(metrics.EngagementDistribution(records)))
}

// burnoutByRole returns GET /api/v1/charts/burnout-by-role — role summaries
// sorted ascending by overtime mean, feeding both horizontal bar charts.
func (h *Handler) burnoutByRole(w http.ResponseWriter, r *http.Request) {
	records, _, err := h.selection(r)
	if err != nil {
		jsonErr(w, http.StatusServiceUnavailable, "dataset unavailable")
		return
	}
	jsonResp(w, http.StatusOK, toRoleSummaries(metrics.BurnoutByRole(records)))
}

// satisfactionByBalance returns GET /api/v1/charts/satisfaction-by-balance.
func (h *Handler) satisfactionByBalance(w http.ResponseWriter, r *http.Request) {
	records, _, err := h.selection(r)
	if err != nil {
		jsonErr(w, http.StatusServiceUnavailable, "dataset unavailable")
		return
	}
	jsonResp(w, http.StatusOK, toBalancePoints(metrics.SatisfactionByBalance(records)))
}

// overtimeBalance returns GET /api/v1/charts/overtime-balance — raw pairs
// for the box plot.
func (h *Handler) overtimeBalance(w http.ResponseWriter, r *http.Request) {
	records, _, err := h.selection(r)
	if err != nil {
		jsonErr(w, http.StatusServiceUnavailable, "dataset unavailable")
		return
	}
	jsonResp(w, http.StatusOK, toBoxPairs(metrics.OvertimeBalancePairs(records)))
}

// risk returns GET /api/v1/risk — the preventive-insights block.
func (h *Handler) risk(w http.ResponseWriter, r *http.Request) {
	records, _, err := h.selection(r)
	if err != nil {
		jsonErr(w, http.StatusServiceUnavailable, "dataset unavailable")
		return
	}
	jsonResp(w, http.StatusOK, toRiskResponse(metrics.BuildRiskReport(records, h.thresholds())))
}

// snapshot returns GET /api/v1/snapshot — the full dashboard bundle.
func (h *Handler) snapshot(w http.ResponseWriter, r *http.Request) {
	records, selected, err := h.selection(r)
	if err != nil {
		jsonErr(w, http.StatusServiceUnavailable, "dataset unavailable")
		return
	}
	jsonResp(w, http.StatusOK, BuildDashboard(records, selected, h.thresholds()))
}

// --- helpers ----------------------------------------------------------------

func jsonResp(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonErr(w http.ResponseWriter, code int, msg string) {
	jsonResp(w, code, errorResponse{Error: msg})
}

// requestLogger logs one line per request through the default slog logger.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		slog.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}
