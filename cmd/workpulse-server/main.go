package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/workpulse/workpulse/internal/api"
	"github.com/workpulse/workpulse/internal/config"
	"github.com/workpulse/workpulse/internal/dataset"
	"github.com/workpulse/workpulse/internal/telemetry"
	"github.com/workpulse/workpulse/internal/ws"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	uiDir := flag.String("ui-dir", "", "serve the dashboard UI static files from this directory (e.g. ui/dist); leave empty to disable")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	slog.Info("workpulse-server starting", "config", *configPath)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	slog.Info("config loaded",
		"http_port", cfg.Server.HTTPPort,
		"auth_mode", cfg.Server.Auth.Mode,
		"dataset_path", cfg.Dataset.Path,
		"broadcast_interval", cfg.Server.Dashboard.BroadcastInterval,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// The risk thresholds are hot-reloadable; everything else is fixed at
	// startup. Handlers read the holder per request.
	holder := config.NewHolder(cfg)
	go func() {
		if err := config.Watch(ctx, *configPath, holder.Set); err != nil {
			slog.Error("config watcher stopped", "err", err)
		}
	}()

	// Load the dataset eagerly so a bad path fails at startup, not on the
	// first request.
	src := dataset.NewSource(cfg.Dataset.Path)
	records, err := src.Records()
	if err != nil {
		slog.Error("failed to load dataset", "path", cfg.Dataset.Path, "err", err)
		os.Exit(1)
	}
	depts, _ := src.Departments()
	slog.Info("dataset loaded", "records", len(records), "departments", len(depts))

	// WebSocket hub — pushes the dashboard bundle to UI clients.
	hub := ws.New(src, holder, cfg.Server.Dashboard.BroadcastInterval)
	go hub.Run(ctx)

	// Combined HTTP server: REST API + WebSocket hub + Prometheus exposition.
	httpMux := http.NewServeMux()
	httpMux.Handle("/api/", api.New(src, holder))
	httpMux.Handle("/ws/dashboard", hub)
	httpMux.Handle("/metrics", telemetry.New(src, holder))

	// Optional: serve the pre-built dashboard UI from a local directory.
	// Usage:  ./bin/workpulse-server -config config.yaml -ui-dir ui/dist
	// The "/" catch-all serves index.html for any unknown path (SPA routing).
	if *uiDir != "" {
		fs := http.FileServer(http.Dir(*uiDir))
		httpMux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			// SPA fallback: if the requested file doesn't exist, serve index.html.
			path := *uiDir + r.URL.Path
			if _, err := os.Stat(path); os.IsNotExist(err) {
				http.ServeFile(w, r, *uiDir+"/index.html")
				return
			}
			fs.ServeHTTP(w, r)
		})
		slog.Info("serving UI static files", "dir", *uiDir)
	}

	httpSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler: httpMux,
	}
	go func() {
		slog.Info("HTTP server listening", "port", cfg.Server.HTTPPort)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server stopped", "err", err)
		}
	}()

	<-ctx.Done()
	slog.Info("workpulse-server shutting down")
	httpSrv.Shutdown(context.Background()) //nolint:errcheck
}
