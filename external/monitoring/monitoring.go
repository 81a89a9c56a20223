// Package monitoring serves Prometheus metrics and optional pprof profiling
// for the daemon.
package monitoring

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/pprof"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/foxseedlab/mazerun/internal/config"
)

type Monitoring struct {
	cfg    *config.Config
	server *http.Server
}

func New(cfg *config.Config, gatherer prometheus.Gatherer) *Monitoring {
	mux := http.NewServeMux()
	if cfg.MetricsEnabled {
		mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
		slog.Info("prometheus metrics enabled", "addr", cfg.MonitoringAddr, "path", "/metrics")
	}
	if cfg.ProfilingEnabled {
		mux.HandleFunc("/debug/pprof/", pprof.Index)
		mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
		slog.Info("profiling enabled", "addr", cfg.MonitoringAddr, "path", "/debug/pprof")
	}
	return &Monitoring{
		cfg:    cfg,
		server: &http.Server{Addr: cfg.MonitoringAddr, Handler: mux},
	}
}

// Enabled reports whether there is anything to serve.
func (m *Monitoring) Enabled() bool {
	return m.cfg.MetricsEnabled || m.cfg.ProfilingEnabled
}

func (m *Monitoring) Run() error {
	if !m.Enabled() {
		return nil
	}
	slog.Info("monitoring server listening", "addr", m.cfg.MonitoringAddr)
	if err := m.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (m *Monitoring) Shutdown(ctx context.Context) error {
	return m.server.Shutdown(ctx)
}
