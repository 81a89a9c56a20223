package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	backendimpl "github.com/foxseedlab/mazerun/external/backend"
	configloader "github.com/foxseedlab/mazerun/external/config"
	controlimpl "github.com/foxseedlab/mazerun/external/control"
	"github.com/foxseedlab/mazerun/external/monitoring"
	webhookimpl "github.com/foxseedlab/mazerun/external/webhook"
	"github.com/foxseedlab/mazerun/internal/config"
	"github.com/foxseedlab/mazerun/internal/mixer"
	"github.com/foxseedlab/mazerun/internal/webhook"
	"github.com/samber/do/v2"
)

const shutdownTimeout = 5 * time.Second

func main() {
	slog.Info("startup: loading configuration")
	cfg := mustLoadConfig()
	initLogger(cfg)
	slog.Info("startup: configuration loaded", "env", cfg.Env, "backend", cfg.Backend)

	slog.Info("startup: building dependency graph")
	injector := setupDI(cfg)

	slog.Info("startup: launching mixer daemon")
	runDaemon(cfg, injector)
}

func mustLoadConfig() *config.Config {
	cfg, err := configloader.Load()
	if err != nil {
		slog.Error("config validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

func initLogger(cfg *config.Config) {
	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))
}

func setupDI(cfg *config.Config) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	backendimpl.RegisterDI(injector)
	controlimpl.RegisterDI(injector)
	webhookimpl.RegisterDI(injector)
	monitoring.RegisterDI(injector)

	return injector
}

func runDaemon(cfg *config.Config, injector do.Injector) {
	backend, err := do.Invoke[*backendimpl.Instance](injector)
	if err != nil {
		slog.Error("failed to build mixer backend", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			slog.Error("backend close failed", "error", err)
		}
	}()

	server, err := do.Invoke[*controlimpl.Server](injector)
	if err != nil {
		slog.Error("failed to build control server", "error", err)
		os.Exit(1)
	}

	collector := do.MustInvoke[*monitoring.Collector](injector)
	cancelMetrics := collector.Attach(backend.Mixer)
	defer cancelMetrics()

	sender := do.MustInvoke[webhook.Sender](injector)
	cancelWebhook := webhook.Forward(backend.Mixer, sender)
	defer cancelWebhook()

	mon := do.MustInvoke[*monitoring.Monitoring](injector)

	slog.Info("mixer daemon ready",
		"tracks", len(mixer.ListTracks(backend.Mixer)),
		"capabilities", mixer.Capabilities(backend.Mixer),
		"control_addr", cfg.ControlListenAddr)

	done := make(chan struct{})
	go func() {
		if err := server.Run(); err != nil {
			slog.Error("control server failed", "error", err)
		}
		close(done)
	}()
	go func() {
		if err := mon.Run(); err != nil {
			slog.Error("monitoring server failed", "error", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
		slog.Info("shutting down")
	case <-done:
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("control server shutdown failed", "error", err)
	}
	if err := mon.Shutdown(ctx); err != nil {
		slog.Error("monitoring server shutdown failed", "error", err)
	}
}
