package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	internalconfig "github.com/foxseedlab/mazerun/internal/config"
)

type envConfig struct {
	Env               string `env:"ENV" envDefault:"production"`
	Backend           string `env:"MIXER_BACKEND" envDefault:"soft"`
	LayoutPath        string `env:"MIXER_LAYOUT_PATH"`
	ControlListenAddr string `env:"CONTROL_LISTEN_ADDR" envDefault:"127.0.0.1:8700"`
	MonitoringAddr    string `env:"MONITORING_ADDR" envDefault:"127.0.0.1:8701"`
	MetricsEnabled    bool   `env:"METRICS_ENABLED" envDefault:"true"`
	ProfilingEnabled  bool   `env:"PROFILING_ENABLED" envDefault:"false"`
	ToneSampleRate    int    `env:"TONE_SAMPLE_RATE" envDefault:"48000"`
	ChangeWebhookURL  string `env:"CHANGE_WEBHOOK_URL"`
}

func Load() (*internalconfig.Config, error) {
	var raw envConfig
	if err := env.Parse(&raw); err != nil {
		return nil, fmt.Errorf("environment variables are invalid or missing: %w", err)
	}

	cfg := &internalconfig.Config{
		Env:               raw.Env,
		Backend:           raw.Backend,
		LayoutPath:        raw.LayoutPath,
		ControlListenAddr: raw.ControlListenAddr,
		MonitoringAddr:    raw.MonitoringAddr,
		MetricsEnabled:    raw.MetricsEnabled,
		ProfilingEnabled:  raw.ProfilingEnabled,
		ToneSampleRate:    raw.ToneSampleRate,
		ChangeWebhookURL:  raw.ChangeWebhookURL,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
