package config

import (
	"fmt"
	"net"
)

const (
	BackendSoft = "soft"
	BackendTone = "tone"
)

type Config struct {
	Env               string
	Backend           string
	LayoutPath        string
	ControlListenAddr string
	MonitoringAddr    string
	MetricsEnabled    bool
	ProfilingEnabled  bool
	ToneSampleRate    int
	ChangeWebhookURL  string
}

func (c *Config) Validate() error {
	switch c.Backend {
	case BackendSoft, BackendTone:
	default:
		return fmt.Errorf("MIXER_BACKEND must be %q or %q, got %q", BackendSoft, BackendTone, c.Backend)
	}
	if c.ControlListenAddr == "" {
		return fmt.Errorf("CONTROL_LISTEN_ADDR is required")
	}
	if _, _, err := net.SplitHostPort(c.ControlListenAddr); err != nil {
		return fmt.Errorf("CONTROL_LISTEN_ADDR is invalid: %w", err)
	}
	if c.MetricsEnabled || c.ProfilingEnabled {
		if c.MonitoringAddr == "" {
			return fmt.Errorf("MONITORING_ADDR is required when metrics or profiling are enabled")
		}
		if _, _, err := net.SplitHostPort(c.MonitoringAddr); err != nil {
			return fmt.Errorf("MONITORING_ADDR is invalid: %w", err)
		}
	}
	if c.Backend == BackendTone && c.ToneSampleRate <= 0 {
		return fmt.Errorf("TONE_SAMPLE_RATE must be positive, got %d", c.ToneSampleRate)
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
