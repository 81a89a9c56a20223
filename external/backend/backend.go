// Package backend selects and constructs the mixer backend named by the
// daemon configuration.
package backend

import (
	"fmt"
	"log/slog"

	"github.com/foxseedlab/mazerun/external/backend/soft"
	"github.com/foxseedlab/mazerun/external/backend/tone"
	"github.com/foxseedlab/mazerun/internal/config"
	"github.com/foxseedlab/mazerun/internal/mixer"
)

// Instance couples the selected backend with whatever teardown it needs.
type Instance struct {
	Mixer mixer.Mixer
	close func() error
}

func (i *Instance) Close() error {
	if i.close == nil {
		return nil
	}
	return i.close()
}

func New(cfg *config.Config) (*Instance, error) {
	switch cfg.Backend {
	case config.BackendSoft:
		layout := soft.DefaultLayout()
		if cfg.LayoutPath != "" {
			loaded, err := soft.LoadLayout(cfg.LayoutPath)
			if err != nil {
				return nil, fmt.Errorf("failed to load mixer layout: %w", err)
			}
			layout = loaded
		}
		b := soft.New(layout)
		slog.Info("soft mixer backend ready", "tracks", len(layout.Tracks), "options", len(layout.Options), "layout_path", cfg.LayoutPath)
		return &Instance{Mixer: b}, nil

	case config.BackendTone:
		b := tone.New(cfg.ToneSampleRate, tone.DefaultVoices())
		player, err := tone.NewPlayer(b)
		if err != nil {
			return nil, err
		}
		player.Start()
		slog.Info("tone mixer backend playing", "sample_rate", cfg.ToneSampleRate, "tracks", len(mixer.ListTracks(b)))
		return &Instance{Mixer: b, close: player.Close}, nil

	default:
		return nil, fmt.Errorf("unknown mixer backend %q", cfg.Backend)
	}
}
