package webhook

import (
	"context"
	"log/slog"

	"github.com/foxseedlab/mazerun/internal/mixer"
)

const (
	KindMuteToggled   = "mute-toggled"
	KindRecordToggled = "record-toggled"
	KindVolumeChanged = "volume-changed"
	KindOptionChanged = "option-changed"
)

// Change is the JSON body pushed for one mixer state change.
type Change struct {
	Kind    string `json:"kind"`
	Track   string `json:"track,omitempty"`
	Option  string `json:"option,omitempty"`
	Enabled *bool  `json:"enabled,omitempty"`
	Volumes []int  `json:"volumes,omitempty"`
	Value   string `json:"value,omitempty"`
}

type Sender interface {
	SendChange(ctx context.Context, change Change) error
}

// Forward subscribes to m's mixer-scoped feeds and pushes every change
// through s. Send failures are logged, never propagated to the backend. The
// returned func removes the subscriptions.
func Forward(m mixer.Mixer, s Sender) (cancel func()) {
	push := func(change Change) {
		if err := s.SendChange(context.Background(), change); err != nil {
			slog.Error("failed to push mixer change to webhook", "error", err, "kind", change.Kind)
		}
	}

	events := m.Events()
	cancelMute := events.MuteToggled.Subscribe(func(ev mixer.MuteEvent) {
		enabled := ev.Mute
		push(Change{Kind: KindMuteToggled, Track: ev.Track.Label, Enabled: &enabled})
	})
	cancelRecord := events.RecordToggled.Subscribe(func(ev mixer.RecordEvent) {
		enabled := ev.Record
		push(Change{Kind: KindRecordToggled, Track: ev.Track.Label, Enabled: &enabled})
	})
	cancelVolume := events.VolumeChanged.Subscribe(func(ev mixer.VolumeEvent) {
		push(Change{Kind: KindVolumeChanged, Track: ev.Track.Label, Volumes: ev.Volumes})
	})
	cancelOption := events.OptionChanged.Subscribe(func(ev mixer.OptionEvent) {
		push(Change{Kind: KindOptionChanged, Option: ev.Options.Name, Value: ev.Value})
	})

	return func() {
		cancelMute()
		cancelRecord()
		cancelVolume()
		cancelOption()
	}
}
