// Package soft implements a full-capability software mixer backend. All state
// lives in memory; the track and option layout is declarative and can be
// loaded from a YAML file.
package soft

import (
	"log/slog"
	"sync"

	"github.com/foxseedlab/mazerun/internal/mixer"
)

// Backend holds mixer state behind a mutex and notifies on every applied
// change. It implements every optional capability of the mixer contract.
type Backend struct {
	events mixer.Events

	mu      sync.Mutex
	tracks  []*mixer.Track
	volumes map[*mixer.Track][]int
	options []*mixer.OptionGroup
	values  map[*mixer.OptionGroup]string
}

// New builds a backend from layout. The layout must already be valid.
func New(layout *Layout) *Backend {
	b := &Backend{
		volumes: make(map[*mixer.Track][]int),
		values:  make(map[*mixer.OptionGroup]string),
	}
	for _, tl := range layout.Tracks {
		var flags mixer.TrackFlags
		if tl.Direction == directionInput {
			flags |= mixer.TrackInput
		} else {
			flags |= mixer.TrackOutput
		}
		t := &mixer.Track{
			Label:       tl.Label,
			NumChannels: tl.Channels,
			Flags:       flags,
			VolumeMin:   tl.VolumeMin,
			VolumeMax:   tl.VolumeMax,
		}
		volumes := make([]int, tl.Channels)
		copy(volumes, tl.Volumes)
		b.tracks = append(b.tracks, t)
		b.volumes[t] = volumes
	}
	for _, gl := range layout.Options {
		g := &mixer.OptionGroup{Name: gl.Name, Values: gl.Values}
		current := gl.Current
		if current == "" {
			current = gl.Values[0]
		}
		b.options = append(b.options, g)
		b.values[g] = current
	}
	return b
}

func (b *Backend) Events() *mixer.Events { return &b.events }

func (b *Backend) ListTracks() []*mixer.Track {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tracks
}

func (b *Backend) ListOptions() []*mixer.OptionGroup {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.options
}

func (b *Backend) Volume(t *mixer.Track, volumes []int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	current, ok := b.volumes[t]
	if !ok {
		return
	}
	copy(volumes, current)
}

// SetVolume clamps each requested volume to the track's bounds, stores the
// result, and notifies. The notification fires outside the lock so that
// subscribers may call back into the backend.
func (b *Backend) SetVolume(t *mixer.Track, volumes []int) {
	b.mu.Lock()
	current, ok := b.volumes[t]
	if !ok || len(volumes) != len(current) {
		b.mu.Unlock()
		slog.Warn("soft backend rejected volume write", "track", t.Label, "got_channels", len(volumes), "want_channels", t.NumChannels)
		return
	}
	applied := make([]int, len(volumes))
	for i, v := range volumes {
		applied[i] = clamp(v, t.VolumeMin, t.VolumeMax)
	}
	copy(current, applied)
	b.mu.Unlock()

	mixer.VolumeChanged(b, t, applied)
}

func (b *Backend) SetMute(t *mixer.Track, mute bool) {
	b.mu.Lock()
	if _, ok := b.volumes[t]; !ok {
		b.mu.Unlock()
		return
	}
	if mute {
		t.Flags |= mixer.TrackMuted
	} else {
		t.Flags &^= mixer.TrackMuted
	}
	b.mu.Unlock()

	mixer.MuteToggled(b, t, mute)
}

// SetRecord enables or disables recording. Output-only tracks are rejected;
// nothing changes and nothing is notified.
func (b *Backend) SetRecord(t *mixer.Track, record bool) {
	b.mu.Lock()
	if _, ok := b.volumes[t]; !ok {
		b.mu.Unlock()
		return
	}
	if !t.Flags.Has(mixer.TrackInput) {
		b.mu.Unlock()
		slog.Warn("soft backend rejected record toggle on non-input track", "track", t.Label)
		return
	}
	if record {
		t.Flags |= mixer.TrackRecording
	} else {
		t.Flags &^= mixer.TrackRecording
	}
	b.mu.Unlock()

	mixer.RecordToggled(b, t, record)
}

func (b *Backend) Option(g *mixer.OptionGroup) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.values[g]
}

// SetOption applies value when it is in the group's legal set; anything else
// is rejected without a notification.
func (b *Backend) SetOption(g *mixer.OptionGroup, value string) {
	b.mu.Lock()
	if _, ok := b.values[g]; !ok {
		b.mu.Unlock()
		return
	}
	if !g.Valid(value) {
		b.mu.Unlock()
		slog.Warn("soft backend rejected option value outside legal set", "option", g.Name, "value", value)
		return
	}
	b.values[g] = value
	b.mu.Unlock()

	mixer.OptionChanged(b, g, value)
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
