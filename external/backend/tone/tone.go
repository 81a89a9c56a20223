// Package tone implements a demonstration playback backend: every track is a
// sine oscillator, and the mix of all unmuted tracks can be played through an
// audio device. It deliberately implements only part of the mixer contract —
// no recording and no option groups — so hosts exercise the degraded
// defaults of the dispatch layer against a real backend.
package tone

import (
	"math"
	"sync"

	"github.com/foxseedlab/mazerun/internal/mixer"
)

const (
	volumeMax = 100
	// Headroom so that a handful of full-volume oscillators cannot clip.
	voiceGain = 0.2
)

// Voice declares one oscillator track.
type Voice struct {
	Label     string
	Frequency float64
}

// DefaultVoices is a simple A-major triad.
func DefaultVoices() []Voice {
	return []Voice{
		{Label: "Tone A4", Frequency: 440},
		{Label: "Tone C#5", Frequency: 554.37},
		{Label: "Tone E5", Frequency: 659.25},
	}
}

type voiceState struct {
	frequency float64
	volume    int
	phase     float64
}

// Backend is the oscillator bank. It implements track listing, volume
// read/write, and mute; nothing else.
type Backend struct {
	events     mixer.Events
	sampleRate int

	mu     sync.Mutex
	tracks []*mixer.Track
	state  map[*mixer.Track]*voiceState
}

func New(sampleRate int, voices []Voice) *Backend {
	b := &Backend{
		sampleRate: sampleRate,
		state:      make(map[*mixer.Track]*voiceState),
	}
	for _, v := range voices {
		t := &mixer.Track{
			Label:       v.Label,
			NumChannels: 1,
			Flags:       mixer.TrackOutput,
			VolumeMin:   0,
			VolumeMax:   volumeMax,
		}
		b.tracks = append(b.tracks, t)
		b.state[t] = &voiceState{frequency: v.Frequency, volume: volumeMax / 2}
	}
	return b
}

func (b *Backend) Events() *mixer.Events { return &b.events }

func (b *Backend) ListTracks() []*mixer.Track {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tracks
}

func (b *Backend) Volume(t *mixer.Track, volumes []int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.state[t]
	if !ok {
		return
	}
	for i := range volumes {
		volumes[i] = s.volume
	}
}

func (b *Backend) SetVolume(t *mixer.Track, volumes []int) {
	b.mu.Lock()
	s, ok := b.state[t]
	if !ok || len(volumes) != t.NumChannels {
		b.mu.Unlock()
		return
	}
	applied := volumes[0]
	if applied < 0 {
		applied = 0
	}
	if applied > volumeMax {
		applied = volumeMax
	}
	s.volume = applied
	b.mu.Unlock()

	mixer.VolumeChanged(b, t, []int{applied})
}

func (b *Backend) SetMute(t *mixer.Track, mute bool) {
	b.mu.Lock()
	if _, ok := b.state[t]; !ok {
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

// Render fills buf with the next mono float32 samples of the mix. Muted
// voices contribute silence but keep advancing phase so unmuting is
// click-free at phase boundaries.
func (b *Backend) Render(buf []float32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range buf {
		buf[i] = 0
	}
	for _, t := range b.tracks {
		s := b.state[t]
		step := s.frequency / float64(b.sampleRate)
		amp := voiceGain * float64(s.volume) / volumeMax
		muted := t.Flags.Has(mixer.TrackMuted)
		for i := range buf {
			if !muted {
				buf[i] += float32(amp * math.Sin(2*math.Pi*s.phase))
			}
			s.phase += step
			if s.phase >= 1 {
				s.phase -= 1
			}
		}
	}
}
