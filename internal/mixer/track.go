package mixer

import "github.com/foxseedlab/mazerun/internal/event"

// TrackFlags describes the capabilities and current state of a track.
type TrackFlags uint32

const (
	// TrackInput marks a track that captures audio (e.g. "Line-in").
	TrackInput TrackFlags = 1 << iota
	// TrackOutput marks a track that plays audio.
	TrackOutput
	// TrackMuted is set while the track is muted.
	TrackMuted
	// TrackRecording is set while recording from the track is enabled.
	TrackRecording
)

// Has reports whether every flag in mask is set.
func (f TrackFlags) Has(mask TrackFlags) bool {
	return f&mask == mask
}

// Track is one logical audio stream owned by a backend, such as "Line-in" or
// "Master". A track carries one or more channels; a channel is a mono
// sub-stream within the track, so a stereo track has two channels.
//
// Tracks are allocated by backends and handed out by reference; this layer
// never creates, mutates, or frees them. The embedded feeds deliver the
// track-scoped half of each change notification.
type Track struct {
	Label       string
	NumChannels int
	Flags       TrackFlags
	VolumeMin   int
	VolumeMax   int

	MuteToggled   event.Feed[bool]
	RecordToggled event.Feed[bool]
	VolumeChanged event.Feed[[]int]
}

// Mono reports whether the track carries a single channel.
func (t *Track) Mono() bool { return t.NumChannels == 1 }

// Stereo reports whether the track carries exactly two channels.
func (t *Track) Stereo() bool { return t.NumChannels == 2 }

// OptionGroup is a named, enumerated-value setting owned by a backend, such
// as an input source selector with values {"Mic", "Line"}. ValueChanged
// delivers the option-scoped half of option change notifications.
type OptionGroup struct {
	Name   string
	Values []string

	ValueChanged event.Feed[string]
}

// Valid reports whether value is in the group's legal set. Backends use this
// when validating SetOption requests; the dispatch layer itself never does.
func (g *OptionGroup) Valid(value string) bool {
	for _, v := range g.Values {
		if v == value {
			return true
		}
	}
	return false
}
