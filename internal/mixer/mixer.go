// Package mixer defines the capability contract between audio backends and
// host applications: track enumeration, per-channel volume, mute and record
// toggles, enumerated options, and change notifications.
//
// A backend implements Mixer plus whichever capability interfaces it
// supports. Hosts call the package-level dispatch functions, which forward to
// the backend when the capability is present and otherwise degrade to a
// documented default — empty track list, zero volumes, empty option value, or
// no-op. Nothing at this layer returns an error; a missing capability simply
// makes the backend appear not to have the feature.
package mixer

import "github.com/foxseedlab/mazerun/internal/event"

// Events groups the mixer-scoped notification feeds of one backend. For any
// change, the mixer-scoped feed fires before the feed on the affected track
// or option group, so subscribers bound to the whole mixer never lag behind
// entity-scoped ones.
type Events struct {
	MuteToggled   event.Feed[MuteEvent]
	RecordToggled event.Feed[RecordEvent]
	VolumeChanged event.Feed[VolumeEvent]
	OptionChanged event.Feed[OptionEvent]
}

// MuteEvent reports that a track was muted or unmuted.
type MuteEvent struct {
	Track *Track
	Mute  bool
}

// RecordEvent reports that recording on a track was enabled or disabled.
type RecordEvent struct {
	Track  *Track
	Record bool
}

// VolumeEvent reports new per-channel volumes for a track.
type VolumeEvent struct {
	Track   *Track
	Volumes []int
}

// OptionEvent reports a new value for an option group.
type OptionEvent struct {
	Options *OptionGroup
	Value   string
}

// Mixer is the handle to a backend. The only required method exposes the
// mixer-scoped notification feeds; everything else is an optional capability.
type Mixer interface {
	Events() *Events
}

// Optional capability interfaces. A backend supports an operation by
// implementing the matching interface; the dispatch functions discover
// support by type assertion.
type (
	// TrackLister enumerates the backend's tracks. Sink elements may list
	// only output tracks and sources only input tracks.
	TrackLister interface {
		ListTracks() []*Track
	}

	// VolumeReader fills volumes with the current per-channel volume of a
	// track. len(volumes) must equal the track's channel count.
	VolumeReader interface {
		Volume(t *Track, volumes []int)
	}

	// VolumeWriter applies per-channel volumes to a track. len(volumes)
	// must equal the track's channel count.
	VolumeWriter interface {
		SetVolume(t *Track, volumes []int)
	}

	// MuteSetter mutes or unmutes a track.
	MuteSetter interface {
		SetMute(t *Track, mute bool)
	}

	// RecordSetter enables or disables recording on a track. Only legal
	// for input tracks; the backend rejects output tracks.
	RecordSetter interface {
		SetRecord(t *Track, record bool)
	}

	// OptionLister enumerates the backend's option groups.
	OptionLister interface {
		ListOptions() []*OptionGroup
	}

	// OptionReader returns the current value of an option group.
	OptionReader interface {
		Option(g *OptionGroup) string
	}

	// OptionWriter applies a value to an option group. The backend is
	// responsible for rejecting values outside the legal set.
	OptionWriter interface {
		SetOption(g *OptionGroup, value string)
	}
)

// Capability identifies one or more optional mixer operations.
type Capability uint32

const (
	CapListTracks Capability = 1 << iota
	CapGetVolume
	CapSetVolume
	CapSetMute
	CapSetRecord
	CapGetOption
	CapSetOption
	CapListOptions
)

// Supports reports whether m implements every capability in caps.
func Supports(m Mixer, caps Capability) bool {
	return Capabilities(m)&caps == caps
}

// Capabilities returns the full capability set of m.
func Capabilities(m Mixer) Capability {
	var caps Capability
	if _, ok := m.(TrackLister); ok {
		caps |= CapListTracks
	}
	if _, ok := m.(VolumeReader); ok {
		caps |= CapGetVolume
	}
	if _, ok := m.(VolumeWriter); ok {
		caps |= CapSetVolume
	}
	if _, ok := m.(MuteSetter); ok {
		caps |= CapSetMute
	}
	if _, ok := m.(RecordSetter); ok {
		caps |= CapSetRecord
	}
	if _, ok := m.(OptionLister); ok {
		caps |= CapListOptions
	}
	if _, ok := m.(OptionReader); ok {
		caps |= CapGetOption
	}
	if _, ok := m.(OptionWriter); ok {
		caps |= CapSetOption
	}
	return caps
}

// ListTracks returns the backend's tracks, or nil when the backend cannot
// enumerate tracks.
func ListTracks(m Mixer) []*Track {
	if l, ok := m.(TrackLister); ok {
		return l.ListTracks()
	}
	return nil
}

// Volume stores the current volume of each channel of t into volumes, which
// must have length t.NumChannels. Without the capability every channel reads
// as zero.
func Volume(m Mixer, t *Track, volumes []int) {
	if r, ok := m.(VolumeReader); ok {
		r.Volume(t, volumes)
		return
	}
	for i := range volumes {
		volumes[i] = 0
	}
}

// SetVolume applies volumes to each channel of t; len(volumes) must equal
// t.NumChannels. Values pass through unclamped — range handling belongs to
// the backend. No-op without the capability.
func SetVolume(m Mixer, t *Track, volumes []int) {
	if w, ok := m.(VolumeWriter); ok {
		w.SetVolume(t, volumes)
	}
}

// SetMute mutes or unmutes t. No-op without the capability.
func SetMute(m Mixer, t *Track, mute bool) {
	if s, ok := m.(MuteSetter); ok {
		s.SetMute(t, mute)
	}
}

// SetRecord enables or disables recording on t. Only meaningful for input
// tracks. No-op without the capability.
func SetRecord(m Mixer, t *Track, record bool) {
	if s, ok := m.(RecordSetter); ok {
		s.SetRecord(t, record)
	}
}

// ListOptions returns the backend's option groups, or nil when the backend
// cannot enumerate them.
func ListOptions(m Mixer) []*OptionGroup {
	if l, ok := m.(OptionLister); ok {
		return l.ListOptions()
	}
	return nil
}

// Option returns the current value of g, or "" when the backend cannot read
// options.
func Option(m Mixer, g *OptionGroup) string {
	if r, ok := m.(OptionReader); ok {
		return r.Option(g)
	}
	return ""
}

// SetOption applies value to g. No-op without the capability.
func SetOption(m Mixer, g *OptionGroup, value string) {
	if w, ok := m.(OptionWriter); ok {
		w.SetOption(g, value)
	}
}
