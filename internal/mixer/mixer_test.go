package mixer

import "testing"

// bareMixer implements no optional capability at all.
type bareMixer struct {
	events Events
}

func (m *bareMixer) Events() *Events { return &m.events }

// listOnlyMixer implements only track enumeration.
type listOnlyMixer struct {
	events Events
	tracks []*Track
}

func (m *listOnlyMixer) Events() *Events      { return &m.events }
func (m *listOnlyMixer) ListTracks() []*Track { return m.tracks }

// recordingMixer records which dispatches reached the backend.
type recordingMixer struct {
	events Events

	volumeReads  int
	volumeWrites [][]int
	muteCalls    []bool
	recordCalls  []bool
	optionWrites []string
	current      []int
}

func (m *recordingMixer) Events() *Events { return &m.events }

func (m *recordingMixer) Volume(t *Track, volumes []int) {
	m.volumeReads++
	copy(volumes, m.current)
}

func (m *recordingMixer) SetVolume(t *Track, volumes []int) {
	m.volumeWrites = append(m.volumeWrites, volumes)
}

func (m *recordingMixer) SetMute(t *Track, mute bool)     { m.muteCalls = append(m.muteCalls, mute) }
func (m *recordingMixer) SetRecord(t *Track, record bool) { m.recordCalls = append(m.recordCalls, record) }
func (m *recordingMixer) Option(g *OptionGroup) string    { return "Mic" }
func (m *recordingMixer) SetOption(g *OptionGroup, value string) {
	m.optionWrites = append(m.optionWrites, value)
}

func TestListTracksWithoutCapabilityReturnsEmpty(t *testing.T) {
	m := &bareMixer{}
	tracks := ListTracks(m)
	if len(tracks) != 0 {
		t.Fatalf("expected no tracks, got %d", len(tracks))
	}
	for range tracks {
		t.Fatal("iterating the default track list must yield nothing")
	}
}

func TestVolumeWithoutCapabilityZeroFills(t *testing.T) {
	m := &bareMixer{}
	track := &Track{Label: "Line-in", NumChannels: 2}
	volumes := []int{42, 77}

	Volume(m, track, volumes)

	for i, v := range volumes {
		if v != 0 {
			t.Fatalf("channel %d: expected 0, got %d", i, v)
		}
	}
}

func TestDispatchWithoutCapabilityIsSilentNoop(t *testing.T) {
	m := &listOnlyMixer{tracks: []*Track{{Label: "Master", NumChannels: 2, Flags: TrackOutput}}}
	track := m.tracks[0]

	var notified int
	m.events.MuteToggled.Subscribe(func(MuteEvent) { notified++ })
	m.events.RecordToggled.Subscribe(func(RecordEvent) { notified++ })
	m.events.VolumeChanged.Subscribe(func(VolumeEvent) { notified++ })
	m.events.OptionChanged.Subscribe(func(OptionEvent) { notified++ })

	SetVolume(m, track, []int{80, 90})
	SetMute(m, track, true)
	SetRecord(m, track, true)
	SetOption(m, &OptionGroup{Name: "Input Source"}, "Mic")

	if notified != 0 {
		t.Fatalf("expected no notifications from unsupported dispatches, got %d", notified)
	}
	if track.Flags.Has(TrackMuted) || track.Flags.Has(TrackRecording) {
		t.Fatalf("expected track state unchanged, flags = %b", track.Flags)
	}
}

func TestOptionWithoutCapabilityReturnsEmptyValue(t *testing.T) {
	m := &listOnlyMixer{}
	g := &OptionGroup{Name: "Input Source", Values: []string{"Mic", "Line"}}
	if got := Option(m, g); got != "" {
		t.Fatalf("expected empty option value, got %q", got)
	}
}

func TestDispatchForwardsToBackend(t *testing.T) {
	m := &recordingMixer{current: []int{30, 40}}
	track := &Track{Label: "Line-in", NumChannels: 2, Flags: TrackInput}
	group := &OptionGroup{Name: "Input Source", Values: []string{"Mic", "Line"}}

	volumes := make([]int, 2)
	Volume(m, track, volumes)
	if volumes[0] != 30 || volumes[1] != 40 {
		t.Fatalf("expected backend volumes [30 40], got %v", volumes)
	}

	SetVolume(m, track, []int{80, 90})
	if len(m.volumeWrites) != 1 || m.volumeWrites[0][0] != 80 || m.volumeWrites[0][1] != 90 {
		t.Fatalf("unexpected volume writes: %v", m.volumeWrites)
	}

	SetMute(m, track, true)
	SetRecord(m, track, true)
	if len(m.muteCalls) != 1 || !m.muteCalls[0] {
		t.Fatalf("unexpected mute calls: %v", m.muteCalls)
	}
	if len(m.recordCalls) != 1 || !m.recordCalls[0] {
		t.Fatalf("unexpected record calls: %v", m.recordCalls)
	}

	if got := Option(m, group); got != "Mic" {
		t.Fatalf("expected option value Mic, got %q", got)
	}
	SetOption(m, group, "Line")
	if len(m.optionWrites) != 1 || m.optionWrites[0] != "Line" {
		t.Fatalf("unexpected option writes: %v", m.optionWrites)
	}
}

func TestCapabilitiesReflectImplementedInterfaces(t *testing.T) {
	cases := []struct {
		name string
		m    Mixer
		want Capability
	}{
		{name: "bare", m: &bareMixer{}, want: 0},
		{name: "list only", m: &listOnlyMixer{}, want: CapListTracks},
		{
			name: "everything but list",
			m:    &recordingMixer{},
			want: CapGetVolume | CapSetVolume | CapSetMute | CapSetRecord | CapGetOption | CapSetOption,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Capabilities(tc.m); got != tc.want {
				t.Fatalf("expected capabilities %b, got %b", tc.want, got)
			}
			if !Supports(tc.m, tc.want) {
				t.Fatalf("expected Supports to confirm %b", tc.want)
			}
			if missing := ^tc.want & CapListTracks; missing != 0 && Supports(tc.m, missing) {
				t.Fatalf("Supports reported an unimplemented capability %b", missing)
			}
		})
	}
}

func TestTrackFlagHelpers(t *testing.T) {
	track := &Track{Label: "Line-in", NumChannels: 2, Flags: TrackInput | TrackMuted}
	if !track.Flags.Has(TrackInput) {
		t.Error("expected input flag")
	}
	if track.Flags.Has(TrackOutput) {
		t.Error("did not expect output flag")
	}
	if !track.Flags.Has(TrackInput | TrackMuted) {
		t.Error("expected combined mask to match")
	}
	if track.Mono() {
		t.Error("two-channel track must not report mono")
	}
	if !track.Stereo() {
		t.Error("two-channel track must report stereo")
	}
}

func TestOptionGroupValid(t *testing.T) {
	g := &OptionGroup{Name: "Input Source", Values: []string{"Mic", "Line"}}
	if !g.Valid("Mic") {
		t.Error("expected Mic to be legal")
	}
	if g.Valid("Phono") {
		t.Error("expected Phono to be rejected")
	}
}
