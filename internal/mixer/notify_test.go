package mixer

import "testing"

func TestMuteToggledDeliversMixerScopedBeforeTrackScoped(t *testing.T) {
	m := &bareMixer{}
	track := &Track{Label: "Line-in", NumChannels: 2}

	var order []string
	track.MuteToggled.Subscribe(func(mute bool) {
		order = append(order, "track")
		if !mute {
			t.Errorf("track-scoped event carried %v, want true", mute)
		}
	})
	m.events.MuteToggled.Subscribe(func(ev MuteEvent) {
		order = append(order, "mixer")
		if ev.Track != track || !ev.Mute {
			t.Errorf("unexpected mixer-scoped payload: %+v", ev)
		}
	})

	MuteToggled(m, track, true)

	if len(order) != 2 || order[0] != "mixer" || order[1] != "track" {
		t.Fatalf("expected delivery order [mixer track], got %v", order)
	}
}

func TestRecordToggledDeliversExactlyOnePair(t *testing.T) {
	m := &bareMixer{}
	track := &Track{Label: "Mic", NumChannels: 1, Flags: TrackInput}

	var mixerCount, trackCount int
	m.events.RecordToggled.Subscribe(func(RecordEvent) { mixerCount++ })
	track.RecordToggled.Subscribe(func(bool) { trackCount++ })

	RecordToggled(m, track, true)
	RecordToggled(m, track, true) // same value again, still one pair per call

	if mixerCount != 2 || trackCount != 2 {
		t.Fatalf("expected 2 mixer-scoped and 2 track-scoped deliveries, got %d and %d", mixerCount, trackCount)
	}
}

func TestVolumeChangedCarriesSamePayloadOnBothScopes(t *testing.T) {
	m := &bareMixer{}
	track := &Track{Label: "Line-in", NumChannels: 2}

	var order []string
	m.events.VolumeChanged.Subscribe(func(ev VolumeEvent) {
		order = append(order, "mixer")
		if ev.Track != track {
			t.Errorf("mixer-scoped event referenced wrong track: %v", ev.Track)
		}
		if len(ev.Volumes) != 2 || ev.Volumes[0] != 80 || ev.Volumes[1] != 90 {
			t.Errorf("mixer-scoped volumes = %v, want [80 90]", ev.Volumes)
		}
	})
	track.VolumeChanged.Subscribe(func(volumes []int) {
		order = append(order, "track")
		if len(volumes) != 2 || volumes[0] != 80 || volumes[1] != 90 {
			t.Errorf("track-scoped volumes = %v, want [80 90]", volumes)
		}
	})

	VolumeChanged(m, track, []int{80, 90})

	if len(order) != 2 || order[0] != "mixer" || order[1] != "track" {
		t.Fatalf("expected delivery order [mixer track], got %v", order)
	}
}

func TestOptionChangedDeliversMixerScopedBeforeOptionScoped(t *testing.T) {
	m := &bareMixer{}
	group := &OptionGroup{Name: "Input Source", Values: []string{"Mic", "Line"}}

	var order []string
	group.ValueChanged.Subscribe(func(value string) {
		order = append(order, "option")
		if value != "Line" {
			t.Errorf("option-scoped value = %q, want Line", value)
		}
	})
	m.events.OptionChanged.Subscribe(func(ev OptionEvent) {
		order = append(order, "mixer")
		if ev.Options != group || ev.Value != "Line" {
			t.Errorf("unexpected mixer-scoped payload: %+v", ev)
		}
	})

	OptionChanged(m, group, "Line")

	if len(order) != 2 || order[0] != "mixer" || order[1] != "option" {
		t.Fatalf("expected delivery order [mixer option], got %v", order)
	}
}
