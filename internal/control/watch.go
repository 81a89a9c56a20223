package control

import "github.com/foxseedlab/mazerun/internal/mixer"

// Watch subscribes to all four mixer-scoped feeds of m and forwards every
// change to fn as a wire Event. Delivery happens synchronously on the
// backend's notifying goroutine; fn must not block. The returned func
// removes all four subscriptions.
func Watch(m mixer.Mixer, fn func(Event)) (cancel func()) {
	events := m.Events()

	cancelMute := events.MuteToggled.Subscribe(func(ev mixer.MuteEvent) {
		enabled := ev.Mute
		fn(Event{Kind: KindMuteToggled, Track: ev.Track.Label, Enabled: &enabled})
	})
	cancelRecord := events.RecordToggled.Subscribe(func(ev mixer.RecordEvent) {
		enabled := ev.Record
		fn(Event{Kind: KindRecordToggled, Track: ev.Track.Label, Enabled: &enabled})
	})
	cancelVolume := events.VolumeChanged.Subscribe(func(ev mixer.VolumeEvent) {
		fn(Event{Kind: KindVolumeChanged, Track: ev.Track.Label, Volumes: ev.Volumes})
	})
	cancelOption := events.OptionChanged.Subscribe(func(ev mixer.OptionEvent) {
		fn(Event{Kind: KindOptionChanged, Option: ev.Options.Name, Value: ev.Value})
	})

	return func() {
		cancelMute()
		cancelRecord()
		cancelVolume()
		cancelOption()
	}
}
