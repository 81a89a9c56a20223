package mixer

// Notification helpers. Backends call one of these after any state change,
// whether caused by a Set* dispatch or spontaneously (a hardware knob, an
// external API). Each helper publishes the mixer-scoped event first and the
// entity-scoped event second; subscribers on a track or option group never
// observe a change before subscribers on the whole mixer. Delivery is
// synchronous on the calling goroutine and never coalesced.

// MuteToggled announces that t's mute state changed to mute.
func MuteToggled(m Mixer, t *Track, mute bool) {
	m.Events().MuteToggled.Publish(MuteEvent{Track: t, Mute: mute})
	t.MuteToggled.Publish(mute)
}

// RecordToggled announces that t's record state changed to record.
func RecordToggled(m Mixer, t *Track, record bool) {
	m.Events().RecordToggled.Publish(RecordEvent{Track: t, Record: record})
	t.RecordToggled.Publish(record)
}

// VolumeChanged announces new per-channel volumes for t. The slice is shared
// with every subscriber; callers must not reuse it afterwards.
func VolumeChanged(m Mixer, t *Track, volumes []int) {
	m.Events().VolumeChanged.Publish(VolumeEvent{Track: t, Volumes: volumes})
	t.VolumeChanged.Publish(volumes)
}

// OptionChanged announces a new value for g.
func OptionChanged(m Mixer, g *OptionGroup, value string) {
	m.Events().OptionChanged.Publish(OptionEvent{Options: g, Value: value})
	g.ValueChanged.Publish(value)
}
