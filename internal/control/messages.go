package control

// Operation names accepted by the Handler.
const (
	OpListTracks   = "list_tracks"
	OpListOptions  = "list_options"
	OpGetVolume    = "get_volume"
	OpSetVolume    = "set_volume"
	OpSetMute      = "set_mute"
	OpSetRecord    = "set_record"
	OpGetOption    = "get_option"
	OpSetOption    = "set_option"
	OpCapabilities = "capabilities"
)

// Notification kinds pushed to subscribers.
const (
	KindMuteToggled   = "mute-toggled"
	KindRecordToggled = "record-toggled"
	KindVolumeChanged = "volume-changed"
	KindOptionChanged = "option-changed"
)

// Request is one command from a host client.
type Request struct {
	Op      string `json:"op"`
	Track   string `json:"track,omitempty"`
	Option  string `json:"option,omitempty"`
	Volumes []int  `json:"volumes,omitempty"`
	Enabled bool   `json:"enabled,omitempty"`
	Value   string `json:"value,omitempty"`
}

// Response answers exactly one Request.
type Response struct {
	Op           string       `json:"op"`
	OK           bool         `json:"ok"`
	Error        string       `json:"error,omitempty"`
	Tracks       []TrackInfo  `json:"tracks,omitempty"`
	Options      []OptionInfo `json:"options,omitempty"`
	Volumes      []int        `json:"volumes,omitempty"`
	Value        string       `json:"value,omitempty"`
	Capabilities []string     `json:"capabilities,omitempty"`
}

// TrackInfo is the wire form of a track.
type TrackInfo struct {
	Label     string   `json:"label"`
	Channels  int      `json:"channels"`
	Flags     []string `json:"flags"`
	VolumeMin int      `json:"volume_min"`
	VolumeMax int      `json:"volume_max"`
	Volumes   []int    `json:"volumes"`
}

// OptionInfo is the wire form of an option group.
type OptionInfo struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
	Value  string   `json:"value"`
}

// Event is one pushed change notification.
type Event struct {
	Kind    string `json:"kind"`
	Track   string `json:"track,omitempty"`
	Option  string `json:"option,omitempty"`
	Enabled *bool  `json:"enabled,omitempty"`
	Volumes []int  `json:"volumes,omitempty"`
	Value   string `json:"value,omitempty"`
}
