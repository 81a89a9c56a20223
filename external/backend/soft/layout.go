package soft

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	directionInput  = "input"
	directionOutput = "output"
)

// Layout declares the tracks and option groups a soft backend starts with.
type Layout struct {
	Tracks  []TrackLayout  `yaml:"tracks"`
	Options []OptionLayout `yaml:"options"`
}

type TrackLayout struct {
	Label     string `yaml:"label"`
	Channels  int    `yaml:"channels"`
	Direction string `yaml:"direction"`
	VolumeMin int    `yaml:"volume_min"`
	VolumeMax int    `yaml:"volume_max"`
	Volumes   []int  `yaml:"volumes,omitempty"`
}

type OptionLayout struct {
	Name    string   `yaml:"name"`
	Values  []string `yaml:"values"`
	Current string   `yaml:"current,omitempty"`
}

// LoadLayout reads and validates a YAML layout file.
func LoadLayout(path string) (*Layout, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}
	var layout Layout
	if err := yaml.Unmarshal(raw, &layout); err != nil {
		return nil, fmt.Errorf("layout file is not valid YAML: %w", err)
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return &layout, nil
}

// DefaultLayout is a small stereo desktop layout used when no file is given.
func DefaultLayout() *Layout {
	return &Layout{
		Tracks: []TrackLayout{
			{Label: "Master", Channels: 2, Direction: directionOutput, VolumeMax: 100, Volumes: []int{75, 75}},
			{Label: "PCM", Channels: 2, Direction: directionOutput, VolumeMax: 100, Volumes: []int{100, 100}},
			{Label: "Line-in", Channels: 2, Direction: directionInput, VolumeMax: 100, Volumes: []int{50, 50}},
			{Label: "Mic", Channels: 1, Direction: directionInput, VolumeMax: 100, Volumes: []int{60}},
		},
		Options: []OptionLayout{
			{Name: "Input Source", Values: []string{"Mic", "Line-in"}, Current: "Mic"},
		},
	}
}

func (l *Layout) Validate() error {
	if len(l.Tracks) == 0 {
		return fmt.Errorf("layout declares no tracks")
	}
	seen := make(map[string]struct{}, len(l.Tracks))
	for i, t := range l.Tracks {
		if t.Label == "" {
			return fmt.Errorf("track %d has no label", i)
		}
		if _, dup := seen[t.Label]; dup {
			return fmt.Errorf("duplicate track label %q", t.Label)
		}
		seen[t.Label] = struct{}{}
		if t.Channels <= 0 {
			return fmt.Errorf("track %q must have at least one channel, got %d", t.Label, t.Channels)
		}
		if t.Direction != directionInput && t.Direction != directionOutput {
			return fmt.Errorf("track %q direction must be %q or %q, got %q", t.Label, directionInput, directionOutput, t.Direction)
		}
		if t.VolumeMax <= t.VolumeMin {
			return fmt.Errorf("track %q volume bounds are inverted: [%d, %d]", t.Label, t.VolumeMin, t.VolumeMax)
		}
		if len(t.Volumes) != 0 && len(t.Volumes) != t.Channels {
			return fmt.Errorf("track %q declares %d initial volumes for %d channels", t.Label, len(t.Volumes), t.Channels)
		}
	}
	for i, g := range l.Options {
		if g.Name == "" {
			return fmt.Errorf("option group %d has no name", i)
		}
		if len(g.Values) == 0 {
			return fmt.Errorf("option group %q has no legal values", g.Name)
		}
		if g.Current != "" && !contains(g.Values, g.Current) {
			return fmt.Errorf("option group %q current value %q is not in its legal set", g.Name, g.Current)
		}
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
