// Package control translates host commands into mixer dispatches and mixer
// notifications into pushable events. It is transport-agnostic; the
// websocket server in external/control feeds it.
package control

import (
	"fmt"
	"log/slog"

	"github.com/foxseedlab/mazerun/internal/mixer"
)

// Handler applies Requests to one mixer backend.
type Handler struct {
	mixer mixer.Mixer
}

func NewHandler(m mixer.Mixer) *Handler {
	return &Handler{mixer: m}
}

// Handle executes req and returns its reply. The mixer contract itself never
// fails; errors here are host-surface problems such as an unknown operation,
// an unresolvable track label, or a channel-count mismatch.
func (h *Handler) Handle(req Request) Response {
	switch req.Op {
	case OpListTracks:
		return h.listTracks(req)
	case OpListOptions:
		return h.listOptions(req)
	case OpGetVolume:
		return h.getVolume(req)
	case OpSetVolume:
		return h.setVolume(req)
	case OpSetMute:
		return h.setMute(req)
	case OpSetRecord:
		return h.setRecord(req)
	case OpGetOption:
		return h.getOption(req)
	case OpSetOption:
		return h.setOption(req)
	case OpCapabilities:
		return h.capabilities(req)
	default:
		slog.Warn("control request with unknown op", "op", req.Op)
		return fail(req, fmt.Sprintf("unknown op %q", req.Op))
	}
}

func (h *Handler) listTracks(req Request) Response {
	tracks := mixer.ListTracks(h.mixer)
	infos := make([]TrackInfo, 0, len(tracks))
	for _, t := range tracks {
		volumes := make([]int, t.NumChannels)
		mixer.Volume(h.mixer, t, volumes)
		infos = append(infos, TrackInfo{
			Label:     t.Label,
			Channels:  t.NumChannels,
			Flags:     flagNames(t.Flags),
			VolumeMin: t.VolumeMin,
			VolumeMax: t.VolumeMax,
			Volumes:   volumes,
		})
	}
	return Response{Op: req.Op, OK: true, Tracks: infos}
}

func (h *Handler) listOptions(req Request) Response {
	groups := mixer.ListOptions(h.mixer)
	infos := make([]OptionInfo, 0, len(groups))
	for _, g := range groups {
		infos = append(infos, OptionInfo{
			Name:   g.Name,
			Values: g.Values,
			Value:  mixer.Option(h.mixer, g),
		})
	}
	return Response{Op: req.Op, OK: true, Options: infos}
}

func (h *Handler) getVolume(req Request) Response {
	t, resp, ok := h.resolveTrack(req)
	if !ok {
		return resp
	}
	volumes := make([]int, t.NumChannels)
	mixer.Volume(h.mixer, t, volumes)
	return Response{Op: req.Op, OK: true, Volumes: volumes}
}

func (h *Handler) setVolume(req Request) Response {
	t, resp, ok := h.resolveTrack(req)
	if !ok {
		return resp
	}
	if len(req.Volumes) != t.NumChannels {
		return fail(req, fmt.Sprintf("track %q has %d channels, got %d volumes", t.Label, t.NumChannels, len(req.Volumes)))
	}
	mixer.SetVolume(h.mixer, t, req.Volumes)
	return Response{Op: req.Op, OK: true}
}

func (h *Handler) setMute(req Request) Response {
	t, resp, ok := h.resolveTrack(req)
	if !ok {
		return resp
	}
	mixer.SetMute(h.mixer, t, req.Enabled)
	return Response{Op: req.Op, OK: true}
}

func (h *Handler) setRecord(req Request) Response {
	t, resp, ok := h.resolveTrack(req)
	if !ok {
		return resp
	}
	mixer.SetRecord(h.mixer, t, req.Enabled)
	return Response{Op: req.Op, OK: true}
}

func (h *Handler) getOption(req Request) Response {
	g, resp, ok := h.resolveOption(req)
	if !ok {
		return resp
	}
	return Response{Op: req.Op, OK: true, Value: mixer.Option(h.mixer, g)}
}

func (h *Handler) setOption(req Request) Response {
	g, resp, ok := h.resolveOption(req)
	if !ok {
		return resp
	}
	mixer.SetOption(h.mixer, g, req.Value)
	return Response{Op: req.Op, OK: true}
}

func (h *Handler) capabilities(req Request) Response {
	return Response{Op: req.Op, OK: true, Capabilities: capabilityNames(mixer.Capabilities(h.mixer))}
}

func (h *Handler) resolveTrack(req Request) (*mixer.Track, Response, bool) {
	if req.Track == "" {
		return nil, fail(req, "track label is required"), false
	}
	for _, t := range mixer.ListTracks(h.mixer) {
		if t.Label == req.Track {
			return t, Response{}, true
		}
	}
	return nil, fail(req, fmt.Sprintf("unknown track %q", req.Track)), false
}

func (h *Handler) resolveOption(req Request) (*mixer.OptionGroup, Response, bool) {
	if req.Option == "" {
		return nil, fail(req, "option name is required"), false
	}
	for _, g := range mixer.ListOptions(h.mixer) {
		if g.Name == req.Option {
			return g, Response{}, true
		}
	}
	return nil, fail(req, fmt.Sprintf("unknown option %q", req.Option)), false
}

func fail(req Request, msg string) Response {
	return Response{Op: req.Op, Error: msg}
}

func flagNames(f mixer.TrackFlags) []string {
	var names []string
	if f.Has(mixer.TrackInput) {
		names = append(names, "input")
	}
	if f.Has(mixer.TrackOutput) {
		names = append(names, "output")
	}
	if f.Has(mixer.TrackMuted) {
		names = append(names, "muted")
	}
	if f.Has(mixer.TrackRecording) {
		names = append(names, "recording")
	}
	return names
}

func capabilityNames(caps mixer.Capability) []string {
	pairs := []struct {
		cap  mixer.Capability
		name string
	}{
		{mixer.CapListTracks, OpListTracks},
		{mixer.CapGetVolume, OpGetVolume},
		{mixer.CapSetVolume, OpSetVolume},
		{mixer.CapSetMute, OpSetMute},
		{mixer.CapSetRecord, OpSetRecord},
		{mixer.CapListOptions, OpListOptions},
		{mixer.CapGetOption, OpGetOption},
		{mixer.CapSetOption, OpSetOption},
	}
	var names []string
	for _, p := range pairs {
		if caps&p.cap != 0 {
			names = append(names, p.name)
		}
	}
	return names
}
