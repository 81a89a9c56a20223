package tone

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// Player streams a Backend's mix to the default audio device via oto.
type Player struct {
	ctx    *oto.Context
	player *oto.Player

	mu      sync.Mutex
	started bool
}

// NewPlayer opens the audio device for b's sample rate. Playback does not
// start until Start is called.
func NewPlayer(b *Backend) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   b.sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio device: %w", err)
	}
	<-ready

	p := &Player{ctx: ctx}
	p.player = ctx.NewPlayer(&renderReader{backend: b})
	return p, nil
}

func (p *Player) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		p.player.Play()
		p.started = true
	}
}

func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.player == nil {
		return nil
	}
	err := p.player.Close()
	p.player = nil
	p.started = false
	return err
}

// renderReader adapts Backend.Render to the io.Reader oto consumes,
// encoding float32 samples as little-endian bytes.
type renderReader struct {
	backend *Backend
	scratch []float32
}

func (r *renderReader) Read(p []byte) (int, error) {
	n := len(p) / 4
	if n == 0 {
		return 0, nil
	}
	if len(r.scratch) < n {
		r.scratch = make([]float32, n)
	}
	samples := r.scratch[:n]
	r.backend.Render(samples)
	for i, s := range samples {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(s))
	}
	return n * 4, nil
}
