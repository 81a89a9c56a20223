package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/foxseedlab/mazerun/internal/control"
	"github.com/foxseedlab/mazerun/internal/mixer"
)

// Collector counts mixer activity for Prometheus.
type Collector struct {
	changes *prometheus.CounterVec
	tracks  prometheus.GaugeFunc
}

// NewCollector registers the mixer metrics with reg and returns the
// collector. The track gauge reads m lazily at scrape time.
func NewCollector(reg prometheus.Registerer, m mixer.Mixer) *Collector {
	c := &Collector{
		changes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mazerun_mixer_changes_total",
			Help: "Mixer state changes by notification kind.",
		}, []string{"kind"}),
		tracks: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "mazerun_mixer_tracks",
			Help: "Number of tracks the backend exposes.",
		}, func() float64 {
			return float64(len(mixer.ListTracks(m)))
		}),
	}
	reg.MustRegister(c.changes, c.tracks)
	return c
}

// Attach subscribes to m's change notifications and counts them until the
// returned func is called.
func (c *Collector) Attach(m mixer.Mixer) (cancel func()) {
	return control.Watch(m, func(ev control.Event) {
		c.changes.WithLabelValues(ev.Kind).Inc()
	})
}
