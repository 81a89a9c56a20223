package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/do/v2"

	"github.com/foxseedlab/mazerun/internal/config"
	"github.com/foxseedlab/mazerun/internal/mixer"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*prometheus.Registry, error) {
		return prometheus.NewRegistry(), nil
	})
	do.Provide(injector, func(i do.Injector) (*Collector, error) {
		reg := do.MustInvoke[*prometheus.Registry](i)
		m := do.MustInvoke[mixer.Mixer](i)
		return NewCollector(reg, m), nil
	})
	do.Provide(injector, func(i do.Injector) (*Monitoring, error) {
		cfg := do.MustInvoke[*config.Config](i)
		reg := do.MustInvoke[*prometheus.Registry](i)
		return New(cfg, reg), nil
	})
}
