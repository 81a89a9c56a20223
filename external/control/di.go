package control

import (
	"github.com/foxseedlab/mazerun/internal/config"
	"github.com/foxseedlab/mazerun/internal/mixer"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		m := do.MustInvoke[mixer.Mixer](i)
		return NewServer(cfg.ControlListenAddr, m), nil
	})
}
