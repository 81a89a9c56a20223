package backend

import (
	"github.com/foxseedlab/mazerun/internal/config"
	"github.com/foxseedlab/mazerun/internal/mixer"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*Instance, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return New(cfg)
	})
	do.Provide(injector, func(i do.Injector) (mixer.Mixer, error) {
		inst, err := do.Invoke[*Instance](i)
		if err != nil {
			return nil, err
		}
		return inst.Mixer, nil
	})
}
