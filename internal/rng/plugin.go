package rng

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/emrzvv/gamerng/internal/host"
)

// ErrAlreadyInstalled is returned when the app already holds a Resource.
var ErrAlreadyInstalled = errors.New("rng: generator already installed")

// Plugin installs the process-wide generator as a Resource.  The zero value
// installs an entropy-seeded generator using DefaultAlgorithm.
type Plugin struct {
	// Seed, when set, installs a deterministic generator instead.
	Seed *uint64
	// Algorithm, when set, overrides DefaultAlgorithm.
	Algorithm *Algorithm
}

func (p Plugin) Build(app *host.App) error {
	if _, ok := host.Resource[Resource](app); ok {
		return ErrAlreadyInstalled
	}

	alg := DefaultAlgorithm
	if p.Algorithm != nil {
		alg = *p.Algorithm
	}
	if !alg.Valid() {
		return fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}

	var r Resource
	if p.Seed != nil {
		r = seededResource(alg, *p.Seed)
	} else {
		var err error
		r, err = newResource(alg)
		if err != nil {
			return err
		}
	}
	host.Insert(app, r)

	app.Logger().Info("random number generator installed",
		zap.Stringer("algorithm", alg),
		zap.Bool("seeded", p.Seed != nil),
		zap.Bool("locking", Locking))
	return nil
}
