package equiripple

import "math/rand"

const (
	defaultGridDensity   = 20
	defaultMaxIterations = 25
	defaultSeed          = 0x5eed
)

type config struct {
	gridDensity int
	maxIter     int
	rng         *rand.Rand
}

func newConfig(opts []Option) config {
	cfg := config{
		gridDensity: defaultGridDensity,
		maxIter:     defaultMaxIterations,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}
	return cfg
}

// Option customizes the design process.
type Option func(*config)

// WithGridDensity sets the number of grid points laid out per basis function.
// The default of 20 matches the classical Parks-McClellan implementations.
func WithGridDensity(density int) Option {
	return func(cfg *config) {
		if density > 0 {
			cfg.gridDensity = density
		}
	}
}

// WithMaxIterations caps the number of exchange steps. The default is 25.
func WithMaxIterations(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxIter = n
		}
	}
}

// WithRandSource supplies the random source used to jitter the initial
// extremal set. Designs are deterministic for a fixed source; the default is
// a fixed seed, so identical specifications yield identical filters.
func WithRandSource(src rand.Source) Option {
	return func(cfg *config) {
		cfg.rng = rand.New(src)
	}
}
