package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/emrzvv/gamerng/internal/rng"
)

// EnvPrefix prefixes every environment override, e.g. GAMERNG_SEED.
const EnvPrefix = "GAMERNG_"

type Config struct {
	RNG struct {
		Seed      *uint64 `yaml:"seed" env:"SEED"`           // nil: seed from the OS entropy source
		Algorithm string  `yaml:"algorithm" env:"ALGORITHM"` // chacha | xorshift | pcg, empty: build default
	} `yaml:"rng"`

	Simulation struct {
		Games       int     `yaml:"games" env:"GAMES"`               // pig games to autoplay
		Workers     int     `yaml:"workers" env:"WORKERS"`           // goroutines, needs a locking generator when > 1
		TimeSeconds float64 `yaml:"time_seconds" env:"TIME_SECONDS"` // simulated time horizon per worker
	} `yaml:"simulation"`

	Pig struct {
		TargetScore int     `yaml:"target_score" env:"TARGET_SCORE"` // first to bank this many points wins
		CPUHold     int     `yaml:"cpu_hold" env:"CPU_HOLD"`         // the CPU banks once its hand reaches this
		PlayerHold  int     `yaml:"player_hold" env:"PLAYER_HOLD"`   // same, for the automated player
		Tick        float64 `yaml:"tick_s" env:"TICK_S"`             // hand timer, seconds per roll
		TickCV      float64 `yaml:"tick_cv" env:"TICK_CV"`           // 0: fixed tick, else gamma distributed
	} `yaml:"pig"`

	Distribution struct {
		Dice   int     `yaml:"dice" env:"DICE"`
		Sides  int     `yaml:"sides" env:"SIDES"`
		Trials int     `yaml:"trials" env:"TRIALS"`
		Alpha  float64 `yaml:"alpha" env:"ALPHA"` // significance level of the goodness-of-fit test
	} `yaml:"distribution"`
}

// Load reads the YAML file at path, applies GAMERNG_* environment overrides,
// fills defaults and validates the result.  An empty path skips the file.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("error when parsing config: %w", err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("error when parsing env: %w", err)
	}

	fillDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("error when validating config: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration used when no file and no overrides are
// given.
func Default() *Config {
	var cfg Config
	fillDefaults(&cfg)
	return &cfg
}

// Algorithm returns the configured generator algorithm.
func (c *Config) Algorithm() rng.Algorithm {
	// validated by Load
	alg, _ := rng.ParseAlgorithm(c.RNG.Algorithm)
	return alg
}

// Plugin returns the generator plugin described by the rng section.
func (c *Config) Plugin() rng.Plugin {
	alg := c.Algorithm()
	return rng.Plugin{Seed: c.RNG.Seed, Algorithm: &alg}
}

func fillDefaults(c *Config) {
	if c.Simulation.Games == 0 {
		c.Simulation.Games = 1000
	}
	if c.Simulation.Workers == 0 {
		c.Simulation.Workers = 1
	}
	if c.Simulation.TimeSeconds == 0 {
		c.Simulation.TimeSeconds = 1e9
	}
	if c.Pig.TargetScore == 0 {
		c.Pig.TargetScore = 100
	}
	if c.Pig.CPUHold == 0 {
		c.Pig.CPUHold = 20
	}
	if c.Pig.PlayerHold == 0 {
		c.Pig.PlayerHold = 20
	}
	if c.Pig.Tick == 0 {
		c.Pig.Tick = 0.5
	}
	if c.Distribution.Dice == 0 {
		c.Distribution.Dice = 3
	}
	if c.Distribution.Sides == 0 {
		c.Distribution.Sides = 6
	}
	if c.Distribution.Trials == 0 {
		c.Distribution.Trials = 1000
	}
	if c.Distribution.Alpha == 0 {
		c.Distribution.Alpha = 0.01
	}
}

func validate(c *Config) error {
	var err error
	if _, e := rng.ParseAlgorithm(c.RNG.Algorithm); e != nil {
		err = multierr.Append(err, e)
	}
	if c.Simulation.Games < 0 {
		err = multierr.Append(err, errors.New("simulation.games must be > 0"))
	}
	if c.Simulation.Workers < 0 {
		err = multierr.Append(err, errors.New("simulation.workers must be > 0"))
	}
	if c.Simulation.TimeSeconds < 0 {
		err = multierr.Append(err, errors.New("simulation.time_seconds must be > 0"))
	}
	if c.Pig.TargetScore < 0 {
		err = multierr.Append(err, errors.New("pig.target_score must be > 0"))
	}
	if c.Pig.CPUHold < 0 || c.Pig.PlayerHold < 0 {
		err = multierr.Append(err, errors.New("pig hold thresholds must be > 0"))
	}
	if c.Pig.Tick < 0 {
		err = multierr.Append(err, errors.New("pig.tick_s must be > 0"))
	}
	if c.Pig.TickCV < 0 {
		err = multierr.Append(err, errors.New("pig.tick_cv must be >= 0"))
	}
	if c.Distribution.Dice < 0 {
		err = multierr.Append(err, errors.New("distribution.dice must be > 0"))
	}
	if c.Distribution.Sides < 0 || c.Distribution.Sides == 1 {
		err = multierr.Append(err, errors.New("distribution.sides must be > 1"))
	}
	if c.Distribution.Trials < 0 {
		err = multierr.Append(err, errors.New("distribution.trials must be > 0"))
	}
	if c.Distribution.Alpha < 0 || c.Distribution.Alpha >= 1 {
		err = multierr.Append(err, errors.New("distribution.alpha must be in (0, 1)"))
	}
	return err
}
