package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gemini001100/Aeroforge-Ultra-Range-Electric-Aviation/internal/flight"
	"github.com/gemini001100/Aeroforge-Ultra-Range-Electric-Aviation/internal/montecarlo"
)

const (
	DefaultRuns = 2000
	DefaultSeed = 42
)

// Config is the user-facing analysis configuration, loadable from YAML.
type Config struct {
	Runs      int    `yaml:"runs"`
	Seed      int64  `yaml:"seed"`
	Evaluator string `yaml:"evaluator"`

	// ExternalCommand is the backend to spawn when Evaluator is
	// "external"; ignored otherwise.
	ExternalCommand string `yaml:"external_command"`

	Nominal     flight.ParameterVector `yaml:"nominal"`
	Uncertainty map[string]SpecConfig  `yaml:"uncertainty"`
}

// SpecConfig mirrors montecarlo.Spec for YAML: relative spread plus
// optional hard bounds on the sampled value.
type SpecConfig struct {
	Spread float64  `yaml:"spread"`
	Floor  *float64 `yaml:"floor,omitempty"`
	Ceil   *float64 `yaml:"ceil,omitempty"`
}

// DefaultConfig returns the baseline Al-ion + SiC analysis: the nominal
// design point with its engineering uncertainties.
func DefaultConfig() *Config {
	return &Config{
		Runs:      DefaultRuns,
		Seed:      DefaultSeed,
		Evaluator: "breguet",
		Nominal:   flight.DefaultNominal(),
		Uncertainty: map[string]SpecConfig{
			// Al-ion cell maturity is the dominant unknown.
			flight.FieldPackDens: {Spread: 0.25, Floor: montecarlo.Bound(200)},
			flight.FieldLiftDrag: {Spread: 0.15, Floor: montecarlo.Bound(15)},
			// Harvesting is weather dependent.
			flight.FieldHarvest: {Spread: 0.40, Floor: montecarlo.Bound(0)},
			flight.FieldSicGain: {Spread: 0.20, Floor: montecarlo.Bound(1.0)},
			flight.FieldEta:     {Spread: 0.10, Floor: montecarlo.Bound(0.7), Ceil: montecarlo.Bound(0.98)},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// DriverConfig converts to the montecarlo driver configuration.
func (c *Config) DriverConfig() montecarlo.Config {
	specs := make(map[string]montecarlo.Spec, len(c.Uncertainty))
	for name, sc := range c.Uncertainty {
		specs[name] = montecarlo.Spec{Spread: sc.Spread, Floor: sc.Floor, Ceil: sc.Ceil}
	}
	return montecarlo.Config{
		Nominal: c.Nominal,
		Specs:   specs,
		Runs:    c.Runs,
		Seed:    c.Seed,
	}
}

// SelectEvaluator resolves the configured evaluator strategy.
func (c *Config) SelectEvaluator() (flight.Evaluator, error) {
	return flight.Select(c.Evaluator, c.ExternalCommand)
}
