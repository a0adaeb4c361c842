package config

import (
	"sort"

	"github.com/gemini001100/Aeroforge-Ultra-Range-Electric-Aviation/internal/flight"
	"github.com/gemini001100/Aeroforge-Ultra-Range-Electric-Aviation/internal/montecarlo"
)

// Presets are named analysis configurations covering the design envelope
// studied for the Al-ion + SiC concept.
var Presets = map[string]func() *Config{
	// The reference study: target cell density, expected aerodynamics.
	"baseline": DefaultConfig,

	// Near-term cells, degraded aerodynamics, no harvesting credit.
	"conservative": func() *Config {
		cfg := DefaultConfig()
		cfg.Nominal.PackDensity = 300
		cfg.Nominal.LiftToDrag = 18
		cfg.Nominal.HarvestKW = 0
		cfg.Nominal.SicGain = 1.04
		cfg.Uncertainty[flight.FieldPackDens] = SpecConfig{Spread: 0.15, Floor: montecarlo.Bound(150)}
		cfg.Uncertainty[flight.FieldSicGain] = SpecConfig{Spread: 0.10, Floor: montecarlo.Bound(1.0)}
		return cfg
	},

	// Everything breaks right: dense cells, clean airframe, strong
	// harvesting.
	"optimistic": func() *Config {
		cfg := DefaultConfig()
		cfg.Nominal.PackDensity = 600
		cfg.Nominal.LiftToDrag = 25
		cfg.Nominal.HarvestKW = 30
		cfg.Nominal.SicGain = 1.12
		cfg.Uncertainty[flight.FieldHarvest] = SpecConfig{Spread: 0.30, Floor: montecarlo.Bound(0)}
		return cfg
	},

	// Tight distributions for quick regression sweeps.
	"smoke": func() *Config {
		cfg := DefaultConfig()
		cfg.Runs = 200
		for name, spec := range cfg.Uncertainty {
			spec.Spread = 0.05
			cfg.Uncertainty[name] = spec
		}
		return cfg
	},
}

// GetPreset returns a fresh config for the named preset, or nil.
func GetPreset(name string) *Config {
	fn, ok := Presets[name]
	if !ok {
		return nil
	}
	return fn()
}

// ListPresets returns the preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
