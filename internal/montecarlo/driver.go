package montecarlo

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/gemini001100/Aeroforge-Ultra-Range-Electric-Aviation/internal/flight"
)

// Domain errors for driver configuration.
var (
	// ErrInvalidRunCount indicates a non-positive run count.
	ErrInvalidRunCount = errors.New("montecarlo: run count must be positive")

	// ErrUnknownField indicates an uncertainty spec naming a field the
	// nominal parameter vector does not have.
	ErrUnknownField = errors.New("montecarlo: uncertainty spec for unknown field")

	// ErrNoEvaluator indicates a driver constructed without an evaluator.
	ErrNoEvaluator = errors.New("montecarlo: evaluator is required")
)

// Config is one analysis configuration: the nominal design point, the
// uncertainty of each sampled field, the ensemble size, and the seed of
// the driver-owned random stream.
type Config struct {
	Nominal flight.ParameterVector
	Specs   map[string]Spec
	Runs    int
	Seed    int64
}

// Validate reports configuration errors before any sampling happens.
func (c Config) Validate() error {
	if c.Runs <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidRunCount, c.Runs)
	}
	for name := range c.Specs {
		if _, err := c.Nominal.Field(name); err != nil {
			return fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
	}
	return nil
}

// SampledFields returns the uncertain field names in canonical order.
// This order fixes the draw sequence and therefore reproducibility.
func (c Config) SampledFields() []string {
	fields := make([]string, 0, len(c.Specs))
	for _, name := range flight.FieldNames {
		if _, ok := c.Specs[name]; ok {
			fields = append(fields, name)
		}
	}
	return fields
}

// Run is one ensemble member: the sampled inputs and the resulting range.
type Run struct {
	Index   int                    `json:"run"`
	Params  flight.ParameterVector `json:"params"`
	RangeKm float64                `json:"range_km"`
}

// Ensemble is the ordered sequence of runs of one analysis.
type Ensemble []Run

// Ranges extracts the range column.
func (e Ensemble) Ranges() []float64 {
	out := make([]float64, len(e))
	for i, r := range e {
		out[i] = r.RangeKm
	}
	return out
}

// FieldValues extracts the sampled values of one parameter field.
func (e Ensemble) FieldValues(name string) []float64 {
	out := make([]float64, len(e))
	for i, r := range e {
		v, _ := r.Params.Field(name)
		out[i] = v
	}
	return out
}

// Result pairs the full ensemble with its summary statistics.
type Result struct {
	Ensemble Ensemble
	Summary  Summary
}

// Driver owns one analysis: a validated config, an evaluator, and an
// explicit random stream (no process-global seeding).
type Driver struct {
	cfg Config
	ev  flight.Evaluator
	rng *rand.Rand
}

func NewDriver(cfg Config, ev flight.Evaluator) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, ErrNoEvaluator
	}
	return &Driver{
		cfg: cfg,
		ev:  ev,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}, nil
}

// Sample materializes the full ensemble of input vectors without
// evaluating them. Draws happen field-by-field in canonical order, so the
// stream consumption order is independent of how the vectors are later
// evaluated.
func (d *Driver) Sample(ctx context.Context) (Ensemble, error) {
	fields := d.cfg.SampledFields()

	draws := make(map[string][]float64, len(fields))
	for _, name := range fields {
		spec := d.cfg.Specs[name]
		nominal, _ := d.cfg.Nominal.Field(name)

		column := make([]float64, d.cfg.Runs)
		for i := range column {
			column[i] = spec.Draw(nominal, d.rng.NormFloat64())
		}
		draws[name] = column
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ensemble := make(Ensemble, d.cfg.Runs)
	for i := range ensemble {
		p := d.cfg.Nominal
		for _, name := range fields {
			if err := p.SetField(name, draws[name][i]); err != nil {
				return nil, err
			}
		}
		ensemble[i] = Run{Index: i + 1, Params: p}
	}
	return ensemble, nil
}

// Evaluator returns the strategy this driver evaluates samples with.
func (d *Driver) Evaluator() flight.Evaluator { return d.ev }

// Run samples the ensemble, evaluates every member, and summarizes. The
// batch is atomic: a canceled context returns an error and no result.
func (d *Driver) Run(ctx context.Context) (*Result, error) {
	ensemble, err := d.Sample(ctx)
	if err != nil {
		return nil, err
	}

	parallelFor(d.cfg.Runs, minEvalChunk, func(start, end int) {
		for i := start; i < end; i++ {
			ensemble[i].RangeKm = d.ev.Evaluate(ensemble[i].Params)
		}
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Result{
		Ensemble: ensemble,
		Summary:  Summarize(ensemble, d.cfg.SampledFields()),
	}, nil
}
