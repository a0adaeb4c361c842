package montecarlo

import (
	"context"
	"errors"
	"testing"

	"github.com/gemini001100/Aeroforge-Ultra-Range-Electric-Aviation/internal/flight"
)

func referenceConfig(runs int, seed int64) Config {
	return Config{
		Nominal: flight.DefaultNominal(),
		Specs: map[string]Spec{
			flight.FieldPackDens: {Spread: 0.25, Floor: Bound(200)},
			flight.FieldLiftDrag: {Spread: 0.15, Floor: Bound(15)},
			flight.FieldHarvest:  {Spread: 0.40, Floor: Bound(0)},
			flight.FieldSicGain:  {Spread: 0.20, Floor: Bound(1.0)},
			flight.FieldEta:      {Spread: 0.10, Floor: Bound(0.7), Ceil: Bound(0.98)},
		},
		Runs: runs,
		Seed: seed,
	}
}

func TestDriverEnsembleSize(t *testing.T) {
	for _, n := range []int{1, 7, 500} {
		drv, err := NewDriver(referenceConfig(n, 42), flight.NewBreguet())
		if err != nil {
			t.Fatal(err)
		}
		res, err := drv.Run(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if len(res.Ensemble) != n {
			t.Errorf("runs=%d: ensemble size %d", n, len(res.Ensemble))
		}
		if res.Summary.Runs != n {
			t.Errorf("runs=%d: summary reports %d", n, res.Summary.Runs)
		}
	}
}

func TestDriverReproducible(t *testing.T) {
	run := func() *Result {
		drv, err := NewDriver(referenceConfig(300, 42), flight.NewBreguet())
		if err != nil {
			t.Fatal(err)
		}
		res, err := drv.Run(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		return res
	}

	a, b := run(), run()
	for i := range a.Ensemble {
		if a.Ensemble[i] != b.Ensemble[i] {
			t.Fatalf("run %d differs between identical seeds: %+v vs %+v",
				i, a.Ensemble[i], b.Ensemble[i])
		}
	}
}

func TestDriverSeedChangesEnsemble(t *testing.T) {
	run := func(seed int64) *Result {
		drv, err := NewDriver(referenceConfig(100, seed), flight.NewBreguet())
		if err != nil {
			t.Fatal(err)
		}
		res, err := drv.Run(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		return res
	}

	a, b := run(1), run(2)
	same := 0
	for i := range a.Ensemble {
		if a.Ensemble[i].RangeKm == b.Ensemble[i].RangeKm {
			same++
		}
	}
	if same == len(a.Ensemble) {
		t.Error("different seeds produced identical ensembles")
	}
}

func TestDriverConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"zero runs", referenceConfig(0, 42), ErrInvalidRunCount},
		{"negative runs", referenceConfig(-5, 42), ErrInvalidRunCount},
		{
			"unknown field",
			Config{
				Nominal: flight.DefaultNominal(),
				Specs:   map[string]Spec{"wingspan": {Spread: 0.1}},
				Runs:    10,
			},
			ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDriver(tt.cfg, flight.NewBreguet())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := NewDriver(referenceConfig(10, 42), nil); !errors.Is(err, ErrNoEvaluator) {
		t.Errorf("nil evaluator: got %v", err)
	}
}

func TestDriverFixedFieldsUnchanged(t *testing.T) {
	drv, err := NewDriver(referenceConfig(50, 42), flight.NewBreguet())
	if err != nil {
		t.Fatal(err)
	}
	res, err := drv.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	nominal := flight.DefaultNominal()
	for _, r := range res.Ensemble {
		if r.Params.BatteryMass != nominal.BatteryMass ||
			r.Params.TotalMass != nominal.TotalMass ||
			r.Params.Gravity != nominal.Gravity ||
			r.Params.SFCEq != nominal.SFCEq {
			t.Fatalf("run %d mutated a fixed field: %+v", r.Index, r.Params)
		}
	}
}

func TestDriverHonorsBounds(t *testing.T) {
	drv, err := NewDriver(referenceConfig(2000, 7), flight.NewBreguet())
	if err != nil {
		t.Fatal(err)
	}
	res, err := drv.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	for _, r := range res.Ensemble {
		if r.Params.PackDensity < 200 {
			t.Fatalf("pack density %v below floor", r.Params.PackDensity)
		}
		if r.Params.LiftToDrag < 15 {
			t.Fatalf("l_over_d %v below floor", r.Params.LiftToDrag)
		}
		if r.Params.HarvestKW < 0 {
			t.Fatalf("harvest %v below floor", r.Params.HarvestKW)
		}
		if r.Params.SicGain < 1.0 {
			t.Fatalf("sic gain %v below floor", r.Params.SicGain)
		}
		if r.Params.EtaSystem < 0.7 || r.Params.EtaSystem > 0.98 {
			t.Fatalf("eta %v outside [0.7, 0.98]", r.Params.EtaSystem)
		}
	}
}

func TestDriverRangesBounded(t *testing.T) {
	drv, err := NewDriver(referenceConfig(1000, 3), flight.NewBreguet())
	if err != nil {
		t.Fatal(err)
	}
	res, err := drv.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	for _, r := range res.Ensemble {
		if r.RangeKm < 0 || r.RangeKm > flight.MaxRangeKm {
			t.Fatalf("run %d: range %v outside [0, %v]", r.Index, r.RangeKm, flight.MaxRangeKm)
		}
	}
}

func TestDriverRunIndices(t *testing.T) {
	drv, err := NewDriver(referenceConfig(25, 42), flight.NewBreguet())
	if err != nil {
		t.Fatal(err)
	}
	res, err := drv.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	for i, r := range res.Ensemble {
		if r.Index != i+1 {
			t.Fatalf("ensemble[%d].Index = %d", i, r.Index)
		}
	}
}

func TestDriverCanceledContext(t *testing.T) {
	drv, err := NewDriver(referenceConfig(100, 42), flight.NewBreguet())
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := drv.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestSampledFieldsOrder(t *testing.T) {
	cfg := referenceConfig(10, 42)
	fields := cfg.SampledFields()

	want := []string{
		flight.FieldEta,
		flight.FieldPackDens,
		flight.FieldLiftDrag,
		flight.FieldHarvest,
		flight.FieldSicGain,
	}
	if len(fields) != len(want) {
		t.Fatalf("got %d fields, want %d", len(fields), len(want))
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("fields[%d] = %s, want %s", i, fields[i], want[i])
		}
	}
}
