package viz

import (
	"strings"
	"testing"

	"github.com/gemini001100/Aeroforge-Ultra-Range-Electric-Aviation/internal/flight"
	"github.com/gemini001100/Aeroforge-Ultra-Range-Electric-Aviation/internal/montecarlo"
)

func TestBins(t *testing.T) {
	counts, lo, hi := Bins([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 5)

	if lo != 0 || hi != 9 {
		t.Errorf("bounds = (%v, %v), want (0, 9)", lo, hi)
	}
	total := 0.0
	for _, c := range counts {
		total += c
	}
	if total != 10 {
		t.Errorf("bin counts sum to %v, want 10", total)
	}
	// Max value lands in the last bin, not out of range.
	if counts[4] == 0 {
		t.Error("last bin should contain the maximum")
	}
}

func TestBinsDegenerate(t *testing.T) {
	counts, lo, hi := Bins([]float64{7, 7, 7}, 4)
	if lo != 7 || hi != 7 {
		t.Errorf("bounds = (%v, %v)", lo, hi)
	}
	if counts[0] != 3 {
		t.Errorf("constant input should fill first bin, got %v", counts)
	}

	counts, _, _ = Bins(nil, 4)
	for _, c := range counts {
		if c != 0 {
			t.Error("empty input should yield zero counts")
		}
	}
}

func TestRenderHistogram(t *testing.T) {
	ranges := []float64{1000, 2000, 2500, 3000, 3000, 4000, 9000}

	out := RenderHistogram(ranges, "range (km)")
	if !strings.Contains(out, "range (km)") {
		t.Error("caption missing")
	}
	if !strings.Contains(out, "1000 km") || !strings.Contains(out, "9000 km") {
		t.Errorf("axis bounds missing:\n%s", out)
	}

	if got := RenderHistogram(nil, "x"); got != "no data" {
		t.Errorf("empty input: got %q", got)
	}
}

func TestRenderSummary(t *testing.T) {
	s := montecarlo.Summary{
		Runs: 100, MeanKm: 4300, StdKm: 1200, MedianKm: 4200,
		P5Km: 2500, P95Km: 6500, PctTarget: 30.5, PctStretch: 1.5,
		Correlations: []montecarlo.Correlation{{Field: "epack_wh_per_kg", R: 0.82}},
	}

	out := RenderSummary(s)
	for _, want := range []string{"4300 km", "4200 km", "2500 - 6500 km", "30.5% of cases", "1.5% of cases", "epack_wh_per_kg", "+0.820"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestLiveModelEvaluatesIncrementally(t *testing.T) {
	cfg := montecarlo.Config{
		Nominal: flight.DefaultNominal(),
		Specs:   map[string]montecarlo.Spec{"epack_wh_per_kg": {Spread: 0.25, Floor: montecarlo.Bound(200)}},
		Runs:    10,
		Seed:    42,
	}
	drv, err := montecarlo.NewDriver(cfg, flight.NewBreguet())
	if err != nil {
		t.Fatal(err)
	}

	m, err := NewLiveModel(drv, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if m.Done() {
		t.Fatal("live model should start unevaluated")
	}

	for i := 0; i < 1000 && !m.Done(); i++ {
		m.Update(tickMsg{})
	}
	if !m.Done() {
		t.Fatal("live model never finished")
	}

	for _, r := range m.Ensemble() {
		if r.RangeKm <= 0 {
			t.Errorf("run %d not evaluated: %v", r.Index, r.RangeKm)
		}
	}
}
