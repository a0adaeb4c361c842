package flight

import "math"

const (
	// MaxRangeKm is the upper clamp applied to every evaluation.
	MaxRangeKm = 50000.0

	// CruiseHours is the fixed cruise duration over which harvested
	// power is integrated.
	CruiseHours = 6.0
)

// Breguet is the closed-form electric Breguet-style range evaluator.
type Breguet struct{}

func NewBreguet() *Breguet { return &Breguet{} }

func (b *Breguet) Name() string { return "breguet" }

// Evaluate computes the theoretical range in kilometers.
//
// Note: eta_system * sic_gain is deliberately not clamped to 1, so usable
// energy can exceed stored plus harvested energy. The reference formula
// permits this and downstream consumers depend on matching it exactly.
func (b *Breguet) Evaluate(p ParameterVector) float64 {
	packWh := p.PackDensity * p.BatteryMass
	harvestWh := p.HarvestKW * 1000 * CruiseHours

	etaEffective := p.EtaSystem * p.SicGain
	usableWh := etaEffective * (packWh + harvestWh)

	rangeM := usableWh / (p.Gravity * p.LiftToDrag * p.SFCEq * p.TotalMass)
	return ClampRange(rangeM / 1000.0)
}

// ClampRange bounds a range value to [0, MaxRangeKm]. Non-finite values
// (including the inf produced by a zero total mass) degrade to 0.
func ClampRange(km float64) float64 {
	if math.IsNaN(km) || math.IsInf(km, 0) || km < 0 {
		return 0
	}
	if km > MaxRangeKm {
		return MaxRangeKm
	}
	return km
}
