package montecarlo

// Spec describes the uncertainty of one parameter: a relative spread
// (standard deviation as a fraction of the nominal value) and optional
// hard bounds applied to the sampled value itself.
//
// Bounds clip the realized value without re-normalizing the distribution,
// so heavy clamping intentionally skews the ensemble near the bound.
type Spec struct {
	Spread float64
	Floor  *float64
	Ceil   *float64
}

// Draw transforms one standard-normal draw z into a sample around the
// nominal value v.
func (s Spec) Draw(v, z float64) float64 {
	sample := v * (1 + s.Spread*z)
	if s.Floor != nil && sample < *s.Floor {
		sample = *s.Floor
	}
	if s.Ceil != nil && sample > *s.Ceil {
		sample = *s.Ceil
	}
	return sample
}

// Bound is a convenience for building optional floor/ceiling values.
func Bound(v float64) *float64 { return &v }
