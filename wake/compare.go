package wake

import "gonum.org/v1/gonum/floats"

// RelativeL2Error returns sum((sim-th)^2) / sum(th^2), the scale-invariant
// agreement metric between a simulated and a reference profile.
func RelativeL2Error(sim, th []float64) float64 {
	diff := make([]float64, len(sim))
	floats.SubTo(diff, sim, th)
	return floats.Dot(diff, diff) / floats.Dot(th, th)
}
