package wake

// Grid is the uniform longitudinal grid all profiles are sampled on. Z holds
// the sample positions along the propagation axis, Dz the uniform spacing and
// Zmax the position of the last sample.
type Grid struct {
	Z    []float64
	Dz   float64
	Zmax float64
}

// Nz returns the sample count.
func (g Grid) Nz() int {
	return len(g.Z)
}
