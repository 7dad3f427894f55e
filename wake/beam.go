package wake

import "math"

// BeamShape selects the longitudinal profile of the driving beam.
type BeamShape uint8

const (
	FlatTop BeamShape = iota
	Gaussian
)

// BeamProfile describes the idealized driving beam along the propagation axis.
// Lengths are expressed in units of the plasma skin depth 1/kp so the same
// profile definition works in SI and normalized units.
type BeamProfile struct {
	Shape        BeamShape
	PeakFraction float64 // peak density as a fraction of the background ne
	Length       float64 // flat-top length [1/kp]
	HeadOffset   float64 // trailing-edge distance behind zmax [1/kp]
	SigmaZ       float64 // Gaussian longitudinal sigma [1/kp]
}

// NewBeamProfile returns the reference linear wake beam for the given shape.
func NewBeamProfile(shape BeamShape) BeamProfile {
	return BeamProfile{
		Shape:        shape,
		PeakFraction: 0.01,
		Length:       2,
		HeadOffset:   1,
		SigmaZ:       1.41,
	}
}

// Density samples the beam charge density on the grid. The returned array is
// zero outside the beam support.
//
// The flat-top window is positioned by truncating division, matching the
// legacy analysis: the head index is int((zmax - HeadOffset/kp)/dz) samples
// from the end of the array and the window extends int(Length/kp/dz) samples
// behind it. Windows that land partially outside the grid are clamped to it.
func (b BeamProfile) Density(p Plasma, g Grid) []float64 {
	var (
		nz = g.Nz()
		nb = make([]float64, nz)
	)
	peak := b.PeakFraction * p.Ne
	switch b.Shape {
	case Gaussian:
		var (
			mid   = nz / 2
			sigma = b.SigmaZ / p.Kp
		)
		for i := 0; i < mid-1; i++ {
			arg := float64(i) * g.Dz / sigma
			val := peak * math.Exp(-0.5*arg*arg)
			nb[mid-i] = val
			nb[mid+i] = val
		}
	default:
		var (
			headDistance = g.Zmax - b.HeadOffset/p.Kp
			indexHead    = int(headDistance / g.Dz)
			lengthI      = int(b.Length / p.Kp / g.Dz)
		)
		lo, hi := clampWindow(nz-indexHead-lengthI, nz-indexHead, nz)
		for i := lo; i < hi; i++ {
			nb[i] = peak
		}
	}
	return nb
}

// clampWindow restricts the half-open window [lo,hi) to [0,n).
func clampWindow(lo, hi, n int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// Support returns the clamped index window [lo,hi) occupied by a flat-top
// beam on the grid. For Gaussian beams it returns the full grid.
func (b BeamProfile) Support(p Plasma, g Grid) (lo, hi int) {
	nz := g.Nz()
	if b.Shape == Gaussian {
		return 0, nz
	}
	indexHead := int((g.Zmax - b.HeadOffset/p.Kp) / g.Dz)
	lengthI := int(b.Length / p.Kp / g.Dz)
	return clampWindow(nz-indexHead-lengthI, nz-indexHead, nz)
}
