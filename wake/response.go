package wake

import "math"

// SecondDerivative computes the centered finite-difference second derivative
// of the beam density with step dz. Two boundary quirks are kept from the
// legacy analysis and are relied on by the validation baselines: the i-1
// neighbor wraps to the end of the array at i=0, and the last sample is left
// at zero.
func SecondDerivative(nb []float64, dz float64) []float64 {
	var (
		nz = len(nb)
		d  = make([]float64, nz)
	)
	for i := 0; i < nz-1; i++ {
		im := (i - 1 + nz) % nz
		d[i] = (nb[im] - 2*nb[i] + nb[i+1]) / (dz * dz)
	}
	return d
}

// DensityResponse computes the linear plasma density response to the driving
// beam as a causal Green's function sum over the beam density curvature
// (Mehrling thesis, p. 41):
//
//	n_th[i] = dz * sum_j (1/kp) sin(kp dz (i-(nz-1-j))) nbDzDz[nz-1-j] + nb[i]
//
// with j running over [0, nz-i). O(nz^2); fine for validation-size grids, do
// not reuse on large ones without an FFT reformulation.
func DensityResponse(nb, nbDzDz []float64, kp, dz float64) []float64 {
	var (
		nz  = len(nb)
		nTh = make([]float64, nz)
	)
	for i := nz - 1; i >= 0; i-- {
		var tmp float64
		for j := 0; j < nz-i; j++ {
			tmp += 1. / kp * math.Sin(kp*dz*float64(i-(nz-1-j))) * nbDzDz[nz-1-j]
		}
		nTh[i] = tmp*dz + nb[i]
	}
	return nTh
}

// ChargeDensity scales a number density profile to a charge density.
func ChargeDensity(n []float64, qe float64) []float64 {
	rho := make([]float64, len(n))
	for i, v := range n {
		rho[i] = v * qe
	}
	return rho
}
