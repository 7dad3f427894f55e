package wake

// CODATA 2018 values (SI)
const (
	SpeedOfLight       = 299792458.0
	ElementaryCharge   = 1.602176634e-19
	ElectronMass       = 9.1093837015e-31
	VacuumPermittivity = 8.8541878128e-12
)

// DefaultKp is the plasma wavenumber of the reference linear wake setup,
// corresponding to a plasma skin depth of 10 um.
const DefaultKp = 1. / 10.e-6

// Plasma holds the scalar physical constants of a single run. All fields are
// resolved once from the unit system and never mutated afterward.
type Plasma struct {
	Kp float64 // plasma wavenumber [1/m], 1 in normalized units
	Ne float64 // background electron density [1/m^3], 1 in normalized units
	Qe float64 // elementary charge [C], 1 in normalized units
}

// NewPlasma resolves the unit system. In normalized units all scales are unity.
// In SI units the background density follows from the wavenumber via
// ne = c^2/e^2 * m_e * eps0 * kp^2. A zero kp selects the reference wavenumber.
func NewPlasma(normalizedUnits bool, kp float64) Plasma {
	if normalizedUnits {
		return Plasma{Kp: 1, Ne: 1, Qe: 1}
	}
	if kp == 0 {
		kp = DefaultKp
	}
	c2e2 := (SpeedOfLight / ElementaryCharge) * (SpeedOfLight / ElementaryCharge)
	return Plasma{
		Kp: kp,
		Ne: c2e2 * ElectronMass * VacuumPermittivity * kp * kp,
		Qe: ElementaryCharge,
	}
}
