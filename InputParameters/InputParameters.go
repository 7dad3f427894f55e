package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML analysis parameters file. Lengths are in
// units of the plasma skin depth 1/kp so one file serves both unit systems.
type WakeParameters struct {
	Title               string  `yaml:"Title"`
	PlasmaWavenumber    float64 `yaml:"PlasmaWavenumber"`    // kp [1/m]; ignored in normalized units
	PeakDensityFraction float64 `yaml:"PeakDensityFraction"` // beam peak density as a fraction of ne
	BeamLength          float64 `yaml:"BeamLength"`          // flat-top length [1/kp]
	HeadOffset          float64 `yaml:"HeadOffset"`          // trailing-edge offset behind zmax [1/kp]
	SigmaZ              float64 `yaml:"SigmaZ"`              // Gaussian longitudinal sigma [1/kp]
}

// NewWakeParameters returns the reference linear wake parameters. Parsing a
// file on top only overrides the keys it names.
func NewWakeParameters() *WakeParameters {
	return &WakeParameters{
		Title:               "Linear wake validation",
		PlasmaWavenumber:    0, // 0 selects the reference wavenumber
		PeakDensityFraction: 0.01,
		BeamLength:          2,
		HeadOffset:          1,
		SigmaZ:              1.41,
	}
}

func (wp *WakeParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, wp)
}

func (wp *WakeParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", wp.Title)
	fmt.Printf("%8.5g\t\t= PlasmaWavenumber\n", wp.PlasmaWavenumber)
	fmt.Printf("%8.5f\t\t= PeakDensityFraction\n", wp.PeakDensityFraction)
	fmt.Printf("%8.5f\t\t= BeamLength\n", wp.BeamLength)
	fmt.Printf("%8.5f\t\t= HeadOffset\n", wp.HeadOffset)
	fmt.Printf("%8.5f\t\t= SigmaZ\n", wp.SigmaZ)
}
