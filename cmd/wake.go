/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/plasmatools/wakecheck/InputParameters"
	"github.com/plasmatools/wakecheck/openpmd"
	"github.com/plasmatools/wakecheck/wake"
)

type ModelWake struct {
	NormalizedUnits bool
	DoPlot          bool
	GaussianBeam    bool
	OutputDir       string
	ParamFile       string
	Field           string
	Verbose         bool
	Profile         bool
}

// WakeCmd represents the wake command
var WakeCmd = &cobra.Command{
	Use:   "wake",
	Short: "Compare simulated charge density against linear wakefield theory",
	Long: `
Reads the charge density at the last iteration of a simulation output series,
computes the linear plasma response to the configured driving beam and asserts
the two agree within tolerance,

wakecheck wake --output-dir diags/hdf5`,
	Run: func(cmd *cobra.Command, args []string) {
		mw := &ModelWake{}
		mw.NormalizedUnits, _ = cmd.Flags().GetBool("normalized-units")
		mw.DoPlot, _ = cmd.Flags().GetBool("do-plot")
		mw.GaussianBeam, _ = cmd.Flags().GetBool("gaussian-beam")
		mw.OutputDir, _ = cmd.Flags().GetString("output-dir")
		mw.ParamFile, _ = cmd.Flags().GetString("input-parameters")
		mw.Field, _ = cmd.Flags().GetString("field")
		mw.Verbose, _ = cmd.Flags().GetBool("verbose")
		mw.Profile, _ = cmd.Flags().GetBool("profile")
		wp := processInput(mw)
		var prof interface{ Stop() }
		if mw.Profile {
			prof = profile.Start(profile.ProfilePath("."))
		}
		err := RunWake(mw, wp)
		if prof != nil {
			prof.Stop()
		}
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func processInput(mw *ModelWake) (wp *InputParameters.WakeParameters) {
	wp = InputParameters.NewWakeParameters()
	if len(mw.ParamFile) != 0 {
		var (
			data []byte
			err  error
		)
		if data, err = ioutil.ReadFile(mw.ParamFile); err != nil {
			panic(err)
		}
		if err = wp.Parse(data); err != nil {
			panic(err)
		}
	}
	if mw.Verbose {
		wp.Print()
	}
	return
}

func init() {
	rootCmd.AddCommand(WakeCmd)
	WakeCmd.Flags().Bool("normalized-units", false, "run the analysis in normalized units")
	WakeCmd.Flags().Bool("do-plot", false, "plot simulation and theory and save them to "+wake.PlotFileName)
	WakeCmd.Flags().Bool("gaussian-beam", false, "run the analysis on the Gaussian beam")
	WakeCmd.Flags().StringP("output-dir", "o", "diags/hdf5", "path to the directory containing output files")
	WakeCmd.Flags().StringP("input-parameters", "I", "", "YAML file overriding analysis parameters like:\n\t- PlasmaWavenumber\n\t- BeamLength")
	WakeCmd.Flags().StringP("field", "f", "rho", "name of the charge density field to validate")
	WakeCmd.Flags().BoolP("verbose", "v", false, "print field metadata and parameters while running")
	WakeCmd.Flags().Bool("profile", false, "write a CPU profile of the run to the working directory")
}

// RunWake executes the full validation pipeline: load the field at the last
// iteration, build the beam model, compute the theoretical response and
// compare. The returned error is the sole fail signal of the run.
func RunWake(mw *ModelWake, wp *InputParameters.WakeParameters) error {
	ts, err := openpmd.OpenSeries(mw.OutputDir)
	if err != nil {
		return err
	}
	ts.Verbose = mw.Verbose
	rhoAlongZ, meta, err := ts.GetField(mw.Field, ts.LastIteration())
	if err != nil {
		return err
	}

	plasma := wake.NewPlasma(mw.NormalizedUnits, wp.PlasmaWavenumber)
	shape := wake.FlatTop
	if mw.GaussianBeam {
		shape = wake.Gaussian
	}
	beam := wake.BeamProfile{
		Shape:        shape,
		PeakFraction: wp.PeakDensityFraction,
		Length:       wp.BeamLength,
		HeadOffset:   wp.HeadOffset,
		SigmaZ:       wp.SigmaZ,
	}
	grid := wake.Grid{Z: meta.Z, Dz: meta.Dz, Zmax: meta.Zmax}
	return wake.NewAnalysis(plasma, beam, grid, rhoAlongZ).Run(mw.DoPlot)
}
