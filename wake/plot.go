package wake

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SavePlot renders the simulated charge density and the dashed theoretical
// curve on one chart and writes it to pngPath, overwriting any previous file.
func SavePlot(g Grid, rhoSim, rhoTh []float64, pngPath string) error {
	p := plot.New()
	p.X.Label.Text = "x"
	p.Y.Label.Text = "rho"

	sim := make(plotter.XYs, len(rhoSim))
	th := make(plotter.XYs, len(rhoTh))
	for i, z := range g.Z {
		sim[i].X, sim[i].Y = z, rhoSim[i]
		th[i].X, th[i].Y = z, rhoTh[i]
	}

	lSim, err := plotter.NewLine(sim)
	if err != nil {
		return fmt.Errorf("building simulation line: %w", err)
	}
	lTh, err := plotter.NewLine(th)
	if err != nil {
		return fmt.Errorf("building theory line: %w", err)
	}
	lTh.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(lSim, lTh)
	p.Legend.Add("simulation", lSim)
	p.Legend.Add("theory", lTh)

	if err = p.Save(6*vg.Inch, 4*vg.Inch, pngPath); err != nil {
		return fmt.Errorf("saving %s: %w", pngPath, err)
	}
	return nil
}
