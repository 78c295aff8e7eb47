package export

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/emrzvv/gamerng/internal/dice"
	"github.com/emrzvv/gamerng/internal/stats"
)

const durationBins = 30

// PlotDurations saves a histogram of simulated game durations.
func PlotDurations(st *stats.Statistics, file string) error {
	if len(st.Games) == 0 {
		return fmt.Errorf("plot durations: no games")
	}
	values := make(plotter.Values, len(st.Games))
	for i, g := range st.Games {
		values[i] = g.Duration
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Game duration (%d games)", len(st.Games))
	p.X.Label.Text = "Duration (s)"
	p.Y.Label.Text = "Games"
	hist, err := plotter.NewHist(values, durationBins)
	if err != nil {
		return err
	}
	p.Add(hist)
	return p.Save(20*vg.Centimeter, 10*vg.Centimeter, file)
}

// PlotDistribution saves the observed sums of h as bars with the exact
// expected counts drawn over them.
func PlotDistribution(h *dice.Histogram, file string) error {
	observed := make(plotter.Values, len(h.Counts))
	for i, c := range h.Counts {
		observed[i] = float64(c)
	}
	expected := dice.Expected(h.Spec)
	pts := make(plotter.XYs, len(expected))
	for i, e := range expected {
		pts[i].X = float64(i)
		pts[i].Y = e * float64(h.Trials)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s, %d trials", h.Spec, h.Trials)
	p.X.Label.Text = "Sum"
	p.Y.Label.Text = "Count"

	bars, err := plotter.NewBarChart(observed, vg.Points(12))
	if err != nil {
		return err
	}
	p.Add(bars)

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)

	names := make([]string, len(h.Counts))
	for i := range names {
		names[i] = fmt.Sprintf("%d", h.Min+i)
	}
	p.NominalX(names...)
	return p.Save(20*vg.Centimeter, 10*vg.Centimeter, file)
}
