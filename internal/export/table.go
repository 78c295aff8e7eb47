package export

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/emrzvv/gamerng/internal/dice"
	"github.com/emrzvv/gamerng/internal/stats"
)

// SummaryTable prints the run summary as a text table.
func SummaryTable(w io.Writer, st *stats.Statistics) {
	s := st.Summary()
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"games", "player wins", "cpu wins", "player win rate", "duration (s)", "turns", "busts"})
	table.Append([]string{
		fmt.Sprintf("%d", s.Games),
		fmt.Sprintf("%d", s.PlayerWins),
		fmt.Sprintf("%d", s.CPUWins),
		fmt.Sprintf("%.3f", s.PlayerWinRate),
		fmt.Sprintf("%.2f ± %.2f", s.MeanDuration, s.StdDuration),
		fmt.Sprintf("%.1f ± %.1f", s.MeanTurns, s.StdTurns),
		fmt.Sprintf("%d", s.Busts),
	})
	table.Render()
}

// DistributionTable prints observed against expected counts per sum.
func DistributionTable(w io.Writer, h *dice.Histogram) {
	expected := dice.Expected(h.Spec)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"sum", "count", "expected"})
	for i, c := range h.Counts {
		table.Append([]string{
			fmt.Sprintf("%d", h.Min+i),
			fmt.Sprintf("%d", c),
			fmt.Sprintf("%.1f", expected[i]*float64(h.Trials)),
		})
	}
	table.Render()
}
