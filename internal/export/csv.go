package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/emrzvv/gamerng/internal/dice"
	"github.com/emrzvv/gamerng/internal/stats"
)

func writeGamesToCSV(st *stats.Statistics, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	_ = w.Write([]string{"game_id", "winner", "player_score", "cpu_score", "turns", "rolls", "start_s", "end_s", "duration_s"})
	for _, g := range st.Games {
		w.Write([]string{
			fmt.Sprintf("%d", g.GameID),
			g.Winner.String(),
			fmt.Sprintf("%d", g.PlayerScore),
			fmt.Sprintf("%d", g.CPUScore),
			fmt.Sprintf("%d", g.Turns),
			fmt.Sprintf("%d", g.Rolls),
			fmt.Sprintf("%.5f", g.Start),
			fmt.Sprintf("%.5f", g.End),
			fmt.Sprintf("%.5f", g.Duration),
		})
	}
	w.Flush()
	return w.Error()
}

func writeTurnsToCSV(st *stats.Statistics, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	_ = w.Write([]string{"game_id", "phase", "time_s", "rolls", "banked", "busted"})
	for _, t := range st.Turns {
		w.Write([]string{
			fmt.Sprintf("%d", t.GameID),
			t.Phase.String(),
			fmt.Sprintf("%.5f", t.T),
			fmt.Sprintf("%d", t.Rolls),
			fmt.Sprintf("%d", t.Banked),
			fmt.Sprintf("%t", t.Busted),
		})
	}
	w.Flush()
	return w.Error()
}

func writeSummaryToCSV(st *stats.Statistics, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	s := st.Summary()
	w := csv.NewWriter(f)
	_ = w.Write([]string{"games", "player_wins", "cpu_wins", "player_win_rate",
		"mean_duration_s", "std_duration_s", "mean_turns", "std_turns", "mean_rolls", "busts"})
	w.Write([]string{
		fmt.Sprintf("%d", s.Games),
		fmt.Sprintf("%d", s.PlayerWins),
		fmt.Sprintf("%d", s.CPUWins),
		fmt.Sprintf("%.4f", s.PlayerWinRate),
		fmt.Sprintf("%.5f", s.MeanDuration),
		fmt.Sprintf("%.5f", s.StdDuration),
		fmt.Sprintf("%.3f", s.MeanTurns),
		fmt.Sprintf("%.3f", s.StdTurns),
		fmt.Sprintf("%.3f", s.MeanRolls),
		fmt.Sprintf("%d", s.Busts),
	})
	w.Flush()
	return w.Error()
}

func writeDistributionToCSV(h *dice.Histogram, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	expected := dice.Expected(h.Spec)
	w := csv.NewWriter(f)
	_ = w.Write([]string{"sum", "count", "expected"})
	for i, c := range h.Counts {
		w.Write([]string{
			fmt.Sprintf("%d", h.Min+i),
			fmt.Sprintf("%d", c),
			fmt.Sprintf("%.3f", expected[i]*float64(h.Trials)),
		})
	}
	w.Flush()
	return w.Error()
}

func prepareDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return strings.TrimSuffix(dir, "/"), nil
}

// ToCSV writes games.csv, turns.csv and summary.csv of a simulation run into
// dir, creating it when needed.
func ToCSV(dir string, statistics *stats.Statistics) error {
	dir, err := prepareDir(dir)
	if err != nil {
		return err
	}
	err = writeGamesToCSV(statistics, fmt.Sprintf("%s/games.csv", dir))
	if err != nil {
		return err
	}
	err = writeTurnsToCSV(statistics, fmt.Sprintf("%s/turns.csv", dir))
	if err != nil {
		return err
	}
	err = writeSummaryToCSV(statistics, fmt.Sprintf("%s/summary.csv", dir))
	if err != nil {
		return err
	}
	return nil
}

// DistributionToCSV writes distribution.csv: observed and expected counts
// per sum.
func DistributionToCSV(dir string, h *dice.Histogram) error {
	dir, err := prepareDir(dir)
	if err != nil {
		return err
	}
	return writeDistributionToCSV(h, fmt.Sprintf("%s/distribution.csv", dir))
}
