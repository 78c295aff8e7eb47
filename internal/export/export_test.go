package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emrzvv/gamerng/internal/dice"
	"github.com/emrzvv/gamerng/internal/model"
	"github.com/emrzvv/gamerng/internal/rng"
	"github.com/emrzvv/gamerng/internal/stats"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func sampleStatistics() *stats.Statistics {
	st := stats.NewStatistics()
	st.AddGame(&stats.GameResult{GameID: 0, Winner: model.PhaseCPU, PlayerScore: 80, CPUScore: 102, Turns: 14, Rolls: 50, Start: 0, End: 25, Duration: 25})
	st.AddGame(&stats.GameResult{GameID: 1, Winner: model.PhasePlayer, PlayerScore: 100, CPUScore: 60, Turns: 11, Rolls: 41, Start: 0.5, End: 21, Duration: 20.5})
	st.AddTurn(&stats.TurnEvent{GameID: 0, Phase: model.PhasePlayer, T: 1.5, Rolls: 3, Busted: true})
	return st
}

func TestToCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out") + "/"
	require.NoError(t, ToCSV(dir, sampleStatistics()))

	games := readCSV(t, filepath.Join(dir, "games.csv"))
	require.Len(t, games, 3)
	require.Equal(t, "game_id", games[0][0])
	require.Equal(t, "cpu", games[1][1])
	require.Equal(t, "player", games[2][1])

	turns := readCSV(t, filepath.Join(dir, "turns.csv"))
	require.Len(t, turns, 2)
	require.Equal(t, "true", turns[1][5])

	summary := readCSV(t, filepath.Join(dir, "summary.csv"))
	require.Len(t, summary, 2)
	require.Equal(t, []string{"2", "1", "1", "0.5000"}, summary[1][:4])
}

func TestDistributionToCSV(t *testing.T) {
	h, err := dice.Distribution(rng.Seeded(9), dice.Spec{Sides: 6, Count: 3}, 600)
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, DistributionToCSV(dir, h))

	rows := readCSV(t, filepath.Join(dir, "distribution.csv"))
	require.Len(t, rows, 17)
	require.Equal(t, []string{"sum", "count", "expected"}, rows[0])
	require.Equal(t, "3", rows[1][0])
	require.Equal(t, "2.778", rows[1][2])
	require.Equal(t, "18", rows[16][0])
}

func TestPlots(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, PlotDurations(sampleStatistics(), filepath.Join(dir, "durations.png")))
	require.Error(t, PlotDurations(stats.NewStatistics(), filepath.Join(dir, "empty.png")))

	h, err := dice.Distribution(rng.Seeded(9), dice.Spec{Sides: 6, Count: 3}, 600)
	require.NoError(t, err)
	require.NoError(t, PlotDistribution(h, filepath.Join(dir, "distribution.png")))

	for _, name := range []string{"durations.png", "distribution.png"} {
		fi, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err)
		require.Greater(t, fi.Size(), int64(0))
	}
}

func TestTables(t *testing.T) {
	var buf bytes.Buffer
	SummaryTable(&buf, sampleStatistics())
	require.Contains(t, strings.ToUpper(buf.String()), "PLAYER WIN RATE")
	require.Contains(t, buf.String(), "0.500")

	h, err := dice.Distribution(rng.Seeded(9), dice.Spec{Sides: 6, Count: 3}, 600)
	require.NoError(t, err)
	buf.Reset()
	DistributionTable(&buf, h)
	require.Contains(t, strings.ToUpper(buf.String()), "EXPECTED")
	require.Contains(t, buf.String(), "2.8")
}
