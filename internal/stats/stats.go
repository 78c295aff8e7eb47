package stats

import (
	"sort"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/emrzvv/gamerng/internal/model"
)

type Statistics struct {
	mu    sync.Mutex
	Turns []*TurnEvent
	Games []*GameResult
}

// TurnEvent is one finished turn: banked, or lost to a 1.
type TurnEvent struct {
	GameID int
	Phase  model.Phase
	T      float64
	Rolls  int
	Banked int
	Busted bool
}

type GameResult struct {
	GameID      int
	Winner      model.Phase
	PlayerScore int
	CPUScore    int
	Turns       int
	Rolls       int
	Start       float64
	End         float64
	Duration    float64
}

func NewStatistics() *Statistics {
	return &Statistics{
		mu:    sync.Mutex{},
		Turns: make([]*TurnEvent, 0),
		Games: make([]*GameResult, 0),
	}
}

func (st *Statistics) AddTurn(te *TurnEvent) {
	st.mu.Lock()
	st.Turns = append(st.Turns, te)
	st.mu.Unlock()
}

func (st *Statistics) AddGame(gr *GameResult) {
	st.mu.Lock()
	st.Games = append(st.Games, gr)
	st.mu.Unlock()
}

// Sort orders games by id and turns by game then time, so exports do not
// depend on worker scheduling.
func (st *Statistics) Sort() {
	st.mu.Lock()
	defer st.mu.Unlock()

	sort.SliceStable(st.Games, func(i, j int) bool { return st.Games[i].GameID < st.Games[j].GameID })
	sort.SliceStable(st.Turns, func(i, j int) bool {
		if st.Turns[i].GameID != st.Turns[j].GameID {
			return st.Turns[i].GameID < st.Turns[j].GameID
		}
		return st.Turns[i].T < st.Turns[j].T
	})
}

type Summary struct {
	Games         int
	PlayerWins    int
	CPUWins       int
	PlayerWinRate float64
	MeanDuration  float64
	StdDuration   float64
	MeanTurns     float64
	StdTurns      float64
	MeanRolls     float64
	Busts         int
}

func (st *Statistics) Summary() Summary {
	st.mu.Lock()
	defer st.mu.Unlock()

	s := Summary{Games: len(st.Games)}
	if s.Games == 0 {
		return s
	}

	durations := make([]float64, 0, s.Games)
	turns := make([]float64, 0, s.Games)
	rolls := make([]float64, 0, s.Games)
	for _, g := range st.Games {
		if g.Winner == model.PhaseCPU {
			s.CPUWins++
		} else {
			s.PlayerWins++
		}
		durations = append(durations, g.Duration)
		turns = append(turns, float64(g.Turns))
		rolls = append(rolls, float64(g.Rolls))
	}
	for _, t := range st.Turns {
		if t.Busted {
			s.Busts++
		}
	}

	s.PlayerWinRate = float64(s.PlayerWins) / float64(s.Games)
	s.MeanDuration, s.StdDuration = stat.MeanStdDev(durations, nil)
	s.MeanTurns, s.StdTurns = stat.MeanStdDev(turns, nil)
	s.MeanRolls = stat.Mean(rolls, nil)
	return s
}
