package model

import (
	"errors"

	"github.com/emrzvv/gamerng/internal/rng"
)

// Phase says whose turn it is.
type Phase int

const (
	PhasePlayer Phase = iota
	PhaseCPU
)

func (p Phase) String() string {
	if p == PhaseCPU {
		return "cpu"
	}
	return "player"
}

func (p Phase) other() Phase {
	if p == PhaseCPU {
		return PhasePlayer
	}
	return PhaseCPU
}

var ErrGameOver = errors.New("game is over")

// DefaultTarget is the score that wins a game of pig.
const DefaultTarget = 100

type Scores struct {
	Player int
	CPU    int
}

// Game is one game of pig: roll a d6 as often as you dare, a 1 loses the
// whole hand, passing banks it.
type Game struct {
	Phase  Phase
	Scores Scores
	Hand   []int
	Target int
	Turns  int
	Rolls  int

	rng    rng.Sampler
	over   bool
	winner Phase
}

func NewGame(s rng.Sampler, target int) *Game {
	if target <= 0 {
		target = DefaultTarget
	}
	return &Game{
		Phase:  PhasePlayer,
		Hand:   make([]int, 0, 16),
		Target: target,
		rng:    s,
	}
}

// HandScore is the sum of the dice rolled this turn.
func (g *Game) HandScore() int {
	total := 0
	for _, d := range g.Hand {
		total += d
	}
	return total
}

func (g *Game) Over() bool {
	return g.over
}

// Winner returns the winning side once the game is over.
func (g *Game) Winner() (Phase, bool) {
	return g.winner, g.over
}

// Score returns the banked score of p.
func (g *Game) Score(p Phase) int {
	if p == PhaseCPU {
		return g.Scores.CPU
	}
	return g.Scores.Player
}

// Roll rolls one die for the current side.  A 1 clears the hand and ends the
// turn (bust); anything else joins the hand.
func (g *Game) Roll() (die int, bust bool, err error) {
	if g.over {
		return 0, false, ErrGameOver
	}
	die = rng.Range(g.rng, rng.Closed(1, 6))
	g.Rolls++
	if die == 1 {
		g.endTurn()
		return die, true, nil
	}
	g.Hand = append(g.Hand, die)
	return die, false, nil
}

// Pass banks the hand for the current side and ends the turn.  Reaching the
// target ends the game.
func (g *Game) Pass() (banked int, err error) {
	if g.over {
		return 0, ErrGameOver
	}
	banked = g.HandScore()
	if g.Phase == PhaseCPU {
		g.Scores.CPU += banked
	} else {
		g.Scores.Player += banked
	}
	if g.Score(g.Phase) >= g.Target {
		g.over = true
		g.winner = g.Phase
		g.Hand = g.Hand[:0]
		g.Turns++
		return banked, nil
	}
	g.endTurn()
	return banked, nil
}

// ShouldRoll is the hold-at strategy the CPU plays: keep rolling while the
// hand is below hold and banking it would not already win.
func (g *Game) ShouldRoll(hold int) bool {
	hand := g.HandScore()
	return hand < hold && g.Score(g.Phase)+hand < g.Target
}

func (g *Game) endTurn() {
	g.Hand = g.Hand[:0]
	g.Turns++
	g.Phase = g.Phase.other()
}
