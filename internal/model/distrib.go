package model

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

func RandGamma(mean, cv float64, src rand.Source) float64 {
	if cv <= 0 {
		panic("cv must be > 0")
	}

	k := 1.0 / (cv * cv)
	theta := mean / k

	g := distuv.Gamma{
		Alpha: k,
		Beta:  1.0 / theta,
		Src:   src,
	}
	return g.Rand()
}

// TickSampler yields the delay of the hand timer between two moves: a fixed
// tick, or a gamma distributed one around it when cv > 0.
type TickSampler struct {
	mean float64
	cv   float64
	src  rand.Source
}

func NewTickSampler(mean, cv float64, src rand.Source) *TickSampler {
	return &TickSampler{mean: mean, cv: cv, src: src}
}

func (t *TickSampler) Next() float64 {
	if t.cv <= 0 {
		return t.mean
	}
	return RandGamma(t.mean, t.cv, t.src)
}
