// Package dice rolls polyhedral dice on an rng.Sampler and checks that the
// resulting sums follow the distribution they should.
package dice

import (
	"errors"
	"fmt"

	"github.com/emrzvv/gamerng/internal/rng"
)

var (
	ErrMissingDice     = errors.New("dice: at least one dice spec is required")
	ErrInvalidDiceSpec = errors.New("dice: sides and count must be positive")
)

// Spec is Count dice with Sides faces each, e.g. 3d6.
type Spec struct {
	Sides int
	Count int
}

func (s Spec) valid() bool {
	return s.Sides > 0 && s.Count > 0
}

// Min is the lowest possible sum of s.
func (s Spec) Min() int {
	return s.Count
}

// Max is the highest possible sum of s.
func (s Spec) Max() int {
	return s.Count * s.Sides
}

func (s Spec) String() string {
	return fmt.Sprintf("%dd%d", s.Count, s.Sides)
}

// Roll is the outcome of one Spec.
type Roll struct {
	Sides   int
	Results []int
	Total   int
}

// Result is the outcome of a whole request.  Rolls follow the order of the
// specs and Total is the sum of every die.
type Result struct {
	Rolls []Roll
	Total int
}

// RollDice rolls every spec in order.
func RollDice(s rng.Sampler, specs ...Spec) (Result, error) {
	if len(specs) == 0 {
		return Result{}, ErrMissingDice
	}
	for _, spec := range specs {
		if !spec.valid() {
			return Result{}, ErrInvalidDiceSpec
		}
	}

	rolls := make([]Roll, 0, len(specs))
	total := 0
	for _, spec := range specs {
		results := make([]int, spec.Count)
		rollTotal := 0
		for i := range results {
			results[i] = rollDie(s, spec.Sides)
			rollTotal += results[i]
		}
		rolls = append(rolls, Roll{
			Sides:   spec.Sides,
			Results: results,
			Total:   rollTotal,
		})
		total += rollTotal
	}
	return Result{Rolls: rolls, Total: total}, nil
}

// Sum rolls spec and returns only the total.
func Sum(s rng.Sampler, spec Spec) (int, error) {
	if !spec.valid() {
		return 0, ErrInvalidDiceSpec
	}
	total := 0
	for i := 0; i < spec.Count; i++ {
		total += rollDie(s, spec.Sides)
	}
	return total, nil
}

func rollDie(s rng.Sampler, sides int) int {
	return rng.Range(s, rng.Closed(1, sides))
}
