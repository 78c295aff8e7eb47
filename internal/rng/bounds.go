package rng

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any type Range can sample from.
type Number interface {
	constraints.Integer | constraints.Float
}

var (
	// ErrEmptyRange means the bounds contain no value: High < Low for a
	// closed range, High <= Low for a half-open one.
	ErrEmptyRange = errors.New("rng: empty range")
	// ErrNonFinite means a float bound is NaN or infinite, or the distance
	// between the bounds overflows.
	ErrNonFinite = errors.New("rng: non-finite range")
)

// Bounds is a range request: [Low, High) or, when Inclusive, [Low, High].
type Bounds[T Number] struct {
	Low       T
	High      T
	Inclusive bool
}

// HalfOpen returns the bounds [low, high).
func HalfOpen[T Number](low, high T) Bounds[T] {
	return Bounds[T]{Low: low, High: high}
}

// Closed returns the bounds [low, high].
func Closed[T Number](low, high T) Bounds[T] {
	return Bounds[T]{Low: low, High: high, Inclusive: true}
}

// Validate reports why b cannot be sampled, or nil.
func (b Bounds[T]) Validate() error {
	if isFloat[T]() {
		lo, hi := float64(b.Low), float64(b.High)
		if math.IsNaN(lo) || math.IsNaN(hi) ||
			math.IsInf(lo, 0) || math.IsInf(hi, 0) || math.IsInf(hi-lo, 0) {
			return fmt.Errorf("%w: %v", ErrNonFinite, b)
		}
	}
	if b.High < b.Low || (!b.Inclusive && b.High == b.Low) {
		return fmt.Errorf("%w: %v", ErrEmptyRange, b)
	}
	return nil
}

// Contains reports whether v lies within b.
func (b Bounds[T]) Contains(v T) bool {
	if v < b.Low {
		return false
	}
	if b.Inclusive {
		return v <= b.High
	}
	return v < b.High
}

func (b Bounds[T]) String() string {
	end := ")"
	if b.Inclusive {
		end = "]"
	}
	return fmt.Sprintf("[%v, %v%s", b.Low, b.High, end)
}

func isFloat[T Number]() bool {
	var one T = 1
	return one/2 != 0
}

func isSigned[T Number]() bool {
	var zero T
	return zero-1 < 0
}
