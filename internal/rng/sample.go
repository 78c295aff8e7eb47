package rng

// Sampler is a generator Range, Next and Shuffle can draw from.  It is
// implemented by *Generator and *Locked only.
type Sampler interface {
	Source

	// with runs f with exclusive access to the generator state.
	with(f func(c *core))
}

// Sampleable is any type with a canonical uniform distribution: the full
// domain of an integer type, [0,1) for floats and a fair coin for bool.
type Sampleable interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 | uintptr |
		float32 | float64 | bool
}

// Range returns a value drawn uniformly from b.
// Panics with an error wrapping ErrEmptyRange or ErrNonFinite if b is invalid.
func Range[T Number](s Sampler, b Bounds[T]) T {
	v, err := TryRange(s, b)
	if err != nil {
		panic(err)
	}
	return v
}

// TryRange is Range returning the validation error instead of panicking.  No
// state is consumed when b is invalid.
func TryRange[T Number](s Sampler, b Bounds[T]) (T, error) {
	var v T
	if err := b.Validate(); err != nil {
		return v, err
	}
	s.with(func(c *core) {
		v = sampleRange(c, b)
	})
	return v, nil
}

// Next returns a value from the canonical distribution of T.
func Next[T Sampleable](s Sampler) T {
	var v T
	s.with(func(c *core) {
		v = sampleNext[T](c)
	})
	return v
}

// Shuffle randomizes the order of items in place.
func Shuffle[T any](s Sampler, items []T) {
	s.with(func(c *core) {
		// Fisher-Yates
		for i := len(items) - 1; i > 0; i-- {
			j := int(c.uint64n(uint64(i + 1)))
			items[i], items[j] = items[j], items[i]
		}
	})
}

// ConcurrentSafe reports whether s may be shared between goroutines.
func ConcurrentSafe(s Sampler) bool {
	_, ok := s.(*Locked)
	return ok
}

func sampleRange[T Number](c *core, b Bounds[T]) T {
	if isFloat[T]() {
		return sampleFloat(c, b)
	}

	// Work on the two's complement bit patterns so one unsigned span covers
	// every integer type.
	var lo, hi uint64
	if isSigned[T]() {
		lo, hi = uint64(int64(b.Low)), uint64(int64(b.High))
	} else {
		lo, hi = uint64(b.Low), uint64(b.High)
	}
	span := hi - lo
	if b.Inclusive {
		span++
		if span == 0 {
			// whole 64-bit domain
			return fromBits[T](c.src.Uint64())
		}
	}
	return fromBits[T](lo + c.uint64n(span))
}

func fromBits[T Number](u uint64) T {
	if isSigned[T]() {
		return T(int64(u))
	}
	return T(u)
}

func sampleFloat[T Number](c *core, b Bounds[T]) T {
	lo, hi := float64(b.Low), float64(b.High)
	scale := hi - lo
	if b.Inclusive {
		v := T(lo + c.float64Closed()*scale)
		if v > b.High {
			v = b.High
		}
		return v
	}
	for {
		// Rounding can land exactly on High; draw again.
		v := T(lo + c.float64()*scale)
		if v < b.High {
			return v
		}
	}
}

func sampleNext[T Sampleable](c *core) T {
	var v T
	switch p := any(&v).(type) {
	case *bool:
		*p = c.src.Uint64()>>63 == 1
	case *float32:
		*p = c.float32()
	case *float64:
		*p = c.float64()
	case *int:
		*p = int(c.src.Uint64())
	case *int8:
		*p = int8(c.src.Uint64())
	case *int16:
		*p = int16(c.src.Uint64())
	case *int32:
		*p = int32(c.src.Uint64())
	case *int64:
		*p = int64(c.src.Uint64())
	case *uint:
		*p = uint(c.src.Uint64())
	case *uint8:
		*p = uint8(c.src.Uint64())
	case *uint16:
		*p = uint16(c.src.Uint64())
	case *uint32:
		*p = uint32(c.src.Uint64())
	case *uint64:
		*p = c.src.Uint64()
	case *uintptr:
		*p = uintptr(c.src.Uint64())
	}
	return v
}
