package track

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Interval is a line segment on a single axis, going from Start to Finish.
// Start may be larger than Finish, in which case the interval is decreasing,
// and the two may be equal, in which case it is singular.
//
// Any pair of finite values forms a valid interval.
type Interval[F constraints.Float] struct {
	Start  F
	Finish F
}

// Iv returns the interval going from start to finish.
func Iv[F constraints.Float](start, finish F) Interval[F] {
	return Interval[F]{
		Start:  start,
		Finish: finish,
	}
}

func (iv Interval[F]) String() string {
	return fmt.Sprintf("[%g → %g]", float64(iv.Start), float64(iv.Finish))
}

// Increasing reports whether Finish lies after Start.
func (iv Interval[F]) Increasing() bool { return iv.Finish > iv.Start }

// Decreasing reports whether Finish lies before Start.
func (iv Interval[F]) Decreasing() bool { return iv.Finish < iv.Start }

// Singular reports whether the interval has zero length.
func (iv Interval[F]) Singular() bool { return iv.Start == iv.Finish }

// Min returns the smaller endpoint, regardless of direction.
func (iv Interval[F]) Min() F {
	if iv.Increasing() {
		return iv.Start
	}
	return iv.Finish
}

// Max returns the larger endpoint, regardless of direction.
func (iv Interval[F]) Max() F {
	if iv.Increasing() {
		return iv.Finish
	}
	return iv.Start
}

// Distance returns the length of the interval, Max − Min. It is never
// negative.
func (iv Interval[F]) Distance() F {
	return iv.Max() - iv.Min()
}

// Mid returns half of the interval's distance.
//
// Note that this is a length, not a location: for [500, 750] it is 125, not
// 625. Use [Interval.Midpoint] for the location halfway between the
// endpoints.
func (iv Interval[F]) Mid() F {
	return iv.Distance() / 2
}

// Midpoint returns the location halfway between Start and Finish.
func (iv Interval[F]) Midpoint() F {
	return 0.5 * (iv.Start + iv.Finish)
}

// Reverse returns the interval with Start and Finish swapped.
func (iv Interval[F]) Reverse() Interval[F] {
	return Interval[F]{
		Start:  iv.Finish,
		Finish: iv.Start,
	}
}

// Contains reports whether v lies within [Min, Max], endpoints included.
func (iv Interval[F]) Contains(v F) bool {
	return v >= iv.Min() && v <= iv.Max()
}
