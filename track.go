package track

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Position classifies a track's current location relative to its interval,
// taking the interval's direction into account.
type Position int

const (
	// Inside means the location lies within the interval, endpoints
	// included.
	Inside Position = iota
	// Before means the location has not reached the interval's start yet.
	Before
	// After means the location has moved past the interval's finish.
	After
)

func (p Position) String() string {
	switch p {
	case Inside:
		return "inside"
	case Before:
		return "before"
	case After:
		return "after"
	default:
		return fmt.Sprintf("Position(%d)", int(p))
	}
}

// Track is a location moving along an interval. Derived values such as
// [Track.PercentIncreasing] are computed from the location clamped to the
// interval, so they always stay within the interval's bounds no matter how
// far the location overshoots.
//
// A Track is a value. [Track.Update] is its only mutator; every other method
// is a pure read.
type Track[F constraints.Float] struct {
	CurrentLocation F
	Interval        Interval[F]
}

// New returns a track at current moving along iv.
func New[F constraints.Float](current F, iv Interval[F]) Track[F] {
	return Track[F]{
		CurrentLocation: current,
		Interval:        iv,
	}
}

// NewSpan returns a track at current moving along the interval from start to
// finish.
func NewSpan[F constraints.Float](current, start, finish F) Track[F] {
	return New(current, Iv(start, finish))
}

// Locate clamps current into iv. It is shorthand for constructing a track and
// calling [Track.RelativeLocation].
func Locate[F constraints.Float](current F, iv Interval[F]) F {
	return New(current, iv).RelativeLocation()
}

func (t Track[F]) String() string {
	return fmt.Sprintf("%g %s %s", float64(t.CurrentLocation), t.Position(), t.Interval)
}

// Update moves the track to a new location.
func (t *Track[F]) Update(v F) {
	t.CurrentLocation = v
}

// Increasing reports whether the track's interval is increasing.
func (t Track[F]) Increasing() bool {
	return t.Interval.Increasing()
}

// Position classifies the current location. Locations equal to either
// endpoint are Inside.
//
// Singular intervals are treated like decreasing ones, which makes no
// difference to the result.
func (t Track[F]) Position() Position {
	lo, hi := t.Interval.Min(), t.Interval.Max()
	v := t.CurrentLocation
	if t.Increasing() {
		switch {
		case v < lo:
			return Before
		case v > hi:
			return After
		}
	} else {
		switch {
		case v > hi:
			return Before
		case v < lo:
			return After
		}
	}
	return Inside
}

// RelativeLocation returns the current location clamped to the interval:
// Start if the track is before the interval, Finish if it is after it.
func (t Track[F]) RelativeLocation() F {
	switch t.Position() {
	case Before:
		return t.Interval.Start
	case After:
		return t.Interval.Finish
	default:
		return t.CurrentLocation
	}
}

// DistanceFromStart returns how far the clamped location has moved from the
// interval's start, in the direction of the interval.
func (t Track[F]) DistanceFromStart() F {
	if t.Increasing() {
		return t.RelativeLocation() - t.Interval.Min()
	}
	return t.Interval.Max() - t.RelativeLocation()
}

// PercentIncreasing returns the fraction of the interval that has been
// covered, in [0, 1]. It is 0 for singular intervals.
func (t Track[F]) PercentIncreasing() F {
	if t.Interval.Singular() {
		return 0
	}
	return t.DistanceFromStart() / t.Interval.Distance()
}

// PercentDecreasing returns the fraction of the interval that remains,
// 1 − [Track.PercentIncreasing].
func (t Track[F]) PercentDecreasing() F {
	return 1 - t.PercentIncreasing()
}

// Percent returns PercentIncreasing if increasing is true and
// PercentDecreasing otherwise.
func (t Track[F]) Percent(increasing bool) F {
	if increasing {
		return t.PercentIncreasing()
	}
	return t.PercentDecreasing()
}

// RelocateProportionately maps the track's progress onto another interval.
// The direction of iv, not of the track, selects which percentage is used.
// The result always lies within [iv.Min(), iv.Max()].
func (t Track[F]) RelocateProportionately(iv Interval[F]) F {
	return t.Percent(iv.Increasing())*iv.Distance() + iv.Min()
}

// RelocateAlong maps the track's progress onto a line segment, returning
// l.P0 at the start of the interval and l.P1 at its finish.
func (t Track[F]) RelocateAlong(l Line) Point {
	return l.Eval(float64(t.PercentIncreasing()))
}

// A Locator computes a value from an interval.
type Locator[F constraints.Float] func(Interval[F]) F

// A Movement builds a Locator from a track.
type Movement[F constraints.Float] func(Track[F]) Locator[F]

// Convert returns a Locator that, given an interval, moves a copy of t onto
// that interval, keeping the current location, and evaluates m for it.
func (t Track[F]) Convert(m Movement[F]) Locator[F] {
	loc := t.CurrentLocation
	return func(iv Interval[F]) F {
		return m(New(loc, iv))(iv)
	}
}
