package track

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// FadeCurve maps a location to an opacity in [0, 1].
type FadeCurve[F constraints.Float] interface {
	Sample(location F) F
}

// Direction selects whether a fade goes from transparent to opaque or the
// other way around.
type Direction int

const (
	FadeIn Direction = iota
	FadeOut
)

func (d Direction) String() string {
	switch d {
	case FadeIn:
		return "fade in"
	case FadeOut:
		return "fade out"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Fade is a linear fade over an interval. A fade in is 0 at the interval's
// start and 1 at its finish; a fade out is the opposite. Locations outside
// the interval are clamped.
type Fade[F constraints.Float] struct {
	Interval  Interval[F]
	Direction Direction
}

var _ FadeCurve[float64] = Fade[float64]{}

func NewFade[F constraints.Float](iv Interval[F], dir Direction) Fade[F] {
	return Fade[F]{
		Interval:  iv,
		Direction: dir,
	}
}

// NewFadeIn returns a fade that goes from 0 at from to 1 at to.
func NewFadeIn[F constraints.Float](from, to F) Fade[F] {
	return NewFade(Iv(from, to), FadeIn)
}

// NewFadeOut returns a fade that goes from 1 at from to 0 at to.
func NewFadeOut[F constraints.Float](from, to F) Fade[F] {
	return NewFade(Iv(from, to), FadeOut)
}

// Sample returns the opacity at location.
func (f Fade[F]) Sample(location F) F {
	return New(location, f.Interval).Percent(f.Direction == FadeIn)
}

// Apply samples the fade at t's current location. t's own interval plays no
// role.
func (f Fade[F]) Apply(t Track[F]) F {
	return f.Sample(t.CurrentLocation)
}

// ApplyFadeIn returns a function that computes a fade in from from to to for
// the current location of a track.
func ApplyFadeIn[F constraints.Float](from, to F) func(Track[F]) F {
	return applyFade(Iv(from, to), FadeIn)
}

// ApplyFadeOut is like [ApplyFadeIn] but fades out.
func ApplyFadeOut[F constraints.Float](from, to F) func(Track[F]) F {
	return applyFade(Iv(from, to), FadeOut)
}

func applyFade[F constraints.Float](iv Interval[F], dir Direction) func(Track[F]) F {
	m := func(t Track[F]) Locator[F] {
		return func(Interval[F]) F {
			return t.Percent(dir == FadeIn)
		}
	}
	return func(t Track[F]) F {
		return t.Convert(m)(iv)
	}
}
