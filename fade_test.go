package track

import (
	"testing"
)

func TestFadeOut(t *testing.T) {
	fade := NewFadeOut(480.0, 340.0)
	f := func(loc, want float64) {
		t.Helper()
		diff(t, want, fade.Sample(loc), approx)
	}
	f(560, 1)
	f(480, 1)
	f(410, 0.5)
	f(340, 0)
	f(80, 0)
}

func TestFadeIn(t *testing.T) {
	fade := NewFadeIn(280.0, 200.0)
	f := func(loc, want float64) {
		t.Helper()
		diff(t, want, fade.Sample(loc), approx)
	}
	f(320, 0)
	f(280, 0)
	f(240, 0.5)
	f(200, 1)
	f(80, 1)
}

func TestFadeIgnoresTrackInterval(t *testing.T) {
	fade := NewFadeOut(480.0, 320.0)
	a := NewSpan(400.0, 560.0, 80.0)
	b := NewSpan(400.0, 0.0, 1.0)
	if fade.Apply(a) != fade.Apply(b) {
		t.Errorf("got %v and %v for the same location", fade.Apply(a), fade.Apply(b))
	}
	diff(t, 0.5, fade.Apply(a), approx)
}

func TestApplyFade(t *testing.T) {
	in := ApplyFadeIn(280.0, 200.0)
	out := ApplyFadeOut(480.0, 320.0)
	fadeIn := NewFadeIn(280.0, 200.0)
	fadeOut := NewFadeOut(480.0, 320.0)
	for _, iv := range intervals {
		for _, loc := range locations {
			tr := New(loc, iv)
			if got, want := in(tr), fadeIn.Apply(tr); got != want {
				t.Errorf("%v: fade in got %v, want %v", tr, got, want)
			}
			if got, want := out(tr), fadeOut.Apply(tr); got != want {
				t.Errorf("%v: fade out got %v, want %v", tr, got, want)
			}
		}
	}
}

func TestFadeRange(t *testing.T) {
	var curves []FadeCurve[float64]
	for _, iv := range intervals {
		curves = append(curves, NewFade(iv, FadeIn), NewFade(iv, FadeOut))
	}
	for _, c := range curves {
		for _, loc := range locations {
			if v := c.Sample(loc); v < 0 || v > 1 {
				t.Errorf("%v at %v: %v outside of [0, 1]", c, loc, v)
			}
		}
	}
}

func TestFadeSingular(t *testing.T) {
	// A zero-length fade is a step that never happens: fading in stays
	// transparent, fading out stays opaque.
	in := NewFadeIn(100.0, 100.0)
	out := NewFadeOut(100.0, 100.0)
	for _, loc := range locations {
		if v := in.Sample(loc); v != 0 {
			t.Errorf("fade in at %v: got %v, want 0", loc, v)
		}
		if v := out.Sample(loc); v != 1 {
			t.Errorf("fade out at %v: got %v, want 1", loc, v)
		}
	}
}

func TestDirectionString(t *testing.T) {
	if s := FadeOut.String(); s != "fade out" {
		t.Errorf("got %q", s)
	}
	if s := Direction(3).String(); s != "Direction(3)" {
		t.Errorf("got %q", s)
	}
}
