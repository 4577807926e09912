package track

import (
	"testing"
)

func TestPointLerp(t *testing.T) {
	diff(t, Pt(-10, 0), Pt(0, 0).Lerp(Pt(-20, 0), 0.5))
	diff(t, Pt(4, -2), Pt(1, 2).Lerp(Pt(4, -2), 1))
}

func TestLineEval(t *testing.T) {
	l := Ln(Pt(0, 0), Pt(10, -20))
	diff(t, Pt(0, 0), l.Eval(0))
	diff(t, Pt(2.5, -5), l.Eval(0.25))
	diff(t, Pt(5, -10), l.Eval(0.5))
	diff(t, Pt(10, -20), l.Eval(1))
}

func TestPointString(t *testing.T) {
	if s := Pt(300, -1.5).String(); s != "(300, -1.5)" {
		t.Errorf("got %q", s)
	}
}
