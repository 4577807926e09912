package track

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

// locations is a set of probe values covering the inside, both sides and the
// boundaries of the intervals used in tests.
var locations = []float64{-1000, -20, 0, 10, 20, 80, 140, 150, 199.999, 200, 240, 320, 340, 480, 500, 560, 625, 750, 1e6}

var intervals = []Interval[float64]{
	Iv(20.0, 200.0),
	Iv(200.0, 20.0),
	Iv(500.0, 750.0),
	Iv(560.0, 80.0),
	Iv(480.0, 340.0),
	Iv(150.0, 150.0),
	Iv(-10.0, 10.0),
	Iv(0.0, 0.0),
}
