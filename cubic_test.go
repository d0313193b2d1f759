package keypath

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestEvaluateEndpoints(t *testing.T) {
	curves := []CubicBez{
		{Pt(0, 0), Pt(1, 2), Pt(3, 4), Pt(5, 0)},
		{Pt(-10.25, 3.5), Pt(1e6, -1e6), Pt(0.1, 0.2), Pt(7.75, -3.125)},
		{Pt(1, 1), Pt(1, 1), Pt(1, 1), Pt(1, 1)},
	}
	for _, c := range curves {
		if got := Evaluate(c.P0, c.P1, c.P2, c.P3, 0); got != c.P0 {
			t.Errorf("Evaluate(%v, 0) = %v, want %v", c, got, c.P0)
		}
		if got := Evaluate(c.P0, c.P1, c.P2, c.P3, 1); got != c.P3 {
			t.Errorf("Evaluate(%v, 1) = %v, want %v", c, got, c.P3)
		}
	}
}

func TestEvaluateBernstein(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 2), Pt(3, 4), Pt(5, 0)}
	for i := range 11 {
		tt := float64(i) / 10
		mt := 1 - tt
		want := Point{
			X: mt*mt*mt*c.P0.X + 3*mt*mt*tt*c.P1.X + 3*mt*tt*tt*c.P2.X + tt*tt*tt*c.P3.X,
			Y: mt*mt*mt*c.P0.Y + 3*mt*mt*tt*c.P1.Y + 3*mt*tt*tt*c.P2.Y + tt*tt*tt*c.P3.Y,
		}
		diff(t, want, c.Eval(tt), cmpopts.EquateApprox(0, 1e-12))
	}
}

func TestEstimateLength(t *testing.T) {
	// A straight cubic with evenly spaced control points has length 30.
	l := EstimateLength(Pt(0, 0), Pt(10, 0), Pt(20, 0), Pt(30, 0), 20)
	if math.Abs(l-30) > 1e-9 {
		t.Errorf("got length %g, want 30", l)
	}

	// samples <= 0 uses the default.
	c := CubicBez{Pt(0, 0), Pt(0, 50), Pt(50, 50), Pt(50, 0)}
	if got, want := c.EstimateLength(0), c.EstimateLength(DefaultLengthSamples); got != want {
		t.Errorf("got %g with default samples, want %g", got, want)
	}

	// The polyline estimate never exceeds the true length and grows with the
	// number of samples.
	coarse := c.EstimateLength(4)
	fine := c.EstimateLength(100)
	if coarse > fine {
		t.Errorf("coarse estimate %g exceeds fine estimate %g", coarse, fine)
	}
	if chord := c.P0.Distance(c.P3); fine < chord {
		t.Errorf("estimate %g is shorter than the chord %g", fine, chord)
	}

	if l := EstimateLength(Pt(3, 3), Pt(3, 3), Pt(3, 3), Pt(3, 3), 20); l != 0 {
		t.Errorf("got length %g for a degenerate curve, want 0", l)
	}
}
