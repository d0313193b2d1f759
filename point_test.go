package keypath

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
	diff(t, Pt(0, 0).Lerp(Pt(10, 20), 0.5), Pt(5, 10))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestPointCoincides(t *testing.T) {
	tests := []struct {
		a, b Point
		want bool
	}{
		{Pt(0, 0), Pt(0, 0), true},
		{Pt(10, 10), Pt(10.009, 9.991), true},
		{Pt(10, 10), Pt(10.02, 10), false},
		{Pt(10, 10), Pt(10, 10.02), false},
		// Both axes are checked separately, not the euclidean distance.
		{Pt(0, 0), Pt(0.009, 0.009), true},
	}
	for _, tt := range tests {
		if got := tt.a.Coincides(tt.b); got != tt.want {
			t.Errorf("%v.Coincides(%v) = %t, want %t", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestPointClamp(t *testing.T) {
	diff(t, Pt(-5, 600).Clamp(0, 0, 511, 511), Pt(0, 511))
	diff(t, Pt(20, 30).Clamp(0, 0, 511, 511), Pt(20, 30))
}
