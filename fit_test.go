package keypath

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestFitStrokeTwoPoints(t *testing.T) {
	// Two points always form a straight line, regardless of smoothing.
	for _, opts := range []FitOptions{DefaultFitOptions(), {}} {
		got := FitStroke([]Point{Pt(0, 0), Pt(10, 0)}, opts)
		want := []Anchor{{Pt: Pt(0, 0)}, {Pt: Pt(10, 0)}}
		diff(t, want, got)
	}
}

func TestFitStrokeShort(t *testing.T) {
	diff(t, []Anchor{}, FitStroke(nil, DefaultFitOptions()))
	diff(t, []Anchor{{Pt: Pt(4, 5)}}, FitStroke([]Point{Pt(4, 5)}, DefaultFitOptions()))
}

func TestAnchorsFromPoints(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(10, 0), Pt(20, 10)}
	want := []Anchor{
		{Pt: Pt(0, 0), Out: H(Pt(3, 0))},
		{Pt: Pt(10, 0), In: H(Pt(7, 0)), Out: H(Pt(13, 3))},
		{Pt: Pt(20, 10), In: H(Pt(17, 7))},
	}
	diff(t, want, AnchorsFromPoints(pts), cmpopts.EquateApprox(0, 1e-12))

	// Without smoothing, FitStroke is AnchorsFromPoints.
	diff(t, want, FitStroke(pts, FitOptions{}), cmpopts.EquateApprox(0, 1e-12))
}

func TestAnchorsFromPointsZeroTangent(t *testing.T) {
	// The repeated point has a zero-length chord on either side, so the
	// handles facing it are left unset.
	pts := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 0), Pt(20, 0)}
	got := AnchorsFromPoints(pts)
	if got[1].Out.Set {
		t.Errorf("anchor 1 has an outgoing handle towards a coincident point")
	}
	if got[2].In.Set {
		t.Errorf("anchor 2 has an incoming handle from a coincident point")
	}
	if !got[1].In.Set || !got[2].Out.Set {
		t.Errorf("handles facing distinct neighbours should be set")
	}

	p := NewPath(got)
	kinds := []SegmentKind{p.Joins[0].Kind, p.Joins[1].Kind, p.Joins[2].Kind}
	diff(t, []SegmentKind{CubicKind, StraightKind, CubicKind}, kinds)
}

func TestSmoothCatmullRom(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(10, 10), Pt(20, 0), Pt(30, 10)}
	got := SmoothCatmullRom(pts, 10)
	if len(got) != (len(pts)-1)*10+1 {
		t.Fatalf("got %d points, want %d", len(got), (len(pts)-1)*10+1)
	}
	// The spline interpolates the input points.
	for i, pt := range pts {
		diff(t, pt, got[i*10], cmpopts.EquateApprox(0, 1e-12))
	}

	if n := len(SmoothCatmullRom(pts, 0)); n != 31 {
		t.Errorf("got %d points with default samples, want 31", n)
	}

	short := []Point{Pt(0, 0), Pt(1, 1)}
	diff(t, short, SmoothCatmullRom(short, 10))
}

func TestFitStrokeSmoothed(t *testing.T) {
	raw := []Point{Pt(0, 0), Pt(50, 0), Pt(100, 50)}
	anchors := FitStroke(raw, DefaultFitOptions())
	if len(anchors) != 21 {
		t.Fatalf("got %d anchors, want 21", len(anchors))
	}
	diff(t, raw[0], anchors[0].Pt)
	diff(t, raw[2], anchors[20].Pt)
	if anchors[0].In.Set || anchors[20].Out.Set {
		t.Error("end points must not have handles pointing off the chain")
	}
	if !NewPath(anchors).IsCurved() {
		t.Error("smoothed stroke should contain cubic segments")
	}
}
