package keypath

import (
	"testing"
)

func TestLine(t *testing.T) {
	l := Line{Pt(0, 0), Pt(3, 4)}
	if got := l.Length(); got != 5 {
		t.Errorf("got length %g, want 5", got)
	}
	diff(t, Pt(1.5, 2), l.Eval(0.5))
	diff(t, Segment{Kind: StraightKind, P0: Pt(0, 0), P1: Pt(3, 4)}, l.Seg())
	diff(t, LineTo(Pt(3, 4)), l.Seg().PathElement())
}

func TestSegment(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 2), Pt(3, 4), Pt(5, 0)}
	seg := c.Seg()
	if seg.Kind != CubicKind {
		t.Fatalf("got kind %s, want %s", seg.Kind, CubicKind)
	}
	diff(t, c, seg.Cubic())
	diff(t, c.Eval(0.25), seg.Eval(0.25))
	diff(t, Pt(0, 0), seg.Start())
	diff(t, Pt(5, 0), seg.End())
	diff(t, CubicTo(Pt(1, 2), Pt(3, 4), Pt(5, 0)), seg.PathElement())

	l := Line{Pt(1, 1), Pt(2, 2)}.Seg()
	diff(t, Pt(2, 2), l.End())
	diff(t, Pt(1.5, 1.5), l.Eval(0.5))

	if s := seg.String(); s != "Cubic((0, 0), (1, 2), (3, 4), (5, 0))" {
		t.Errorf("got %q", s)
	}
}
