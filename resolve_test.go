package keypath

import (
	"testing"

	"honnef.co/go/keypath/pathdata"
)

func toPathdata(pts []Point) []pathdata.Point {
	out := make([]pathdata.Point, len(pts))
	for i, pt := range pts {
		out[i] = pathdata.Point(pt)
	}
	return out
}

func TestResolveFramesFanOut(t *testing.T) {
	doc := NewDocument()
	doc.AddKeyframe(0)
	p := NewPath(FitStroke([]Point{Pt(0, 0), Pt(40, 30), Pt(90, 10)}, DefaultFitOptions()))
	p.SetKeyframePoint(0, 2)
	p.SetKeyframePoint(p.Len()-1, 7)
	doc.AppendPath(0, p)

	samples := toPathdata(Sample(p, DefaultSampleOptions()))
	got := ResolveFrames(doc, DefaultSampleOptions())
	want := []pathdata.Keyframe{
		{Frame: 2, Points: samples, Direction: 1, Metadata: map[string]any{}},
		{Frame: 7, Points: samples, Direction: 1, Metadata: map[string]any{}},
	}
	// The whole path goes to both frames; the owning keyframe's frame gets
	// nothing.
	diff(t, want, got)
}

func TestResolveFramesOwnFrame(t *testing.T) {
	doc := NewDocument()
	doc.AddKeyframe(4)
	doc.AddKeyframe(9)
	doc.Keyframes[1].Direction = -1
	doc.Keyframes[1].Metadata = map[string]any{"speed": 2}

	doc.AppendPath(0, PolylinePath([]Point{Pt(0, 0), Pt(10, 0)}))
	doc.AppendPath(0, PolylinePath([]Point{Pt(10, 0), Pt(20, 0)}))
	doc.AppendPath(1, PolylinePath([]Point{Pt(5, 5), Pt(6, 6)}))
	// Paths without anchors contribute nothing.
	doc.AppendPath(1, Path{})

	got := ResolveFrames(doc, DefaultSampleOptions())
	want := []pathdata.Keyframe{
		{
			Frame:     4,
			Points:    toPathdata([]Point{Pt(0, 0), Pt(10, 0), Pt(20, 0)}),
			Direction: 1,
			Metadata:  map[string]any{},
		},
		{
			Frame:     9,
			Points:    toPathdata([]Point{Pt(5, 5), Pt(6, 6)}),
			Direction: -1,
			Metadata:  map[string]any{"speed": 2},
		},
	}
	diff(t, want, got)
}

func TestResolveFramesMerge(t *testing.T) {
	// Keyframe points from paths in different keyframes can target the same
	// frame; their samples are concatenated in document order.
	doc := NewDocument()
	doc.AddKeyframe(0)
	doc.AddKeyframe(1)
	a := PolylinePath([]Point{Pt(0, 0), Pt(10, 0)})
	a.SetKeyframePoint(0, 30)
	b := PolylinePath([]Point{Pt(10, 0), Pt(10, 10)})
	b.SetKeyframePoint(1, 30)
	doc.AppendPath(0, a)
	doc.AppendPath(1, b)

	got := ResolveFrames(doc, DefaultSampleOptions())
	want := []pathdata.Keyframe{{
		Frame:     30,
		Points:    toPathdata([]Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)}),
		Direction: 1,
		Metadata:  map[string]any{},
	}}
	diff(t, want, got)

	if got := ResolveFrames(NewDocument(), DefaultSampleOptions()); len(got) != 0 {
		t.Errorf("got %v for an empty document", got)
	}
}
