package keypath

import (
	"errors"
	"testing"

	"honnef.co/go/keypath/pathdata"
)

func keyframeFrames(doc *Document) []int {
	out := make([]int, len(doc.Keyframes))
	for i, kf := range doc.Keyframes {
		out[i] = kf.Frame
	}
	return out
}

func TestDocumentAddKeyframe(t *testing.T) {
	doc := NewDocument()
	for _, f := range []int{10, 5, 20} {
		if _, err := doc.AddKeyframe(f); err != nil {
			t.Fatalf("AddKeyframe(%d): %v", f, err)
		}
	}
	diff(t, []int{5, 10, 20}, keyframeFrames(doc))
	if i := doc.KeyframeIndex(10); i != 1 {
		t.Errorf("KeyframeIndex(10) = %d, want 1", i)
	}
	if i := doc.KeyframeIndex(11); i != -1 {
		t.Errorf("KeyframeIndex(11) = %d, want -1", i)
	}

	if _, err := doc.AddKeyframe(10); !errors.Is(err, ErrKeyframeExists) {
		t.Errorf("got error %v, want ErrKeyframeExists", err)
	}
	for _, f := range []int{-1, 60, 1000} {
		if _, err := doc.AddKeyframe(f); !errors.Is(err, ErrFrameOutOfRange) {
			t.Errorf("AddKeyframe(%d): got error %v, want ErrFrameOutOfRange", f, err)
		}
	}
	// Rejected additions leave the document unchanged.
	diff(t, []int{5, 10, 20}, keyframeFrames(doc))
	if doc.Keyframes[0].Direction != 1 {
		t.Errorf("new keyframe has direction %d, want 1", doc.Keyframes[0].Direction)
	}
}

func TestDocumentDeleteClear(t *testing.T) {
	doc := NewDocument()
	doc.AddKeyframe(0)
	doc.AddKeyframe(5)
	if _, err := doc.AppendPath(0, PolylinePath([]Point{Pt(0, 0), Pt(1, 1)})); err != nil {
		t.Fatal(err)
	}
	if _, err := doc.AppendPath(2, Path{}); !errors.Is(err, ErrNoKeyframe) {
		t.Errorf("got error %v, want ErrNoKeyframe", err)
	}

	if err := doc.ClearKeyframe(0); err != nil {
		t.Fatal(err)
	}
	if n := len(doc.Keyframes[0].Paths); n != 0 {
		t.Errorf("cleared keyframe has %d paths", n)
	}
	if err := doc.DeleteKeyframe(0); err != nil {
		t.Fatal(err)
	}
	diff(t, []int{5}, keyframeFrames(doc))
	if err := doc.DeleteKeyframe(1); !errors.Is(err, ErrNoKeyframe) {
		t.Errorf("got error %v, want ErrNoKeyframe", err)
	}
	if err := doc.ClearKeyframe(-1); !errors.Is(err, ErrNoKeyframe) {
		t.Errorf("got error %v, want ErrNoKeyframe", err)
	}
}

func TestDocumentNearestKeyframe(t *testing.T) {
	doc := NewDocument()
	doc.AddKeyframe(10)
	doc.AddKeyframe(20)
	tol := doc.TimelineTolerance()
	if tol != 3 {
		t.Fatalf("got tolerance %g, want 3", tol)
	}
	tests := []struct {
		frame int
		want  int
	}{
		{10, 0},
		{12, 0},
		{19, 1},
		{15, -1},
		{13, -1},
		{0, -1},
	}
	for _, tt := range tests {
		if got := doc.NearestKeyframe(tt.frame, tol); got != tt.want {
			t.Errorf("NearestKeyframe(%d) = %d, want %d", tt.frame, got, tt.want)
		}
	}
}

func TestDocumentLimits(t *testing.T) {
	doc := NewDocument()
	for _, n := range []int{0, 1001, -3} {
		if err := doc.SetTotalFrames(n); !errors.Is(err, ErrTotalFrames) {
			t.Errorf("SetTotalFrames(%d): got error %v", n, err)
		}
	}
	if doc.TotalFrames != DefaultTotalFrames {
		t.Errorf("rejected frame count changed the document")
	}
	if err := doc.SetTotalFrames(1000); err != nil {
		t.Error(err)
	}

	for _, sz := range [][2]int{{63, 512}, {512, 4097}, {0, 0}} {
		if err := doc.Resize(sz[0], sz[1]); !errors.Is(err, ErrCanvasSize) {
			t.Errorf("Resize(%d, %d): got error %v", sz[0], sz[1], err)
		}
	}
	if doc.CanvasWidth != 512 || doc.CanvasHeight != 512 {
		t.Errorf("rejected resize changed the canvas to %dx%d", doc.CanvasWidth, doc.CanvasHeight)
	}
	if err := doc.Resize(64, 4096); err != nil {
		t.Error(err)
	}
}

func TestDocumentLoad(t *testing.T) {
	pd, err := pathdata.Parse("0:10,10;20,20|5:30,30")
	if err != nil {
		t.Fatal(err)
	}
	doc := NewDocument()
	doc.AddKeyframe(40)
	doc.Load(pd)
	diff(t, []int{0, 5}, keyframeFrames(doc))
	p := doc.Keyframes[0].Paths[0]
	diff(t, []Point{Pt(10, 10), Pt(20, 20)}, p.Anchors)
	if p.IsCurved() || len(p.KeyframePoints) != 0 {
		t.Errorf("loaded path should be straight without keyframe points")
	}

	text, err := doc.Encode(DefaultSampleOptions())
	if err != nil {
		t.Fatal(err)
	}
	want := `{"version":"1.0","keyframes":[` +
		`{"frame":0,"points":[{"x":10,"y":10},{"x":20,"y":20}],"direction":1,"metadata":{}},` +
		`{"frame":5,"points":[{"x":30,"y":30}],"direction":1,"metadata":{}}` +
		`],"metadata":{}}`
	if text != want {
		t.Errorf("got\n%s\nwant\n%s", text, want)
	}
}

func TestDocumentLoadKeepsDirection(t *testing.T) {
	pd, err := pathdata.Parse(`{"keyframes":[{"frame":3,"points":[{"x":1,"y":2}],"direction":-1,"metadata":{"ease":"in"}},{"frame":4,"points":[]}]}`)
	if err != nil {
		t.Fatal(err)
	}
	doc := NewDocument()
	doc.Load(pd)
	diff(t, []int{3, 4}, keyframeFrames(doc))
	if d := doc.Keyframes[0].Direction; d != -1 {
		t.Errorf("got direction %d, want -1", d)
	}
	if n := len(doc.Keyframes[1].Paths); n != 0 {
		t.Errorf("keyframe without points got %d paths", n)
	}

	resolved := ResolveFrames(doc, DefaultSampleOptions())
	want := []pathdata.Keyframe{{
		Frame:     3,
		Points:    []pathdata.Point{{X: 1, Y: 2}},
		Direction: -1,
		Metadata:  map[string]any{"ease": "in"},
	}}
	diff(t, want, resolved)
}

func TestDocumentClone(t *testing.T) {
	doc := NewDocument()
	doc.AddKeyframe(0)
	doc.AppendPath(0, PolylinePath([]Point{Pt(0, 0), Pt(1, 1)}))
	c := doc.Clone()
	c.Keyframes[0].Paths[0].Anchors[0] = Pt(9, 9)
	c.Keyframes[0].Paths[0].SetKeyframePoint(1, 4)
	diff(t, Pt(0, 0), doc.Keyframes[0].Paths[0].Anchors[0])
	if n := len(doc.Keyframes[0].Paths[0].KeyframePoints); n != 0 {
		t.Errorf("clone shares keyframe points with the original")
	}
}
