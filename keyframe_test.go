package keypath

import (
	"testing"
)

func TestSetKeyframePoint(t *testing.T) {
	p := PolylinePath([]Point{Pt(0, 0), Pt(10, 0), Pt(20, 0), Pt(30, 0)})
	p.SetKeyframePoint(3, 11)
	p.SetKeyframePoint(0, 10)
	p.SetKeyframePoint(2, 15)
	diff(t, []KeyframePoint{{0, 10}, {2, 15}, {3, 11}}, p.KeyframePoints)

	// Re-adding an index overwrites its frame.
	p.SetKeyframePoint(2, 20)
	diff(t, []KeyframePoint{{0, 10}, {2, 20}, {3, 11}}, p.KeyframePoints)

	// Indices are clamped to the anchors.
	p.SetKeyframePoint(99, 40)
	p.SetKeyframePoint(-5, 41)
	diff(t, []KeyframePoint{{0, 41}, {2, 20}, {3, 40}}, p.KeyframePoints)
}

func TestSetKeyframePointEmptyPath(t *testing.T) {
	var p Path
	p.SetKeyframePoint(0, 1)
	if len(p.KeyframePoints) != 0 {
		t.Errorf("got keyframe points %v on an empty path", p.KeyframePoints)
	}
}

func TestRemoveKeyframePoint(t *testing.T) {
	p := PolylinePath([]Point{Pt(0, 0), Pt(10, 0), Pt(20, 0)})
	p.SetKeyframePoint(0, 1)
	p.SetKeyframePoint(2, 2)
	if !p.RemoveKeyframePoint(0) {
		t.Error("RemoveKeyframePoint(0) = false, want true")
	}
	if p.RemoveKeyframePoint(1) {
		t.Error("RemoveKeyframePoint(1) = true for an index without a keyframe point")
	}
	diff(t, []KeyframePoint{{2, 2}}, p.KeyframePoints)

	if _, ok := p.KeyframePointAt(0); ok {
		t.Error("removed keyframe point is still reported")
	}
	kp, ok := p.KeyframePointAt(2)
	if !ok || kp.Frame != 2 {
		t.Errorf("KeyframePointAt(2) = %v, %t", kp, ok)
	}
}

func TestKeyframePointNear(t *testing.T) {
	p := PolylinePath([]Point{Pt(0, 0), Pt(10, 0), Pt(20, 0)})
	p.SetKeyframePoint(0, 5)
	p.SetKeyframePoint(1, 6)

	kp, ok := p.KeyframePointNear(Pt(9, 1), 8)
	if !ok {
		t.Fatal("expected a keyframe point")
	}
	// Both points are within the radius; the later one wins.
	diff(t, KeyframePoint{Index: 1, Frame: 6}, kp)

	kp, ok = p.KeyframePointNear(Pt(1, 1), 2)
	if !ok || kp.Index != 0 {
		t.Errorf("got %v, %t, want the point at index 0", kp, ok)
	}

	// The anchor at index 2 has no keyframe point.
	if kp, ok := p.KeyframePointNear(Pt(20, 0), 2); ok {
		t.Errorf("got %v near an anchor without a keyframe point", kp)
	}
}

func TestPathFrames(t *testing.T) {
	p := PolylinePath([]Point{Pt(0, 0), Pt(10, 0), Pt(20, 0), Pt(30, 0)})
	diff(t, []int{}, p.Frames())
	p.SetKeyframePoint(0, 7)
	p.SetKeyframePoint(1, 2)
	p.SetKeyframePoint(3, 7)
	diff(t, []int{2, 7}, p.Frames())
}
