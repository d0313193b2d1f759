package keypath

import (
	"slices"
)

// KeyframePoint associates the anchor at Index with an output frame.
type KeyframePoint struct {
	Index int
	Frame int
}

// SetKeyframePoint attaches frame to the anchor at index. An existing
// keyframe point at that index has its frame replaced; otherwise a new point
// is inserted, keeping KeyframePoints sorted by index. index is clamped to
// the path's anchors.
//
// Frame bounds are checked by [Document] and the editor, which know the
// total frame count.
func (p *Path) SetKeyframePoint(index, frame int) {
	if len(p.Anchors) == 0 {
		return
	}
	index = max(0, min(index, len(p.Anchors)-1))
	i, found := p.findKeyframePoint(index)
	if found {
		p.KeyframePoints[i].Frame = frame
		return
	}
	p.KeyframePoints = slices.Insert(p.KeyframePoints, i, KeyframePoint{Index: index, Frame: frame})
}

// RemoveKeyframePoint removes the keyframe point at index and reports whether
// there was one.
func (p *Path) RemoveKeyframePoint(index int) bool {
	i, found := p.findKeyframePoint(index)
	if found {
		p.KeyframePoints = slices.Delete(p.KeyframePoints, i, i+1)
	}
	return found
}

// KeyframePointAt returns the keyframe point at index.
func (p Path) KeyframePointAt(index int) (KeyframePoint, bool) {
	i, found := p.findKeyframePoint(index)
	if !found {
		return KeyframePoint{}, false
	}
	return p.KeyframePoints[i], true
}

// KeyframePointNear returns the last keyframe point whose anchor lies within
// radius of pt. It tests the stored anchor positions, not the sampled curve.
func (p Path) KeyframePointNear(pt Point, radius float64) (KeyframePoint, bool) {
	for i := len(p.KeyframePoints) - 1; i >= 0; i-- {
		kp := p.KeyframePoints[i]
		if kp.Index < 0 || kp.Index >= len(p.Anchors) {
			continue
		}
		if pt.Distance(p.Anchors[kp.Index]) <= radius {
			return kp, true
		}
	}
	return KeyframePoint{}, false
}

// Frames returns the distinct frames referenced by the path's keyframe
// points, in ascending order.
func (p Path) Frames() []int {
	frames := make([]int, 0, len(p.KeyframePoints))
	for _, kp := range p.KeyframePoints {
		frames = append(frames, kp.Frame)
	}
	slices.Sort(frames)
	return slices.Compact(frames)
}

func (p Path) findKeyframePoint(index int) (int, bool) {
	return slices.BinarySearchFunc(p.KeyframePoints, index, func(kp KeyframePoint, idx int) int {
		return kp.Index - idx
	})
}
