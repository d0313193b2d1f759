package keypath

import (
	"maps"
	"slices"

	"honnef.co/go/keypath/pathdata"
)

// ResolveFrames merges the paths of a document into one point list per
// output frame.
//
// Every path is sampled with opts. A path with keyframe points contributes its
// entire sampled point list to each distinct frame its keyframe points
// reference, not just the part between them. A path without keyframe points
// contributes to the frame of the keyframe that owns it. Point lists are
// joined with [AppendJoined], in keyframe order and then path order.
//
// Frames are returned in ascending order. Direction and metadata are taken
// from the document keyframe of the same frame, or default to 1 and an empty
// map.
func ResolveFrames(doc *Document, opts SampleOptions) []pathdata.Keyframe {
	byFrame := map[int][]Point{}
	for _, kf := range doc.Keyframes {
		for _, p := range kf.Paths {
			if len(p.Anchors) == 0 {
				continue
			}
			pts := Sample(p, opts)
			frames := p.Frames()
			if len(frames) == 0 {
				frames = []int{kf.Frame}
			}
			for _, f := range frames {
				byFrame[f] = AppendJoined(byFrame[f], pts)
			}
		}
	}

	out := make([]pathdata.Keyframe, 0, len(byFrame))
	for _, f := range slices.Sorted(maps.Keys(byFrame)) {
		pts := byFrame[f]
		pkf := pathdata.Keyframe{
			Frame:     f,
			Points:    make([]pathdata.Point, len(pts)),
			Direction: 1,
			Metadata:  map[string]any{},
		}
		for i, pt := range pts {
			pkf.Points[i] = pathdata.Point(pt)
		}
		if i := doc.KeyframeIndex(f); i >= 0 {
			kf := doc.Keyframes[i]
			if kf.Direction != 0 {
				pkf.Direction = kf.Direction
			}
			if kf.Metadata != nil {
				pkf.Metadata = kf.Metadata
			}
		}
		out = append(out, pkf)
	}
	return out
}
