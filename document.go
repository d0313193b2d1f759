package keypath

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"honnef.co/go/keypath/pathdata"
)

const (
	DefaultTotalFrames  = 60
	DefaultCanvasWidth  = 512
	DefaultCanvasHeight = 512

	MinCanvasSize  = 64
	MaxCanvasSize  = 4096
	MaxTotalFrames = 1000
)

var (
	ErrFrameOutOfRange = errors.New("frame out of range")
	ErrCanvasSize      = errors.New("canvas size out of range")
	ErrTotalFrames     = errors.New("total frame count out of range")
	ErrKeyframeExists  = errors.New("keyframe already exists")
	ErrNoKeyframe      = errors.New("no such keyframe")
)

// Keyframe is one animation frame and the paths authored while it was
// selected.
type Keyframe struct {
	Frame int
	Paths []Path
	// Playback direction; 1 is forward, -1 is reverse.
	Direction int
	Metadata  map[string]any
}

// Document is the root of an authoring session. Keyframes is sorted by frame
// and holds at most one keyframe per frame.
type Document struct {
	Keyframes    []Keyframe
	TotalFrames  int
	CanvasWidth  int
	CanvasHeight int
}

// NewDocument returns an empty document with 60 frames on a 512×512 canvas.
func NewDocument() *Document {
	return &Document{
		TotalFrames:  DefaultTotalFrames,
		CanvasWidth:  DefaultCanvasWidth,
		CanvasHeight: DefaultCanvasHeight,
	}
}

// CheckFrame returns an error wrapping [ErrFrameOutOfRange] unless
// 0 <= frame < doc.TotalFrames.
func (doc *Document) CheckFrame(frame int) error {
	if frame < 0 || frame >= doc.TotalFrames {
		return fmt.Errorf("frame %d not in [0, %d): %w", frame, doc.TotalFrames, ErrFrameOutOfRange)
	}
	return nil
}

// AddKeyframe adds an empty keyframe for frame and returns its index.
func (doc *Document) AddKeyframe(frame int) (int, error) {
	if err := doc.CheckFrame(frame); err != nil {
		return -1, err
	}
	i, found := doc.search(frame)
	if found {
		return i, fmt.Errorf("frame %d: %w", frame, ErrKeyframeExists)
	}
	doc.Keyframes = slices.Insert(doc.Keyframes, i, Keyframe{
		Frame:     frame,
		Direction: 1,
		Metadata:  map[string]any{},
	})
	return i, nil
}

// DeleteKeyframe removes the i-th keyframe and all of its paths.
func (doc *Document) DeleteKeyframe(i int) error {
	if i < 0 || i >= len(doc.Keyframes) {
		return fmt.Errorf("keyframe #%d: %w", i, ErrNoKeyframe)
	}
	doc.Keyframes = slices.Delete(doc.Keyframes, i, i+1)
	return nil
}

// ClearKeyframe removes all paths of the i-th keyframe.
func (doc *Document) ClearKeyframe(i int) error {
	if i < 0 || i >= len(doc.Keyframes) {
		return fmt.Errorf("keyframe #%d: %w", i, ErrNoKeyframe)
	}
	doc.Keyframes[i].Paths = nil
	return nil
}

// KeyframeIndex returns the index of the keyframe for frame, or -1.
func (doc *Document) KeyframeIndex(frame int) int {
	if i, found := doc.search(frame); found {
		return i
	}
	return -1
}

// NearestKeyframe returns the index of the keyframe closest to frame, provided
// it is less than tolerance frames away, or -1. Of equally close keyframes the
// earlier one wins.
func (doc *Document) NearestKeyframe(frame int, tolerance float64) int {
	best := -1
	bestDist := math.Inf(1)
	for i, kf := range doc.Keyframes {
		d := math.Abs(float64(kf.Frame - frame))
		if d < bestDist && d < tolerance {
			best, bestDist = i, d
		}
	}
	return best
}

// TimelineTolerance is the tolerance used when selecting keyframes on a
// timeline: 5% of the total frame count.
func (doc *Document) TimelineTolerance() float64 {
	return float64(doc.TotalFrames) * 0.05
}

// SetTotalFrames changes the number of frames. n must be in [1, 1000].
// Existing keyframes are kept even if they now lie past the end.
func (doc *Document) SetTotalFrames(n int) error {
	if n < 1 || n > MaxTotalFrames {
		return fmt.Errorf("%d frames: %w", n, ErrTotalFrames)
	}
	doc.TotalFrames = n
	return nil
}

// Resize changes the canvas size. Both dimensions must be in [64, 4096].
// Path coordinates are left alone.
func (doc *Document) Resize(width, height int) error {
	if width < MinCanvasSize || width > MaxCanvasSize || height < MinCanvasSize || height > MaxCanvasSize {
		return fmt.Errorf("%dx%d: %w", width, height, ErrCanvasSize)
	}
	doc.CanvasWidth = width
	doc.CanvasHeight = height
	return nil
}

// AppendPath appends p to the i-th keyframe and returns the path's index
// within it.
func (doc *Document) AppendPath(i int, p Path) (int, error) {
	if i < 0 || i >= len(doc.Keyframes) {
		return -1, fmt.Errorf("keyframe #%d: %w", i, ErrNoKeyframe)
	}
	kf := &doc.Keyframes[i]
	kf.Paths = append(kf.Paths, p)
	return len(kf.Paths) - 1, nil
}

// Load replaces the document's keyframes with those of pd. Each keyframe with
// points becomes a keyframe holding a single straight-segment path through
// those points, without keyframe points. Keyframes with duplicate frames are
// merged into the first. The canvas size and frame count are not changed.
func (doc *Document) Load(pd pathdata.Document) {
	doc.Keyframes = nil
	for _, pkf := range pathdata.NormalizeKeyframes(pd.Keyframes) {
		var paths []Path
		if len(pkf.Points) > 0 {
			pts := make([]Point, len(pkf.Points))
			for i, pt := range pkf.Points {
				pts[i] = Point(pt)
			}
			paths = []Path{PolylinePath(pts)}
		}
		if n := len(doc.Keyframes); n > 0 && doc.Keyframes[n-1].Frame == pkf.Frame {
			doc.Keyframes[n-1].Paths = append(doc.Keyframes[n-1].Paths, paths...)
			continue
		}
		doc.Keyframes = append(doc.Keyframes, Keyframe{
			Frame:     pkf.Frame,
			Paths:     paths,
			Direction: pkf.Direction,
			Metadata:  pkf.Metadata,
		})
	}
}

// Encode resolves the document's frames and serializes them as JSON path
// data.
func (doc *Document) Encode(opts SampleOptions) (string, error) {
	return pathdata.Marshal(ResolveFrames(doc, opts), map[string]any{})
}

// Clone returns a deep copy of doc. Metadata maps are shared.
func (doc *Document) Clone() *Document {
	out := *doc
	out.Keyframes = make([]Keyframe, len(doc.Keyframes))
	for i, kf := range doc.Keyframes {
		paths := make([]Path, len(kf.Paths))
		for j, p := range kf.Paths {
			paths[j] = p.Clone()
		}
		kf.Paths = paths
		out.Keyframes[i] = kf
	}
	return &out
}

func (doc *Document) search(frame int) (int, bool) {
	return slices.BinarySearchFunc(doc.Keyframes, frame, func(kf Keyframe, f int) int {
		return kf.Frame - f
	})
}
