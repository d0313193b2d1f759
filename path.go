package keypath

import (
	"iter"
	"slices"

	"github.com/google/uuid"
)

// Handle is an optional tangent handle of an [Anchor].
type Handle struct {
	Point
	Set bool
}

// H returns a set handle at pt.
func H(pt Point) Handle {
	return Handle{Point: pt, Set: true}
}

// Anchor is a point on a Bézier chain together with its tangent handles. In is
// the incoming handle, pointing towards the previous anchor; Out is the
// outgoing handle, pointing towards the next anchor. The first anchor of a
// chain has no In handle and the last has no Out handle.
//
// Anchors are the form produced by [FitStroke]. A [Path] stores the same
// information as tagged segments; see [NewPath] and [Path.Anchor].
type Anchor struct {
	Pt  Point
	In  Handle
	Out Handle
}

// Join describes how a path gets from one anchor to the next. C1 and C2 are
// the control points of a cubic join and are ignored for straight joins.
type Join struct {
	Kind SegmentKind
	C1   Point
	C2   Point
}

// Path is one continuous stroke: an ordered chain of anchors connected by
// straight or cubic joins, and the keyframe points attached to its anchors.
//
// len(Joins) is always len(Anchors)-1 for a non-empty path. KeyframePoints is
// sorted by index and holds at most one point per anchor.
type Path struct {
	ID             uuid.UUID
	Anchors        []Point
	Joins          []Join
	KeyframePoints []KeyframePoint
}

// NewPath builds a path from an anchor chain. The join between anchors i and
// i+1 is cubic iff anchor i has an Out handle and anchor i+1 has an In handle;
// otherwise it is straight.
func NewPath(anchors []Anchor) Path {
	p := Path{ID: uuid.New()}
	if len(anchors) == 0 {
		return p
	}
	p.Anchors = make([]Point, len(anchors))
	p.Joins = make([]Join, len(anchors)-1)
	for i, a := range anchors {
		p.Anchors[i] = a.Pt
		if i == len(anchors)-1 {
			break
		}
		next := anchors[i+1]
		if a.Out.Set && next.In.Set {
			p.Joins[i] = Join{Kind: CubicKind, C1: a.Out.Point, C2: next.In.Point}
		} else {
			p.Joins[i] = Join{Kind: StraightKind}
		}
	}
	return p
}

// PolylinePath builds a path that connects pts with straight joins. It is
// used to reconstruct editable paths from serialized point lists, which do
// not carry control points.
func PolylinePath(pts []Point) Path {
	p := Path{ID: uuid.New()}
	if len(pts) == 0 {
		return p
	}
	p.Anchors = slices.Clone(pts)
	p.Joins = make([]Join, len(pts)-1)
	for i := range p.Joins {
		p.Joins[i] = Join{Kind: StraightKind}
	}
	return p
}

// Len returns the number of anchors.
func (p Path) Len() int {
	return len(p.Anchors)
}

// Segment returns the segment between anchors i and i+1.
func (p Path) Segment(i int) Segment {
	j := p.Joins[i]
	switch j.Kind {
	case CubicKind:
		return CubicBez{p.Anchors[i], j.C1, j.C2, p.Anchors[i+1]}.Seg()
	default:
		return Line{p.Anchors[i], p.Anchors[i+1]}.Seg()
	}
}

// Segments returns an iterator over the path's segments and their indices.
func (p Path) Segments() iter.Seq2[int, Segment] {
	return func(yield func(int, Segment) bool) {
		for i := range p.Joins {
			if !yield(i, p.Segment(i)) {
				return
			}
		}
	}
}

// IsCurved reports whether at least one segment of the path is cubic.
func (p Path) IsCurved() bool {
	for _, j := range p.Joins {
		if j.Kind == CubicKind {
			return true
		}
	}
	return false
}

// Anchor returns the anchor view of the i-th anchor, with handles taken from
// the adjoining cubic segments.
func (p Path) Anchor(i int) Anchor {
	a := Anchor{Pt: p.Anchors[i]}
	if i > 0 {
		if j := p.Joins[i-1]; j.Kind == CubicKind {
			a.In = H(j.C2)
		}
	}
	if i < len(p.Joins) {
		if j := p.Joins[i]; j.Kind == CubicKind {
			a.Out = H(j.C1)
		}
	}
	return a
}

// AnchorChain returns the anchor view of the whole path. Handles that did not
// contribute to a cubic segment are not recorded by a Path and are therefore
// absent.
func (p Path) AnchorChain() []Anchor {
	out := make([]Anchor, len(p.Anchors))
	for i := range p.Anchors {
		out[i] = p.Anchor(i)
	}
	return out
}

// Elements returns the path as a sequence of drawing commands.
func (p Path) Elements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if len(p.Anchors) == 0 {
			return
		}
		if !yield(MoveTo(p.Anchors[0])) {
			return
		}
		for _, seg := range p.Segments() {
			if !yield(seg.PathElement()) {
				return
			}
		}
	}
}

// Clone returns a deep copy of p that shares no memory with it.
func (p Path) Clone() Path {
	return Path{
		ID:             p.ID,
		Anchors:        slices.Clone(p.Anchors),
		Joins:          slices.Clone(p.Joins),
		KeyframePoints: slices.Clone(p.KeyframePoints),
	}
}
