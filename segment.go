package keypath

import "fmt"

type SegmentKind int

const (
	// A straight line between two anchors.
	StraightKind SegmentKind = iota + 1
	// A cubic Bézier between two anchors.
	CubicKind
)

func (k SegmentKind) String() string {
	switch k {
	case StraightKind:
		return "Straight"
	case CubicKind:
		return "Cubic"
	default:
		return "InvalidSegment"
	}
}

// Segment is the portion of a path between two consecutive anchors. This type
// acts as a tagged union of [Line] and [CubicBez]: straight segments use P0 and
// P1, cubic segments use all four points.
type Segment struct {
	Kind SegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

func (seg Segment) String() string {
	switch seg.Kind {
	case StraightKind:
		return fmt.Sprintf("Straight(%s, %s)", seg.P0, seg.P1)
	case CubicKind:
		return fmt.Sprintf("Cubic(%s, %s, %s, %s)", seg.P0, seg.P1, seg.P2, seg.P3)
	default:
		return "InvalidSegment"
	}
}

// Line returns the line represented by this segment. This is only valid when
// Kind == StraightKind.
func (seg Segment) Line() Line { return Line{seg.P0, seg.P1} }

// Cubic returns the cubic Bézier represented by this segment. This is only
// valid when Kind == CubicKind.
func (seg Segment) Cubic() CubicBez { return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3} }

func (seg Segment) Eval(t float64) Point {
	switch seg.Kind {
	case StraightKind:
		return seg.Line().Eval(t)
	case CubicKind:
		return seg.Cubic().Eval(t)
	default:
		return Point{}
	}
}

func (seg Segment) Start() Point {
	return seg.P0
}

func (seg Segment) End() Point {
	switch seg.Kind {
	case StraightKind:
		return seg.P1
	case CubicKind:
		return seg.P3
	default:
		return Point{}
	}
}

// PathElement returns the PathElement corresponding to the segment, discarding the
// segment's starting point.
func (seg Segment) PathElement() PathElement {
	switch seg.Kind {
	case StraightKind:
		return LineTo(seg.P1)
	case CubicKind:
		return CubicTo(seg.P1, seg.P2, seg.P3)
	default:
		return PathElement{}
	}
}

type PathElementKind int

const (
	/// Move directly to the point without drawing anything, starting a new
	/// subpath.
	MoveToKind PathElementKind = iota + 1
	/// Draw a line from the current location to the point.
	LineToKind
	/// Draw a cubic bezier using the current location and the three points.
	CubicToKind
)

// PathElement is a drawing command, akin to the commands of PostScript or SVG
// path data. Each command moves the current position of the pen.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case CubicToKind:
		kind = "CubicTo"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}
