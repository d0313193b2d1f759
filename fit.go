package keypath

// tangentScale is the fraction of the neighbouring chord used as the length of
// a control handle.
const tangentScale = 0.3

// FitOptions controls [FitStroke]. The zero value disables smoothing; use
// [DefaultFitOptions] for the editor defaults.
type FitOptions struct {
	// Number of points emitted per input segment by Catmull-Rom resampling.
	// Values <= 0 use 10.
	SmoothSamples int
	// Whether to resample the stroke with a Catmull-Rom spline before
	// computing tangents.
	EnableSmoothing bool
}

// DefaultFitOptions returns the options used for freehand strokes.
func DefaultFitOptions() FitOptions {
	return FitOptions{
		SmoothSamples:   10,
		EnableSmoothing: true,
	}
}

// FitStroke converts a freehand stroke into a chain of Bézier anchors.
//
// Strokes with fewer than two points produce one anchor per point without
// handles. If smoothing is enabled and the stroke has at least three points,
// the stroke is first resampled with [SmoothCatmullRom], which removes jitter
// and increases point density. The resulting points are turned into anchors
// with [AnchorsFromPoints].
//
// The tangents are a local estimate. FitStroke does not minimize the
// distance between the stroke and the fitted curve.
func FitStroke(raw []Point, opts FitOptions) []Anchor {
	if len(raw) < 2 {
		out := make([]Anchor, len(raw))
		for i, pt := range raw {
			out[i] = Anchor{Pt: pt}
		}
		return out
	}
	pts := raw
	if opts.EnableSmoothing && len(raw) > 2 {
		pts = SmoothCatmullRom(raw, opts.SmoothSamples)
	}
	return AnchorsFromPoints(pts)
}

// SmoothCatmullRom resamples pts along a uniform Catmull-Rom spline.
//
// For every pair of consecutive points, samples points are emitted at
// t = j/samples for j in [0, samples). Segments at either end of the sequence
// substitute the nearest valid point for the missing neighbour. The last
// input point is appended unchanged, so the result holds
// (len(pts)-1)*samples+1 points.
//
// Sequences of fewer than three points are returned as is.
func SmoothCatmullRom(pts []Point, samples int) []Point {
	if len(pts) < 3 {
		return pts
	}
	if samples <= 0 {
		samples = 10
	}
	n := len(pts)
	out := make([]Point, 0, (n-1)*samples+1)
	for i := range n - 1 {
		p0 := pts[max(0, i-1)]
		p1 := pts[i]
		p2 := pts[i+1]
		p3 := pts[min(n-1, i+2)]
		for j := range samples {
			t := float64(j) / float64(samples)
			out = append(out, catmullRom(p0, p1, p2, p3, t))
		}
	}
	out = append(out, pts[n-1])
	return out
}

// catmullRom evaluates the uniform Catmull-Rom segment between p1 and p2.
func catmullRom(p0, p1, p2, p3 Point, t float64) Point {
	t2 := t * t
	t3 := t2 * t
	f := func(a, b, c, d float64) float64 {
		return 0.5 * (2*b +
			(-a+c)*t +
			(2*a-5*b+4*c-d)*t2 +
			(-a+3*b-3*c+d)*t3)
	}
	return Point{
		X: f(p0.X, p1.X, p2.X, p3.X),
		Y: f(p0.Y, p1.Y, p2.Y, p3.Y),
	}
}

// AnchorsFromPoints turns a point sequence into anchors whose handles follow
// the chords to the neighbouring points, scaled by 0.3.
//
// An interior point p with neighbours prev and next gets the In handle
// p - 0.3(p - prev) and the Out handle p + 0.3(next - p). The first anchor
// only gets an Out handle and the last only an In handle. A zero-length chord
// produces no handle on that side, which makes the adjoining segment straight.
//
// Two points always produce a straight line: both anchors are returned
// without handles.
func AnchorsFromPoints(pts []Point) []Anchor {
	out := make([]Anchor, len(pts))
	for i, pt := range pts {
		out[i] = Anchor{Pt: pt}
	}
	if len(pts) <= 2 {
		return out
	}
	for i := range out {
		pt := pts[i]
		if i > 0 {
			in := pt.Sub(pts[i-1])
			if !in.IsZero() {
				out[i].In = H(pt.Translate(in.Mul(tangentScale).Negate()))
			}
		}
		if i < len(pts)-1 {
			outTan := pts[i+1].Sub(pt)
			if !outTan.IsZero() {
				out[i].Out = H(pt.Translate(outTan.Mul(tangentScale)))
			}
		}
	}
	return out
}
