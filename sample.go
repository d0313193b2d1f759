package keypath

import "math"

const (
	// Samples per cubic segment when hit testing.
	hitCubicSamples = 20
	// Samples per straight segment when hit testing.
	hitStraightSamples = 10
	// Target spacing between samples of a cubic segment, in canvas units.
	sampleSpacing = 10
)

// SampleOptions controls the density of [Sample]. Zero fields take their
// default values.
type SampleOptions struct {
	// Number of samples used when a segment's length estimate is zero or NaN.
	// Defaults to 30.
	SamplesPerSegment int
	// Minimum number of samples per cubic segment. Defaults to 2.
	MinSamples int
	// Maximum number of samples per cubic segment. Defaults to 100.
	MaxSamples int
}

// DefaultSampleOptions returns the options used when serializing path data.
func DefaultSampleOptions() SampleOptions {
	return SampleOptions{
		SamplesPerSegment: 30,
		MinSamples:        2,
		MaxSamples:        100,
	}
}

func (opts SampleOptions) withDefaults() SampleOptions {
	def := DefaultSampleOptions()
	if opts.SamplesPerSegment <= 0 {
		opts.SamplesPerSegment = def.SamplesPerSegment
	}
	if opts.MinSamples <= 0 {
		opts.MinSamples = def.MinSamples
	}
	if opts.MaxSamples <= 0 {
		opts.MaxSamples = def.MaxSamples
	}
	return opts
}

// count returns the number of intervals a cubic segment of the estimated
// length is divided into. opts must have had defaults applied.
func (opts SampleOptions) count(length float64) int {
	n := math.Ceil(length / sampleSpacing)
	if n == 0 || math.IsNaN(n) {
		n = float64(opts.SamplesPerSegment)
	}
	// The floor wins over the ceiling if they are inverted.
	n = max(float64(opts.MinSamples), min(float64(opts.MaxSamples), n))
	return max(int(n), 1)
}

// Sample converts a path into a dense sequence of points.
//
// Cubic segments are divided into ceil(length/10) intervals, clamped to
// [MinSamples, MaxSamples], with the length estimated by [EstimateLength].
// Every interval boundary, including both ends, is emitted, except that a
// segment's first sample is dropped when it coincides with the previously
// emitted point (see [Point.Coincides]). Straight segments contribute only
// their end points.
//
// A path with a single anchor yields exactly that anchor. The result is a
// pure function of p and opts.
func Sample(p Path, opts SampleOptions) []Point {
	switch len(p.Anchors) {
	case 0:
		return nil
	case 1:
		return []Point{p.Anchors[0]}
	}
	opts = opts.withDefaults()
	var out []Point
	for _, seg := range p.Segments() {
		switch seg.Kind {
		case CubicKind:
			c := seg.Cubic()
			n := opts.count(c.EstimateLength(DefaultLengthSamples))
			for j := 0; j <= n; j++ {
				pt := c.Eval(float64(j) / float64(n))
				if j == 0 && len(out) > 0 && pt.Coincides(out[len(out)-1]) {
					continue
				}
				out = append(out, pt)
			}
		default:
			if len(out) == 0 {
				out = append(out, seg.P0)
			}
			out = append(out, seg.P1)
		}
	}
	return out
}

// Sample is shorthand for [Sample](p, opts).
func (p Path) Sample(opts SampleOptions) []Point {
	return Sample(p, opts)
}

// SampleMultiple samples each path and concatenates the results, joining them
// with [AppendJoined].
func SampleMultiple(paths []Path, opts SampleOptions) []Point {
	var out []Point
	for _, p := range paths {
		out = AppendJoined(out, Sample(p, opts))
	}
	return out
}

// AppendJoined appends src to dst. If the first point of src coincides with
// the last point of dst, it is skipped, so that a join between two
// sequences is not represented twice.
func AppendJoined(dst, src []Point) []Point {
	if len(src) == 0 {
		return dst
	}
	if len(dst) > 0 && src[0].Coincides(dst[len(dst)-1]) {
		src = src[1:]
	}
	return append(dst, src...)
}

// Hit is a sample used for hit testing. It records where on the anchor chain
// the sample lies: T is the parameter within segment Segment.
type Hit struct {
	Point
	Segment int
	T       float64
}

// Position returns the fractional anchor position of the hit, Segment + T.
func (h Hit) Position() float64 {
	return float64(h.Segment) + h.T
}

// HitSamples samples the path for hit testing. Every anchor is included with
// T = 0, followed by the interior samples of the segment it starts: 19 per
// cubic segment and 9 per straight segment.
func (p Path) HitSamples() []Hit {
	var out []Hit
	for i, anchor := range p.Anchors {
		out = append(out, Hit{Point: anchor, Segment: i})
		if i == len(p.Anchors)-1 {
			break
		}
		seg := p.Segment(i)
		samples := hitStraightSamples
		if seg.Kind == CubicKind {
			samples = hitCubicSamples
		}
		for j := 1; j < samples; j++ {
			t := float64(j) / float64(samples)
			out = append(out, Hit{Point: seg.Eval(t), Segment: i, T: t})
		}
	}
	return out
}

// HitTest returns the hit sample nearest to pt, provided it is no farther than
// radius. Of equally near samples, the earliest wins.
func (p Path) HitTest(pt Point, radius float64) (Hit, bool) {
	var best Hit
	bestDist := math.Inf(1)
	found := false
	for _, h := range p.HitSamples() {
		d := pt.Distance(h.Point)
		if d < bestDist && d <= radius {
			best, bestDist, found = h, d, true
		}
	}
	return best, found
}

// AnchorIndex rounds a fractional anchor position to the nearest anchor index
// of a path with n anchors. The result is always in [0, n-1], or 0 if n is
// zero.
func AnchorIndex(pos float64, n int) int {
	idx := int(math.Round(pos))
	return max(0, min(idx, n-1))
}
