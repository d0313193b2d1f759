package keypath

// DefaultLengthSamples is the number of polyline steps [EstimateLength] uses
// when asked for zero or fewer.
const DefaultLengthSamples = 20

// CubicBez is a cubic Bézier curve with end points P0 and P3 and control
// points P1 and P2.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Evaluate returns the point at parameter t of the cubic Bézier curve defined
// by p0, p1, p2 and p3. It is exact at the end points: t = 0 yields p0 and
// t = 1 yields p3. Callers conventionally pass t ∈ [0, 1], but t is not
// checked.
func Evaluate(p0, p1, p2, p3 Point, t float64) Point {
	return CubicBez{p0, p1, p2, p3}.Eval(t)
}

// EstimateLength estimates the arc length of the cubic Bézier curve defined
// by p0, p1, p2 and p3 by summing the lengths of a polyline through samples+1
// uniformly spaced evaluations. The estimate never exceeds the true length
// and approaches it as samples grows. It is meant as a heuristic.
func EstimateLength(p0, p1, p2, p3 Point, samples int) float64 {
	return CubicBez{p0, p1, p2, p3}.EstimateLength(samples)
}

func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// EstimateLength returns the length of the polyline through samples+1 uniform
// evaluations of the curve. See [EstimateLength].
func (cb CubicBez) EstimateLength(samples int) float64 {
	if samples <= 0 {
		samples = DefaultLengthSamples
	}
	var length float64
	prev := cb.Eval(0)
	for i := 1; i <= samples; i++ {
		cur := cb.Eval(float64(i) / float64(samples))
		length += prev.Distance(cur)
		prev = cur
	}
	return length
}

func (cb CubicBez) Start() Point {
	return cb.P0
}

func (cb CubicBez) End() Point {
	return cb.P3
}

func (cb CubicBez) Seg() Segment {
	return Segment{Kind: CubicKind, P0: cb.P0, P1: cb.P1, P2: cb.P2, P3: cb.P3}
}

func (cb CubicBez) IsNaN() bool {
	return cb.P0.IsNaN() || cb.P1.IsNaN() || cb.P2.IsNaN() || cb.P3.IsNaN()
}
