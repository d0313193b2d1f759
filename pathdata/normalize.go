package pathdata

// minPointSpacing is the distance below which Normalize drops a point as a
// duplicate of the one before it.
const minPointSpacing = 0.5

// Normalize prepares parsed path data for a canvas of the given size.
// Coordinates are clamped to [0, width-1] × [0, height-1], points closer than
// 0.5 to the previously kept point are dropped, and keyframes without points
// are removed. The first point of a keyframe is always kept.
func Normalize(doc Document, width, height int) Document {
	maxX := float64(width - 1)
	maxY := float64(height - 1)
	clamp := func(v, hi float64) float64 {
		return max(0, min(v, hi))
	}

	out := Document{
		Version:   doc.Version,
		Keyframes: []Keyframe{},
		Metadata:  doc.Metadata,
	}
	if out.Version == "" {
		out.Version = CurrentVersion
	}
	if out.Metadata == nil {
		out.Metadata = map[string]any{}
	}
	for _, kf := range doc.Keyframes {
		var pts []Point
		for _, pt := range kf.Points {
			p := Point{X: clamp(pt.X, maxX), Y: clamp(pt.Y, maxY)}
			if n := len(pts); n > 0 {
				dx := p.X - pts[n-1].X
				dy := p.Y - pts[n-1].Y
				if dx*dx+dy*dy < minPointSpacing*minPointSpacing {
					continue
				}
			}
			pts = append(pts, p)
		}
		if len(pts) == 0 {
			continue
		}
		kf.Points = pts
		out.Keyframes = append(out.Keyframes, kf)
	}
	return out
}
