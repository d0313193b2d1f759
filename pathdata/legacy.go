package pathdata

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// SyntaxError describes a malformed keyframe in legacy path data.
type SyntaxError struct {
	// Keyframe is the offending '|'-separated part of the input.
	Keyframe string
	Err      error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("malformed keyframe %q: %v", e.Keyframe, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

func parseLegacy(text string) (Document, error) {
	kfs := []Keyframe{}
	for _, part := range strings.Split(text, "|") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		kf, err := parseLegacyKeyframe(part)
		if err != nil {
			return Document{}, &SyntaxError{Keyframe: part, Err: err}
		}
		kfs = append(kfs, kf)
	}
	sortKeyframes(kfs)
	return Document{
		Version:   LegacyVersion,
		Keyframes: kfs,
		Metadata:  map[string]any{},
	}, nil
}

func parseLegacyKeyframe(part string) (Keyframe, error) {
	frameText, pointsText, ok := strings.Cut(part, ":")
	if !ok {
		return Keyframe{}, errors.New("missing ':' after frame number")
	}
	frame, err := strconv.Atoi(strings.TrimSpace(frameText))
	if err != nil {
		return Keyframe{}, fmt.Errorf("bad frame number: %w", err)
	}
	kf := Keyframe{
		Frame:     frame,
		Points:    []Point{},
		Direction: 1,
		Metadata:  map[string]any{},
	}
	for _, ptText := range strings.Split(pointsText, ";") {
		if strings.TrimSpace(ptText) == "" {
			continue
		}
		coords := strings.Split(ptText, ",")
		if len(coords) < 2 {
			return Keyframe{}, fmt.Errorf("point %q needs two coordinates", ptText)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(coords[0]), 64)
		if err != nil {
			return Keyframe{}, fmt.Errorf("point %q: %w", ptText, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(coords[1]), 64)
		if err != nil {
			return Keyframe{}, fmt.Errorf("point %q: %w", ptText, err)
		}
		kf.Points = append(kf.Points, Point{X: x, Y: y})
	}
	return kf, nil
}

// MarshalLegacy serializes keyframes in the legacy format. Keyframes are
// written in frame order; keyframes without points are omitted, as the format
// cannot represent them.
func MarshalLegacy(kfs []Keyframe) string {
	sorted := NormalizeKeyframes(kfs)
	var sb strings.Builder
	first := true
	for _, kf := range sorted {
		if len(kf.Points) == 0 {
			continue
		}
		if !first {
			sb.WriteByte('|')
		}
		first = false
		sb.WriteString(strconv.Itoa(kf.Frame))
		sb.WriteByte(':')
		for i, pt := range kf.Points {
			if i > 0 {
				sb.WriteByte(';')
			}
			sb.WriteString(strconv.FormatFloat(pt.X, 'f', -1, 64))
			sb.WriteByte(',')
			sb.WriteString(strconv.FormatFloat(pt.Y, 'f', -1, 64))
		}
	}
	return sb.String()
}
