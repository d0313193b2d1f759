// Package pathdata parses and serializes the path-data text exchanged with
// animation backends.
//
// Two formats exist. The current format is JSON:
//
//	{"version":"1.0","keyframes":[{"frame":0,"points":[{"x":1,"y":2}],"direction":1,"metadata":{}}],"metadata":{}}
//
// The legacy format is a string of keyframes separated by '|', each
// consisting of a frame number and a ';'-separated list of x,y pairs:
//
//	0:10,10;20,20|5:30,30
//
// [Parse] accepts both and always produces a normalized [Document]. [Marshal]
// writes the JSON format and [MarshalLegacy] the legacy one.
package pathdata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strings"
)

const (
	// CurrentVersion is the version written by Marshal.
	CurrentVersion = "1.0"
	// LegacyVersion tags documents that were parsed from the legacy format.
	LegacyVersion = "0.0"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Keyframe is the point list of a single output frame.
type Keyframe struct {
	Frame  int     `json:"frame"`
	Points []Point `json:"points"`
	// Playback direction along Points; 1 is forward, -1 is reverse.
	Direction int            `json:"direction"`
	Metadata  map[string]any `json:"metadata"`
}

// Document is the root of parsed path data.
type Document struct {
	Version   string         `json:"version"`
	Keyframes []Keyframe     `json:"keyframes"`
	Metadata  map[string]any `json:"metadata"`
}

// Empty returns a valid document of the current version without keyframes.
func Empty() Document {
	return Document{
		Version:   CurrentVersion,
		Keyframes: []Keyframe{},
		Metadata:  map[string]any{},
	}
}

// Parse parses path data in either format.
//
// Empty or blank text yields [Empty]. Text that starts with '{' is decoded as
// JSON and normalized: a missing version becomes [CurrentVersion], frames are
// coerced to integers, coordinates to floats, a missing direction becomes 1,
// missing metadata becomes an empty map, and keyframes are sorted by frame.
// Coordinates that are not numeric become NaN; use [Validate] to detect them.
// If the text is not valid JSON, or does not start with '{', it is parsed as
// legacy data.
func Parse(text string) (Document, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Empty(), nil
	}
	if strings.HasPrefix(trimmed, "{") {
		if obj, err := decodeObject(trimmed); err == nil {
			return normalizeObject(obj)
		}
	}
	doc, err := parseLegacy(text)
	if err != nil {
		return Document{}, fmt.Errorf("parsing legacy path data: %w", err)
	}
	return doc, nil
}

// Marshal serializes keyframes and metadata in the JSON format. The keyframes
// are normalized the same way [Parse] normalizes them: they are sorted by
// frame, a zero direction becomes 1, and nil point lists and metadata are
// written as empty values. Non-finite coordinates cannot be represented and
// result in an error.
func Marshal(kfs []Keyframe, metadata map[string]any) (string, error) {
	if metadata == nil {
		metadata = map[string]any{}
	}
	doc := Document{
		Version:   CurrentVersion,
		Keyframes: NormalizeKeyframes(kfs),
		Metadata:  metadata,
	}
	for _, kf := range doc.Keyframes {
		for _, pt := range kf.Points {
			if !finite(pt.X) || !finite(pt.Y) {
				return "", fmt.Errorf("pathdata: keyframe %d: cannot encode point (%g, %g)", kf.Frame, pt.X, pt.Y)
			}
		}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("pathdata: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// NormalizeKeyframes returns a copy of kfs sorted by frame, with zero
// directions replaced by 1 and nil points and metadata replaced by empty
// values. The sort is stable.
func NormalizeKeyframes(kfs []Keyframe) []Keyframe {
	out := make([]Keyframe, len(kfs))
	for i, kf := range kfs {
		if kf.Points == nil {
			kf.Points = []Point{}
		} else {
			kf.Points = slices.Clone(kf.Points)
		}
		if kf.Direction == 0 {
			kf.Direction = 1
		}
		if kf.Metadata == nil {
			kf.Metadata = map[string]any{}
		}
		out[i] = kf
	}
	sortKeyframes(out)
	return out
}

// FramePoints is the subset of a keyframe an animation backend interpolates.
type FramePoints struct {
	Frame  int
	Points []Point
}

// ExtractForAnimation returns the frame numbers and point lists of doc, in
// document order.
func ExtractForAnimation(doc Document) []FramePoints {
	out := make([]FramePoints, len(doc.Keyframes))
	for i, kf := range doc.Keyframes {
		out[i] = FramePoints{Frame: kf.Frame, Points: kf.Points}
	}
	return out
}

// Upgrade parses path data in any format and serializes it in the current
// JSON format, keeping the document metadata.
func Upgrade(text string) (string, error) {
	doc, err := Parse(text)
	if err != nil {
		return "", err
	}
	return Marshal(doc.Keyframes, doc.Metadata)
}

func sortKeyframes(kfs []Keyframe) {
	slices.SortStableFunc(kfs, func(a, b Keyframe) int {
		return a.Frame - b.Frame
	})
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
