package pathdata

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
	floatPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)
)

// decodeObject decodes a JSON object, keeping numbers as json.Number so that
// metadata survives a round trip unchanged.
func decodeObject(text string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("trailing data after JSON object")
	}
	return obj, nil
}

func normalizeObject(obj map[string]any) (Document, error) {
	doc := Document{
		Version:  CurrentVersion,
		Metadata: metadataOf(obj["metadata"]),
	}
	if v, ok := obj["version"]; ok && v != nil {
		doc.Version = stringOf(v)
	}
	raw, err := rawKeyframes(obj)
	if err != nil {
		return Document{}, err
	}
	doc.Keyframes = make([]Keyframe, 0, len(raw))
	for i, rkf := range raw {
		kf, err := normalizeKeyframe(rkf)
		if err != nil {
			return Document{}, fmt.Errorf("pathdata: keyframe #%d: %w", i, err)
		}
		doc.Keyframes = append(doc.Keyframes, kf)
	}
	sortKeyframes(doc.Keyframes)
	return doc, nil
}

func rawKeyframes(obj map[string]any) ([]map[string]any, error) {
	v, ok := obj["keyframes"]
	if !ok || v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("pathdata: keyframes is %T, not a list", v)
	}
	out := make([]map[string]any, len(list))
	for i, e := range list {
		m, ok := e.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("pathdata: keyframe #%d is %T, not an object", i, e)
		}
		out[i] = m
	}
	return out, nil
}

func rawPoints(kf map[string]any) ([]map[string]any, error) {
	v, ok := kf["points"]
	if !ok || v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("points is %T, not a list", v)
	}
	out := make([]map[string]any, len(list))
	for i, e := range list {
		m, ok := e.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("point #%d is %T, not an object", i, e)
		}
		out[i] = m
	}
	return out, nil
}

func normalizeKeyframe(rkf map[string]any) (Keyframe, error) {
	frame, err := intOf(rkf["frame"])
	if err != nil {
		return Keyframe{}, fmt.Errorf("frame: %w", err)
	}
	kf := Keyframe{
		Frame:     frame,
		Direction: 1,
		Metadata:  metadataOf(rkf["metadata"]),
	}
	if v, ok := rkf["direction"]; ok {
		dir, err := intOf(v)
		if err != nil {
			return Keyframe{}, fmt.Errorf("direction: %w", err)
		}
		kf.Direction = dir
	}
	pts, err := rawPoints(rkf)
	if err != nil {
		return Keyframe{}, err
	}
	kf.Points = make([]Point, len(pts))
	for i, p := range pts {
		kf.Points[i] = Point{X: floatOf(p["x"]), Y: floatOf(p["y"])}
	}
	return kf, nil
}

// intOf coerces a decoded JSON value to an integer. Missing values, null,
// false and empty strings are 0; numbers are truncated; strings are read up to
// the first character that cannot be part of an integer.
func intOf(v any) (int, error) {
	switch v := v.(type) {
	case nil:
		return 0, nil
	case bool:
		if !v {
			return 0, nil
		}
	case json.Number:
		f, err := v.Float64()
		if err != nil || !finite(f) {
			break
		}
		return int(math.Trunc(f)), nil
	case string:
		if v == "" {
			return 0, nil
		}
		if m := intPrefix.FindString(strings.TrimSpace(v)); m != "" {
			return strconv.Atoi(m)
		}
	}
	return 0, fmt.Errorf("%v is not a number", v)
}

// floatOf coerces a decoded JSON value to a float. Missing values, null,
// false and empty strings are 0. Values that have no numeric reading are NaN.
func floatOf(v any) float64 {
	switch v := v.(type) {
	case nil:
		return 0
	case bool:
		if !v {
			return 0
		}
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
	case string:
		if v == "" {
			return 0
		}
		m := floatPrefix.FindString(strings.TrimSpace(v))
		if m == "" {
			break
		}
		if f, err := strconv.ParseFloat(m, 64); err == nil {
			return f
		}
	}
	return math.NaN()
}

func stringOf(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func metadataOf(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}
