package pathdata

import (
	"fmt"
	"strings"
)

// ValidationError reports the first problem [Validate] found.
type ValidationError struct {
	// Frame is the frame of the offending keyframe, or -1 if the problem is
	// not tied to a keyframe.
	Frame   int
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks that text is well-formed path data. It returns nil if it
// is, and a *ValidationError describing the first violation otherwise.
// Validate never panics and never returns any other kind of error.
//
// Beyond being parseable, every keyframe must have a frame and a point list,
// and every point must have finite numeric x and y coordinates. Blank text is
// valid.
func Validate(text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	doc, err := Parse(text)
	if err != nil {
		return &ValidationError{Frame: -1, Message: fmt.Sprintf("validation error: %v", err)}
	}
	// For JSON input, inspect the raw structure for fields that normalization
	// filled in.
	if trimmed := strings.TrimSpace(text); strings.HasPrefix(trimmed, "{") {
		if obj, err := decodeObject(trimmed); err == nil {
			if verr := validateObject(obj); verr != nil {
				return verr
			}
		}
	}
	for _, kf := range doc.Keyframes {
		for _, pt := range kf.Points {
			if !finite(pt.X) || !finite(pt.Y) {
				return invalidCoordinates(kf.Frame)
			}
		}
	}
	return nil
}

func validateObject(obj map[string]any) *ValidationError {
	// Parse already rejected keyframes and points of the wrong shape.
	kfs, _ := rawKeyframes(obj)
	for _, kf := range kfs {
		if _, ok := kf["frame"]; !ok {
			return &ValidationError{Frame: -1, Message: "keyframe missing 'frame' field"}
		}
		frame, _ := intOf(kf["frame"])
		if _, ok := kf["points"]; !ok {
			return &ValidationError{Frame: frame, Message: fmt.Sprintf("keyframe %d missing 'points' field", frame)}
		}
		pts, _ := rawPoints(kf)
		for _, pt := range pts {
			_, hasX := pt["x"]
			_, hasY := pt["y"]
			if !hasX || !hasY {
				return &ValidationError{Frame: frame, Message: fmt.Sprintf("invalid point format in keyframe %d", frame)}
			}
			if !finite(floatOf(pt["x"])) || !finite(floatOf(pt["y"])) {
				return invalidCoordinates(frame)
			}
		}
	}
	return nil
}

func invalidCoordinates(frame int) *ValidationError {
	return &ValidationError{Frame: frame, Message: fmt.Sprintf("invalid point coordinates in keyframe %d", frame)}
}
