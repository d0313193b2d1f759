package editor

import (
	"errors"
	"fmt"
)

var (
	ErrNoRequest     = errors.New("no frame request pending")
	ErrNoActivePath  = errors.New("no path is being edited")
	ErrNoSelection   = errors.New("no keyframe selected")
	ErrRequestActive = errors.New("a frame request is pending")
)

type RequestKind int

const (
	// AddPoint asks for the frame of a new keyframe point.
	AddPoint RequestKind = iota + 1
	// EditPoint asks for a new frame for an existing keyframe point.
	EditPoint
)

func (k RequestKind) String() string {
	switch k {
	case AddPoint:
		return "add"
	case EditPoint:
		return "edit"
	default:
		return fmt.Sprintf("RequestKind(%d)", int(k))
	}
}

// FrameRequest asks the host for a frame number. The host answers with
// [Editor.Respond] or [Editor.Cancel].
type FrameRequest struct {
	Kind RequestKind
	// Anchor index of the keyframe point.
	Index int
	// Suggested frame.
	Default int
	// The answer must be in [Min, Max].
	Min, Max int
}

// Pending returns the outstanding frame request, if any.
func (e *Editor) Pending() (FrameRequest, bool) {
	if e.pending == nil {
		return FrameRequest{}, false
	}
	return *e.pending, true
}

// Respond answers the pending frame request. A frame outside the request's
// range is rejected with an error wrapping [keypath.ErrFrameOutOfRange], and
// the request stays pending.
func (e *Editor) Respond(frame int) error {
	req := e.pending
	if req == nil {
		return ErrNoRequest
	}
	if err := e.doc.CheckFrame(frame); err != nil {
		return err
	}
	e.pending = nil
	p := e.activePath()
	if p == nil {
		return ErrNoActivePath
	}
	p.SetKeyframePoint(req.Index, frame)
	e.log.Debug("keyframe point set",
		zapKind(req.Kind),
		zapIndex(req.Index),
		zapFrame(frame))
	e.sync()
	return nil
}

// Cancel discards the pending frame request without changing the document.
func (e *Editor) Cancel() {
	if e.pending != nil {
		e.log.Debug("frame request cancelled", zapKind(e.pending.Kind), zapIndex(e.pending.Index))
	}
	e.pending = nil
}

func (e *Editor) request(kind RequestKind, index, def int) {
	e.pending = &FrameRequest{
		Kind:    kind,
		Index:   index,
		Default: def,
		Min:     0,
		Max:     e.doc.TotalFrames - 1,
	}
}
