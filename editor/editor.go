// Package editor implements the interactive side of path authoring: turning
// pointer input into fitted paths, attaching keyframe points to them, and
// keeping the serialized path data in sync with the document.
//
// An [Editor] is driven by a host surface through the [PointerHandler]
// methods. Whenever the editor needs a frame number from the user it records a
// [FrameRequest] instead of blocking; the host shows it with
// [Editor.Pending] and answers with [Editor.Respond] or [Editor.Cancel].
//
// An Editor is not safe for concurrent use.
package editor

import (
	"errors"
	"image"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"honnef.co/go/keypath"
	"honnef.co/go/keypath/pathdata"
)

type Editor struct {
	cfg Config
	log *zap.Logger
	doc *keypath.Document

	selected int
	editMode bool
	// ID of the path being edited, within the selected keyframe.
	active uuid.UUID

	drawing bool
	stroke  []keypath.Point

	pending *FrameRequest

	pathData   string
	imageData  string
	background image.Image
}

// New returns an editor for an empty default document.
func New(cfg Config) *Editor {
	return NewWithDocument(cfg, keypath.NewDocument())
}

// NewWithDocument returns an editor for doc. The editor takes ownership of
// doc.
func NewWithDocument(cfg Config, doc *keypath.Document) *Editor {
	cfg = cfg.withDefaults()
	e := &Editor{
		cfg:      cfg,
		log:      cfg.Logger,
		doc:      doc,
		selected: -1,
	}
	if len(doc.Keyframes) > 0 {
		e.selected = 0
	}
	e.sync()
	return e
}

// Document returns the edited document. Callers must not modify it while the
// editor is in use.
func (e *Editor) Document() *keypath.Document { return e.doc }

// PathData returns the serialized path data of the document, as of the last
// change.
func (e *Editor) PathData() string { return e.pathData }

// Selected returns the index of the selected keyframe, or -1.
func (e *Editor) Selected() int { return e.selected }

// SelectedKeyframe returns the selected keyframe.
func (e *Editor) SelectedKeyframe() (*keypath.Keyframe, bool) {
	if e.selected < 0 || e.selected >= len(e.doc.Keyframes) {
		return nil, false
	}
	return &e.doc.Keyframes[e.selected], true
}

// EditMode reports whether the editor is in edit mode, in which clicks attach
// keyframe points to the active path instead of drawing new strokes.
func (e *Editor) EditMode() bool { return e.editMode }

// Drawing reports whether a stroke is in progress.
func (e *Editor) Drawing() bool { return e.drawing }

// Stroke returns the points of the stroke in progress.
func (e *Editor) Stroke() []keypath.Point { return e.stroke }

// ActivePath returns the path being edited.
func (e *Editor) ActivePath() (keypath.Path, bool) {
	p := e.activePath()
	if p == nil {
		return keypath.Path{}, false
	}
	return *p, true
}

func (e *Editor) activePath() *keypath.Path {
	kf, ok := e.SelectedKeyframe()
	if !ok || e.active == uuid.Nil {
		return nil
	}
	for i := range kf.Paths {
		if kf.Paths[i].ID == e.active {
			return &kf.Paths[i]
		}
	}
	return nil
}

// Select selects the i-th keyframe. Selecting another keyframe leaves edit
// mode.
func (e *Editor) Select(i int) error {
	if i < 0 || i >= len(e.doc.Keyframes) {
		return keypath.ErrNoKeyframe
	}
	if i != e.selected {
		e.leaveEditMode()
	}
	e.selected = i
	return nil
}

// SelectNearest selects the keyframe nearest to frame, as when clicking on a
// timeline. Keyframes more than 5% of the total frame count away are not
// considered. It reports whether a keyframe was selected.
func (e *Editor) SelectNearest(frame int) bool {
	i := e.doc.NearestKeyframe(frame, e.doc.TimelineTolerance())
	if i < 0 {
		return false
	}
	e.Select(i)
	return true
}

// AddKeyframe adds an empty keyframe for frame and selects it.
func (e *Editor) AddKeyframe(frame int) error {
	i, err := e.doc.AddKeyframe(frame)
	if err != nil {
		return err
	}
	e.log.Info("keyframe added", zapFrame(frame))
	e.leaveEditMode()
	e.selected = i
	e.sync()
	return nil
}

// DeleteKeyframe deletes the selected keyframe. The selection moves to the
// last keyframe if it would otherwise be out of range.
func (e *Editor) DeleteKeyframe() error {
	kf, ok := e.SelectedKeyframe()
	if !ok {
		return ErrNoSelection
	}
	frame := kf.Frame
	if err := e.doc.DeleteKeyframe(e.selected); err != nil {
		return err
	}
	e.log.Info("keyframe deleted", zapFrame(frame))
	e.leaveEditMode()
	if e.selected >= len(e.doc.Keyframes) {
		e.selected = len(e.doc.Keyframes) - 1
	}
	e.sync()
	return nil
}

// ClearKeyframe removes all paths of the selected keyframe.
func (e *Editor) ClearKeyframe() error {
	if _, ok := e.SelectedKeyframe(); !ok {
		return ErrNoSelection
	}
	if err := e.doc.ClearKeyframe(e.selected); err != nil {
		return err
	}
	e.leaveEditMode()
	e.sync()
	return nil
}

// SetTotalFrames changes the number of frames.
func (e *Editor) SetTotalFrames(n int) error {
	if err := e.doc.SetTotalFrames(n); err != nil {
		return err
	}
	e.pending = nil
	return nil
}

// Resize changes the canvas size.
func (e *Editor) Resize(width, height int) error {
	return e.doc.Resize(width, height)
}

// SetDisplayScale sets the ratio of display pixels to canvas units, which
// determines hit radii. Hosts typically pass [View.Scale].
func (e *Editor) SetDisplayScale(scale float64) {
	if scale > 0 {
		e.cfg.DisplayScale = scale
	}
}

// ToggleEditMode switches edit mode. Entering edit mode makes the last path of
// the selected keyframe the active path; leaving it forgets the active path.
func (e *Editor) ToggleEditMode() {
	if e.editMode {
		e.leaveEditMode()
		return
	}
	e.editMode = true
	if kf, ok := e.SelectedKeyframe(); ok && len(kf.Paths) > 0 {
		e.active = kf.Paths[len(kf.Paths)-1].ID
	}
}

func (e *Editor) leaveEditMode() {
	e.editMode = false
	e.active = uuid.Nil
	e.pending = nil
}

// Load replaces the document's keyframes with those in path data text. Text
// that cannot be parsed is logged and results in an empty document, so that
// a corrupt value never prevents editing.
func (e *Editor) Load(text string) {
	pd, err := pathdata.Parse(text)
	if err != nil {
		e.log.Warn("discarding unparseable path data", zap.Error(err))
		pd = pathdata.Empty()
	}
	e.doc.Load(pd)
	e.leaveEditMode()
	e.drawing = false
	e.stroke = nil
	e.selected = -1
	if len(e.doc.Keyframes) > 0 {
		e.selected = 0
	}
	e.sync()
}

// sync re-serializes the document. A document that cannot be serialized keeps
// the previous path data.
func (e *Editor) sync() {
	text, err := e.doc.Encode(e.cfg.Sample)
	if err != nil {
		e.log.Error("serializing path data", zap.Error(err))
		return
	}
	e.pathData = text
}

func (e *Editor) clamp(pt keypath.Point) keypath.Point {
	return pt.Clamp(0, 0, float64(e.doc.CanvasWidth-1), float64(e.doc.CanvasHeight-1))
}

// OnPointerDown starts a stroke or, in edit mode, edits keyframe points.
//
// In edit mode, a left click on a keyframe point requests a new frame for
// it, and a right click on one deletes it. A click of either button on the
// path requests a frame for the nearest anchor, editing the keyframe point
// that is already there, if any.
func (e *Editor) OnPointerDown(ev PointerEvent) error {
	if e.pending != nil {
		return ErrRequestActive
	}
	if e.editMode {
		return e.editPointerDown(ev)
	}
	if ev.Button != LeftButton {
		return nil
	}
	if _, ok := e.SelectedKeyframe(); !ok {
		return ErrNoSelection
	}
	e.drawing = true
	e.stroke = []keypath.Point{e.clamp(ev.Pos)}
	e.active = uuid.Nil
	return nil
}

func (e *Editor) editPointerDown(ev PointerEvent) error {
	p := e.activePath()
	if p == nil {
		return nil
	}
	radius := e.cfg.hitRadius()
	if kp, ok := p.KeyframePointNear(ev.Pos, radius); ok {
		switch ev.Button {
		case LeftButton:
			e.request(EditPoint, kp.Index, kp.Frame)
		case RightButton:
			p.RemoveKeyframePoint(kp.Index)
			e.log.Debug("keyframe point removed", zapIndex(kp.Index))
			e.sync()
		}
		return nil
	}
	if ev.Button != LeftButton && ev.Button != RightButton {
		return nil
	}
	hit, ok := p.HitTest(ev.Pos, 3*radius)
	if !ok {
		return nil
	}
	idx := keypath.AnchorIndex(hit.Position(), p.Len())
	if kp, ok := p.KeyframePointAt(idx); ok {
		e.request(EditPoint, idx, kp.Frame)
		return nil
	}
	def := 0
	if kf, ok := e.SelectedKeyframe(); ok {
		def = kf.Frame
	}
	e.request(AddPoint, idx, def)
	return nil
}

// OnPointerMove extends the stroke in progress. Points closer than
// MinStrokeDistance to the previous one are ignored.
func (e *Editor) OnPointerMove(ev PointerEvent) error {
	if !e.drawing || e.editMode {
		return nil
	}
	pt := e.clamp(ev.Pos)
	if pt.Distance(e.stroke[len(e.stroke)-1]) > e.cfg.MinStrokeDistance {
		e.stroke = append(e.stroke, pt)
	}
	return nil
}

// OnPointerUp finishes the stroke in progress. A stroke of at least two
// points is fitted and appended to the selected keyframe as a new path, with
// keyframe points at its start and end, and the editor enters edit mode with
// the new path active.
func (e *Editor) OnPointerUp(ev PointerEvent) error {
	if !e.drawing {
		return nil
	}
	stroke := e.stroke
	e.drawing = false
	e.stroke = nil
	if len(stroke) < 2 {
		return nil
	}
	return e.finishStroke(stroke)
}

func (e *Editor) finishStroke(stroke []keypath.Point) error {
	p := keypath.NewPath(keypath.FitStroke(stroke, e.cfg.Fit))
	kf, ok := e.SelectedKeyframe()
	if !ok {
		return ErrNoSelection
	}
	start, end := EndpointFrames(kf.Frame, e.doc.TotalFrames)
	p.SetKeyframePoint(0, start)
	p.SetKeyframePoint(p.Len()-1, end)
	if _, err := e.doc.AppendPath(e.selected, p); err != nil {
		return err
	}
	e.log.Debug("stroke fitted",
		zap.Int("points", len(stroke)),
		zap.Int("anchors", p.Len()),
		zapFrame(kf.Frame))
	e.editMode = true
	e.active = p.ID
	e.sync()
	return nil
}

// EndpointFrames returns the frames attached to the first and last anchor of
// a freshly drawn path, given the frame of the keyframe it was drawn in. The
// end frame is the following frame, or the last frame if there is none.
func EndpointFrames(current, total int) (start, end int) {
	end = min(current+1, total-1)
	if end == current && total > 1 {
		end = total - 1
	}
	return current, end
}

// OnDoubleClick leaves edit mode.
func (e *Editor) OnDoubleClick(ev PointerEvent) error {
	if e.editMode && e.activePath() != nil {
		e.leaveEditMode()
	}
	return nil
}

// State returns the editor's persistent state.
func (e *Editor) State() State {
	return State{
		PathData:     e.pathData,
		CanvasWidth:  e.doc.CanvasWidth,
		CanvasHeight: e.doc.CanvasHeight,
		TotalFrames:  e.doc.TotalFrames,
		ImageBase64:  e.imageData,
	}
}

// Restore applies persisted state. The canvas size and frame count are
// validated first; if either is out of range nothing is changed. The
// background image is not decoded; hosts pass State.ImageBase64 to
// [DecodeBackground] and apply the result with [Editor.ApplyBackground].
func (e *Editor) Restore(s State) error {
	w, h := e.doc.CanvasWidth, e.doc.CanvasHeight
	if s.CanvasWidth != 0 || s.CanvasHeight != 0 {
		w, h = s.CanvasWidth, s.CanvasHeight
	}
	frames := e.doc.TotalFrames
	if s.TotalFrames != 0 {
		frames = s.TotalFrames
	}
	probe := keypath.NewDocument()
	if err := probe.Resize(w, h); err != nil {
		return err
	}
	if err := probe.SetTotalFrames(frames); err != nil {
		return err
	}
	e.doc.Resize(w, h)
	e.doc.SetTotalFrames(frames)
	e.imageData = s.ImageBase64
	e.background = nil
	e.Load(s.PathData)
	return nil
}

// Background returns the decoded background image, if any.
func (e *Editor) Background() image.Image { return e.background }

// ApplyBackground installs the result of [DecodeBackground]. A failed decode
// is logged and clears the background; the document is not touched. A
// successful decode resizes the canvas to the image, if the image's size is
// a valid canvas size.
func (e *Editor) ApplyBackground(res ImageResult) {
	if res.Err == nil && res.Image == nil {
		res.Err = errors.New("no image")
	}
	if res.Err != nil {
		e.log.Warn("loading background image", zap.Error(res.Err))
		e.background = nil
		e.imageData = ""
		return
	}
	e.background = res.Image
	e.imageData = res.Data
	b := res.Image.Bounds()
	if err := e.doc.Resize(b.Dx(), b.Dy()); err != nil {
		if errors.Is(err, keypath.ErrCanvasSize) {
			e.log.Info("keeping canvas size", zap.Int("width", b.Dx()), zap.Int("height", b.Dy()), zap.Error(err))
		}
		return
	}
	e.sync()
}

// ClearBackground removes the background image.
func (e *Editor) ClearBackground() {
	e.background = nil
	e.imageData = ""
}

func zapFrame(frame int) zap.Field { return zap.Int("frame", frame) }
func zapIndex(index int) zap.Field { return zap.Int("index", index) }
func zapKind(kind RequestKind) zap.Field { return zap.Stringer("kind", kind) }
