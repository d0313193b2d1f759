package editor

import (
	"honnef.co/go/keypath"
)

type Button int

const (
	LeftButton Button = iota
	MiddleButton
	RightButton
)

func (b Button) String() string {
	switch b {
	case LeftButton:
		return "left"
	case MiddleButton:
		return "middle"
	case RightButton:
		return "right"
	default:
		return "unknown"
	}
}

// PointerEvent is a pointer event in canvas coordinates. Hosts that receive
// events in widget coordinates convert them with [View.ToCanvas].
type PointerEvent struct {
	Pos    keypath.Point
	Button Button
}

// PointerHandler receives pointer events from a host surface.
type PointerHandler interface {
	OnPointerDown(ev PointerEvent) error
	OnPointerMove(ev PointerEvent) error
	OnPointerUp(ev PointerEvent) error
	OnDoubleClick(ev PointerEvent) error
}

var _ PointerHandler = (*Editor)(nil)

// View maps between a widget area and the canvas shown in it. The canvas is
// scaled uniformly to fit the area and centered in it.
type View struct {
	// Canvas to widget.
	aff   keypath.Affine
	scale float64
}

// FitView returns the view that fits a canvas of the given size into a
// widget area of areaWidth × areaHeight whose top left corner is at origin.
func FitView(origin keypath.Point, areaWidth, areaHeight float64, canvasWidth, canvasHeight int) View {
	scale := min(areaWidth/float64(canvasWidth), areaHeight/float64(canvasHeight))
	off := keypath.Vec(
		origin.X+(areaWidth-float64(canvasWidth)*scale)/2,
		origin.Y+(areaHeight-float64(canvasHeight)*scale)/2,
	)
	return View{
		aff:   keypath.Scale(scale, scale).ThenTranslate(off),
		scale: scale,
	}
}

// Scale returns the number of widget units per canvas unit.
func (v View) Scale() float64 { return v.scale }

// ToCanvas converts a widget position to canvas coordinates.
func (v View) ToCanvas(pt keypath.Point) keypath.Point {
	return pt.Transform(v.aff.Invert())
}

// ToWidget converts a canvas position to widget coordinates.
func (v View) ToWidget(pt keypath.Point) keypath.Point {
	return pt.Transform(v.aff)
}

// Transform returns the canvas to widget transform.
func (v View) Transform() keypath.Affine { return v.aff }
