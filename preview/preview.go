// Package preview renders documents to images for inspection: PNG through
// gg, PDF through gofpdf, and SVG.
//
// The raster and PDF renderers draw what an animation backend receives, the
// resolved point list of every frame, each in its own color and labelled with
// its frame number. The SVG renderer draws the authored paths themselves,
// including their keyframe points.
package preview

import (
	"image"
	"image/color"
	"strconv"

	"honnef.co/go/keypath"
	"honnef.co/go/keypath/pathdata"
)

type Options struct {
	Sample keypath.SampleOptions
	// Drawn behind the paths, scaled to the canvas.
	Background image.Image
	// Output units per canvas unit. Defaults to 1.
	Scale float64
	// Width of path strokes in canvas units. Defaults to 2.
	LineWidth float64
	// Whether to label frames. Labels are drawn at the first point of each
	// frame.
	Labels bool
}

func (opts Options) withDefaults() Options {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = 2
	}
	return opts
}

var palette = []color.RGBA{
	{0xe6, 0x19, 0x4b, 0xff},
	{0x3c, 0xb4, 0x4b, 0xff},
	{0x43, 0x63, 0xd8, 0xff},
	{0xf5, 0x82, 0x31, 0xff},
	{0x91, 0x1e, 0xb4, 0xff},
	{0x46, 0xf0, 0xf0, 0xff},
	{0xf0, 0x32, 0xe6, 0xff},
	{0x80, 0x80, 0x00, 0xff},
}

// frameColor returns the color of the i-th frame.
func frameColor(i int) color.RGBA {
	return palette[i%len(palette)]
}

func frameLabel(kf pathdata.Keyframe) string {
	s := strconv.Itoa(kf.Frame)
	if kf.Direction < 0 {
		s += "←"
	}
	return s
}

// Frames resolves the frames of doc that the renderers draw.
func Frames(doc *keypath.Document, opts Options) []pathdata.Keyframe {
	return keypath.ResolveFrames(doc, opts.Sample)
}
