package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"honnef.co/go/keypath"
)

const labelSize = 12.0

// Image renders doc to an image.
func Image(doc *keypath.Document, opts Options) (image.Image, error) {
	opts = opts.withDefaults()
	w := int(math.Ceil(float64(doc.CanvasWidth) * opts.Scale))
	h := int(math.Ceil(float64(doc.CanvasHeight) * opts.Scale))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	if opts.Background != nil {
		draw.CatmullRom.Scale(dst, dst.Bounds(), opts.Background, opts.Background.Bounds(), draw.Over, nil)
	}

	dc := gg.NewContextForRGBA(dst)
	if opts.Labels {
		face, err := labelFace(labelSize)
		if err != nil {
			return nil, err
		}
		dc.SetFontFace(face)
	}
	dc.Scale(opts.Scale, opts.Scale)
	dc.SetLineWidth(opts.LineWidth)
	dc.SetLineCapRound()
	dc.SetLineJoinRound()

	for i, kf := range Frames(doc, opts) {
		if len(kf.Points) == 0 {
			continue
		}
		c := frameColor(i)
		dc.SetColor(c)
		dc.MoveTo(kf.Points[0].X, kf.Points[0].Y)
		for _, pt := range kf.Points[1:] {
			dc.LineTo(pt.X, pt.Y)
		}
		dc.Stroke()

		start := kf.Points[0]
		dc.DrawCircle(start.X, start.Y, opts.LineWidth*2)
		dc.Fill()
		if opts.Labels {
			dc.SetColor(color.Black)
			dc.DrawStringAnchored(frameLabel(kf), start.X+opts.LineWidth*3, start.Y, 0, 0.5)
		}
	}
	return dst, nil
}

// PNG renders doc and writes it to w as a PNG.
func PNG(w io.Writer, doc *keypath.Document, opts Options) error {
	img, err := Image(doc, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

func labelFace(size float64) (font.Face, error) {
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing label font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
