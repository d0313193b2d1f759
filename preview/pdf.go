package preview

import (
	"bytes"
	"fmt"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"

	"honnef.co/go/keypath"
)

// PDF renders doc as a single-page PDF whose page has the canvas's size in
// points, multiplied by Options.Scale.
func PDF(w io.Writer, doc *keypath.Document, opts Options) error {
	opts = opts.withDefaults()
	s := opts.Scale
	pw := float64(doc.CanvasWidth) * s
	ph := float64(doc.CanvasHeight) * s

	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: pw, Ht: ph},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	if opts.Background != nil {
		var buf bytes.Buffer
		if err := png.Encode(&buf, opts.Background); err != nil {
			return fmt.Errorf("encoding background: %w", err)
		}
		imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
		p.RegisterImageOptionsReader("background", imgOpts, &buf)
		p.ImageOptions("background", 0, 0, pw, ph, false, imgOpts, 0, "")
	}

	p.SetLineWidth(opts.LineWidth * s)
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")
	p.SetFont("Courier", "", labelSize)
	for i, kf := range Frames(doc, opts) {
		if len(kf.Points) == 0 {
			continue
		}
		c := frameColor(i)
		p.SetDrawColor(int(c.R), int(c.G), int(c.B))
		p.SetFillColor(int(c.R), int(c.G), int(c.B))
		for j := 1; j < len(kf.Points); j++ {
			a, b := kf.Points[j-1], kf.Points[j]
			p.Line(a.X*s, a.Y*s, b.X*s, b.Y*s)
		}
		start := kf.Points[0]
		p.Circle(start.X*s, start.Y*s, opts.LineWidth*2*s, "F")
		if opts.Labels {
			p.SetTextColor(0, 0, 0)
			// gofpdf's core fonts cannot encode the direction arrow.
			p.Text(start.X*s+opts.LineWidth*3*s, start.Y*s+labelSize/3, fmt.Sprint(kf.Frame))
		}
	}
	if err := p.Error(); err != nil {
		return fmt.Errorf("rendering PDF: %w", err)
	}
	return p.Output(w)
}
