package preview

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"honnef.co/go/keypath"
)

// SVG writes doc as an SVG document. Each keyframe becomes a group holding its
// paths, drawn with their curves rather than sampled, and a marker for every
// keyframe point.
func SVG(w io.Writer, doc *keypath.Document, opts Options) error {
	opts = opts.withDefaults()
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %d %d">`+"\n",
		num(float64(doc.CanvasWidth)*opts.Scale), num(float64(doc.CanvasHeight)*opts.Scale),
		doc.CanvasWidth, doc.CanvasHeight)
	for i, kf := range doc.Keyframes {
		c := frameColor(i)
		fmt.Fprintf(bw, `<g data-frame="%d" stroke="#%02x%02x%02x" fill="none" stroke-width="%s">`+"\n",
			kf.Frame, c.R, c.G, c.B, num(opts.LineWidth))
		for _, p := range kf.Paths {
			if p.Len() == 0 {
				continue
			}
			fmt.Fprintf(bw, `<path id="path-%s" d="`, p.ID)
			if err := keypath.WriteSVG(bw, p.Elements(), keypath.SVGOptions{MaxPrecision: 3}); err != nil {
				return err
			}
			bw.WriteString("\"/>\n")
			for _, kp := range p.KeyframePoints {
				if kp.Index < 0 || kp.Index >= p.Len() {
					continue
				}
				pt := p.Anchors[kp.Index]
				fmt.Fprintf(bw, `<circle cx="%s" cy="%s" r="%s" data-frame="%d" data-index="%d"/>`+"\n",
					num(pt.X), num(pt.Y), num(opts.LineWidth*2), kp.Frame, kp.Index)
			}
		}
		bw.WriteString("</g>\n")
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
