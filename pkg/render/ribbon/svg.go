package ribbon

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/flowribbon/pkg/render/ribbon/styles"
	"github.com/matzehuels/flowribbon/pkg/sankey"
)

const ribbonInteractionCSS = `
    .ribbon { transition: fill-opacity 0.2s ease; }
    .ribbon:hover { fill-opacity: 0.85; }`

// RenderSVG renders the layout as an SVG diagram.
//
// Colors should come from [sankey.ResolveColors]; categories without an
// entry fall back to a neutral grey. An empty layout produces a valid
// empty frame. Of the render options, [WithStyle], [WithFontSize],
// [WithFrameHeight], and [WithColorByDestination] apply here; the rest
// are read by [Render].
func RenderSVG(l *sankey.Layout, colors sankey.ColorMap, opts ...Option) []byte {
	r := newRenderer(opts...)
	if len(l.Slots) == 0 {
		return emptySVG(&r)
	}

	f := newFrame(l, &r)
	ribbons := buildRibbons(l, colors, &r, f)
	blocks := buildBlocks(l, colors, f)
	labels := buildLabels(l, &r, f)

	var buf bytes.Buffer
	writeSVGOpen(&buf, f.width, f.height)
	r.style.RenderDefs(&buf)
	r.style.RenderFrame(&buf, styles.Frame{W: f.width, H: f.height})

	for _, rb := range ribbons {
		r.style.RenderRibbon(&buf, rb)
	}
	for _, b := range blocks {
		r.style.RenderBlock(&buf, b)
	}
	for _, lb := range labels {
		r.style.RenderLabel(&buf, lb)
	}

	renderRibbonInteraction(&buf)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func emptySVG(r *renderer) []byte {
	var buf bytes.Buffer
	writeSVGOpen(&buf, r.frameHeight, r.frameHeight)
	r.style.RenderDefs(&buf)
	r.style.RenderFrame(&buf, styles.Frame{W: r.frameHeight, H: r.frameHeight})
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func writeSVGOpen(buf *bytes.Buffer, w, h float64) {
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		w, h, w, h)
}

func renderRibbonInteraction(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <style>%s\n  </style>\n", ribbonInteractionCSS)
}
