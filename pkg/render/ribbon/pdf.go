package ribbon

import (
	"github.com/matzehuels/flowribbon/pkg/render"
	"github.com/matzehuels/flowribbon/pkg/sankey"
)

// RenderPDF renders the layout as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(l *sankey.Layout, colors sankey.ColorMap, opts ...Option) ([]byte, error) {
	svg := RenderSVG(l, colors, opts...)
	return render.ToPDF(svg)
}
