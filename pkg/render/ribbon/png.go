package ribbon

import (
	"github.com/matzehuels/flowribbon/pkg/render"
	"github.com/matzehuels/flowribbon/pkg/sankey"
)

// RenderPNG renders the layout as PNG via SVG conversion. The scale set
// with [WithScale] multiplies the raster resolution.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(l *sankey.Layout, colors sankey.ColorMap, opts ...Option) ([]byte, error) {
	r := newRenderer(opts...)
	svg := RenderSVG(l, colors, opts...)
	return render.ToPNG(svg, r.scale)
}
