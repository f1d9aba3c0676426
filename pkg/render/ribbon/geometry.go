package ribbon

import (
	"github.com/matzehuels/flowribbon/pkg/render/ribbon/styles"
	"github.com/matzehuels/flowribbon/pkg/sankey"
)

const (
	// blockWidthFactor sizes the end-cap blocks relative to the x range.
	blockWidthFactor = 0.02
	// labelOffsetFactor places labels this share of the x range outside
	// the columns.
	labelOffsetFactor = 0.05
	// fallbackColor fills categories missing from the color map, which
	// only happens when callers bypass [sankey.ResolveColors].
	fallbackColor = "#999999"
)

// frame maps layout units onto pixel coordinates. The y axis flips:
// layouts grow upward, SVG grows downward.
type frame struct {
	width      float64 // total frame width in pixels
	height     float64 // total frame height in pixels
	scale      float64 // pixels per layout unit
	leftGutter float64 // pixels reserved left of the drawing for labels
	xShift     float64 // layout units added so the leftmost label anchor sits at the gutter edge
	marginY    float64 // vertical margin in pixels
	uHeight    float64 // layout height in units
}

// newFrame computes the pixel frame for a non-empty layout. The vertical
// scale pins the stacked diagram to the configured frame height; gutters
// widen the frame so the longest label fits on each side.
func newFrame(l *sankey.Layout, r *renderer) frame {
	f := frame{
		scale:   r.frameHeight / l.Height,
		xShift:  labelOffsetFactor * l.XMax,
		marginY: r.fontSize,
		uHeight: l.Height,
	}

	maxLabel := 0.0
	for _, c := range l.Categories {
		if w := styles.TextWidth(c, r.fontSize); w > maxLabel {
			maxLabel = w
		}
	}
	gutter := maxLabel + 0.5*r.fontSize

	f.leftGutter = gutter
	f.width = gutter + (l.XMax+2*f.xShift)*f.scale + gutter
	f.height = r.frameHeight + 2*f.marginY
	return f
}

// px maps a layout x coordinate to pixels.
func (f frame) px(x float64) float64 {
	return f.leftGutter + (x+f.xShift)*f.scale
}

// py maps a layout y coordinate to pixels, flipping the axis.
func (f frame) py(y float64) float64 {
	return f.marginY + (f.uHeight-y)*f.scale
}

// buildRibbons converts the layout's ribbons into drawable bands. All
// bands share the same x sample positions.
func buildRibbons(l *sankey.Layout, colors sankey.ColorMap, r *renderer, f frame) []styles.Ribbon {
	xs := sankey.Linspace(0, l.XMax, sankey.CurveLen)
	pxs := make([]float64, len(xs))
	for i, x := range xs {
		pxs[i] = f.px(x)
	}

	out := make([]styles.Ribbon, 0, len(l.Ribbons))
	for _, rb := range l.Ribbons {
		ys := sankey.RibbonCurve(rb.LeftCenter(), rb.RightCenter())
		half := 0.5 * float64(rb.Count)

		upper := make([]float64, len(ys))
		lower := make([]float64, len(ys))
		for i, y := range ys {
			upper[i] = f.py(y + half)
			lower[i] = f.py(y - half)
		}

		color := colorFor(colors, rb.Source)
		if r.colorByDest {
			color = colorFor(colors, rb.Dest)
		}

		out = append(out, styles.Ribbon{
			Source: rb.Source,
			Dest:   rb.Dest,
			Color:  color,
			Xs:     pxs,
			Upper:  upper,
			Lower:  lower,
		})
	}
	return out
}

// buildBlocks converts the layout's slots into end-cap rectangles. Each
// category gets a block per side covering its occupied extent; sides with
// no observations produce no block.
func buildBlocks(l *sankey.Layout, colors sankey.ColorMap, f frame) []styles.Block {
	w := blockWidthFactor * l.XMax

	blocks := make([]styles.Block, 0, 2*len(l.Slots))
	for _, s := range l.Slots {
		color := colorFor(colors, s.Category)
		if s.Left > 0 {
			blocks = append(blocks, styles.Block{
				ID:       "block-left-" + s.Category,
				Category: s.Category,
				X:        f.px(-w),
				Y:        f.py(s.LeftTop()),
				W:        w * f.scale,
				H:        float64(s.Left) * f.scale,
				Color:    color,
			})
		}
		if s.Right > 0 {
			blocks = append(blocks, styles.Block{
				ID:       "block-right-" + s.Category,
				Category: s.Category,
				X:        f.px(l.XMax),
				Y:        f.py(s.RightTop()),
				W:        w * f.scale,
				H:        float64(s.Right) * f.scale,
				Color:    color,
			})
		}
	}
	return blocks
}

// buildLabels places a category name on both sides of every slot, each
// centered on its side's occupied extent. Sides with no observations
// still get a label at the slot midpoint.
func buildLabels(l *sankey.Layout, r *renderer, f frame) []styles.Label {
	labels := make([]styles.Label, 0, 2*len(l.Slots))
	for _, s := range l.Slots {
		labels = append(labels,
			styles.Label{
				Category: s.Category,
				X:        f.px(-f.xShift),
				Y:        f.py(s.LeftCenter()),
				Anchor:   "end",
				FontSize: r.fontSize,
			},
			styles.Label{
				Category: s.Category,
				X:        f.px(l.XMax + f.xShift),
				Y:        f.py(s.RightCenter()),
				Anchor:   "start",
				FontSize: r.fontSize,
			},
		)
	}
	return labels
}

func colorFor(colors sankey.ColorMap, category string) string {
	if c, ok := colors[category]; ok {
		return c
	}
	return fallbackColor
}
