// Package ribbon renders two-column sankey diagrams as SVG, PNG, PDF,
// and JSON.
//
// # Overview
//
// A ribbon diagram shows how paired observations move between categories:
// each category appears as a block on the left and right edge, and smooth
// translucent bands connect them, one band per distinct (before, after)
// pair, with thickness proportional to the pair's count.
//
// The simplest entry point is [Render], which goes from raw observations
// to encoded output in one call:
//
//	png, err := ribbon.Render(before, after,
//	    ribbon.WithFormat(ribbon.FormatPNG),
//	    ribbon.WithStyle(styles.Night{}),
//	)
//
// # Two-Phase Rendering
//
// For repeated rendering of the same data, compute the layout once and
// feed it to the per-format renderers:
//
//	d, _ := sankey.New(before, after)
//	flows := sankey.CountFlows(d)
//	colors, _ := sankey.ResolveColors(flows.Categories(), nil, palette.Categorical)
//	layout, _ := sankey.Build(flows)
//
//	svg := ribbon.RenderSVG(layout, colors)
//	pdf, err := ribbon.RenderPDF(layout, colors)
//
// [RenderSVG] is pure computation; [RenderPNG] and [RenderPDF] convert
// the SVG via rsvg-convert and need librsvg installed. [RenderJSON]
// exports the layout and render settings for external tools.
//
// # Geometry
//
// Layout coordinates are in observation units with y growing upward;
// rendering maps them onto a pixel frame with y growing downward. The
// frame height is fixed ([WithFrameHeight], default 600px) and the width
// follows from the aspect ratio plus gutters sized to the longest
// category label. Blocks cover each category's occupied extent just
// outside the columns; labels sit further out, vertically centered on
// the same extent.
//
// # Options
//
//   - [WithColors]: explicit category colors (checked for completeness)
//   - [WithPalette]: color generator when no explicit map is given
//   - [WithColorByDestination]: color ribbons by destination, not source
//   - [WithAspect]: height-to-width ratio of the diagram
//   - [WithStyle]: visual style ([styles.Classic] or [styles.Night])
//   - [WithFontSize], [WithFrameHeight], [WithScale]: sizing knobs
//   - [WithFormat]: output format for [Render]
package ribbon
