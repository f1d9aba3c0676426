// Package nodelink renders flow tables as traditional node-link diagrams.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz, where
// categories appear as boxes connected by arrows weighted by flow counts.
// It's an alternative to the ribbon visualization for cases where a
// traditional diagram is preferred, or where the exact counts matter more
// than the proportional bands.
//
// # Usage
//
// Convert a flow table to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(flows, nodelink.Options{Detailed: false})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(dot)
//	png, err := nodelink.RenderPNG(dot, 2.0)  // 2x scale
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: When true, node labels include per-side observation counts
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// The generated DOT uses left-to-right layout (rankdir=LR) so flows run
// from before on the left to after on the right, matching the ribbon
// visualization's horizontal orientation. Edge thickness scales with the
// flow count, and each edge is labeled with its count.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
