// Package render provides visualization rendering for flow datasets.
//
// # Overview
//
// This package contains the rendering pipeline that transforms computed
// sankey layouts into visual outputs. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Ribbon diagrams (in [ribbon] subpackage)
//   - Node-link diagrams (in [nodelink] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). These are used by both
// ribbon and node-link renderers.
//
//	svg := ribbon.RenderSVG(layout, colors, opts...)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Ribbon Diagrams
//
// The [ribbon] subpackage renders two-column sankey diagrams where each
// category appears as a block on the left and right edge, connected by
// smooth ribbons whose thickness encodes flow counts. This is Flowribbon's
// signature visualization style.
//
// Key ribbon subpackages:
//   - [ribbon/styles]: Visual styles (classic, night)
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders flows as traditional directed graph
// diagrams using Graphviz. Categories appear as boxes connected by arrows
// whose thickness encodes counts.
//
//	dot := nodelink.ToDOT(flows, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//
// [ribbon]: github.com/matzehuels/flowribbon/pkg/render/ribbon
// [ribbon/styles]: github.com/matzehuels/flowribbon/pkg/render/ribbon/styles
// [nodelink]: github.com/matzehuels/flowribbon/pkg/render/nodelink
package render
