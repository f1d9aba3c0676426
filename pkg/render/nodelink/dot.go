package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/flowribbon/pkg/render"
	"github.com/matzehuels/flowribbon/pkg/sankey"
)

// Edge thickness grows with the flow count but stays within a readable
// range.
const (
	penwidthBase = 1.0
	penwidthStep = 0.5
	penwidthMax  = 8.0
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes per-side observation counts in node labels.
	// When false, only the category name is shown.
	Detailed bool
}

// ToDOT converts a flow table to Graphviz DOT format for node-link
// visualization. Categories become one node each, in aggregated order,
// and every non-zero flow becomes an arrow labeled with its count.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF],
// or [RenderPNG].
func ToDOT(f *sankey.Flows, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	categories := f.Categories()
	for _, c := range categories {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", c, fmtLabel(f, c, opts.Detailed))
	}

	buf.WriteString("\n")
	for i, src := range categories {
		for j, dst := range categories {
			n := f.At(i, j)
			if n == 0 {
				continue
			}
			fmt.Fprintf(&buf, "  %q -> %q [label=%q, penwidth=%.1f];\n",
				src, dst, strconv.Itoa(n), penwidth(n))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(f *sankey.Flows, category string, detailed bool) string {
	if !detailed {
		return category
	}
	return fmt.Sprintf("%s\nbefore: %d\nafter: %d",
		category, f.SourceTotal(category), f.DestTotal(category))
}

func penwidth(count int) float64 {
	return min(penwidthBase+penwidthStep*float64(count), penwidthMax)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
