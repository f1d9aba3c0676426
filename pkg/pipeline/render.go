package pipeline

import (
	"fmt"

	"github.com/matzehuels/flowribbon/pkg/palette"
	"github.com/matzehuels/flowribbon/pkg/render/nodelink"
	"github.com/matzehuels/flowribbon/pkg/render/ribbon"
	"github.com/matzehuels/flowribbon/pkg/render/ribbon/styles"
	"github.com/matzehuels/flowribbon/pkg/sankey"
)

// Render generates output artifacts in the requested formats.
func Render(l *sankey.Layout, f *sankey.Flows, opts Options) (map[string][]byte, error) {
	if opts.IsNodelink() {
		return renderNodelink(l, f, opts)
	}
	return renderRibbon(l, opts)
}

// renderRibbon generates ribbon diagram outputs.
func renderRibbon(l *sankey.Layout, opts Options) (map[string][]byte, error) {
	// Resolve colors first so a bad color map fails before any surface
	// is produced.
	colors, err := sankey.ResolveColors(l.Categories, opts.Colors, palette.Categorical)
	if err != nil {
		return nil, fmt.Errorf("resolve colors: %w", err)
	}

	ribbonOpts := buildRibbonOptions(opts)
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = ribbon.RenderSVG(l, colors, ribbonOpts...)
		case FormatPNG:
			data, err = ribbon.RenderPNG(l, colors, ribbonOpts...)
		case FormatPDF:
			data, err = ribbon.RenderPDF(l, colors, ribbonOpts...)
		case FormatJSON:
			data, err = ribbon.RenderJSON(l, colors, ribbonOpts...)
		default:
			return nil, fmt.Errorf("unsupported ribbon format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// renderNodelink generates nodelink outputs. The DOT graph is built
// on-demand from the flow table; the JSON format serializes the layout,
// which carries the same categories and flow counts.
func renderNodelink(l *sankey.Layout, f *sankey.Flows, opts Options) (map[string][]byte, error) {
	dot := nodelink.ToDOT(f, nodelink.Options{Detailed: opts.Detailed})

	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = nodelink.RenderSVG(dot)
		case FormatPNG:
			data, err = nodelink.RenderPNG(dot, opts.Scale)
		case FormatPDF:
			data, err = nodelink.RenderPDF(dot)
		case FormatJSON:
			data, err = sankey.MarshalLayout(l)
		default:
			return nil, fmt.Errorf("unsupported nodelink format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildRibbonOptions converts pipeline options to ribbon render options.
func buildRibbonOptions(opts Options) []ribbon.Option {
	ribbonOpts := []ribbon.Option{
		ribbon.WithAspect(opts.Aspect),
		ribbon.WithFontSize(opts.FontSize),
		ribbon.WithFrameHeight(opts.FrameHeight),
		ribbon.WithScale(opts.Scale),
	}

	if st, ok := styles.ByName(opts.Style); ok {
		ribbonOpts = append(ribbonOpts, ribbon.WithStyle(st))
	}
	if opts.ColorByDest {
		ribbonOpts = append(ribbonOpts, ribbon.WithColorByDestination())
	}

	return ribbonOpts
}
