package ribbon

import (
	"fmt"

	"github.com/matzehuels/flowribbon/pkg/sankey"
)

// Render builds a complete diagram from paired before/after observations.
// It is the one-call entry point: aggregation, color resolution, layout,
// and encoding in the configured format all happen here.
//
// All inputs are validated before any output is produced. A length
// mismatch between the two slices, a color map missing a category, an
// invalid aspect ratio, or an invalid option fails with no partial
// output. Empty input is not an error and yields an empty diagram.
func Render(before, after []string, opts ...Option) ([]byte, error) {
	r := newRenderer(opts...)
	if err := r.validate(); err != nil {
		return nil, err
	}

	d, err := sankey.New(before, after)
	if err != nil {
		return nil, err
	}

	flows := sankey.CountFlows(d)
	colors, err := sankey.ResolveColors(flows.Categories(), r.colors, r.paletteFunc())
	if err != nil {
		return nil, err
	}

	l, err := sankey.Build(flows, sankey.WithAspect(r.aspect))
	if err != nil {
		return nil, err
	}

	switch r.format {
	case FormatSVG:
		return RenderSVG(l, colors, opts...), nil
	case FormatPNG:
		return RenderPNG(l, colors, opts...)
	case FormatPDF:
		return RenderPDF(l, colors, opts...)
	case FormatJSON:
		return RenderJSON(l, colors, opts...)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(r.format))
}
