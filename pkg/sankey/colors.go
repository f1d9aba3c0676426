package sankey

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingColor is returned by [ResolveColors] when a supplied color
	// map lacks an entry for a category present in the data. The returned
	// error names the missing category. Validation happens before any
	// drawing, so a partial diagram is never produced.
	ErrMissingColor = errors.New("color map is missing a category")

	// ErrNoPalette is returned by [ResolveColors] when no color map is
	// supplied and no palette generator is available to fill the gap.
	ErrNoPalette = errors.New("no color map supplied and no palette generator available")
)

// ColorMap assigns a color to each category. Values are passed through to
// the drawing surface verbatim, so any color spec the surface understands
// is valid (hex strings for the SVG renderer).
type ColorMap map[string]string

// PaletteFunc generates n distinguishable colors for n categories.
// It is the palette collaborator of the diagram: [ResolveColors] calls it
// only when the caller supplies no color map.
type PaletteFunc func(n int) []string

// ResolveColors produces the complete color assignment for the aggregated
// categories.
//
// If supplied is non-nil it is used verbatim and validated eagerly: every
// category must resolve, and a gap fails fast with ErrMissingColor naming
// the first missing category in aggregated order. Extra entries for labels
// outside the data are ignored. If supplied is nil, gen provides one color
// per category, assigned in aggregated order.
//
// The returned map is a fresh copy covering exactly the given categories.
func ResolveColors(categories []string, supplied ColorMap, gen PaletteFunc) (ColorMap, error) {
	resolved := make(ColorMap, len(categories))

	if supplied != nil {
		for _, c := range categories {
			color, ok := supplied[c]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrMissingColor, c)
			}
			resolved[c] = color
		}
		return resolved, nil
	}

	if gen == nil {
		return nil, ErrNoPalette
	}

	colors := gen(len(categories))
	for i, c := range categories {
		resolved[c] = colors[i]
	}
	return resolved, nil
}
