package ribbon

import (
	"encoding/json"

	"github.com/matzehuels/flowribbon/pkg/sankey"
)

type jsonOutput struct {
	Width       float64         `json:"width"`
	Height      float64         `json:"height"`
	FontSize    float64         `json:"font_size"`
	Style       string          `json:"style,omitempty"`
	ColorByDest bool            `json:"color_by_destination,omitempty"`
	Colors      sankey.ColorMap `json:"colors"`
	Layout      *sankey.Layout  `json:"layout"`
}

// RenderJSON exports the layout, resolved colors, and render settings as
// a pretty-printed JSON document. This is the primary data interchange
// format for Flowribbon, enabling:
//
//   - Integration with external visualization tools
//   - Caching computed layouts for fast re-rendering
//   - Round-trip rendering (re-import and render identically)
//
// Width and height are the pixel dimensions the SVG renderer would
// produce with the same options. RenderJSON returns an error only if
// JSON marshaling fails. It does not modify l and is safe to call
// concurrently.
func RenderJSON(l *sankey.Layout, colors sankey.ColorMap, opts ...Option) ([]byte, error) {
	r := newRenderer(opts...)

	width, height := r.frameHeight, r.frameHeight
	if len(l.Slots) > 0 {
		f := newFrame(l, &r)
		width, height = f.width, f.height
	}

	out := jsonOutput{
		Width:       width,
		Height:      height,
		FontSize:    r.fontSize,
		Style:       r.style.Name(),
		ColorByDest: r.colorByDest,
		Colors:      colors,
		Layout:      l,
	}
	return json.MarshalIndent(out, "", "  ")
}
