package styles

import "bytes"

// Style defines the visual appearance for ribbon rendering.
// Implementations control how the frame, ribbons, blocks, and labels are drawn.
type Style interface {
	// Name returns the style identifier used in CLI flags and JSON output.
	Name() string
	// RenderDefs writes SVG <defs> content (filters, patterns, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderFrame writes background content covering the full frame.
	RenderFrame(buf *bytes.Buffer, f Frame)
	// RenderRibbon writes the SVG for a single flow ribbon.
	RenderRibbon(buf *bytes.Buffer, r Ribbon)
	// RenderBlock writes the SVG for a category block on either edge.
	RenderBlock(buf *bytes.Buffer, b Block)
	// RenderLabel writes the SVG for a category label.
	RenderLabel(buf *bytes.Buffer, l Label)
}

// Frame holds the outer dimensions of the rendered diagram in pixels.
type Frame struct {
	W, H float64
}

// Ribbon contains all data needed to render a single flow band.
// Xs, Upper, and Lower have equal length and trace the band from the
// left column to the right column in pixel coordinates.
type Ribbon struct {
	Source, Dest string    // Connected category names
	Color        string    // Fill color (hex)
	Xs           []float64 // Sample x positions
	Upper        []float64 // Upper boundary y positions
	Lower        []float64 // Lower boundary y positions
}

// Block contains positioning data for a category block on one edge.
type Block struct {
	ID         string  // Unique element identifier
	Category   string  // Category name
	X, Y, W, H float64 // Position and dimensions
	Color      string  // Fill color (hex)
}

// Label contains positioning data for a category name next to a block.
type Label struct {
	Category string  // Category name (display text)
	X, Y     float64 // Anchor position
	Anchor   string  // SVG text-anchor: "start" or "end"
	FontSize float64
}

// Opacity constants shared by all styles. Ribbons stay translucent so
// crossing bands remain readable; blocks are almost opaque.
const (
	ribbonOpacity = 0.65
	blockOpacity  = 0.99
)

// ByName returns the style registered under name. The empty string maps
// to the default classic style.
func ByName(name string) (Style, bool) {
	switch name {
	case "", "classic":
		return Classic{}, true
	case "night":
		return Night{}, true
	}
	return nil, false
}

// Names lists the available style names in display order.
func Names() []string {
	return []string{"classic", "night"}
}
