// Package styles defines visual styles for ribbon rendering.
//
// # Overview
//
// Flowribbon supports multiple visual styles that control how the frame,
// ribbons, blocks, and labels are rendered. This package provides:
//
//   - [Style]: The interface that all styles implement
//   - [Classic]: A light, flat style on a transparent background
//   - [Night]: A dark background variant with light labels
//
// # The Style Interface
//
// All styles implement [Style], which provides methods for rendering each
// visual element:
//
//   - RenderDefs: SVG <defs> section (filters, patterns, gradients)
//   - RenderFrame: Full-frame background content
//   - RenderRibbon: Flow bands between the two columns
//   - RenderBlock: Category blocks along the left and right edges
//   - RenderLabel: Category names next to the blocks
//
// Styles receive positioning data in pixel coordinates; all geometry is
// computed by the parent ribbon package before styles are invoked.
//
// # Choosing a Style
//
// [ByName] maps CLI and API style names to implementations:
//
//	style, ok := styles.ByName("night")
//	svg := ribbon.RenderSVG(layout, colors, ribbon.WithStyle(style))
//
// Both built-in styles share the same opacity treatment: translucent
// ribbons over nearly opaque blocks, so overlapping bands stay readable.
//
// # Creating Custom Styles
//
// To create a custom style:
//
//  1. Implement the [Style] interface
//  2. Use the provided [Ribbon], [Block], and [Label] data for positioning
//  3. Write SVG elements to the provided bytes.Buffer
//
// Example structure:
//
//	type MyStyle struct{}
//
//	func (MyStyle) RenderBlock(buf *bytes.Buffer, b Block) {
//	    fmt.Fprintf(buf, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`,
//	        b.X, b.Y, b.W, b.H, b.Color)
//	}
package styles
