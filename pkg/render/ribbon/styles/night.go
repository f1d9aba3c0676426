package styles

import (
	"bytes"
	"fmt"
)

const (
	nightBackground = "#0b0e14"
	nightLabelFill  = "#e6e8eb"
)

// Night renders diagrams on a dark background with light labels.
// Ribbon and block colors come through unchanged, so palettes tuned for
// light backgrounds stay legible against the dark frame.
type Night struct{}

func (Night) Name() string { return "night" }

// RenderDefs writes nothing; the night style needs no defs.
func (Night) RenderDefs(buf *bytes.Buffer) {}

func (Night) RenderFrame(buf *bytes.Buffer, f Frame) {
	fmt.Fprintf(buf, `  <rect class="frame" x="0" y="0" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
		f.W, f.H, nightBackground)
}

func (Night) RenderRibbon(buf *bytes.Buffer, r Ribbon) {
	renderRibbonPath(buf, r)
}

func (Night) RenderBlock(buf *bytes.Buffer, b Block) {
	renderBlockRect(buf, b)
}

func (Night) RenderLabel(buf *bytes.Buffer, l Label) {
	renderLabelText(buf, l, nightLabelFill)
}
