package styles

import "bytes"

// Classic renders diagrams on a transparent background with flat colors.
// This is the default style.
type Classic struct{}

func (Classic) Name() string { return "classic" }

// RenderDefs writes nothing; the classic style needs no defs.
func (Classic) RenderDefs(buf *bytes.Buffer) {}

// RenderFrame writes nothing; the classic style keeps the background transparent.
func (Classic) RenderFrame(buf *bytes.Buffer, f Frame) {}

func (Classic) RenderRibbon(buf *bytes.Buffer, r Ribbon) {
	renderRibbonPath(buf, r)
}

func (Classic) RenderBlock(buf *bytes.Buffer, b Block) {
	renderBlockRect(buf, b)
}

func (Classic) RenderLabel(buf *bytes.Buffer, l Label) {
	renderLabelText(buf, l, "#222222")
}
