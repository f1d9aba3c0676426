package styles

import (
	"bytes"
	"fmt"
	"strings"
)

const fontFamily = "Helvetica,Arial,sans-serif"

// ribbonPath builds the closed outline of a band: along the upper boundary
// left to right, back along the lower boundary right to left.
func ribbonPath(r Ribbon) string {
	var path strings.Builder
	fmt.Fprintf(&path, "M %.2f %.2f", r.Xs[0], r.Upper[0])
	for i := 1; i < len(r.Xs); i++ {
		fmt.Fprintf(&path, " L %.2f %.2f", r.Xs[i], r.Upper[i])
	}
	for i := len(r.Xs) - 1; i >= 0; i-- {
		fmt.Fprintf(&path, " L %.2f %.2f", r.Xs[i], r.Lower[i])
	}
	path.WriteString(" Z")
	return path.String()
}

func renderRibbonPath(buf *bytes.Buffer, r Ribbon) {
	if len(r.Xs) == 0 {
		return
	}
	fmt.Fprintf(buf, `  <path class="ribbon" data-source="%s" data-dest="%s" d="%s" fill="%s" fill-opacity="%.2f"/>`+"\n",
		EscapeXML(r.Source), EscapeXML(r.Dest), ribbonPath(r), EscapeXML(r.Color), ribbonOpacity)
}

func renderBlockRect(buf *bytes.Buffer, b Block) {
	fmt.Fprintf(buf, `  <rect id="%s" class="block" data-category="%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" fill-opacity="%.2f"/>`+"\n",
		EscapeXML(b.ID), EscapeXML(b.Category), b.X, b.Y, b.W, b.H, EscapeXML(b.Color), blockOpacity)
}

func renderLabelText(buf *bytes.Buffer, l Label, fill string) {
	fmt.Fprintf(buf, `  <text class="label" x="%.2f" y="%.2f" dy="0.35em" text-anchor="%s" font-family="%s" font-size="%.1f" fill="%s">%s</text>`+"\n",
		l.X, l.Y, l.Anchor, fontFamily, l.FontSize, fill, EscapeXML(l.Category))
}
