package styles

import (
	"bytes"
	"encoding/xml"
)

const fontCharWidth = 0.55

// TextWidth estimates the rendered width of s at the given font size.
// The estimate assumes an average glyph width of just over half the font
// size, which holds well enough for common sans-serif faces.
func TextWidth(s string, fontSize float64) float64 {
	return float64(len(s)) * fontSize * fontCharWidth
}

func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
