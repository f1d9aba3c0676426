// Package palette generates categorical color palettes for diagram rendering.
//
// The palette spaces hues evenly around the HSL color wheel at fixed
// lightness and saturation, which keeps every color distinguishable from
// its neighbors regardless of how many categories a dataset has. Colors
// are returned as lowercase hex strings ready for SVG attributes.
package palette

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// hueOffset nudges the first hue slightly off pure red.
	hueOffset = 0.01
	// lightness and saturation are fixed so only hue varies between colors.
	lightness  = 0.60
	saturation = 0.65
)

// Categorical returns n visually distinguishable colors as hex strings.
// The i-th color has hue (i/n + hueOffset) around the wheel, so palettes
// of different sizes share their leading colors. Returns an empty slice
// for n <= 0.
//
// The output is deterministic: the same n always yields the same colors.
func Categorical(n int) []string {
	if n <= 0 {
		return []string{}
	}

	colors := make([]string, n)
	for i := range colors {
		hue := math.Mod(float64(i)/float64(n)+hueOffset, 1)
		colors[i] = colorful.Hsl(hue*360, saturation, lightness).Hex()
	}
	return colors
}

// Normalize canonicalizes a hex color string to lowercase six-digit form,
// expanding three-digit shorthand. Returns an error for strings that are
// not valid hex colors.
func Normalize(hex string) (string, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}
