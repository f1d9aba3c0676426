package ribbon

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/flowribbon/pkg/palette"
	"github.com/matzehuels/flowribbon/pkg/render/ribbon/styles"
	"github.com/matzehuels/flowribbon/pkg/sankey"
)

// Format selects the output encoding for [Render].
type Format string

const (
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatPDF  Format = "pdf"
	FormatJSON Format = "json"
)

var (
	// ErrUnknownFormat is returned when a format name does not match any
	// supported output format.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrInvalidOption is returned by [Render] when a numeric option is
	// zero, negative, or not a finite number.
	ErrInvalidOption = errors.New("invalid render option")
)

// ParseFormat maps a format name (from a CLI flag or file extension) to a
// [Format]. Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatSVG, FormatPNG, FormatPDF, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Formats lists the supported output formats in display order.
func Formats() []Format {
	return []Format{FormatSVG, FormatPNG, FormatPDF, FormatJSON}
}

// Rendering defaults. All sizes are in pixels.
const (
	DefaultFontSize    = 14.0
	DefaultFrameHeight = 600.0
	DefaultScale       = 2.0
)

// Option configures rendering.
type Option func(*renderer)

type renderer struct {
	colors      sankey.ColorMap
	palette     sankey.PaletteFunc
	aspect      float64
	colorByDest bool
	fontSize    float64
	frameHeight float64
	scale       float64
	style       styles.Style
	format      Format
}

// WithColors supplies an explicit category-to-color map. The map must
// cover every category in the dataset; [Render] fails on the first
// missing entry. When set, no palette is consulted.
func WithColors(m sankey.ColorMap) Option { return func(r *renderer) { r.colors = m } }

// WithPalette sets the generator used to derive colors when no explicit
// map is given (default [palette.Categorical]).
func WithPalette(p sankey.PaletteFunc) Option { return func(r *renderer) { r.palette = p } }

// WithAspect sets the height-to-width aspect ratio (default [sankey.DefaultAspect]).
func WithAspect(a float64) Option { return func(r *renderer) { r.aspect = a } }

// WithColorByDestination colors each ribbon by its destination category
// instead of its source category.
func WithColorByDestination() Option { return func(r *renderer) { r.colorByDest = true } }

// WithFontSize sets the label font size in pixels (default [DefaultFontSize]).
func WithFontSize(size float64) Option { return func(r *renderer) { r.fontSize = size } }

// WithFrameHeight sets the rendered diagram height in pixels (default
// [DefaultFrameHeight]). Width follows from the aspect ratio and label
// widths.
func WithFrameHeight(h float64) Option { return func(r *renderer) { r.frameHeight = h } }

// WithScale sets the PNG scale factor (default [DefaultScale] for 2x resolution).
func WithScale(s float64) Option { return func(r *renderer) { r.scale = s } }

// WithStyle sets the visual style (default [styles.Classic]).
func WithStyle(s styles.Style) Option { return func(r *renderer) { r.style = s } }

// WithFormat sets the output format produced by [Render] (default [FormatSVG]).
func WithFormat(f Format) Option { return func(r *renderer) { r.format = f } }

func newRenderer(opts ...Option) renderer {
	r := renderer{
		aspect:      sankey.DefaultAspect,
		fontSize:    DefaultFontSize,
		frameHeight: DefaultFrameHeight,
		scale:       DefaultScale,
		style:       styles.Classic{},
		format:      FormatSVG,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r *renderer) validate() error {
	checks := []struct {
		name string
		val  float64
	}{
		{"font size", r.fontSize},
		{"frame height", r.frameHeight},
		{"scale", r.scale},
	}
	for _, c := range checks {
		if c.val <= 0 || math.IsNaN(c.val) || math.IsInf(c.val, 0) {
			return fmt.Errorf("%w: %s must be a positive finite number, got %v", ErrInvalidOption, c.name, c.val)
		}
	}
	return nil
}

// paletteFunc returns the configured palette generator, falling back to
// the built-in categorical palette.
func (r *renderer) paletteFunc() sankey.PaletteFunc {
	if r.palette != nil {
		return r.palette
	}
	return palette.Categorical
}
