// Package pipeline provides the core visualization pipeline for Flowribbon.
//
// This package implements the complete load → layout → render pipeline that
// can be used by CLI, API, and worker components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read paired observations from a file or inline request data
//  2. Layout: Aggregate flows and compute slot and ribbon geometry
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Data:    "transitions.csv",
//	    VizType: "ribbon",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Load only
//	dataset, err := pipeline.Load(opts)
//
//	// Layout with existing flows
//	layout, err := runner.ComputeLayout(ctx, flows, datasetHash, opts)
//
//	// Render with existing layout
//	artifacts, err := runner.Render(ctx, layout, flows, opts)
package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/flowribbon/pkg/cache"
	"github.com/matzehuels/flowribbon/pkg/render/ribbon"
	"github.com/matzehuels/flowribbon/pkg/sankey"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and Worker
// =============================================================================

const (
	// DefaultAspect is the height-to-width ratio of the diagram body.
	DefaultAspect = sankey.DefaultAspect

	// DefaultFontSize is the label font size in pixels.
	DefaultFontSize = ribbon.DefaultFontSize

	// DefaultFrameHeight is the rendered frame height in pixels.
	DefaultFrameHeight = ribbon.DefaultFrameHeight

	// DefaultScale is the raster scale factor for PNG output.
	DefaultScale = ribbon.DefaultScale
)

// Visualization type constants.
const (
	VizTypeRibbon   = "ribbon"
	VizTypeNodelink = "nodelink"
)

// DefaultVizType is the default visualization type.
const DefaultVizType = VizTypeRibbon

// DefaultStyle is the default visual style.
const DefaultStyle = "classic"

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	"classic": true,
	"night":   true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizTypeRibbon:   true,
	VizTypeNodelink: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the visualization pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options
	Data    string   `json:"data,omitempty"`   // Dataset file path (.csv or .json)
	Before  []string `json:"before,omitempty"` // Inline observations (used when Data is empty)
	After   []string `json:"after,omitempty"`
	Refresh bool     `json:"refresh,omitempty"` // Bypass cache reads (results are still written)

	// Layout options
	Aspect float64 `json:"aspect,omitempty"`

	// Render options
	VizType     string          `json:"viz_type,omitempty"`
	Formats     []string        `json:"formats,omitempty"`
	Style       string          `json:"style,omitempty"`
	Colors      sankey.ColorMap `json:"colors,omitempty"`
	ColorByDest bool            `json:"color_by_dest,omitempty"` // Color ribbons by destination instead of source
	FontSize    float64         `json:"font_size,omitempty"`
	FrameHeight float64         `json:"frame_height,omitempty"`
	Scale       float64         `json:"scale,omitempty"`
	Detailed    bool            `json:"detailed,omitempty"` // Per-side counts on nodelink labels

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Dataset is the loaded observation pairs.
	Dataset *sankey.Dataset

	// DatasetHash is the content hash of the dataset.
	DatasetHash string

	// Flows is the aggregated flow table.
	Flows *sankey.Flows

	// Layout contains the computed slot and ribbon geometry.
	Layout *sankey.Layout

	// Colors is the resolved category color map (ribbon runs only).
	Colors sankey.ColorMap

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Observations int
	Categories   int
	LoadTime     time.Duration
	LayoutTime   time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
// The load stage reads local data and is never cached.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return fmt.Errorf("invalid style: %q (must be one of: classic, night)", style)
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return fmt.Errorf("invalid viz_type: %q (must be one of: ribbon, nodelink)", vizType)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for loading.
func (o *Options) ValidateForLoad() error {
	if o.Data == "" && o.Before == nil && o.After == nil {
		return fmt.Errorf("data path or inline observations required")
	}

	// Logger default
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Aspect == 0 {
		o.Aspect = DefaultAspect
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if o.Aspect <= 0 || math.IsNaN(o.Aspect) || math.IsInf(o.Aspect, 0) {
		return fmt.Errorf("invalid aspect: %v (must be a positive finite number)", o.Aspect)
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.FontSize == 0 {
		o.FontSize = DefaultFontSize
	}
	if o.FrameHeight == 0 {
		o.FrameHeight = DefaultFrameHeight
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"font_size", o.FontSize},
		{"frame_height", o.FrameHeight},
		{"scale", o.Scale},
	} {
		if v.value <= 0 || math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return fmt.Errorf("invalid %s: %v (must be a positive finite number)", v.name, v.value)
		}
	}
	return nil
}

// IsRibbon returns true if this is a ribbon visualization.
func (o *Options) IsRibbon() bool {
	return o.VizType == "" || o.VizType == VizTypeRibbon
}

// IsNodelink returns true if this is a nodelink visualization.
func (o *Options) IsNodelink() bool {
	return o.VizType == VizTypeNodelink
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Aspect: o.Aspect,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
// The supplied color map is hashed because it changes the rendered bytes;
// Go marshals maps with sorted keys, so the hash is deterministic.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	colorsData, _ := json.Marshal(o.Colors)
	return cache.ArtifactKeyOpts{
		VizType:     o.VizType,
		Format:      format,
		Style:       o.Style,
		ColorsHash:  cache.Hash(colorsData),
		ColorByDest: o.ColorByDest,
		FontSize:    o.FontSize,
		FrameHeight: o.FrameHeight,
		Scale:       o.Scale,
		Detailed:    o.Detailed,
	}
}
