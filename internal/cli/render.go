package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	errs "github.com/matzehuels/flowribbon/pkg/errors"
	"github.com/matzehuels/flowribbon/pkg/palette"
	"github.com/matzehuels/flowribbon/pkg/pipeline"
	"github.com/matzehuels/flowribbon/pkg/sankey"
)

// renderCommand creates the render command for generating diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		colorsPath string
		configPath string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [data.csv|data.json]",
		Short: "Render a dataset to diagram file(s)",
		Long: `Render a dataset to diagram file(s).

The render command reads paired before/after observations from a CSV or
JSON file, aggregates them into flow counts, computes the diagram layout,
and writes the rendered output. Multiple formats can be produced in one
run with a comma-separated --format list.

Defaults for aspect, style, font size, and ribbon coloring can be kept
in a TOML file passed via --config; explicit flags override it.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Data = args[0]
			opts.Formats = parseFormats(formatsStr)
			if output != "" {
				if err := errs.ValidateOutputPath(output); err != nil {
					return err
				}
			}
			if configPath != "" {
				cfg, err := loadRenderConfig(configPath)
				if err != nil {
					return err
				}
				applyRenderConfig(cmd, cfg, &opts)
			}
			if colorsPath != "" {
				colors, err := loadColors(colorsPath)
				if err != nil {
					return err
				}
				opts.Colors = colors
			}
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVarP(&opts.VizType, "type", "t", "", "visualization type: ribbon (default), nodelink")
	cmd.Flags().StringVar(&opts.Style, "style", "", "visual style: classic (default), night")
	cmd.Flags().Float64Var(&opts.Aspect, "aspect", 0, "height-to-width ratio of the diagram body")
	cmd.Flags().StringVar(&colorsPath, "colors", "", "TOML file mapping categories to hex colors")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML file with render defaults (aspect, font-size, style, color-by-destination)")
	cmd.Flags().BoolVar(&opts.ColorByDest, "color-by-dest", false, "color ribbons by destination category")
	cmd.Flags().Float64Var(&opts.FontSize, "font-size", 0, "label font size in pixels")
	cmd.Flags().Float64Var(&opts.FrameHeight, "frame-height", 0, "rendered frame height in pixels")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0, "raster scale factor for PNG output")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "per-side counts on nodelink labels")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even when cached")

	return cmd
}

// runRender executes the full pipeline and writes the artifacts.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", opts.Data))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	return writeArtifacts(artifactWriteParams{
		artifacts:    result.Artifacts,
		formats:      opts.Formats,
		input:        opts.Data,
		output:       output,
		cacheHit:     result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit,
		observations: result.Stats.Observations,
		categories:   result.Stats.Categories,
	})
}

// =============================================================================
// Artifact Output
// =============================================================================

// artifactWriteParams bundles everything writeArtifacts needs to place
// rendered outputs on disk and report the result.
type artifactWriteParams struct {
	artifacts    map[string][]byte
	formats      []string
	input        string
	output       string
	cacheHit     bool
	observations int
	categories   int
}

// writeArtifacts writes one file per requested format. Output paths are
// derived from the base path plus the format extension, so "render -o
// out.svg" and "render -o out -f svg,png" both do the expected thing.
func writeArtifacts(p artifactWriteParams) error {
	base := basePath(p.output, p.input)

	var written []string
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			continue
		}
		path := base + "." + format
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}

	printSuccess("Render complete")
	for _, path := range written {
		printFile(path)
	}
	printStats(p.observations, p.categories, p.cacheHit)

	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .png, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// =============================================================================
// Color Files
// =============================================================================

// colorsFile is the schema of a --colors TOML file:
//
//	[colors]
//	dog = "#1f77b4"
//	cat = "#ff7f0e"
type colorsFile struct {
	Colors map[string]string `toml:"colors"`
}

// loadColors reads a category color map from a TOML file. Each color is
// validated and canonicalized to lowercase six-digit hex form.
func loadColors(path string) (sankey.ColorMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read colors file: %w", err)
	}

	var cf colorsFile
	if err := toml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse colors file %s: %w", path, err)
	}

	colors := make(sankey.ColorMap, len(cf.Colors))
	for category, hex := range cf.Colors {
		if err := errs.ValidateHexColor(hex); err != nil {
			return nil, fmt.Errorf("color for %q: %w", category, err)
		}
		normalized, err := palette.Normalize(hex)
		if err != nil {
			return nil, fmt.Errorf("color for %q: %w", category, err)
		}
		colors[category] = normalized
	}
	return colors, nil
}

// =============================================================================
// Config Files
// =============================================================================

// renderConfig is the schema of a --config TOML file holding render
// defaults:
//
//	aspect = 3.0
//	font-size = 16.0
//	style = "night"
//	color-by-destination = true
type renderConfig struct {
	Aspect      float64 `toml:"aspect"`
	FontSize    float64 `toml:"font-size"`
	Style       string  `toml:"style"`
	ColorByDest bool    `toml:"color-by-destination"`
}

// loadRenderConfig reads render defaults from a TOML file. Unknown keys
// are rejected so a misspelled option surfaces instead of silently
// falling back to the built-in default.
func loadRenderConfig(path string) (renderConfig, error) {
	var cfg renderConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if unknown := md.Undecoded(); len(unknown) > 0 {
		return cfg, fmt.Errorf("config file %s: unknown key %q", path, unknown[0].String())
	}
	return cfg, nil
}

// applyRenderConfig copies config file values into opts for every option
// not set explicitly on the command line. Flags win over the file, the
// file wins over built-in defaults.
func applyRenderConfig(cmd *cobra.Command, cfg renderConfig, opts *pipeline.Options) {
	flags := cmd.Flags()
	if cfg.Aspect != 0 && !flags.Changed("aspect") {
		opts.Aspect = cfg.Aspect
	}
	if cfg.FontSize != 0 && !flags.Changed("font-size") {
		opts.FontSize = cfg.FontSize
	}
	if cfg.Style != "" && !flags.Changed("style") {
		opts.Style = cfg.Style
	}
	if cfg.ColorByDest && !flags.Changed("color-by-dest") {
		opts.ColorByDest = true
	}
}
