// Package pkg provides the core libraries for Flowribbon sankey visualization.
//
// # Overview
//
// Flowribbon turns paired before/after observations into two-column sankey
// diagrams: each category appears as a stacked block on the left and right
// edge, and ribbons between the columns encode transition counts. The pkg
// directory is organized into four main areas:
//
//  1. [sankey] - Domain logic (datasets, flow counting, layout geometry)
//  2. [render] - Visualization rendering (ribbon and node-link diagrams)
//  3. [pipeline] - Orchestration (load → layout → render) with caching
//  4. Infrastructure - [cache], [store], [errors], [observability], [palette]
//
// # Architecture
//
// The typical data flow through Flowribbon:
//
//	CSV/JSON observations
//	         ↓
//	    [io] package (decode datasets)
//	         ↓
//	    [sankey] package (count flows + compute layout)
//	         ↓
//	    [render/ribbon] package (draw blocks, labels, ribbons)
//	         ↓
//	    SVG/PDF/PNG/JSON output
//
// # Quick Start
//
// Count flows and render a ribbon diagram:
//
//	import (
//	    "github.com/matzehuels/flowribbon/pkg/palette"
//	    "github.com/matzehuels/flowribbon/pkg/render/ribbon"
//	    "github.com/matzehuels/flowribbon/pkg/sankey"
//	)
//
//	// 1. Build the dataset from paired observations
//	d, _ := sankey.New(
//	    []string{"dog", "dog", "cat"},
//	    []string{"cat", "dog", "cat"},
//	)
//
//	// 2. Aggregate into transition counts
//	f := sankey.CountFlows(d)
//
//	// 3. Compute layout geometry
//	l, _ := sankey.Build(f)
//
//	// 4. Render to SVG
//	colors, _ := sankey.ResolveColors(l.Categories, nil, palette.Categorical)
//	svg := ribbon.RenderSVG(l, colors)
//
// Or use the one-call entry point:
//
//	svg, _ := ribbon.Render(before, after)
//
// # Main Packages
//
// ## Domain Logic
//
// [sankey] - The sankey field model. Datasets hold paired observation
// sequences; [sankey.CountFlows] aggregates them into a transition count
// matrix; [sankey.Build] stacks category slots into columns and tiles
// ribbons between them. Layouts serialize to JSON for the layout/visualize
// split.
//
// [io] - Dataset decoding from CSV (two-column, optional header) and JSON
// (before/after arrays).
//
// [palette] - Categorical color generation in HCL space and hex color
// normalization.
//
// ## Visualization
//
// [render/ribbon] - Flowribbon's signature two-column diagram. The rendering
// pipeline: frame mapping → blocks → labels → ribbon curves.
//
//   - [render/ribbon/styles]: Visual styles (classic, night)
//
// [render/nodelink] - Traditional directed graph diagrams using Graphviz.
//
// [render] - Top-level utilities for format conversion (SVG to PDF/PNG).
//
// ## Orchestration
//
// [pipeline] - Complete visualization pipeline (load → layout → render) used
// by the CLI and the HTTP API. Ensures consistent defaults, validation, and
// caching across all entry points.
//
// ## Infrastructure
//
// [cache] - Content-addressed caching of layouts and rendered artifacts.
// FileCache for the CLI, RedisCache for multi-instance deployments,
// NullCache for tests and --no-cache runs.
//
// [store] - Dataset persistence behind the HTTP API. MemoryStore for
// development and tests, MongoStore for production.
//
// [errors] - Structured error codes with user-safe messages and input
// validation helpers shared by the CLI and API boundaries.
//
// [observability] - Request and pipeline instrumentation hooks.
//
// [buildinfo] - Version metadata injected at build time.
//
// # Common Workflows
//
// Load a dataset file and inspect its flows:
//
//	d, _ := flowio.Import("pets.csv")
//	f := sankey.CountFlows(d)
//	fmt.Println(f.Count("dog", "cat"))
//
// Split layout computation from rendering:
//
//	l, _ := sankey.Build(f, sankey.WithAspect(2))
//	_ = sankey.WriteLayoutFile(l, "pets.layout.json")
//
//	l2, _ := sankey.ReadLayoutFile("pets.layout.json")
//	svg := ribbon.RenderSVG(l2, colors)
//
// Render through the cached pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, _ := runner.Execute(ctx, pipeline.Options{
//	    Data:    "pets.csv",
//	    Formats: []string{"svg", "png"},
//	})
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                  # All tests
//	go test ./pkg/sankey/...           # Specific package
//	go test -run Example               # Examples only
//
// [sankey]: https://pkg.go.dev/github.com/matzehuels/flowribbon/pkg/sankey
// [io]: https://pkg.go.dev/github.com/matzehuels/flowribbon/pkg/io
// [palette]: https://pkg.go.dev/github.com/matzehuels/flowribbon/pkg/palette
// [render]: https://pkg.go.dev/github.com/matzehuels/flowribbon/pkg/render
// [render/ribbon]: https://pkg.go.dev/github.com/matzehuels/flowribbon/pkg/render/ribbon
// [render/ribbon/styles]: https://pkg.go.dev/github.com/matzehuels/flowribbon/pkg/render/ribbon/styles
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/flowribbon/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/flowribbon/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/flowribbon/pkg/cache
// [store]: https://pkg.go.dev/github.com/matzehuels/flowribbon/pkg/store
// [errors]: https://pkg.go.dev/github.com/matzehuels/flowribbon/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/flowribbon/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/flowribbon/pkg/buildinfo
package pkg
