package pipeline

import (
	"github.com/matzehuels/flowribbon/pkg/sankey"
)

// =============================================================================
// Layout Generation
// =============================================================================

// ComputeLayout computes the slot and ribbon geometry for a flow table.
//
// The layout is independent of the visualization type: the ribbon
// renderer consumes it directly, the nodelink renderer only needs the
// flow table, and the JSON format serializes it for either. Keeping one
// layout per dataset means a cached layout serves every render variant.
func ComputeLayout(f *sankey.Flows, opts Options) (*sankey.Layout, error) {
	return sankey.Build(f, sankey.WithAspect(opts.Aspect))
}
