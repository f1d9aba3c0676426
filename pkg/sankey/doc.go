// Package sankey computes two-column sankey diagram geometry.
//
// # Overview
//
// A two-column sankey diagram shows how paired categorical observations
// transition from a "before" state to an "after" state. Each distinct label
// becomes a category with an end-cap block on the left and right axis, and
// every non-zero (source, destination) pair becomes a proportional flow
// ribbon connecting the two blocks.
//
// The computation runs as four sequential stages:
//
//  1. Aggregation ([Dataset.Categories]): order the distinct labels by
//     descending combined frequency.
//  2. Color assignment ([ResolveColors]): map every category to a color,
//     either from a caller-supplied [ColorMap] or a generated palette.
//  3. Layout ([Build]): stack category slots bottom-to-top, center each
//     side's occupied extent inside its slot, and tile flow ribbons into
//     the occupied extents.
//  4. Rendering: handled by the render packages, which consume the
//     [Layout] and the per-ribbon center curves from [RibbonCurve].
//
// # Usage
//
//	d, err := sankey.New(before, after)
//	if err != nil { ... }
//
//	f := sankey.CountFlows(d)
//	l, err := sankey.Build(f)
//	if err != nil { ... }
//
//	colors, err := sankey.ResolveColors(l.Categories, nil, palette.Categorical)
//	if err != nil { ... }
//
// # Determinism
//
// Every stage is a pure function of its inputs. Identical before/after
// sequences produce bit-identical layouts, including float coordinates,
// which callers and tests may rely on.
package sankey
