package sankey

import (
	"cmp"
	"slices"
)

// Categories returns the distinct labels of the dataset ordered by
// descending combined frequency (appearances in Before plus After). Ties
// are broken by first appearance, scanning Before and then After. The
// first category in the result is stacked at the bottom of the diagram.
//
// The ordering is deterministic for identical inputs. An empty dataset
// yields an empty slice.
func (d *Dataset) Categories() []string {
	counts := make(map[string]int)
	first := make(map[string]int)

	pos := 0
	for _, seq := range [][]string{d.Before, d.After} {
		for _, label := range seq {
			if _, seen := first[label]; !seen {
				first[label] = pos
			}
			counts[label]++
			pos++
		}
	}

	categories := make([]string, 0, len(counts))
	for label := range counts {
		categories = append(categories, label)
	}

	slices.SortFunc(categories, func(a, b string) int {
		if c := cmp.Compare(counts[b], counts[a]); c != 0 {
			return c
		}
		return cmp.Compare(first[a], first[b])
	})

	return categories
}
