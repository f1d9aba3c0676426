package sankey

// Flows is the dense transition count table over the dataset's categories.
// Entry (i, j) counts the observations flowing from category i (as source)
// to category j (as destination), with both axes in aggregated order.
// Zero entries are kept so iteration order over pairs stays fixed.
//
// The zero value is not usable - use [CountFlows] to build a valid table.
type Flows struct {
	categories []string
	index      map[string]int
	counts     [][]int
	sourceSums []int // per-category observations on the left side
	destSums   []int // per-category observations on the right side
	total      int
}

// CountFlows builds the flow count table for a dataset.
// Categories are ordered by [Dataset.Categories]; that order fixes both
// matrix axes and, downstream, the stacking and ribbon iteration order.
func CountFlows(d *Dataset) *Flows {
	categories := d.Categories()

	f := &Flows{
		categories: categories,
		index:      make(map[string]int, len(categories)),
		counts:     make([][]int, len(categories)),
		sourceSums: make([]int, len(categories)),
		destSums:   make([]int, len(categories)),
		total:      d.Len(),
	}
	for i, c := range categories {
		f.index[c] = i
		f.counts[i] = make([]int, len(categories))
	}

	for k := range d.Before {
		i := f.index[d.Before[k]]
		j := f.index[d.After[k]]
		f.counts[i][j]++
		f.sourceSums[i]++
		f.destSums[j]++
	}

	return f
}

// Categories returns the categories in aggregated order.
// The returned slice should not be modified - use it as a read-only view.
func (f *Flows) Categories() []string { return f.categories }

// Len returns the number of distinct categories.
func (f *Flows) Len() int { return len(f.categories) }

// Total returns the total number of observation pairs.
func (f *Flows) Total() int { return f.total }

// At returns the flow count from the i-th to the j-th category, both in
// aggregated order.
func (f *Flows) At(i, j int) int { return f.counts[i][j] }

// Count returns the flow count from src to dst.
// Returns 0 if either label is not a category of the dataset.
func (f *Flows) Count(src, dst string) int {
	i, okI := f.index[src]
	j, okJ := f.index[dst]
	if !okI || !okJ {
		return 0
	}
	return f.counts[i][j]
}

// SourceTotal returns the number of observations with the category on the
// left side, which equals the sum of its outgoing flow counts.
// Returns 0 for unknown categories.
func (f *Flows) SourceTotal(category string) int {
	i, ok := f.index[category]
	if !ok {
		return 0
	}
	return f.sourceSums[i]
}

// DestTotal returns the number of observations with the category on the
// right side, which equals the sum of its incoming flow counts.
// Returns 0 for unknown categories.
func (f *Flows) DestTotal(category string) int {
	i, ok := f.index[category]
	if !ok {
		return 0
	}
	return f.destSums[i]
}
