package pipeline

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/flowribbon/pkg/cache"
	flowio "github.com/matzehuels/flowribbon/pkg/io"
	"github.com/matzehuels/flowribbon/pkg/sankey"
)

// Load produces the dataset for a pipeline run.
//
// When opts.Data is set it is treated as a dataset file path and the
// format is chosen by extension (.csv or .json). Otherwise the inline
// Before/After sequences are used, which is the path API requests take.
func Load(opts Options) (*sankey.Dataset, error) {
	if opts.Data != "" {
		return flowio.Import(opts.Data)
	}

	d, err := sankey.New(opts.Before, opts.After)
	if err != nil {
		return nil, fmt.Errorf("inline observations: %w", err)
	}
	return d, nil
}

// DatasetHash returns the content hash of a dataset as used in cache
// keys and API responses. Identical datasets always hash identically.
func DatasetHash(d *sankey.Dataset) (string, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("serialize dataset: %w", err)
	}
	return cache.Hash(data), nil
}
