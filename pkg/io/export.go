package io

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/flowribbon/pkg/sankey"
)

// WriteCSV encodes a dataset as two-column CSV and writes it to w.
// The output starts with a "before,after" header row and preserves
// observation order. This format can be re-imported with [ReadCSV] for
// round-trip processing.
func WriteCSV(d *sankey.Dataset, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"before", "after"}); err != nil {
		return fmt.Errorf("encode csv: %w", err)
	}
	for i := range d.Before {
		if err := cw.Write([]string{d.Before[i], d.After[i]}); err != nil {
			return fmt.Errorf("encode csv row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("encode csv: %w", err)
	}
	return nil
}

// ExportCSV writes a dataset to a CSV file at path.
// This is a convenience wrapper around [WriteCSV] for file-based output.
func ExportCSV(d *sankey.Dataset, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteCSV(d, f)
}

// WriteJSON encodes a dataset as JSON and writes it to w.
// This format can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(d *sankey.Dataset, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// ExportJSON writes a dataset to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(d *sankey.Dataset, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(d, f)
}
