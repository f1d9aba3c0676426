package io

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/flowribbon/pkg/sankey"
)

// ReadCSV decodes two-column CSV observations from r into a dataset.
//
// Each record must have exactly two fields, before then after. A first
// record reading "before,after" (any letter case) is treated as a header
// and skipped. Leading whitespace in fields is trimmed; empty input
// yields an empty dataset.
//
// ReadCSV returns an error if a record has the wrong number of fields or
// the CSV is malformed. Errors include the offending line number. The
// returned dataset is independent of r; ReadCSV does not close r.
func ReadCSV(r io.Reader) (*sankey.Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decode csv: %w", err)
	}

	if len(records) > 0 && isHeader(records[0]) {
		records = records[1:]
	}

	d := &sankey.Dataset{
		Before: make([]string, len(records)),
		After:  make([]string, len(records)),
	}
	for i, rec := range records {
		d.Before[i] = rec[0]
		d.After[i] = rec[1]
	}
	return d, nil
}

func isHeader(record []string) bool {
	return len(record) == 2 &&
		strings.EqualFold(strings.TrimSpace(record[0]), "before") &&
		strings.EqualFold(strings.TrimSpace(record[1]), "after")
}

// ImportCSV reads a CSV file at path and returns the decoded dataset.
//
// ImportCSV opens the file, decodes it using [ReadCSV], and closes the
// file. Errors wrap the underlying cause with the file path for context.
func ImportCSV(path string) (*sankey.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadJSON decodes a JSON dataset from r.
//
// The input must be a JSON object with "before" and "after" string
// arrays of equal length:
//
//	{
//	  "before": ["dog", "cat"],
//	  "after": ["cat", "cat"]
//	}
//
// ReadJSON returns an error if the JSON is malformed or the arrays have
// different lengths. The returned dataset is independent of r; ReadJSON
// does not close r.
func ReadJSON(r io.Reader) (*sankey.Dataset, error) {
	var d sankey.Dataset
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// ImportJSON reads a JSON file at path and returns the decoded dataset.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. Errors wrap the underlying cause with the file path for context.
func ImportJSON(path string) (*sankey.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// Import reads a dataset from path, picking the format from the file
// extension: .csv for [ImportCSV], .json for [ImportJSON].
func Import(path string) (*sankey.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ImportCSV(path)
	case ".json":
		return ImportJSON(path)
	}
	return nil, fmt.Errorf("unsupported data file extension %q (want .csv or .json)", filepath.Ext(path))
}
