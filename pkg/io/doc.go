// Package io provides CSV and JSON import and export for flow datasets.
//
// # Overview
//
// This package enables serialization of paired before/after observations
// to and from two simple formats. The formats are designed for:
//
//   - Hand-editing small datasets and exporting from spreadsheets (CSV)
//   - Integration with external tools that produce or consume flow data (JSON)
//   - Round-trip preservation: import, render, export, and re-import identically
//
// # CSV Format
//
// Two columns per row, before then after, with an optional header:
//
//	before,after
//	dog,cat
//	dog,dog
//	cat,cat
//
// A first row reading "before,after" (any letter case) is treated as a
// header and skipped. Every other row must have exactly two fields. Rows
// pair up positionally: row order is preserved and matters for category
// ordering downstream.
//
// # JSON Format
//
// A JSON object with two equal-length string arrays:
//
//	{
//	  "before": ["dog", "dog", "cat"],
//	  "after": ["cat", "dog", "cat"]
//	}
//
// Arrays of different lengths fail validation on import, matching
// [sankey.New].
//
// # Import
//
// Use [ImportCSV] or [ImportJSON] to read from a file path, [ReadCSV] or
// [ReadJSON] to read from any io.Reader, or [Import] to pick the format
// from the file extension:
//
//	d, err := io.Import("observations.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Errors are wrapped with context about the file and row that caused the
// problem.
//
// # Export
//
// Use [ExportCSV] or [ExportJSON] to write to a file, or [WriteCSV] and
// [WriteJSON] to write to any io.Writer:
//
//	err := io.ExportJSON(d, "observations.json")
//
// CSV export always writes the header row. Both formats preserve
// observation order, so export followed by import yields an identical
// dataset.
//
// # Layout Export
//
// This package handles raw observations only. For computed geometry, use
// [sankey.WriteLayoutFile] and [sankey.ReadLayoutFile], or the JSON
// render format in [render/ribbon], which bundles the layout with colors
// and render settings.
//
// [sankey.New]: github.com/matzehuels/flowribbon/pkg/sankey.New
// [sankey.WriteLayoutFile]: github.com/matzehuels/flowribbon/pkg/sankey.WriteLayoutFile
// [sankey.ReadLayoutFile]: github.com/matzehuels/flowribbon/pkg/sankey.ReadLayoutFile
// [render/ribbon]: github.com/matzehuels/flowribbon/pkg/render/ribbon
package io
