package io

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/flowribbon/pkg/sankey"
)

func TestReadCSV(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantBefore []string
		wantAfter  []string
		wantErr    bool
	}{
		{
			name:       "with header",
			input:      "before,after\ndog,cat\ndog,dog\n",
			wantBefore: []string{"dog", "dog"},
			wantAfter:  []string{"cat", "dog"},
		},
		{
			name:       "header case insensitive",
			input:      "Before,After\ndog,cat\n",
			wantBefore: []string{"dog"},
			wantAfter:  []string{"cat"},
		},
		{
			name:       "without header",
			input:      "dog,cat\ncat,cat\n",
			wantBefore: []string{"dog", "cat"},
			wantAfter:  []string{"cat", "cat"},
		},
		{
			name:       "leading space trimmed",
			input:      "dog, cat\n",
			wantBefore: []string{"dog"},
			wantAfter:  []string{"cat"},
		},
		{
			name:       "empty input",
			input:      "",
			wantBefore: []string{},
			wantAfter:  []string{},
		},
		{
			name:       "header only",
			input:      "before,after\n",
			wantBefore: []string{},
			wantAfter:  []string{},
		},
		{
			name:    "too many columns",
			input:   "dog,cat,extra\n",
			wantErr: true,
		},
		{
			name:    "too few columns",
			input:   "dog,cat\nlonely\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ReadCSV(strings.NewReader(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadCSV() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(d.Before, tt.wantBefore) {
				t.Errorf("Before = %v, want %v", d.Before, tt.wantBefore)
			}
			if !reflect.DeepEqual(d.After, tt.wantAfter) {
				t.Errorf("After = %v, want %v", d.After, tt.wantAfter)
			}
		})
	}
}

func TestReadJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLen int
		wantErr bool
	}{
		{
			name:    "valid",
			input:   `{"before": ["dog", "cat"], "after": ["cat", "cat"]}`,
			wantLen: 2,
		},
		{
			name:    "empty arrays",
			input:   `{"before": [], "after": []}`,
			wantLen: 0,
		},
		{
			name:    "length mismatch",
			input:   `{"before": ["dog"], "after": ["cat", "cat"]}`,
			wantErr: true,
		},
		{
			name:    "malformed",
			input:   `{"before": [`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ReadJSON(strings.NewReader(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := d.Len(); got != tt.wantLen {
				t.Errorf("Len() = %d, want %d", got, tt.wantLen)
			}
		})
	}
}

func TestCSVRoundTrip(t *testing.T) {
	d, err := sankey.New(
		[]string{"dog", "dog", "cat"},
		[]string{"cat", "dog", "cat"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(d, &buf); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "before,after\n") {
		t.Errorf("WriteCSV() should start with a header, got %q", buf.String())
	}

	got, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if !reflect.DeepEqual(got, d) {
		t.Errorf("round trip = %+v, want %+v", got, d)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d, err := sankey.New(
		[]string{"dog", "dog", "cat"},
		[]string{"cat", "dog", "cat"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(d, &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if !reflect.DeepEqual(got, d) {
		t.Errorf("round trip = %+v, want %+v", got, d)
	}
}

func TestImportByExtension(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "data.csv")
	jsonPath := filepath.Join(dir, "data.json")

	d, err := sankey.New([]string{"a"}, []string{"b"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := ExportCSV(d, csvPath); err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}
	if err := ExportJSON(d, jsonPath); err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}

	for _, path := range []string{csvPath, jsonPath} {
		got, err := Import(path)
		if err != nil {
			t.Fatalf("Import(%s) error = %v", path, err)
		}
		if !reflect.DeepEqual(got, d) {
			t.Errorf("Import(%s) = %+v, want %+v", path, got, d)
		}
	}

	if _, err := Import(filepath.Join(dir, "data.yaml")); err == nil {
		t.Error("Import() with unknown extension should fail")
	}
	if _, err := Import(filepath.Join(dir, "missing.csv")); err == nil {
		t.Error("Import() of a missing file should fail")
	}
}
