package sankey

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLayoutRoundTrip(t *testing.T) {
	l := buildLayout(t, []string{"a", "a", "b"}, []string{"x", "y", "x"})

	data, err := MarshalLayout(l)
	if err != nil {
		t.Fatalf("MarshalLayout() error: %v", err)
	}

	got, err := UnmarshalLayout(data)
	if err != nil {
		t.Fatalf("UnmarshalLayout() error: %v", err)
	}

	if !reflect.DeepEqual(got, l) {
		t.Errorf("round trip mismatch:\ngot:  %+v\nwant: %+v", got, l)
	}
}

func TestUnmarshalLayoutValidation(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "invalid json",
			data:    "{not json",
			wantErr: "unmarshal layout",
		},
		{
			name:    "slot count mismatch",
			data:    `{"categories":["a","b"],"slots":[{"category":"a"}],"aspect":4}`,
			wantErr: "one slot per category",
		},
		{
			name:    "slot order mismatch",
			data:    `{"categories":["a","b"],"slots":[{"category":"b"},{"category":"a"}],"aspect":4}`,
			wantErr: `slot 0 is for "b"`,
		},
		{
			name:    "missing aspect",
			data:    `{"categories":[],"slots":[]}`,
			wantErr: "aspect ratio",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalLayout([]byte(tt.data))
			if err == nil {
				t.Fatal("UnmarshalLayout() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestLayoutFileRoundTrip(t *testing.T) {
	l := buildLayout(t, []string{"a", "b"}, []string{"b", "a"})
	path := filepath.Join(t.TempDir(), "layout.json")

	if err := WriteLayoutFile(l, path); err != nil {
		t.Fatalf("WriteLayoutFile() error: %v", err)
	}

	got, err := ReadLayoutFile(path)
	if err != nil {
		t.Fatalf("ReadLayoutFile() error: %v", err)
	}
	if !reflect.DeepEqual(got, l) {
		t.Errorf("file round trip mismatch:\ngot:  %+v\nwant: %+v", got, l)
	}
}

func TestReadLayoutFileMissing(t *testing.T) {
	if _, err := ReadLayoutFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("ReadLayoutFile() error = nil, want error for missing file")
	}
}
