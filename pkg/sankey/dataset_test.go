package sankey

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		before  []string
		after   []string
		wantErr error
	}{
		{
			name:   "valid pairs",
			before: []string{"a", "a", "b"},
			after:  []string{"x", "y", "x"},
		},
		{
			name:   "empty sequences",
			before: []string{},
			after:  []string{},
		},
		{
			name:   "nil sequences",
			before: nil,
			after:  nil,
		},
		{
			name:    "before longer",
			before:  []string{"a", "b", "c"},
			after:   []string{"x", "y"},
			wantErr: ErrLengthMismatch,
		},
		{
			name:    "after longer",
			before:  []string{"a"},
			after:   []string{"x", "y"},
			wantErr: ErrLengthMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New(tt.before, tt.after)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
				}
				if d != nil {
					t.Errorf("New() = %v, want nil on error", d)
				}
				return
			}

			if err != nil {
				t.Fatalf("New() unexpected error: %v", err)
			}
			if got, want := d.Len(), len(tt.before); got != want {
				t.Errorf("Len() = %d, want %d", got, want)
			}
		})
	}
}

func TestDatasetValidate(t *testing.T) {
	d := &Dataset{Before: []string{"a", "b"}, After: []string{"x"}}
	if err := d.Validate(); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Validate() error = %v, want %v", err, ErrLengthMismatch)
	}

	ok := &Dataset{Before: []string{"a"}, After: []string{"x"}}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}
