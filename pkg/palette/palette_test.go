package palette

import (
	"regexp"
	"slices"
	"testing"
)

var hexRe = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestCategorical(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"single", 1},
		{"small", 4},
		{"typical", 8},
		{"large", 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			colors := Categorical(tt.n)

			if got := len(colors); got != tt.n {
				t.Fatalf("len = %d, want %d", got, tt.n)
			}

			seen := make(map[string]bool, tt.n)
			for i, c := range colors {
				if !hexRe.MatchString(c) {
					t.Errorf("color %d = %q, not a lowercase hex color", i, c)
				}
				if seen[c] {
					t.Errorf("color %d = %q repeats", i, c)
				}
				seen[c] = true
			}
		})
	}
}

func TestCategoricalEmpty(t *testing.T) {
	for _, n := range []int{0, -1} {
		if got := len(Categorical(n)); got != 0 {
			t.Errorf("Categorical(%d) len = %d, want 0", n, got)
		}
	}
}

func TestCategoricalLeadingColor(t *testing.T) {
	// The first hue is fixed, so every palette starts with the same color.
	want := "#db5f57"
	for _, n := range []int{1, 3, 8, 16} {
		if got := Categorical(n)[0]; got != want {
			t.Errorf("Categorical(%d)[0] = %q, want %q", n, got, want)
		}
	}
}

func TestCategoricalDeterministic(t *testing.T) {
	first := Categorical(12)
	for i := 0; i < 5; i++ {
		if got := Categorical(12); !slices.Equal(got, first) {
			t.Fatalf("Categorical(12) run %d differs from first run", i)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"lowercase passthrough", "#1f77b4", "#1f77b4", false},
		{"uppercase folded", "#FF7F0E", "#ff7f0e", false},
		{"shorthand expanded", "#fb4", "#ffbb44", false},

		{"missing hash", "1f77b4", "", true},
		{"empty", "", "", true},
		{"named color", "steelblue", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Normalize(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
