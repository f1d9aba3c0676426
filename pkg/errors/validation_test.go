package errors

import (
	"math"
	"testing"
)

func TestValidateLabel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "apple", false},
		{"valid with space", "first class", false},
		{"valid with dash", "not-helpful", false},
		{"valid unicode", "héllo", false},
		{"valid numeric", "42", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 300)), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
		{"carriage return", "foo\rbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLabel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLabel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAspect(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"default", 4, false},
		{"small", 0.5, false},
		{"large", 32, false},

		{"zero", 0, true},
		{"negative", -4, true},
		{"nan", math.NaN(), true},
		{"positive infinity", math.Inf(1), true},
		{"negative infinity", math.Inf(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAspect(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAspect(%g) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFontSize(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"default", 14, false},
		{"fractional", 10.5, false},

		{"zero", 0, true},
		{"negative", -14, true},
		{"nan", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFontSize(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFontSize(%g) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateHexColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"six digit lowercase", "#1f77b4", false},
		{"six digit uppercase", "#FF7F0E", false},
		{"three digit", "#fb4", false},

		{"empty", "", true},
		{"missing hash", "1f77b4", true},
		{"wrong length", "#1f77b", true},
		{"non-hex digit", "#1f77bg", true},
		{"named color", "steelblue", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHexColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDatasetID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid uuid", "9f1c43a2-7e6b-4c3d-8a5e-0b1d2c3e4f5a", false},

		{"empty", "", true},
		{"uppercase", "9F1C43A2-7E6B-4C3D-8A5E-0B1D2C3E4F5A", true},
		{"missing dashes", "9f1c43a27e6b4c3d8a5e0b1d2c3e4f5a", true},
		{"too short", "9f1c43a2-7e6b", true},
		{"path traversal", "../../etc/passwd", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatasetID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDatasetID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple file", "diagram.svg", false},
		{"nested path", "out/diagram.png", false},
		{"absolute path", "/tmp/diagram.pdf", false},

		{"empty", "", true},
		{"null byte", "out\x00.svg", true},
		{"trailing slash", "out/", true},
		{"trailing backslash", "out\\", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
