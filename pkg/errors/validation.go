package errors

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// ValidateLabel validates a category label for safety and correctness.
// Labels come from user-supplied datasets and end up in SVG text, DOT
// identifiers and cache keys, so the rules are intentionally conservative:
//   - No empty labels
//   - No control characters or null bytes
//   - Maximum length of 256 characters
func ValidateLabel(label string) error {
	if label == "" {
		return New(ErrCodeInvalidDataset, "category label cannot be empty")
	}

	if len(label) > 256 {
		return New(ErrCodeInvalidDataset, "category label too long (max 256 characters)")
	}

	for _, r := range label {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidDataset, "category label contains invalid control characters")
		}
	}

	return nil
}

// ValidateAspect validates a width-to-height aspect ratio.
// The ratio must be a positive finite number.
func ValidateAspect(aspect float64) error {
	if math.IsNaN(aspect) || math.IsInf(aspect, 0) {
		return New(ErrCodeInvalidInput, "aspect ratio must be a finite number")
	}

	if aspect <= 0 {
		return New(ErrCodeInvalidInput, "aspect ratio must be positive, got %g", aspect)
	}

	return nil
}

// ValidateFontSize validates a label font size in surface units.
func ValidateFontSize(size float64) error {
	if math.IsNaN(size) || math.IsInf(size, 0) {
		return New(ErrCodeInvalidInput, "font size must be a finite number")
	}

	if size <= 0 {
		return New(ErrCodeInvalidInput, "font size must be positive, got %g", size)
	}

	return nil
}

// hexColorRegex matches 3- and 6-digit hex color strings with a leading #.
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateHexColor validates a hex color string such as "#1f77b4" or "#fb4".
func ValidateHexColor(s string) error {
	if s == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}

	if !hexColorRegex.MatchString(s) {
		return New(ErrCodeInvalidColor, "invalid hex color: %q", s)
	}

	return nil
}

// datasetIDRegex matches the UUID strings assigned to stored datasets.
var datasetIDRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// ValidateDatasetID validates a server-assigned dataset identifier.
func ValidateDatasetID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "dataset id cannot be empty")
	}

	if !datasetIDRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid dataset id: %q", id)
	}

	return nil
}

// ValidateOutputPath validates a local output file path.
// It rejects empty paths, null bytes and trailing separators, which point
// at a directory rather than a file.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidPath, "output path contains invalid characters")
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "output path must name a file, not a directory")
	}

	return nil
}
