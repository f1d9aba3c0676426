package sankey

import (
	"encoding/json"
	"fmt"
	"os"
)

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l *Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
// Validates that the geometry is structurally consistent before returning.
func UnmarshalLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("unmarshal layout: %w", err)
	}

	if len(l.Slots) != len(l.Categories) {
		return nil, fmt.Errorf("layout must contain one slot per category (%d slots, %d categories)",
			len(l.Slots), len(l.Categories))
	}
	for i, s := range l.Slots {
		if s.Category != l.Categories[i] {
			return nil, fmt.Errorf("slot %d is for %q, want %q", i, s.Category, l.Categories[i])
		}
	}
	if l.Aspect <= 0 {
		return nil, ErrNonPositiveAspect
	}

	return &l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l *Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
