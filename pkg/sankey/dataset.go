package sankey

import "errors"

var (
	// ErrLengthMismatch is returned by [New] and [Dataset.Validate] when the
	// before and after sequences differ in length. Every observation is a
	// pair, so both sequences must line up index by index.
	ErrLengthMismatch = errors.New("before and after sequences must have equal length")
)

// Dataset holds paired categorical observations. Index i records one
// observed transition Before[i] -> After[i].
//
// The zero value is a valid empty dataset. Datasets are value-like: none of
// the methods mutate the sequences, and the same dataset always produces
// the same aggregation and layout.
type Dataset struct {
	Before []string `json:"before" bson:"before"`
	After  []string `json:"after" bson:"after"`
}

// New creates a dataset from paired label sequences.
// Returns ErrLengthMismatch if the sequences differ in length.
// Empty sequences are valid and yield an empty diagram downstream.
func New(before, after []string) (*Dataset, error) {
	d := &Dataset{Before: before, After: after}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Len returns the number of observation pairs.
func (d *Dataset) Len() int { return len(d.Before) }

// Validate checks dataset integrity and returns nil if valid.
// Returns ErrLengthMismatch if the sequences differ in length.
func (d *Dataset) Validate() error {
	if len(d.Before) != len(d.After) {
		return ErrLengthMismatch
	}
	return nil
}
