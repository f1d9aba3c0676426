package sankey

import (
	"errors"
	"math"
)

var (
	// ErrNonPositiveAspect is returned by [Build] when the aspect ratio is
	// zero, negative, or not a finite number. The aspect ratio divides the
	// diagram height to obtain its horizontal extent, so it must be a
	// positive finite value.
	ErrNonPositiveAspect = errors.New("aspect ratio must be a positive finite number")
)

// DefaultAspect is the height-to-width ratio used when no aspect option is
// given. A value of 4 makes the diagram four times taller than wide.
const DefaultAspect = 4.0

// paddingFactor scales the total observation count into the vertical gap
// between adjacent category slots.
const paddingFactor = 0.02

// Slot is the vertical stacking range reserved for one category, sized to
// the larger of its two sides. The left and right occupied extents are
// centered inside the slot, so the smaller side floats at the slot's
// vertical midpoint. All coordinates are in observation units with y
// growing upward from 0 at the diagram bottom.
type Slot struct {
	Category string `json:"category" bson:"category"`

	// Left and Right count the observations with this category on each side.
	Left  int `json:"left" bson:"left"`
	Right int `json:"right" bson:"right"`

	// Bottom and Top bound the full stacking slot.
	Bottom float64 `json:"bottom" bson:"bottom"`
	Top    float64 `json:"top" bson:"top"`

	// LeftBottom and RightBottom are the lower edges of the occupied
	// extents, from which flow ribbons tile upward.
	LeftBottom  float64 `json:"left_bottom" bson:"left_bottom"`
	RightBottom float64 `json:"right_bottom" bson:"right_bottom"`
}

// Total returns the slot height in observation units, the larger of the
// two side counts.
func (s Slot) Total() int { return max(s.Left, s.Right) }

// LeftTop returns the upper edge of the left occupied extent.
func (s Slot) LeftTop() float64 { return s.LeftBottom + float64(s.Left) }

// RightTop returns the upper edge of the right occupied extent.
func (s Slot) RightTop() float64 { return s.RightBottom + float64(s.Right) }

// LeftCenter returns the vertical center of the left occupied extent.
func (s Slot) LeftCenter() float64 { return s.LeftBottom + 0.5*float64(s.Left) }

// RightCenter returns the vertical center of the right occupied extent.
func (s Slot) RightCenter() float64 { return s.RightBottom + 0.5*float64(s.Right) }

// Ribbon is the placed geometry for one non-zero flow. It spans from a
// sub-range of the source category's left extent to a sub-range of the
// destination category's right extent, both of height Count.
type Ribbon struct {
	Source string `json:"source" bson:"source"`
	Dest   string `json:"dest" bson:"dest"`
	Count  int    `json:"count" bson:"count"`

	// LeftBottom and RightBottom are the lower edges of the ribbon on the
	// source's left extent and the destination's right extent.
	LeftBottom  float64 `json:"left_bottom" bson:"left_bottom"`
	RightBottom float64 `json:"right_bottom" bson:"right_bottom"`
}

// LeftTop returns the upper edge of the ribbon on the source side.
func (r Ribbon) LeftTop() float64 { return r.LeftBottom + float64(r.Count) }

// RightTop returns the upper edge of the ribbon on the destination side.
func (r Ribbon) RightTop() float64 { return r.RightBottom + float64(r.Count) }

// LeftCenter returns the ribbon's vertical center on the source side.
func (r Ribbon) LeftCenter() float64 { return r.LeftBottom + 0.5*float64(r.Count) }

// RightCenter returns the ribbon's vertical center on the destination side.
func (r Ribbon) RightCenter() float64 { return r.RightBottom + 0.5*float64(r.Count) }

// Layout is the complete computed geometry of a two-column sankey diagram.
// Slots appear in aggregated category order (bottom of the stack first);
// Ribbons appear in nested (source, destination) iteration order over that
// same category order, which is the order they tile the blocks in.
//
// Coordinates are in observation units: one observation equals one unit of
// vertical extent. The horizontal extent runs from 0 (left axis) to XMax
// (right axis), with end-cap blocks just outside that range.
type Layout struct {
	Categories   []string `json:"categories" bson:"categories"`
	Slots        []Slot   `json:"slots" bson:"slots"`
	Ribbons      []Ribbon `json:"ribbons,omitempty" bson:"ribbons,omitempty"`
	Observations int      `json:"observations" bson:"observations"`

	// Height is the top of the last-stacked slot; 0 for an empty dataset.
	Height float64 `json:"height" bson:"height"`
	// XMax is Height divided by the aspect ratio.
	XMax   float64 `json:"x_max" bson:"x_max"`
	Aspect float64 `json:"aspect" bson:"aspect"`
	// Padding is the vertical gap between adjacent slots.
	Padding float64 `json:"padding" bson:"padding"`
}

// Slot returns the slot for the given category and true, or a zero slot
// and false if the category does not exist in the layout.
func (l *Layout) Slot(category string) (Slot, bool) {
	for _, s := range l.Slots {
		if s.Category == category {
			return s, true
		}
	}
	return Slot{}, false
}

// BuildOption configures [Build].
type BuildOption func(*builder)

type builder struct {
	aspect float64
}

// WithAspect sets the height-to-width aspect ratio (default [DefaultAspect]).
func WithAspect(aspect float64) BuildOption {
	return func(b *builder) { b.aspect = aspect }
}

// Build computes the stacked two-axis layout for a flow table.
//
// Slots are stacked in aggregated order from bottom = 0, each separated by
// a padding of 0.02 times the total observation count, and each side's
// occupied extent is centered inside its slot. Ribbons are then tiled into
// the occupied extents by iterating all (source, destination) pairs in
// aggregated order: each pair advances the source's left cursor and the
// destination's right cursor by its flow count, so the ribbons leaving a
// block exactly partition it with no gaps or overlaps. Zero-count pairs
// advance the cursors by nothing and produce no ribbon.
//
// Returns ErrNonPositiveAspect if the aspect option is not a positive
// finite number. An empty flow table yields an empty layout with zero
// height, not an error.
//
// Build is a pure function: identical flow tables and options produce
// bit-identical layouts.
func Build(f *Flows, opts ...BuildOption) (*Layout, error) {
	b := builder{aspect: DefaultAspect}
	for _, opt := range opts {
		opt(&b)
	}

	if b.aspect <= 0 || math.IsNaN(b.aspect) || math.IsInf(b.aspect, 0) {
		return nil, ErrNonPositiveAspect
	}

	categories := f.Categories()
	padding := paddingFactor * float64(f.Total())

	slots := make([]Slot, len(categories))
	height := 0.0
	for i, c := range categories {
		left := f.SourceTotal(c)
		right := f.DestTotal(c)

		bottom := 0.0
		if i > 0 {
			bottom = slots[i-1].Top + padding
		}
		top := bottom + float64(max(left, right))

		slots[i] = Slot{
			Category:    c,
			Left:        left,
			Right:       right,
			Bottom:      bottom,
			Top:         top,
			LeftBottom:  0.5*(top+bottom) - 0.5*float64(left),
			RightBottom: 0.5*(top+bottom) - 0.5*float64(right),
		}
		height = top
	}

	l := &Layout{
		Categories:   categories,
		Slots:        slots,
		Observations: f.Total(),
		Height:       height,
		XMax:         height / b.aspect,
		Aspect:       b.aspect,
		Padding:      padding,
	}

	// Tile ribbons with per-category cursors. Cursors advance for every
	// pair, including zero-count pairs, to keep the tiling order fixed.
	leftCursor := make([]float64, len(slots))
	rightCursor := make([]float64, len(slots))
	for i := range slots {
		leftCursor[i] = slots[i].LeftBottom
		rightCursor[i] = slots[i].RightBottom
	}

	for i := range categories {
		for j := range categories {
			n := f.At(i, j)
			if n > 0 {
				l.Ribbons = append(l.Ribbons, Ribbon{
					Source:      categories[i],
					Dest:        categories[j],
					Count:       n,
					LeftBottom:  leftCursor[i],
					RightBottom: rightCursor[j],
				})
			}
			leftCursor[i] += float64(n)
			rightCursor[j] += float64(n)
		}
	}

	return l, nil
}
