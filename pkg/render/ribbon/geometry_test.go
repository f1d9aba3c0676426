package ribbon

import (
	"math"
	"testing"

	"github.com/matzehuels/flowribbon/pkg/sankey"
)

const eps = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

// buildFixture returns the layout for three observations moving between
// four categories: a appears twice before, x twice after, b and y once
// each. Aggregated order is [a x b y].
func buildFixture(t *testing.T) (*sankey.Layout, sankey.ColorMap) {
	t.Helper()

	d, err := sankey.New([]string{"a", "a", "b"}, []string{"x", "y", "x"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	l, err := sankey.Build(sankey.CountFlows(d))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	colors := sankey.ColorMap{
		"a": "#111111",
		"x": "#222222",
		"b": "#333333",
		"y": "#444444",
	}
	return l, colors
}

func TestFrameMapping(t *testing.T) {
	l, _ := buildFixture(t)
	r := newRenderer()
	f := newFrame(l, &r)

	// The vertical scale pins the stacked height to the frame height.
	if got, want := f.scale*l.Height, DefaultFrameHeight; !almostEqual(got, want) {
		t.Errorf("scale * height = %v, want %v", got, want)
	}

	// The layout bottom maps to the frame bottom minus the margin.
	if got, want := f.py(0), f.height-f.marginY; !almostEqual(got, want) {
		t.Errorf("py(0) = %v, want %v", got, want)
	}

	// The layout top maps to the margin.
	if got, want := f.py(l.Height), f.marginY; !almostEqual(got, want) {
		t.Errorf("py(height) = %v, want %v", got, want)
	}

	// The leftmost label anchor sits at the gutter edge.
	if got, want := f.px(-f.xShift), f.leftGutter; !almostEqual(got, want) {
		t.Errorf("px(-xShift) = %v, want %v", got, want)
	}

	// The frame is wide enough for both gutters.
	if f.width <= 2*f.leftGutter {
		t.Errorf("width = %v, want more than twice the gutter %v", f.width, f.leftGutter)
	}
}

func TestFrameMappingCustomSizes(t *testing.T) {
	l, _ := buildFixture(t)
	r := newRenderer(WithFrameHeight(300), WithFontSize(10))
	f := newFrame(l, &r)

	if got, want := f.scale*l.Height, 300.0; !almostEqual(got, want) {
		t.Errorf("scale * height = %v, want %v", got, want)
	}
	if got, want := f.marginY, 10.0; !almostEqual(got, want) {
		t.Errorf("marginY = %v, want %v", got, want)
	}
	if got, want := f.height, 320.0; !almostEqual(got, want) {
		t.Errorf("height = %v, want %v", got, want)
	}
}

func TestBuildBlocks(t *testing.T) {
	l, colors := buildFixture(t)
	r := newRenderer()
	f := newFrame(l, &r)

	blocks := buildBlocks(l, colors, f)

	// One block per occupied side: a and b only on the left, x and y only
	// on the right.
	wantIDs := []string{"block-left-a", "block-right-x", "block-left-b", "block-right-y"}
	if got, want := len(blocks), len(wantIDs); got != want {
		t.Fatalf("len(blocks) = %d, want %d", got, want)
	}
	for i, want := range wantIDs {
		if got := blocks[i].ID; got != want {
			t.Errorf("blocks[%d].ID = %q, want %q", i, got, want)
		}
	}

	// The left block for a covers its occupied extent [0, 2].
	a := blocks[0]
	if got, want := a.Y, f.py(2.0); !almostEqual(got, want) {
		t.Errorf("a.Y = %v, want %v", got, want)
	}
	if got, want := a.H, 2.0*f.scale; !almostEqual(got, want) {
		t.Errorf("a.H = %v, want %v", got, want)
	}
	if got, want := a.W, blockWidthFactor*l.XMax*f.scale; !almostEqual(got, want) {
		t.Errorf("a.W = %v, want %v", got, want)
	}
	if got, want := a.Color, "#111111"; got != want {
		t.Errorf("a.Color = %q, want %q", got, want)
	}

	// The right block for x starts at the right column.
	x := blocks[1]
	if got, want := x.X, f.px(l.XMax); !almostEqual(got, want) {
		t.Errorf("x.X = %v, want %v", got, want)
	}
}

func TestBuildLabels(t *testing.T) {
	l, _ := buildFixture(t)
	r := newRenderer()
	f := newFrame(l, &r)

	labels := buildLabels(l, &r, f)

	// Two labels per category, even for sides with no observations.
	if got, want := len(labels), 8; got != want {
		t.Fatalf("len(labels) = %d, want %d", got, want)
	}

	left, right := labels[0], labels[1]
	if got, want := left.Anchor, "end"; got != want {
		t.Errorf("left.Anchor = %q, want %q", got, want)
	}
	if got, want := right.Anchor, "start"; got != want {
		t.Errorf("right.Anchor = %q, want %q", got, want)
	}
	if got, want := left.X, f.px(-f.xShift); !almostEqual(got, want) {
		t.Errorf("left.X = %v, want %v", got, want)
	}
	if got, want := right.X, f.px(l.XMax+f.xShift); !almostEqual(got, want) {
		t.Errorf("right.X = %v, want %v", got, want)
	}

	// Category x has no left observations, so its left label centers on
	// the slot midpoint.
	xLeft := labels[2]
	if got, want := xLeft.Category, "x"; got != want {
		t.Fatalf("labels[2].Category = %q, want %q", got, want)
	}
	if got, want := xLeft.Y, f.py(3.06); !almostEqual(got, want) {
		t.Errorf("x left label Y = %v, want %v", got, want)
	}
}

func TestBuildRibbons(t *testing.T) {
	l, colors := buildFixture(t)
	r := newRenderer()
	f := newFrame(l, &r)

	ribbons := buildRibbons(l, colors, &r, f)

	if got, want := len(ribbons), 3; got != want {
		t.Fatalf("len(ribbons) = %d, want %d", got, want)
	}

	// Ribbons follow the layout's tiling order and take source colors.
	wantPairs := []struct {
		source, dest, color string
	}{
		{"a", "x", "#111111"},
		{"a", "y", "#111111"},
		{"b", "x", "#333333"},
	}
	for i, want := range wantPairs {
		if got := ribbons[i]; got.Source != want.source || got.Dest != want.dest || got.Color != want.color {
			t.Errorf("ribbons[%d] = %s->%s %s, want %s->%s %s",
				i, got.Source, got.Dest, got.Color, want.source, want.dest, want.color)
		}
	}

	// The a->x band starts on a's extent [0, 1] and ends on x's [2.06, 3.06].
	ax := ribbons[0]
	if got, want := len(ax.Xs), sankey.CurveLen; got != want {
		t.Fatalf("len(Xs) = %d, want %d", got, want)
	}
	if got, want := ax.Xs[0], f.px(0); !almostEqual(got, want) {
		t.Errorf("Xs[0] = %v, want %v", got, want)
	}
	if got, want := ax.Xs[len(ax.Xs)-1], f.px(l.XMax); !almostEqual(got, want) {
		t.Errorf("Xs[last] = %v, want %v", got, want)
	}
	if got, want := ax.Upper[0], f.py(1.0); !almostEqual(got, want) {
		t.Errorf("Upper[0] = %v, want %v", got, want)
	}
	if got, want := ax.Lower[0], f.py(0.0); !almostEqual(got, want) {
		t.Errorf("Lower[0] = %v, want %v", got, want)
	}
	last := len(ax.Upper) - 1
	if got, want := ax.Upper[last], f.py(3.06); !almostEqual(got, want) {
		t.Errorf("Upper[last] = %v, want %v", got, want)
	}
	if got, want := ax.Lower[last], f.py(2.06); !almostEqual(got, want) {
		t.Errorf("Lower[last] = %v, want %v", got, want)
	}

	// In pixel space the upper boundary sits above (smaller y than) the lower.
	for i := range ax.Upper {
		if ax.Upper[i] >= ax.Lower[i] {
			t.Fatalf("Upper[%d] = %v not above Lower[%d] = %v", i, ax.Upper[i], i, ax.Lower[i])
		}
	}
}

func TestBuildRibbonsColorByDestination(t *testing.T) {
	l, colors := buildFixture(t)
	r := newRenderer(WithColorByDestination())
	f := newFrame(l, &r)

	ribbons := buildRibbons(l, colors, &r, f)

	wantColors := []string{"#222222", "#444444", "#222222"}
	for i, want := range wantColors {
		if got := ribbons[i].Color; got != want {
			t.Errorf("ribbons[%d].Color = %q, want %q", i, got, want)
		}
	}
}

func TestColorFor(t *testing.T) {
	colors := sankey.ColorMap{"known": "#123456"}

	if got, want := colorFor(colors, "known"), "#123456"; got != want {
		t.Errorf("colorFor(known) = %q, want %q", got, want)
	}
	if got, want := colorFor(colors, "missing"), fallbackColor; got != want {
		t.Errorf("colorFor(missing) = %q, want %q", got, want)
	}
}
