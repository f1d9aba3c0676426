package ribbon

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/flowribbon/pkg/render/ribbon/styles"
	"github.com/matzehuels/flowribbon/pkg/sankey"
)

func TestRenderSVGContent(t *testing.T) {
	l, colors := buildFixture(t)

	svg := string(RenderSVG(l, colors))

	expected := []string{
		`<svg xmlns="http://www.w3.org/2000/svg"`,
		`class="ribbon"`,
		`data-source="a"`,
		`data-dest="x"`,
		`id="block-left-a"`,
		`id="block-right-x"`,
		`fill="#111111"`,
		`>a</text>`,
		`>y</text>`,
		`.ribbon:hover`,
		`</svg>`,
	}
	for _, want := range expected {
		if !strings.Contains(svg, want) {
			t.Errorf("RenderSVG() output missing %q", want)
		}
	}
}

func TestRenderSVGElementCounts(t *testing.T) {
	l, colors := buildFixture(t)

	svg := string(RenderSVG(l, colors))

	if got, want := strings.Count(svg, `class="ribbon"`), 3; got != want {
		t.Errorf("ribbon count = %d, want %d", got, want)
	}
	if got, want := strings.Count(svg, `class="block"`), 4; got != want {
		t.Errorf("block count = %d, want %d", got, want)
	}
	if got, want := strings.Count(svg, `class="label"`), 8; got != want {
		t.Errorf("label count = %d, want %d", got, want)
	}
}

func TestRenderSVGEmptyLayout(t *testing.T) {
	l, err := sankey.Build(sankey.CountFlows(&sankey.Dataset{}))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	svg := string(RenderSVG(l, nil))

	if !strings.Contains(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Errorf("empty render should still produce an SVG document\nGot: %s", svg)
	}
	if !strings.Contains(svg, `viewBox="0 0 600.0 600.0"`) {
		t.Errorf("empty render should use a square default frame\nGot: %s", svg)
	}
	if strings.Contains(svg, `<path`) || strings.Contains(svg, `class="block"`) {
		t.Errorf("empty render should contain no geometry\nGot: %s", svg)
	}
}

func TestRenderSVGNightStyle(t *testing.T) {
	l, colors := buildFixture(t)

	svg := string(RenderSVG(l, colors, WithStyle(styles.Night{})))

	if !strings.Contains(svg, `class="frame"`) {
		t.Error("night style should render a background frame")
	}
	if !strings.Contains(svg, `fill="#0b0e14"`) {
		t.Error("night style should use the dark background fill")
	}
}

func TestRenderSVGDeterministic(t *testing.T) {
	l, colors := buildFixture(t)

	first := RenderSVG(l, colors)
	for i := 0; i < 3; i++ {
		if got := RenderSVG(l, colors); !bytes.Equal(got, first) {
			t.Fatalf("run %d produced different output", i)
		}
	}
}

func TestRenderSVGDoesNotMutateLayout(t *testing.T) {
	l, colors := buildFixture(t)
	wantHeight := l.Height
	wantRibbons := len(l.Ribbons)

	RenderSVG(l, colors)

	if l.Height != wantHeight || len(l.Ribbons) != wantRibbons {
		t.Error("RenderSVG() mutated the layout")
	}
}
