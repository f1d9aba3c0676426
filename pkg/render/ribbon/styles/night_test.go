package styles

import (
	"bytes"
	"strings"
	"testing"
)

func TestNightRenderFrame(t *testing.T) {
	s := Night{}

	var buf bytes.Buffer
	s.RenderFrame(&buf, Frame{W: 824.5, H: 628})
	output := buf.String()

	expected := []string{
		`<rect`,
		`class="frame"`,
		`width="824.50"`,
		`height="628.00"`,
		`fill="#0b0e14"`,
	}

	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("RenderFrame() output missing %q\nGot: %s", want, output)
		}
	}
}

func TestNightRenderLabel(t *testing.T) {
	s := Night{}

	var buf bytes.Buffer
	s.RenderLabel(&buf, Label{Category: "cat", X: 10, Y: 20, Anchor: "end", FontSize: 14})
	output := buf.String()

	if !strings.Contains(output, `fill="#e6e8eb"`) {
		t.Errorf("RenderLabel() should use the light label fill\nGot: %s", output)
	}
}

func TestNightSharesGeometryRendering(t *testing.T) {
	// Ribbons and blocks render identically across styles; only frame and
	// label treatment differ.
	r := Ribbon{
		Source: "a", Dest: "b", Color: "#1f77b4",
		Xs:    []float64{0, 100},
		Upper: []float64{10, 20},
		Lower: []float64{30, 40},
	}

	var night, classic bytes.Buffer
	Night{}.RenderRibbon(&night, r)
	Classic{}.RenderRibbon(&classic, r)

	if got, want := night.String(), classic.String(); got != want {
		t.Errorf("Night ribbon output differs from Classic:\n%s\nvs\n%s", got, want)
	}
}

func TestNightImplementsStyle(t *testing.T) {
	// Compile-time check that Night implements Style
	var _ Style = Night{}
}
