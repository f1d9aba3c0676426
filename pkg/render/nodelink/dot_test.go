package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/flowribbon/pkg/sankey"
)

func countFlows(t *testing.T, before, after []string) *sankey.Flows {
	t.Helper()
	d, err := sankey.New(before, after)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return sankey.CountFlows(d)
}

func TestToDOT(t *testing.T) {
	f := countFlows(t,
		[]string{"dog", "dog", "cat"},
		[]string{"cat", "dog", "cat"})

	dot := ToDOT(f, Options{})

	expected := []string{
		"digraph G {",
		"rankdir=LR;",
		`bgcolor="transparent";`,
		`"dog" [label="dog"];`,
		`"cat" [label="cat"];`,
		`"dog" -> "cat" [label="1", penwidth=1.5];`,
		`"dog" -> "dog" [label="1", penwidth=1.5];`,
		`"cat" -> "cat" [label="1", penwidth=1.5];`,
	}
	for _, want := range expected {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q\nGot:\n%s", want, dot)
		}
	}

	if strings.Contains(dot, `"cat" -> "dog"`) {
		t.Error("ToDOT() should not emit zero-count flows")
	}
}

func TestToDOTDetailed(t *testing.T) {
	f := countFlows(t,
		[]string{"dog", "dog", "cat"},
		[]string{"cat", "dog", "cat"})

	dot := ToDOT(f, Options{Detailed: true})

	expected := []string{
		`label="dog\nbefore: 2\nafter: 1"`,
		`label="cat\nbefore: 1\nafter: 2"`,
	}
	for _, want := range expected {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q\nGot:\n%s", want, dot)
		}
	}
}

func TestToDOTEmpty(t *testing.T) {
	f := sankey.CountFlows(&sankey.Dataset{})

	dot := ToDOT(f, Options{})

	if !strings.HasPrefix(dot, "digraph G {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("ToDOT() on empty flows should still emit a valid graph\nGot:\n%s", dot)
	}
	if strings.Contains(dot, "->") {
		t.Error("ToDOT() on empty flows should emit no edges")
	}
}

func TestToDOTNodeOrder(t *testing.T) {
	// Nodes appear in aggregated category order, so DOT output is
	// deterministic for a given dataset.
	f := countFlows(t,
		[]string{"a", "a", "b"},
		[]string{"x", "y", "x"})

	dot := ToDOT(f, Options{})

	posA := strings.Index(dot, `"a" [`)
	posX := strings.Index(dot, `"x" [`)
	posB := strings.Index(dot, `"b" [`)
	posY := strings.Index(dot, `"y" [`)
	if posA < 0 || posX < 0 || posB < 0 || posY < 0 {
		t.Fatalf("ToDOT() missing node declarations\nGot:\n%s", dot)
	}
	if !(posA < posX && posX < posB && posB < posY) {
		t.Errorf("node order = a@%d x@%d b@%d y@%d, want ascending", posA, posX, posB, posY)
	}
}

func TestPenwidth(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  float64
	}{
		{"single", 1, 1.5},
		{"several", 6, 4.0},
		{"capped", 100, 8.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := penwidth(tt.count); got != tt.want {
				t.Errorf("penwidth(%d) = %v, want %v", tt.count, got, tt.want)
			}
		})
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<?xml version="1.0"?>
<svg width="134pt" height="38pt" viewBox="0.00 0.00 134.00 38.00" xmlns="http://www.w3.org/2000/svg">
<g></g>
</svg>`)

	got := string(normalizeViewBox(in))

	if !strings.Contains(got, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 134.00 38.00" width="134" height="38">`) {
		t.Errorf("normalizeViewBox() = %s", got)
	}
}

func TestNormalizeViewBoxNoMatch(t *testing.T) {
	in := []byte("<svg></svg>")
	if got := string(normalizeViewBox(in)); got != "<svg></svg>" {
		t.Errorf("normalizeViewBox() = %q, want unchanged input", got)
	}
}
