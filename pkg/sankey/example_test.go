package sankey_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/flowribbon/pkg/sankey"
)

func Example() {
	// Three observed transitions: a->x, a->y, b->x.
	d, _ := sankey.New(
		[]string{"a", "a", "b"},
		[]string{"x", "y", "x"},
	)

	l, _ := sankey.Build(sankey.CountFlows(d))

	fmt.Println("Categories:", strings.Join(l.Categories, " "))
	fmt.Printf("Height: %.2f\n", l.Height)
	for _, r := range l.Ribbons {
		fmt.Printf("%s -> %s: %d\n", r.Source, r.Dest, r.Count)
	}
	// Output:
	// Categories: a x b y
	// Height: 6.18
	// a -> x: 1
	// a -> y: 1
	// b -> x: 1
}

func ExampleResolveColors() {
	categories := []string{"cat", "dog"}
	colors := sankey.ColorMap{"cat": "#1f77b4", "dog": "#ff7f0e"}

	resolved, err := sankey.ResolveColors(categories, colors, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cat:", resolved["cat"])
	fmt.Println("dog:", resolved["dog"])
	// Output:
	// cat: #1f77b4
	// dog: #ff7f0e
}

func ExampleResolveColors_missing() {
	categories := []string{"cat", "dog"}
	colors := sankey.ColorMap{"cat": "#1f77b4"}

	_, err := sankey.ResolveColors(categories, colors, nil)
	fmt.Println(err)
	// Output:
	// color map is missing a category: "dog"
}

func ExampleRibbonCurve() {
	ys := sankey.RibbonCurve(0, 10)

	fmt.Println("samples:", len(ys))
	fmt.Printf("first: %.0f, last: %.0f\n", ys[0], ys[len(ys)-1])
	// Output:
	// samples: 62
	// first: 0, last: 10
}
