package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/flowribbon/pkg/errors"
	"github.com/matzehuels/flowribbon/pkg/pipeline"
	"github.com/matzehuels/flowribbon/pkg/render/nodelink"
	"github.com/matzehuels/flowribbon/pkg/sankey"
)

// dotCommand creates the dot command, a debug tool that prints the
// Graphviz source behind the nodelink view.
func (c *CLI) dotCommand() *cobra.Command {
	var (
		output   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "dot [data.csv|data.json]",
		Short: "Print Graphviz DOT source for the nodelink view",
		Long: `Print Graphviz DOT source for the nodelink view.

The dot command aggregates a dataset and emits the DOT graph that
'render -t nodelink' would pass to Graphviz. Useful for debugging edge
weights and for feeding the graph into other Graphviz tooling.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDot(args[0], output, detailed)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "per-side counts on node labels")

	return cmd
}

// runDot loads the dataset and writes its DOT source.
func runDot(input, output string, detailed bool) error {
	d, err := pipeline.Load(pipeline.Options{Data: input})
	if err != nil {
		return fmt.Errorf("load dataset %s: %w", input, err)
	}

	flows := sankey.CountFlows(d)
	dot := nodelink.ToDOT(flows, nodelink.Options{Detailed: detailed})

	if output == "" {
		fmt.Println(dot)
		return nil
	}

	if err := errs.ValidateOutputPath(output); err != nil {
		return err
	}
	if err := os.WriteFile(output, []byte(dot), 0644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("DOT written")
	printFile(output)
	return nil
}
