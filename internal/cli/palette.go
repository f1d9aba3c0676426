package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/flowribbon/pkg/palette"
)

// defaultPaletteSize is the swatch count shown when no argument is given.
const defaultPaletteSize = 8

// paletteCommand creates the palette command for previewing colors.
func (c *CLI) paletteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "palette [n]",
		Short: "Preview generated category colors",
		Long: `Preview generated category colors.

The palette command prints the colors a dataset with n categories would
get when no explicit color map is supplied. Palettes of different sizes
share their leading hues, so the preview also shows which colors stay
stable as categories are added.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := defaultPaletteSize
			if len(args) == 1 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil || parsed < 1 {
					return fmt.Errorf("invalid count: %q (must be a positive integer)", args[0])
				}
				n = parsed
			}
			printPalette(n)
			return nil
		},
	}
}

// printPalette prints one swatch line per generated color.
func printPalette(n int) {
	for i, hex := range palette.Categorical(n) {
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("      ")
		fmt.Printf("%2d  %s  %s\n", i+1, swatch, StyleValue.Render(hex))
	}
}
