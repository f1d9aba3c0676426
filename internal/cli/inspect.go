package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/flowribbon/pkg/pipeline"
	"github.com/matzehuels/flowribbon/pkg/sankey"
)

// inspectCommand creates the inspect command for browsing flow tables.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [data.csv|data.json]",
		Short: "Browse the flow count table interactively",
		Long: `Browse the flow count table interactively.

The inspect command aggregates a dataset into its transition count matrix
and opens an interactive view: rows are source categories, columns are
destination categories, and each cell counts the observations flowing
between them. Move the selection to see per-cell shares.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args[0])
		},
	}
}

// runInspect loads the dataset and starts the interactive matrix view.
func runInspect(input string) error {
	d, err := pipeline.Load(pipeline.Options{Data: input})
	if err != nil {
		return fmt.Errorf("load dataset %s: %w", input, err)
	}

	flows := sankey.CountFlows(d)
	if flows.Len() == 0 {
		printWarning("Dataset is empty")
		return nil
	}

	p := tea.NewProgram(newFlowMatrixModel(flows, input))
	_, err = p.Run()
	return err
}

// =============================================================================
// FlowMatrixModel - Interactive transition count matrix
// =============================================================================

// FlowMatrixModel is the bubbletea model for browsing a flow count table.
// The selection tracks one (source, destination) cell at a time.
type FlowMatrixModel struct {
	Flows  *sankey.Flows
	Source string // dataset path shown in the title
	Row    int
	Col    int
}

// newFlowMatrixModel creates a matrix model with the selection on the
// first cell.
func newFlowMatrixModel(f *sankey.Flows, source string) FlowMatrixModel {
	return FlowMatrixModel{Flows: f, Source: source}
}

func (m FlowMatrixModel) Init() tea.Cmd {
	return nil
}

func (m FlowMatrixModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	n := m.Flows.Len()
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Row > 0 {
				m.Row--
			}
		case "down", "j":
			if m.Row < n-1 {
				m.Row++
			}
		case "left", "h":
			if m.Col > 0 {
				m.Col--
			}
		case "right", "l":
			if m.Col < n-1 {
				m.Col++
			}
		}
	}
	return m, nil
}

func (m FlowMatrixModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Flow Counts"))
	b.WriteString(" ")
	b.WriteString(StyleDim.Render(m.Source))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓/←/→ navigate  q quit"))
	b.WriteString("\n\n")

	categories := m.Flows.Categories()

	headers := make([]string, len(categories)+1)
	headers[0] = "before \\ after"
	copy(headers[1:], categories)

	rows := make([][]string, len(categories))
	for i, src := range categories {
		row := make([]string, len(categories)+1)
		row[0] = src
		for j := range categories {
			count := m.Flows.At(i, j)
			if count == 0 {
				row[j+1] = "·"
			} else {
				row[j+1] = fmt.Sprintf("%d", count)
			}
		}
		rows[i] = row
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				if row == m.Row {
					return StyleHighlight.Bold(true)
				}
				return StyleValue
			}
			if row == m.Row && col-1 == m.Col {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			if m.Flows.At(row, col-1) == 0 {
				return StyleDim
			}
			return StyleNumber
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(m.selectionDetail(categories))

	return b.String()
}

// selectionDetail describes the selected cell: the flow, its count, and
// its share of the source category's observations.
func (m FlowMatrixModel) selectionDetail(categories []string) string {
	src := categories[m.Row]
	dst := categories[m.Col]
	count := m.Flows.At(m.Row, m.Col)
	total := m.Flows.SourceTotal(src)

	detail := fmt.Sprintf("%s %s %s: %d", src, iconArrow, dst, count)
	if total > 0 {
		detail += fmt.Sprintf(" of %d (%.0f%%)", total, 100*float64(count)/float64(total))
	}
	return "  " + StyleDim.Render(detail)
}
