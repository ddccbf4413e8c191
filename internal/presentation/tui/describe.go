package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/automata/pkg/domain"
)

// DescribeMarkdown summarizes a machine snapshot as markdown: a header, the
// state list and the transition table.
func DescribeMarkdown(g domain.Graph) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", g.Name))
	sb.WriteString(fmt.Sprintf("A **%s** machine with %d states and %d transitions", g.Variant, len(g.Nodes), len(g.Edges)))
	if initial, ok := g.Node(g.Initial); ok {
		sb.WriteString(fmt.Sprintf(", starting at `%s`", initial.Name))
	}
	sb.WriteString(".\n\n")

	sb.WriteString("## States\n\n")
	sb.WriteString("| State | Flags | Output | Else |\n")
	sb.WriteString("|---|---|---|---|\n")
	for _, n := range g.Nodes {
		var flags []string
		if n.Initial {
			flags = append(flags, "initial")
		}
		if n.Accepting {
			flags = append(flags, "accepting")
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
			cell(n.Name), strings.Join(flags, ", "), cell(formatOutput(n.Output)), cell(g.NodeName(n.Default))))
	}

	sb.WriteString("\n## Transitions\n\n")
	if len(g.Edges) == 0 {
		sb.WriteString("_No transitions._\n")
		return sb.String()
	}
	sb.WriteString("| From | Input | To | Output |\n")
	sb.WriteString("|---|---|---|---|\n")
	for _, e := range g.Edges {
		out := ""
		if e.HasOutput {
			out = formatOutput(e.Output)
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
			cell(g.NodeName(e.From)), cell(string(e.Symbol)), cell(g.NodeName(e.To)), cell(out)))
	}
	return sb.String()
}

func formatOutput(v domain.Output) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func cell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
