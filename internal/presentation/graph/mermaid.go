package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/automata/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart from a machine snapshot.
// It applies semantic styling:
// - Initial: ((Circle))
// - Accepting: (((Double circle)))
// - Default: [Rectangle]
// Default transitions are drawn dotted and labelled "else".
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid(g domain.Graph, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, node := range g.Nodes {
		opener, closer := "[", "]"

		switch {
		case node.Accepting:
			opener, closer = "(((", ")))" // Double circle
		case node.Initial:
			opener, closer = "((", "))" // Circle
		}

		label := escapeMermaid(node.Name)
		if g.Variant == domain.Moore && node.Output != nil {
			label += " <br/> " + escapeMermaid(fmt.Sprint(node.Output))
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", nodeID(node.ID), opener, label, closer))
	}

	for _, e := range g.Edges {
		label := escapeMermaid(edgeLabel(g.Variant, e))
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", nodeID(e.From), label, nodeID(e.To)))
	}

	for _, node := range g.Nodes {
		if node.Default.Valid() {
			sb.WriteString(fmt.Sprintf("    %s -. \"%s\" .-> %s\n", nodeID(node.ID), elseLabel, nodeID(node.Default)))
		}
	}

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visited := make(map[domain.StateID]bool)
		for _, id := range overlay.VisitedNodes {
			if _, ok := g.Node(id); ok && !visited[id] {
				visited[id] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", nodeID(id)))
			}
		}

		if _, ok := g.Node(overlay.CurrentNode); ok {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", nodeID(overlay.CurrentNode)))
		}
	}

	return sb.String()
}

func escapeMermaid(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
