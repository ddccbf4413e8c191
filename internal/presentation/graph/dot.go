package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/automata/pkg/domain"
)

const elseLabel = "else"

// DOTOptions tunes GenerateDOT.
type DOTOptions struct {
	// Title overrides the graph title; the machine name is used when empty.
	Title string
	// NoTitle suppresses the title entirely.
	NoTitle bool
	// Overlay fills visited states and, more strongly, the current one.
	Overlay *GraphOverlay
}

const (
	visitedFill = "#e1f5fe"
	currentFill = "#ffeb3b"
)

// GenerateDOT renders a machine snapshot as a Graphviz digraph.
// States are drawn as circles (double circles when accepting), an invisible
// "null" node points at the initial state, Mealy edges are labelled
// "symbol / output" and default transitions are labelled "else".
func GenerateDOT(g domain.Graph, opts DOTOptions) string {
	title := opts.Title
	if title == "" {
		title = g.Name
	}
	if opts.NoTitle {
		title = ""
	}

	fills := overlayFills(g, opts.Overlay)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("digraph %s {\n", quote(title)))
	sb.WriteString("\tgraph [rankdir=LR, ratio=0.3];\n")
	sb.WriteString("\tnode [shape=circle, height=1.2];\n")

	for _, node := range g.Nodes {
		attrs := []string{fmt.Sprintf("label=%s", quote(node.Name))}
		if node.Accepting {
			attrs = append(attrs, "shape=doublecircle")
		}
		if fill, ok := fills[node.ID]; ok {
			attrs = append(attrs, "style=filled", fmt.Sprintf("fillcolor=%s", quote(fill)))
		}
		sb.WriteString(fmt.Sprintf("\t%s [%s];\n", nodeID(node.ID), strings.Join(attrs, ", ")))
	}

	if _, ok := g.Node(g.Initial); ok {
		sb.WriteString("\tnull [shape=plaintext, label=\" \"];\n")
		sb.WriteString(fmt.Sprintf("\tnull -> %s;\n", nodeID(g.Initial)))
	}

	for _, e := range g.Edges {
		sb.WriteString(fmt.Sprintf("\t%s -> %s [label=%s];\n", nodeID(e.From), nodeID(e.To), quote(edgeLabel(g.Variant, e))))
	}

	for _, node := range g.Nodes {
		if node.Default.Valid() {
			sb.WriteString(fmt.Sprintf("\t%s -> %s [label=%s];\n", nodeID(node.ID), nodeID(node.Default), quote(elseLabel)))
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}

func overlayFills(g domain.Graph, overlay *GraphOverlay) map[domain.StateID]string {
	if overlay == nil {
		return nil
	}
	fills := make(map[domain.StateID]string)
	for _, id := range overlay.VisitedNodes {
		if _, ok := g.Node(id); ok {
			fills[id] = visitedFill
		}
	}
	if _, ok := g.Node(overlay.CurrentNode); ok {
		fills[overlay.CurrentNode] = currentFill
	}
	return fills
}

// nodeID derives an identifier from the state handle, since state names are
// not required to be unique.
func nodeID(id domain.StateID) string {
	return fmt.Sprintf("s%d", int(id))
}

func edgeLabel(variant domain.Variant, e domain.Edge) string {
	label := string(e.Symbol)
	if variant == domain.Mealy {
		out := "None"
		if e.HasOutput && e.Output != nil {
			out = fmt.Sprint(e.Output)
		}
		label += " / " + out
	}
	return label
}

func quote(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return "\"" + s + "\""
}
