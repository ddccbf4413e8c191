package domain

// Node is the read-only view of one state.
type Node struct {
	ID        StateID `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	Initial   bool    `json:"initial,omitempty" yaml:"initial,omitempty"`
	Accepting bool    `json:"accepting,omitempty" yaml:"accepting,omitempty"`

	// Output is the state-wide output (Moore), nil when none was set.
	Output Output `json:"output,omitempty" yaml:"output,omitempty"`

	// Default is the fallback destination, NoState when absent.
	Default StateID `json:"default" yaml:"default"`
}

// Graph is an introspection snapshot of a machine. Nodes are in definition
// order and Edges follow Machine.AllTransitions ordering.
type Graph struct {
	Name    string  `json:"name" yaml:"name"`
	Variant Variant `json:"variant" yaml:"variant"`
	Initial StateID `json:"initial" yaml:"initial"`
	Current StateID `json:"current" yaml:"current"`
	Nodes   []Node  `json:"nodes" yaml:"nodes"`
	Edges   []Edge  `json:"edges" yaml:"edges"`
}

// Node returns the node for id, or false if the handle is out of range.
func (g Graph) Node(id StateID) (Node, bool) {
	if !id.Valid() || int(id) >= len(g.Nodes) {
		return Node{}, false
	}
	return g.Nodes[id], true
}

// NodeName returns the name of the node for id, or the empty string.
func (g Graph) NodeName(id StateID) string {
	n, ok := g.Node(id)
	if !ok {
		return ""
	}
	return n.Name
}
