package automata

import "github.com/aretw0/automata/pkg/domain"

// AllTransitions enumerates every (source, symbol, destination) triple in
// state-definition order, then per-state insertion order. Default
// transitions are not included; see Inspect.
func (m *Machine) AllTransitions() []domain.Transition {
	var out []domain.Transition
	for _, s := range m.states {
		for _, symbol := range s.order {
			out = append(out, domain.Transition{From: s.id, Symbol: symbol, To: s.table[symbol]})
		}
	}
	return out
}

// Inspect returns a read-only snapshot of the machine for exporters.
func (m *Machine) Inspect() domain.Graph {
	g := domain.Graph{
		Name:    m.name,
		Variant: m.variant,
		Initial: m.initial,
		Current: m.cursor,
		Nodes:   make([]domain.Node, 0, len(m.states)),
	}

	for _, s := range m.states {
		_, accepting := m.accepting[s.id]
		g.Nodes = append(g.Nodes, domain.Node{
			ID:        s.id,
			Name:      s.name,
			Initial:   s.id == m.initial,
			Accepting: accepting,
			Output:    s.Output(),
			Default:   s.fallback,
		})
	}

	for _, t := range m.AllTransitions() {
		edge := domain.Edge{Transition: t}
		edge.Output, edge.HasOutput = m.states[t.From].OutputFor(t.Symbol)
		g.Edges = append(g.Edges, edge)
	}

	return g
}
