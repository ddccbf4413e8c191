package graph

import "github.com/aretw0/automata/pkg/domain"

// GraphOverlay contains dynamic state data to visualize on the graph.
type GraphOverlay struct {
	VisitedNodes []domain.StateID
	CurrentNode  domain.StateID
}

// Trace records the states a run passes through. Attach Hooks to a machine,
// run it, then draw the result with Overlay.
type Trace struct {
	visited []domain.StateID
	current domain.StateID
}

// NewTrace creates an empty trace.
func NewTrace() *Trace {
	return &Trace{current: domain.NoState}
}

// Hooks returns the lifecycle hooks that feed the trace. A reset starts over.
func (t *Trace) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnReset: func(e *domain.ResetEvent) {
			t.visited = append(t.visited[:0], e.Initial)
			t.current = e.Initial
		},
		OnTransition: func(e *domain.TransitionEvent) {
			t.visited = append(t.visited, e.To)
			t.current = e.To
		},
	}
}

// Overlay returns the visited states in order and the last state reached.
func (t *Trace) Overlay() *GraphOverlay {
	visited := make([]domain.StateID, len(t.visited))
	copy(visited, t.visited)
	return &GraphOverlay{VisitedNodes: visited, CurrentNode: t.current}
}
