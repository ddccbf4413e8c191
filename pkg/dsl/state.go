package dsl

import (
	"github.com/aretw0/automata"
	"github.com/aretw0/automata/pkg/domain"
)

type edge struct {
	symbol    domain.Symbol
	target    string
	output    domain.Output
	hasOutput bool
}

// StateBuilder provides a fluent API for configuring a state.
type StateBuilder struct {
	name      string
	builder   *Builder
	initial   bool
	accepting bool
	hasOutput bool
	output    domain.Output
	fallback  string
	hooks     automata.Hooks
	edges     []edge
}

// Initial marks the state as the entry point.
func (s *StateBuilder) Initial() *StateBuilder {
	s.initial = true
	return s
}

// Accepting adds the state to the accepting set.
func (s *StateBuilder) Accepting() *StateBuilder {
	s.accepting = true
	return s
}

// Output sets the state-wide (Moore) output.
func (s *StateBuilder) Output(out domain.Output) *StateBuilder {
	s.hasOutput = true
	s.output = out
	return s
}

// On adds a transition on symbol to the target state.
func (s *StateBuilder) On(symbol domain.Symbol, target string) *StateBuilder {
	s.edges = append(s.edges, edge{symbol: symbol, target: target})
	return s
}

// Emit adds a transition on symbol to the target state that outputs out (Mealy).
func (s *StateBuilder) Emit(symbol domain.Symbol, target string, out domain.Output) *StateBuilder {
	s.edges = append(s.edges, edge{symbol: symbol, target: target, output: out, hasOutput: true})
	return s
}

// Else sets the default transition used for undeclared symbols.
func (s *StateBuilder) Else(target string) *StateBuilder {
	s.fallback = target
	return s
}

// OnEntry sets the entry hook.
func (s *StateBuilder) OnEntry(fn func()) *StateBuilder {
	s.hooks.OnEntry = fn
	return s
}

// OnExit sets the exit hook.
func (s *StateBuilder) OnExit(fn func()) *StateBuilder {
	s.hooks.OnExit = fn
	return s
}

// OnInput sets the input hook.
func (s *StateBuilder) OnInput(fn func(domain.Symbol)) *StateBuilder {
	s.hooks.OnInput = fn
	return s
}

// OnTransition sets the transition hook.
func (s *StateBuilder) OnTransition(fn func(*automata.State)) *StateBuilder {
	s.hooks.OnTransition = fn
	return s
}

// State continues the chain with another state of the same builder.
func (s *StateBuilder) State(name string) *StateBuilder {
	return s.builder.State(name)
}

func (s *StateBuilder) stateOptions() []automata.StateOption {
	opts := []automata.StateOption{automata.WithHooks(s.hooks)}
	if s.initial {
		opts = append(opts, automata.Initial())
	}
	if s.accepting {
		opts = append(opts, automata.Accepting())
	}
	if s.hasOutput {
		opts = append(opts, automata.WithOutput(s.output))
	}
	return opts
}
