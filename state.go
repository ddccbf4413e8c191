package automata

import (
	"fmt"

	"github.com/aretw0/automata/pkg/domain"
)

// Hooks are per-state lifecycle callbacks. Nil hooks are no-ops.
type Hooks struct {
	OnEntry      func()
	OnExit       func()
	OnInput      func(symbol domain.Symbol)
	OnTransition func(dest *State)
}

func (h Hooks) entry() {
	if h.OnEntry != nil {
		h.OnEntry()
	}
}

func (h Hooks) exit() {
	if h.OnExit != nil {
		h.OnExit()
	}
}

func (h Hooks) input(symbol domain.Symbol) {
	if h.OnInput != nil {
		h.OnInput(symbol)
	}
}

func (h Hooks) transition(dest *State) {
	if h.OnTransition != nil {
		h.OnTransition(dest)
	}
}

type stateConfig struct {
	initial   bool
	accepting bool
	hasOutput bool
	output    domain.Output
	fallback  *State
	hooks     Hooks
}

// StateOption configures a state created by Machine.AddState.
type StateOption func(*stateConfig)

// Initial marks the state as the machine's initial state.
func Initial() StateOption {
	return func(c *stateConfig) { c.initial = true }
}

// Accepting adds the state to the accepting set (Acceptor machines only).
func Accepting() StateOption {
	return func(c *stateConfig) { c.accepting = true }
}

// WithOutput binds a state-wide output, the value a Moore machine emits.
func WithOutput(out domain.Output) StateOption {
	return func(c *stateConfig) {
		c.hasOutput = true
		c.output = out
	}
}

// WithDefault sets the fallback destination for symbols without an entry.
func WithDefault(dest *State) StateOption {
	return func(c *stateConfig) { c.fallback = dest }
}

// WithHooks replaces all four lifecycle hooks.
func WithHooks(h Hooks) StateOption {
	return func(c *stateConfig) { c.hooks = h }
}

// OnEntry sets the hook run when the state is entered.
func OnEntry(fn func()) StateOption {
	return func(c *stateConfig) { c.hooks.OnEntry = fn }
}

// OnExit sets the hook run when the state is left.
func OnExit(fn func()) StateOption {
	return func(c *stateConfig) { c.hooks.OnExit = fn }
}

// OnInput sets the hook run with the consumed symbol.
func OnInput(fn func(domain.Symbol)) StateOption {
	return func(c *stateConfig) { c.hooks.OnInput = fn }
}

// OnTransition sets the hook run with the resolved destination.
func OnTransition(fn func(*State)) StateOption {
	return func(c *stateConfig) { c.hooks.OnTransition = fn }
}

type outputEntry struct {
	symbol    domain.Symbol
	stateWide bool
	value     domain.Output
}

// State is one node of a machine together with its outgoing transitions.
// Destinations are handles into the owning machine's arena.
type State struct {
	id       domain.StateID
	name     string
	machine  *Machine
	table    map[domain.Symbol]domain.StateID
	order    []domain.Symbol
	fallback domain.StateID
	hooks    Hooks
	outputs  []outputEntry
}

// ID returns the state's handle.
func (s *State) ID() domain.StateID { return s.id }

// Name returns the state's name. Names are not required to be unique.
func (s *State) Name() string { return s.name }

// Machine returns the owning machine.
func (s *State) Machine() *Machine { return s.machine }

func (s *State) String() string {
	return fmt.Sprintf("%s#%d", s.name, s.id)
}

// DefineTransition binds symbol to dest. Rebinding a symbol keeps its
// original position in Symbols.
func (s *State) DefineTransition(symbol domain.Symbol, dest *State) error {
	return s.define(symbol, dest)
}

// DefineTransitionWithOutput binds symbol to dest and records out as the
// output for symbol.
func (s *State) DefineTransitionWithOutput(symbol domain.Symbol, dest *State, out domain.Output) error {
	if err := s.define(symbol, dest); err != nil {
		return err
	}
	s.outputs = append(s.outputs, outputEntry{symbol: symbol, value: out})
	return nil
}

func (s *State) define(symbol domain.Symbol, dest *State) error {
	if err := s.checkDestination(dest); err != nil {
		return err
	}
	if _, exists := s.table[symbol]; !exists {
		s.order = append(s.order, symbol)
	}
	s.table[symbol] = dest.id
	return nil
}

// SetDefault sets the fallback destination.
func (s *State) SetDefault(dest *State) error {
	if err := s.checkDestination(dest); err != nil {
		return err
	}
	s.fallback = dest.id
	return nil
}

// SetOutput replaces the state-wide output.
func (s *State) SetOutput(out domain.Output) {
	for i := range s.outputs {
		if s.outputs[i].stateWide {
			s.outputs[i].value = out
			return
		}
	}
	s.outputs = append([]outputEntry{{stateWide: true, value: out}}, s.outputs...)
}

func (s *State) checkDestination(dest *State) error {
	if dest == nil {
		return &domain.StructuralError{Machine: s.machine.name, State: s.name, Detail: "got nil", Err: domain.ErrInvalidDestination}
	}
	if dest.machine != s.machine {
		return &domain.StructuralError{
			Machine: s.machine.name,
			State:   s.name,
			Detail:  fmt.Sprintf("%q belongs to machine %q", dest.name, dest.machine.name),
			Err:     domain.ErrInvalidDestination,
		}
	}
	return nil
}

// Lookup returns the destination for symbol, falling back to the default
// transition. It has no side effects.
func (s *State) Lookup(symbol domain.Symbol) (*State, bool) {
	id, _, ok := s.resolve(symbol)
	if !ok {
		return nil, false
	}
	return s.machine.states[id], true
}

func (s *State) resolve(symbol domain.Symbol) (id domain.StateID, fallback bool, ok bool) {
	if dest, found := s.table[symbol]; found {
		return dest, false, true
	}
	if s.fallback.Valid() {
		return s.fallback, true, true
	}
	return domain.NoState, false, false
}

// Symbols returns the bound symbols in insertion order.
func (s *State) Symbols() []domain.Symbol {
	out := make([]domain.Symbol, len(s.order))
	copy(out, s.order)
	return out
}

// Default returns the fallback destination, or nil.
func (s *State) Default() *State {
	d, _ := s.machine.State(s.fallback)
	return d
}

// Output returns the first state-wide output, or nil.
func (s *State) Output() domain.Output {
	for _, e := range s.outputs {
		if e.stateWide {
			return e.value
		}
	}
	return nil
}

// OutputFor returns the last output registered for symbol.
func (s *State) OutputFor(symbol domain.Symbol) (domain.Output, bool) {
	for i := len(s.outputs) - 1; i >= 0; i-- {
		e := s.outputs[i]
		if !e.stateWide && e.symbol == symbol {
			return e.value, true
		}
	}
	return nil, false
}

// HasOutput reports whether a state-wide output was set.
func (s *State) HasOutput() bool {
	for _, e := range s.outputs {
		if e.stateWide {
			return true
		}
	}
	return false
}
