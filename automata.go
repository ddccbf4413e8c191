package automata

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/automata/pkg/domain"
)

// Machine owns an ordered arena of states, the initial handle and the cursor.
// A Machine is not safe for concurrent use.
type Machine struct {
	name      string
	variant   domain.Variant
	states    []*State
	initial   domain.StateID
	cursor    domain.StateID
	accepting map[domain.StateID]struct{}
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
}

// Option defines a functional option for configuring a Machine.
type Option func(*Machine)

// WithLogger sets a structured logger. Transitions are logged at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithLifecycleHooks registers machine-level observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(m *Machine) {
		m.hooks = hooks
	}
}

// New creates an empty machine of the given variant.
func New(name string, variant domain.Variant, opts ...Option) *Machine {
	m := &Machine{
		name:    name,
		variant: variant,
		initial: domain.NoState,
		cursor:  domain.NoState,
	}
	if variant.CanAccept() {
		m.accepting = make(map[domain.StateID]struct{})
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.logger == nil {
		m.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	m.logger = m.logger.With("machine", name)

	return m
}

// NewDriver creates a plain driver.
func NewDriver(name string, opts ...Option) *Machine {
	return New(name, domain.Driver, opts...)
}

// NewAcceptor creates a language-membership acceptor.
func NewAcceptor(name string, opts ...Option) *Machine {
	return New(name, domain.Acceptor, opts...)
}

// NewTransducer creates a transducer that emits state names.
func NewTransducer(name string, opts ...Option) *Machine {
	return New(name, domain.Transducer, opts...)
}

// NewMoore creates a Moore machine.
func NewMoore(name string, opts ...Option) *Machine {
	return New(name, domain.Moore, opts...)
}

// NewMealy creates a Mealy machine.
func NewMealy(name string, opts ...Option) *Machine {
	return New(name, domain.Mealy, opts...)
}

// Name returns the machine name.
func (m *Machine) Name() string { return m.name }

// Variant returns the machine variant.
func (m *Machine) Variant() domain.Variant { return m.variant }

// AddState appends a new state to the machine. Accepting states require an
// Acceptor and at most one state may be initial.
func (m *Machine) AddState(name string, opts ...StateOption) (*State, error) {
	var cfg stateConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.accepting && !m.variant.CanAccept() {
		return nil, &domain.StructuralError{
			Machine: m.name,
			State:   name,
			Detail:  fmt.Sprintf("%s machines have no accepting set", m.variant),
			Err:     domain.ErrAcceptingUnsupported,
		}
	}
	if cfg.initial && m.initial.Valid() {
		return nil, &domain.StructuralError{
			Machine: m.name,
			State:   name,
			Detail:  fmt.Sprintf("%q is already initial", m.states[m.initial].name),
			Err:     domain.ErrDuplicateInitial,
		}
	}

	s := &State{
		id:       domain.StateID(len(m.states)),
		name:     name,
		machine:  m,
		table:    make(map[domain.Symbol]domain.StateID),
		fallback: domain.NoState,
		hooks:    cfg.hooks,
	}
	if cfg.fallback != nil {
		if err := s.checkDestination(cfg.fallback); err != nil {
			return nil, err
		}
		s.fallback = cfg.fallback.id
	}
	if cfg.hasOutput {
		s.outputs = append(s.outputs, outputEntry{stateWide: true, value: cfg.output})
	}

	m.states = append(m.states, s)
	if cfg.initial {
		m.initial = s.id
	}
	if cfg.accepting {
		m.accepting[s.id] = struct{}{}
	}

	m.logger.Debug("state defined", "state", name, "id", s.id, "initial", cfg.initial, "accepting", cfg.accepting)
	return s, nil
}

// MustAddState is like AddState but panics on error. It is intended for
// fixtures whose structure is known to be valid.
func (m *Machine) MustAddState(name string, opts ...StateOption) *State {
	s, err := m.AddState(name, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// States returns the states in definition order.
func (m *Machine) States() []*State {
	out := make([]*State, len(m.states))
	copy(out, m.states)
	return out
}

// State returns the state for a handle.
func (m *Machine) State(id domain.StateID) (*State, bool) {
	if !id.Valid() || int(id) >= len(m.states) {
		return nil, false
	}
	return m.states[id], true
}

// FindState returns the first state defined with the given name.
func (m *Machine) FindState(name string) (*State, bool) {
	for _, s := range m.states {
		if s.name == name {
			return s, true
		}
	}
	return nil, false
}

// Initial returns the initial state, or nil if none was designated.
func (m *Machine) Initial() *State {
	s, _ := m.State(m.initial)
	return s
}

// Current returns the state under the cursor, or nil before the first Reset.
func (m *Machine) Current() *State {
	s, _ := m.State(m.cursor)
	return s
}

// IsAccepting reports whether s is in the machine's accepting set.
func (m *Machine) IsAccepting(s *State) bool {
	if s == nil || s.machine != m {
		return false
	}
	_, ok := m.accepting[s.id]
	return ok
}

// Reset places the cursor on the initial state.
func (m *Machine) Reset() error {
	if !m.initial.Valid() {
		return &domain.StructuralError{Machine: m.name, Err: domain.ErrNoInitialState}
	}
	m.cursor = m.initial

	initial := m.states[m.initial]
	m.logger.Debug("reset", "state", initial.name)
	if m.hooks.OnReset != nil {
		m.hooks.OnReset(&domain.ResetEvent{
			EventBase:   domain.NewEventBase(domain.EventReset, m.name),
			Initial:     initial.id,
			InitialName: initial.name,
		})
	}
	return nil
}

// Transition consumes one symbol. The destination is the symbol's entry in the
// current state's table, or the state's default transition. Hooks fire only
// when a destination was found.
func (m *Machine) Transition(symbol domain.Symbol) error {
	if !m.cursor.Valid() {
		err := &domain.BehavioralError{Machine: m.name, Symbol: symbol, Err: domain.ErrCursorUnset}
		m.reject(nil, symbol, err)
		return err
	}

	current := m.states[m.cursor]
	dest, fallback, ok := current.resolve(symbol)
	if !ok {
		err := &domain.BehavioralError{
			Machine: m.name,
			State:   current.name,
			Symbol:  symbol,
			Err:     domain.ErrNoTransition,
		}
		m.reject(current, symbol, err)
		return err
	}

	next := m.states[dest]
	current.hooks.input(symbol)
	current.hooks.exit()
	current.hooks.transition(next)
	next.hooks.entry()

	m.cursor = dest

	m.logger.Debug("transition", "from", current.name, "symbol", symbol, "to", next.name, "fallback", fallback)
	if m.hooks.OnTransition != nil {
		m.hooks.OnTransition(&domain.TransitionEvent{
			EventBase: domain.NewEventBase(domain.EventTransition, m.name),
			From:      current.id,
			FromName:  current.name,
			Symbol:    symbol,
			To:        next.id,
			ToName:    next.name,
			Fallback:  fallback,
		})
	}
	return nil
}

// Process resets the machine and consumes symbols in order. The first failure
// aborts the run and leaves the cursor at its last successful position.
func (m *Machine) Process(symbols []domain.Symbol) error {
	if err := m.Reset(); err != nil {
		return err
	}
	for _, symbol := range symbols {
		if err := m.Transition(symbol); err != nil {
			return err
		}
	}
	return nil
}

func (m *Machine) reject(current *State, symbol domain.Symbol, err error) {
	id, name := domain.NoState, ""
	if current != nil {
		id, name = current.id, current.name
	}
	m.logger.Debug("transition rejected", "state", name, "symbol", symbol, "err", err)
	if m.hooks.OnReject != nil {
		m.hooks.OnReject(&domain.RejectEvent{
			EventBase: domain.NewEventBase(domain.EventReject, m.name),
			State:     id,
			StateName: name,
			Symbol:    symbol,
			Err:       err,
		})
	}
}

func (m *Machine) mismatch(op string) error {
	return &domain.StructuralError{
		Machine: m.name,
		Detail:  fmt.Sprintf("%s is not available on %s machines", op, m.variant),
		Err:     domain.ErrVariantMismatch,
	}
}
