package automata_test

import (
	"testing"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBinary101 builds an acceptor over {0,1} that accepts inputs ending in "101".
func newBinary101(t *testing.T) *automata.Machine {
	t.Helper()

	m := automata.NewAcceptor("binary-101")
	q0 := m.MustAddState("q0", automata.Initial())
	q1 := m.MustAddState("q1")
	q2 := m.MustAddState("q2")
	q3 := m.MustAddState("q3", automata.Accepting())

	require.NoError(t, q0.DefineTransition("0", q0))
	require.NoError(t, q0.DefineTransition("1", q1))
	require.NoError(t, q1.DefineTransition("0", q2))
	require.NoError(t, q1.DefineTransition("1", q1))
	require.NoError(t, q2.DefineTransition("0", q0))
	require.NoError(t, q2.DefineTransition("1", q3))
	require.NoError(t, q3.DefineTransition("0", q2))
	require.NoError(t, q3.DefineTransition("1", q1))
	return m
}

func TestMachine_ResetRequiresInitial(t *testing.T) {
	m := automata.NewDriver("empty")
	m.MustAddState("a")

	err := m.Reset()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoInitialState)
	assert.True(t, domain.IsStructural(err))

	err = m.Process(domain.Symbols("x"))
	assert.ErrorIs(t, err, domain.ErrNoInitialState)
}

func TestMachine_TransitionBeforeReset(t *testing.T) {
	m := automata.NewDriver("d")
	a := m.MustAddState("a", automata.Initial())
	require.NoError(t, a.DefineTransition("x", a))

	assert.Nil(t, m.Current())

	err := m.Transition("x")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCursorUnset)
	assert.True(t, domain.IsBehavioral(err))

	require.NoError(t, m.Reset())
	assert.Same(t, a, m.Current())
	assert.NoError(t, m.Transition("x"))
}

func TestMachine_SingleInitial(t *testing.T) {
	m := automata.NewDriver("d")
	m.MustAddState("a", automata.Initial())

	_, err := m.AddState("b", automata.Initial())
	assert.ErrorIs(t, err, domain.ErrDuplicateInitial)
	assert.Len(t, m.States(), 1)
	assert.Equal(t, "a", m.Initial().Name())
}

func TestMachine_NoTransitionNamesStateAndSymbol(t *testing.T) {
	m := automata.NewDriver("d")
	a := m.MustAddState("a", automata.Initial())
	b := m.MustAddState("b")
	require.NoError(t, a.DefineTransition("go", b))

	err := m.Process(domain.Symbols("go", "go"))
	require.Error(t, err)

	var behavioral *domain.BehavioralError
	require.ErrorAs(t, err, &behavioral)
	assert.Equal(t, "b", behavioral.State)
	assert.Equal(t, domain.Symbol("go"), behavioral.Symbol)
	assert.ErrorIs(t, err, domain.ErrNoTransition)

	// The cursor stays at the last successful position.
	assert.Same(t, b, m.Current())
}

func TestMachine_ProcessIsDeterministic(t *testing.T) {
	m := newBinary101(t)
	input := domain.Symbols("1", "1", "0", "1", "0", "0", "1")

	require.NoError(t, m.Process(input))
	first := m.Current()

	for range 5 {
		require.NoError(t, m.Process(input))
		assert.Same(t, first, m.Current())
	}
}

func TestState_DefineTransitionValidatesDestination(t *testing.T) {
	m := automata.NewDriver("m")
	other := automata.NewDriver("other")
	a := m.MustAddState("a", automata.Initial())
	foreign := other.MustAddState("x")

	err := a.DefineTransition("1", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidDestination)

	err = a.DefineTransition("1", foreign)
	assert.ErrorIs(t, err, domain.ErrInvalidDestination)
	assert.True(t, domain.IsStructural(err))

	_, err = m.AddState("b", automata.WithDefault(foreign))
	assert.ErrorIs(t, err, domain.ErrInvalidDestination)

	assert.Empty(t, a.Symbols())
}

func TestState_RebindKeepsPosition(t *testing.T) {
	m := automata.NewDriver("m")
	a := m.MustAddState("a", automata.Initial())
	b := m.MustAddState("b")
	c := m.MustAddState("c")

	require.NoError(t, a.DefineTransition("x", b))
	require.NoError(t, a.DefineTransition("y", b))
	require.NoError(t, a.DefineTransition("x", c))

	assert.Equal(t, domain.Symbols("x", "y"), a.Symbols())
	dest, ok := a.Lookup("x")
	require.True(t, ok)
	assert.Same(t, c, dest)
}

func TestDefaultTransition_HookOrder(t *testing.T) {
	var calls []string

	m := automata.NewDriver("fallback")
	b := m.MustAddState("b", automata.OnEntry(func() { calls = append(calls, "b.entry") }))
	a := m.MustAddState("a",
		automata.Initial(),
		automata.WithDefault(b),
		automata.OnInput(func(s domain.Symbol) { calls = append(calls, "a.input:"+string(s)) }),
		automata.OnExit(func() { calls = append(calls, "a.exit") }),
		automata.OnTransition(func(dest *automata.State) { calls = append(calls, "a.transition:"+dest.Name()) }),
	)
	c := m.MustAddState("c")
	require.NoError(t, a.DefineTransition("known", c))

	require.NoError(t, m.Reset())
	require.NoError(t, m.Transition("undeclared"))

	assert.Same(t, b, m.Current())
	assert.Equal(t, []string{"a.input:undeclared", "a.exit", "a.transition:b", "b.entry"}, calls)

	dest, ok := a.Lookup("undeclared")
	require.True(t, ok)
	assert.Same(t, b, dest)
	assert.Len(t, calls, 4, "Lookup must not fire hooks")
}

func TestHooks_NotFiredOnRejection(t *testing.T) {
	fired := 0
	hook := func() { fired++ }

	m := automata.NewDriver("strict")
	a := m.MustAddState("a", automata.Initial(), automata.OnExit(hook), automata.OnEntry(hook))
	b := m.MustAddState("b", automata.OnEntry(hook))
	require.NoError(t, a.DefineTransition("ok", b))

	require.NoError(t, m.Reset())
	err := m.Transition("nope")
	assert.ErrorIs(t, err, domain.ErrNoTransition)
	assert.Zero(t, fired)
	assert.Same(t, a, m.Current())
}

func TestLifecycleHooks_Observe(t *testing.T) {
	var transitions []*domain.TransitionEvent
	var rejects []*domain.RejectEvent
	resets := 0

	m := automata.NewDriver("observed", automata.WithLifecycleHooks(domain.LifecycleHooks{
		OnTransition: func(e *domain.TransitionEvent) { transitions = append(transitions, e) },
		OnReject:     func(e *domain.RejectEvent) { rejects = append(rejects, e) },
		OnReset:      func(*domain.ResetEvent) { resets++ },
	}))
	a := m.MustAddState("a", automata.Initial())
	b := m.MustAddState("b")
	require.NoError(t, a.DefineTransition("go", b))

	err := m.Process(domain.Symbols("go", "stop"))
	require.Error(t, err)

	assert.Equal(t, 1, resets)
	require.Len(t, transitions, 1)
	assert.Equal(t, "a", transitions[0].FromName)
	assert.Equal(t, "b", transitions[0].ToName)
	assert.Equal(t, "observed", transitions[0].Machine)
	require.Len(t, rejects, 1)
	assert.Equal(t, "b", rejects[0].StateName)
	assert.Equal(t, domain.Symbol("stop"), rejects[0].Symbol)
}

func TestAllTransitions_Order(t *testing.T) {
	m := automata.NewDriver("order")
	a := m.MustAddState("a", automata.Initial())
	b := m.MustAddState("b")

	require.NoError(t, b.DefineTransition("z", a))
	require.NoError(t, a.DefineTransition("y", b))
	require.NoError(t, a.DefineTransition("x", a))
	require.NoError(t, a.SetDefault(b))

	assert.Equal(t, []domain.Transition{
		{From: a.ID(), Symbol: "y", To: b.ID()},
		{From: a.ID(), Symbol: "x", To: a.ID()},
		{From: b.ID(), Symbol: "z", To: a.ID()},
	}, m.AllTransitions())

	g := m.Inspect()
	assert.Equal(t, "order", g.Name)
	assert.Equal(t, a.ID(), g.Initial)
	assert.Equal(t, domain.NoState, g.Current)
	require.Len(t, g.Nodes, 2)
	assert.Equal(t, b.ID(), g.Nodes[0].Default)
	assert.Equal(t, domain.NoState, g.Nodes[1].Default)
	assert.Len(t, g.Edges, 3)
}
