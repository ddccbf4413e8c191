package dsl

import (
	"testing"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Turnstile(t *testing.T) {
	b := New("turnstile", domain.Mealy)

	b.State("locked").Initial().
		Emit("coin", "unlocked", "unlock").
		Emit("push", "locked", "alarm")

	b.State("unlocked").
		Emit("push", "locked", "lock").
		On("coin", "unlocked")

	m, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, "turnstile", m.Name())
	assert.Len(t, m.States(), 2)
	assert.Equal(t, "locked", m.Initial().Name())

	out, err := m.Transduce(domain.Symbols("push", "coin", "coin", "push"))
	require.NoError(t, err)
	assert.Equal(t, []domain.Output{"alarm", "unlock", nil, "lock"}, out)
	assert.Equal(t, "locked", m.Current().Name())
}

func TestBuilder_ForwardReferencesAndDefaults(t *testing.T) {
	b := New("acceptor", domain.Acceptor)

	b.State("start").Initial().On("a", "seen_a").Else("start")
	b.State("seen_a").Accepting().On("a", "seen_a").Else("start")

	m, err := b.Build()
	require.NoError(t, err)

	ok, err := m.Accepts(domain.Symbols("b", "a", "a"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.Accepts(domain.Symbols("a", "z"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBuilder_StateIsIdempotent(t *testing.T) {
	b := New("m", domain.Driver)

	first := b.State("a")
	assert.Same(t, first, b.State("a"))
	assert.Same(t, first, first.State("b").State("a"))
}

func TestBuilder_ReportsAllStructuralErrors(t *testing.T) {
	b := New("broken", domain.Moore)

	b.State("a").Initial().On("x", "missing")
	b.State("b").Initial()
	b.State("c").Accepting()

	_, err := b.Build()
	require.Error(t, err)

	assert.ErrorIs(t, err, domain.ErrUnknownState)
	assert.ErrorIs(t, err, domain.ErrDuplicateInitial)
	assert.ErrorIs(t, err, domain.ErrAcceptingUnsupported)
	assert.True(t, domain.IsStructural(err))
	assert.Contains(t, err.Error(), `target "missing" is not declared`)
}

func TestBuilder_HooksAreWired(t *testing.T) {
	var entered []string

	b := New("hooks", domain.Driver)
	b.State("a").Initial().On("go", "b")
	b.State("b").OnEntry(func() { entered = append(entered, "b") })

	m := b.MustBuild()
	require.NoError(t, m.Process(domain.Symbols("go")))
	assert.Equal(t, []string{"b"}, entered)
}

func TestBuilder_MustBuildPanics(t *testing.T) {
	b := New("m", domain.Driver)
	b.State("a").On("x", "nowhere")

	assert.Panics(t, func() { b.MustBuild() })
}
