package graph

import (
	"strings"
	"testing"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAcceptor(t *testing.T) *automata.Machine {
	t.Helper()

	m := automata.NewAcceptor("ab")
	a := m.MustAddState("a", automata.Initial())
	b := m.MustAddState("b", automata.Accepting())
	require.NoError(t, a.DefineTransition("x", b))
	require.NoError(t, b.DefineTransition("y", a))
	require.NoError(t, b.SetDefault(b))
	return m
}

func TestGenerateDOT(t *testing.T) {
	m := newAcceptor(t)
	require.NoError(t, m.Reset())

	out := GenerateDOT(m.Inspect(), DOTOptions{Overlay: &GraphOverlay{CurrentNode: m.Current().ID()}})

	expected := `digraph "ab" {
	graph [rankdir=LR, ratio=0.3];
	node [shape=circle, height=1.2];
	s0 [label="a", style=filled, fillcolor="#ffeb3b"];
	s1 [label="b", shape=doublecircle];
	null [shape=plaintext, label=" "];
	null -> s0;
	s0 -> s1 [label="x"];
	s1 -> s0 [label="y"];
	s1 -> s1 [label="else"];
}
`
	assert.Equal(t, expected, out)
}

func TestGenerateDOT_MealyLabelsAndTitle(t *testing.T) {
	m := automata.NewMealy("io")
	a := m.MustAddState(`say "hi"`, automata.Initial())
	require.NoError(t, a.DefineTransitionWithOutput("1", a, "one"))
	require.NoError(t, a.DefineTransition("0", a))

	out := GenerateDOT(m.Inspect(), DOTOptions{Title: "custom"})
	assert.True(t, strings.HasPrefix(out, `digraph "custom" {`))
	assert.Contains(t, out, `s0 [label="say \"hi\""];`)
	assert.Contains(t, out, `s0 -> s0 [label="1 / one"];`)
	assert.Contains(t, out, `s0 -> s0 [label="0 / None"];`)

	untitled := GenerateDOT(m.Inspect(), DOTOptions{NoTitle: true})
	assert.True(t, strings.HasPrefix(untitled, `digraph "" {`))
}

func TestGenerateMermaid(t *testing.T) {
	m := newAcceptor(t)

	out := GenerateMermaid(m.Inspect(), nil)

	expected := `graph LR
    s0(("a"))
    s1((("b")))
    s0 -- "x" --> s1
    s1 -- "y" --> s0
    s1 -. "else" .-> s1
`
	assert.Equal(t, expected, out)
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	m := newAcceptor(t)
	require.NoError(t, m.Process(domain.Symbols("x")))

	out := GenerateMermaid(m.Inspect(), &GraphOverlay{
		VisitedNodes: []domain.StateID{0, 0, 1, 7},
		CurrentNode:  m.Current().ID(),
	})

	assert.Equal(t, 1, strings.Count(out, "class s0 visited;"))
	assert.Contains(t, out, "class s1 visited;")
	assert.NotContains(t, out, "s7")
	assert.Contains(t, out, "class s1 current;")
}

func TestGenerateMermaid_MooreOutputs(t *testing.T) {
	m := automata.NewMoore("m")
	m.MustAddState("on", automata.Initial(), automata.WithOutput(1))

	out := GenerateMermaid(m.Inspect(), nil)
	assert.Contains(t, out, `s0(("on <br/> 1"))`)
}

func TestTrace_DrivesOverlay(t *testing.T) {
	trace := NewTrace()
	m := automata.NewAcceptor("ab", automata.WithLifecycleHooks(trace.Hooks()))
	a := m.MustAddState("a", automata.Initial())
	b := m.MustAddState("b", automata.Accepting())
	c := m.MustAddState("c")
	require.NoError(t, a.DefineTransition("x", b))
	require.NoError(t, b.DefineTransition("y", a))
	require.NoError(t, a.DefineTransition("z", c))

	assert.Equal(t, domain.NoState, trace.Overlay().CurrentNode)

	require.NoError(t, m.Process(domain.Symbols("x", "y", "x")))
	overlay := trace.Overlay()
	assert.Equal(t, []domain.StateID{a.ID(), b.ID(), a.ID(), b.ID()}, overlay.VisitedNodes)
	assert.Equal(t, b.ID(), overlay.CurrentNode)

	out := GenerateDOT(m.Inspect(), DOTOptions{Overlay: overlay})
	assert.Contains(t, out, `s0 [label="a", style=filled, fillcolor="#e1f5fe"];`)
	assert.Contains(t, out, `s1 [label="b", shape=doublecircle, style=filled, fillcolor="#ffeb3b"];`)
	assert.Contains(t, out, `s2 [label="c"];`)

	// A new run replaces the previous trace.
	require.NoError(t, m.Process(domain.Symbols("z")))
	assert.Equal(t, []domain.StateID{a.ID(), c.ID()}, trace.Overlay().VisitedNodes)
	assert.Contains(t, GenerateMermaid(m.Inspect(), trace.Overlay()), "class s2 current;")
}
