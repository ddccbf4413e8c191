package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/automata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTurnstile(t *testing.T) *automata.Machine {
	t.Helper()

	m := automata.NewMealy("turnstile")
	locked := m.MustAddState("locked", automata.Initial())
	open := m.MustAddState("open", automata.WithDefault(locked))
	require.NoError(t, locked.DefineTransitionWithOutput("coin", open, "unlock"))
	require.NoError(t, open.DefineTransition("coin", open))
	return m
}

func TestDescribeMarkdown(t *testing.T) {
	md := DescribeMarkdown(newTurnstile(t).Inspect())

	assert.True(t, strings.HasPrefix(md, "# turnstile\n"))
	assert.Contains(t, md, "A **mealy** machine with 2 states and 2 transitions, starting at `locked`.")
	assert.Contains(t, md, "| locked | initial |  |  |")
	assert.Contains(t, md, "| open |  |  | locked |")
	assert.Contains(t, md, "| locked | coin | open | unlock |")
	assert.Contains(t, md, "| open | coin | open |  |")
}

func TestDescribeMarkdown_NoTransitions(t *testing.T) {
	m := automata.NewDriver("lonely")
	m.MustAddState("a|b", automata.Initial())

	md := DescribeMarkdown(m.Inspect())
	assert.Contains(t, md, `| a\|b | initial |`)
	assert.Contains(t, md, "_No transitions._")
}

func TestPlainRenderer(t *testing.T) {
	render := NewPlainRenderer()

	out, err := render(DescribeMarkdown(newTurnstile(t).Inspect()))
	require.NoError(t, err)
	assert.Contains(t, out, "turnstile")
	assert.Contains(t, out, "unlock")
}

func TestPlainPalette(t *testing.T) {
	var buf bytes.Buffer
	p := NewPlainPalette(&buf)

	assert.Equal(t, "boom", p.Error("boom"))
	assert.Equal(t, "CLOSED", p.State("CLOSED"))
	assert.Equal(t, "<ack>", p.Output("<ack>"))
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "1.2.3\n")

	assert.Contains(t, buf.String(), "v1.2.3")
}
