/*
Package automata is a deterministic finite-automaton engine.

A client defines named states on a machine, wires input-symbol transitions between
them (optionally carrying an output value and lifecycle hooks), and drives the
machine's cursor through the graph with an input sequence. Five variants share the
same state model:

  - Driver: runs the transitions and reports only failures.
  - Acceptor: reports whether the final state is accepting.
  - Transducer: emits the current state's name per consumed symbol.
  - Moore: emits the output bound to the current state.
  - Mealy: emits the output bound to the current state and the consumed symbol.

# Concept

States live in an arena owned by their machine and are addressed by stable handles
(domain.StateID). Transitions map a symbol to a destination handle; a state may also
carry a default transition used when the symbol has no entry. Construction problems
surface as *domain.StructuralError, run-time problems as *domain.BehavioralError.

Per-state hooks (on-input, on-exit, on-transition, then the destination's on-entry)
fire only once a transition has been resolved, right before the cursor moves. A
rejected symbol leaves the machine and any hook-maintained state untouched.

# Usage

	m := automata.NewAcceptor("ends-in-101")

	q0, _ := m.AddState("q0", automata.Initial())
	q1, _ := m.AddState("q1")
	q2, _ := m.AddState("q2")
	q3, _ := m.AddState("q3", automata.Accepting())

	q0.DefineTransition("1", q1)
	q0.DefineTransition("0", q0)
	q1.DefineTransition("0", q2)
	q1.DefineTransition("1", q1)
	q2.DefineTransition("1", q3)
	q2.DefineTransition("0", q0)
	q3.DefineTransition("0", q2)
	q3.DefineTransition("1", q1)

	ok, err := m.Accepts(domain.Symbols("1", "0", "1"))

Transducers return a single-use *Stream; every call to Outputs resets the machine
and creates a fresh stream.

	out, err := mealy.Outputs(domain.Symbols("1", "0"), automata.SkipNone())
	if err != nil {
		log.Fatal(err)
	}
	for v, err := range out.All() {
		...
	}

For declarative construction see package dsl; for YAML/JSON documents see package
schema.
*/
package automata
