package automata

import (
	"iter"
	"slices"

	"github.com/aretw0/automata/pkg/domain"
)

// Accepts runs symbols from the initial state and reports whether the final
// state is accepting. Membership is by handle, never by name.
func (m *Machine) Accepts(symbols []domain.Symbol) (bool, error) {
	if m.variant != domain.Acceptor {
		return false, m.mismatch("Accepts")
	}
	if err := m.Process(symbols); err != nil {
		return false, err
	}
	_, ok := m.accepting[m.cursor]
	return ok, nil
}

// Output computes the output the machine would emit for symbol from the
// current state, without transitioning.
func (m *Machine) Output(symbol domain.Symbol) (domain.Output, error) {
	if !m.variant.ProducesOutput() {
		return nil, m.mismatch("Output")
	}
	if !m.cursor.Valid() {
		return nil, &domain.BehavioralError{Machine: m.name, Symbol: symbol, Err: domain.ErrCursorUnset}
	}

	current := m.states[m.cursor]
	switch m.variant {
	case domain.Transducer:
		return current.name, nil
	case domain.Moore:
		return current.Output(), nil
	case domain.Mealy:
		out, _ := current.OutputFor(symbol)
		return out, nil
	case domain.Driver, domain.Acceptor:
		return nil, m.mismatch("Output")
	}
	return nil, m.mismatch("Output")
}

// OutputOption configures a Stream.
type OutputOption func(*Stream)

// SkipNone drops nil outputs from the stream. The transitions still happen.
func SkipNone() OutputOption {
	return func(s *Stream) { s.skipNone = true }
}

// Outputs resets the machine and returns a fresh stream over symbols.
// The stream is single-use; call Outputs again to restart.
func (m *Machine) Outputs(symbols []domain.Symbol, opts ...OutputOption) (*Stream, error) {
	if !m.variant.ProducesOutput() {
		return nil, m.mismatch("Outputs")
	}
	if err := m.Reset(); err != nil {
		return nil, err
	}

	s := &Stream{machine: m, symbols: slices.Clone(symbols)}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Transduce drains a stream over symbols into a slice.
func (m *Machine) Transduce(symbols []domain.Symbol, opts ...OutputOption) ([]domain.Output, error) {
	s, err := m.Outputs(symbols, opts...)
	if err != nil {
		return nil, err
	}
	return s.Collect()
}

// Stream yields one output per pull. A pull computes the output for the next
// symbol; that symbol's transition runs at the start of the following pull,
// so the output of a symbol that fails to transition is still delivered
// before the error.
type Stream struct {
	machine  *Machine
	symbols  []domain.Symbol
	pos      int
	pending  bool
	skipNone bool
	value    domain.Output
	err      error
	done     bool
}

// Next advances the stream. It returns false once the input is exhausted or
// a step failed; see Err.
func (s *Stream) Next() bool {
	if s.done {
		return false
	}
	if s.pending {
		s.pending = false
		if err := s.machine.Transition(s.symbols[s.pos-1]); err != nil {
			return s.fail(err)
		}
	}

	for s.pos < len(s.symbols) {
		symbol := s.symbols[s.pos]
		out, err := s.machine.Output(symbol)
		if err != nil {
			return s.fail(err)
		}
		s.pos++

		if out == nil && s.skipNone {
			if err := s.machine.Transition(symbol); err != nil {
				return s.fail(err)
			}
			continue
		}

		s.value = out
		s.pending = true
		return true
	}

	s.done = true
	s.value = nil
	return false
}

func (s *Stream) fail(err error) bool {
	s.err = err
	s.done = true
	s.value = nil
	return false
}

// Value returns the output produced by the last successful Next.
func (s *Stream) Value() domain.Output {
	return s.value
}

// Err returns the error that stopped the stream, if any.
func (s *Stream) Err() error {
	return s.err
}

// All adapts the stream to a range-over-func iterator. A failure is
// delivered as a final (nil, err) pair.
func (s *Stream) All() iter.Seq2[domain.Output, error] {
	return func(yield func(domain.Output, error) bool) {
		for s.Next() {
			if !yield(s.value, nil) {
				return
			}
		}
		if s.err != nil {
			yield(nil, s.err)
		}
	}
}

// Collect drains the stream. On failure it returns the outputs delivered so
// far together with the error.
func (s *Stream) Collect() ([]domain.Output, error) {
	var out []domain.Output
	for s.Next() {
		out = append(out, s.value)
	}
	return out, s.err
}
