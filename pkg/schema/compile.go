package schema

import (
	"fmt"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/dsl"
)

// Compile validates a definition and builds the machine it describes.
func Compile(def *Definition, opts ...automata.Option) (*automata.Machine, error) {
	if err := Validate(def); err != nil {
		return nil, err
	}
	variant, _ := domain.ParseVariant(def.Variant)

	b := dsl.New(def.Name, variant, opts...)
	for _, s := range def.States {
		sb := b.State(s.Name)
		if s.Initial {
			sb.Initial()
		}
		if s.Accepting {
			sb.Accepting()
		}
		if s.Output != nil {
			sb.Output(s.Output)
		}
		if s.Default != "" {
			sb.Else(s.Default)
		}
		for _, t := range s.Transitions {
			if t.Output != nil {
				sb.Emit(domain.Symbol(t.On), t.To, t.Output)
			} else {
				sb.On(domain.Symbol(t.On), t.To)
			}
		}
	}

	m, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to compile definition: %w", err)
	}
	return m, nil
}

// Factory validates def once and returns a factory that compiles a fresh
// machine on every call.
func Factory(def *Definition) (automata.Factory, error) {
	if err := Validate(def); err != nil {
		return nil, err
	}
	return func(opts ...automata.Option) (*automata.Machine, error) {
		return Compile(def, opts...)
	}, nil
}

// FromMachine describes an existing machine. Destinations are written by
// name, so the result only compiles back when state names are unique.
func FromMachine(m *automata.Machine) *Definition {
	def := &Definition{
		Name:    m.Name(),
		Variant: m.Variant().String(),
	}

	initial := m.Initial()
	for _, s := range m.States() {
		sd := StateDef{
			Name:      s.Name(),
			Initial:   s == initial,
			Accepting: m.IsAccepting(s),
		}
		if s.HasOutput() {
			sd.Output = s.Output()
		}
		if d := s.Default(); d != nil {
			sd.Default = d.Name()
		}
		for _, symbol := range s.Symbols() {
			dest, _ := s.Lookup(symbol)
			td := TransitionDef{On: string(symbol), To: dest.Name()}
			if out, ok := s.OutputFor(symbol); ok {
				td.Output = out
			}
			sd.Transitions = append(sd.Transitions, td)
		}
		def.States = append(def.States, sd)
	}
	return def
}
