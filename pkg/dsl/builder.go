package dsl

import (
	"errors"
	"fmt"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/pkg/domain"
)

// Builder manages the graph construction. States are referenced by name and
// resolved when Build is called, so they may be declared in any order.
type Builder struct {
	name    string
	variant domain.Variant
	opts    []automata.Option
	states  map[string]*StateBuilder
	order   []string
}

// New creates a new graph builder for a machine of the given variant.
func New(name string, variant domain.Variant, opts ...automata.Option) *Builder {
	return &Builder{
		name:    name,
		variant: variant,
		opts:    opts,
		states:  make(map[string]*StateBuilder),
	}
}

// State returns the builder for the named state, creating it on first use.
// Definition order is the order of first use.
func (b *Builder) State(name string) *StateBuilder {
	if sb, ok := b.states[name]; ok {
		return sb
	}
	sb := &StateBuilder{name: name, builder: b}
	b.states[name] = sb
	b.order = append(b.order, name)
	return sb
}

// Build compiles the declared states into a machine. All problems found are
// returned together.
func (b *Builder) Build() (*automata.Machine, error) {
	m := automata.New(b.name, b.variant, b.opts...)
	created := make(map[string]*automata.State, len(b.order))

	var errs []error
	for _, name := range b.order {
		s, err := m.AddState(name, b.states[name].stateOptions()...)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		created[name] = s
	}

	resolve := func(from, target string) (*automata.State, error) {
		if s, ok := created[target]; ok {
			return s, nil
		}
		if _, declared := b.states[target]; declared {
			// Declared but failed to build; its own error is already reported.
			return nil, nil
		}
		return nil, &domain.StructuralError{
			Machine: b.name,
			State:   from,
			Detail:  fmt.Sprintf("target %q is not declared", target),
			Err:     domain.ErrUnknownState,
		}
	}

	for _, name := range b.order {
		src, ok := created[name]
		if !ok {
			continue
		}
		sb := b.states[name]

		if sb.fallback != "" {
			dest, err := resolve(name, sb.fallback)
			if err != nil {
				errs = append(errs, err)
			} else if dest != nil {
				if err := src.SetDefault(dest); err != nil {
					errs = append(errs, err)
				}
			}
		}

		for _, e := range sb.edges {
			dest, err := resolve(name, e.target)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if dest == nil {
				continue
			}
			if e.hasOutput {
				err = src.DefineTransitionWithOutput(e.symbol, dest, e.output)
			} else {
				err = src.DefineTransition(e.symbol, dest)
			}
			if err != nil {
				errs = append(errs, err)
			}
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to build machine %q: %w", b.name, errors.Join(errs...))
	}
	return m, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *automata.Machine {
	m, err := b.Build()
	if err != nil {
		panic(err)
	}
	return m
}
