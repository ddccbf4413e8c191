package schema

import (
	"fmt"

	"github.com/aretw0/automata/pkg/domain"
)

// Validate checks a definition for structural problems. It returns an
// *AggregateError listing every failure found, or nil.
func Validate(def *Definition) error {
	if def == nil {
		return &AggregateError{Errors: []error{&ValidationError{Key: "definition", Reason: "required"}}}
	}

	var errs []error
	add := func(key, reason string, value any) {
		errs = append(errs, &ValidationError{Key: key, Reason: reason, Value: value})
	}

	if def.Name == "" {
		add("name", "required", nil)
	}

	variant, err := domain.ParseVariant(def.Variant)
	if err != nil {
		add("variant", "unknown variant", def.Variant)
	}

	if len(def.States) == 0 {
		add("states", "at least one state is required", nil)
	}

	names := make(map[string]int, len(def.States))
	initials := 0
	for i, s := range def.States {
		key := fmt.Sprintf("states[%d]", i)
		switch {
		case s.Name == "":
			add(key+".name", "required", nil)
		default:
			if first, dup := names[s.Name]; dup {
				add(key+".name", fmt.Sprintf("duplicate state name (first declared at states[%d])", first), s.Name)
			} else {
				names[s.Name] = i
			}
		}
		if s.Initial {
			initials++
			if initials > 1 {
				add(key+".initial", "initial state already defined", s.Name)
			}
		}
		if s.Accepting && err == nil && !variant.CanAccept() {
			add(key+".accepting", fmt.Sprintf("%s machines do not support accepting states", variant), s.Name)
		}
	}
	if len(def.States) > 0 && initials == 0 {
		add("states", "no initial state defined", nil)
	}

	for i, s := range def.States {
		key := fmt.Sprintf("states[%d]", i)
		if s.Default != "" {
			if _, ok := names[s.Default]; !ok {
				add(key+".default", "unknown state", s.Default)
			}
		}

		seen := make(map[string]bool, len(s.Transitions))
		for j, t := range s.Transitions {
			tkey := fmt.Sprintf("%s.transitions[%d]", key, j)
			if t.On == "" {
				add(tkey+".on", "required", nil)
			} else if seen[t.On] {
				add(tkey+".on", "duplicate symbol", t.On)
			}
			seen[t.On] = true

			if t.To == "" {
				add(tkey+".to", "required", nil)
			} else if _, ok := names[t.To]; !ok {
				add(tkey+".to", "unknown state", t.To)
			}
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
