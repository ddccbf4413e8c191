package domain

import (
	"errors"
	"fmt"
)

// Structural sentinels: problems with how a machine was put together.
var (
	// ErrInvalidDestination is returned when a transition targets something that is not a state of the same machine.
	ErrInvalidDestination = errors.New("a state must transition to another state of the same machine")
	// ErrAcceptingUnsupported is returned when an accepting state is declared on a machine that is not an acceptor.
	ErrAcceptingUnsupported = errors.New("machine does not support accepting states")
	// ErrNoInitialState is returned by Reset when no state was flagged initial.
	ErrNoInitialState = errors.New("no initial state defined")
	// ErrDuplicateInitial is returned when a second state is flagged initial.
	ErrDuplicateInitial = errors.New("initial state already defined")
	// ErrVariantMismatch is returned when an operation is not available for the machine variant.
	ErrVariantMismatch = errors.New("operation not supported by machine variant")
	// ErrUnknownState is returned when a state name or handle cannot be resolved.
	ErrUnknownState = errors.New("unknown state")
)

// Behavioral sentinels: problems found while running a machine.
var (
	// ErrCursorUnset is returned when a transition is attempted before Reset.
	ErrCursorUnset = errors.New("current state not set")
	// ErrNoTransition is returned when neither a transition nor a default transition matches.
	ErrNoTransition = errors.New("cannot transition")
)

// StructuralError reports a model-construction problem.
type StructuralError struct {
	Machine string
	State   string
	Detail  string
	Err     error
}

func (e *StructuralError) Error() string {
	msg := e.Err.Error()
	if e.State != "" {
		msg = fmt.Sprintf("state %q: %s", e.State, msg)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Machine != "" {
		msg = fmt.Sprintf("machine %q: %s", e.Machine, msg)
	}
	return msg
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}

// BehavioralError reports a run-time problem for a state/symbol pair.
type BehavioralError struct {
	Machine string
	State   string
	Symbol  Symbol
	Err     error
}

func (e *BehavioralError) Error() string {
	if e.State == "" {
		return fmt.Sprintf("machine %q: %v", e.Machine, e.Err)
	}
	return fmt.Sprintf("%v from state %q on input %q", e.Err, e.State, e.Symbol)
}

func (e *BehavioralError) Unwrap() error {
	return e.Err
}

// IsStructural reports whether err is, or wraps, a StructuralError.
func IsStructural(err error) bool {
	var target *StructuralError
	return errors.As(err, &target)
}

// IsBehavioral reports whether err is, or wraps, a BehavioralError.
func IsBehavioral(err error) bool {
	var target *BehavioralError
	return errors.As(err, &target)
}
