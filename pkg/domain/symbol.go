package domain

// Symbol is an input symbol consumed by a transition.
type Symbol string

// Output is a value produced by a transducer for a consumed symbol.
// A nil Output means "no output".
type Output = any

// StateID is a stable handle into the state arena of a single machine.
// Handles are assigned in definition order starting at zero.
type StateID int

// NoState is the null handle (no initial state, unset cursor, no fallback).
const NoState StateID = -1

// Valid reports whether the handle refers to a state.
func (id StateID) Valid() bool {
	return id >= 0
}

// Symbols converts plain strings into a symbol sequence.
func Symbols(values ...string) []Symbol {
	out := make([]Symbol, len(values))
	for i, v := range values {
		out[i] = Symbol(v)
	}
	return out
}
