// Package schema loads, validates and compiles declarative machine definitions.
//
// A definition is a YAML (or JSON) document naming the machine, its variant and
// its states:
//
//	name: binary-101
//	variant: acceptor
//	states:
//	  - name: q0
//	    initial: true
//	    transitions:
//	      - {on: 0, to: q0}
//	      - {on: 1, to: q1}
//	  - name: q1
//	    ...
//
// Scalars are read as written, so `on: 1` is the symbol "1" and `on: 01` is
// the distinct symbol "01". FromMap accepts data that was already decoded
// elsewhere and insists that names and symbols are strings.
//
// Validate reports every problem at once as an *AggregateError. Compile
// validates and builds an *automata.Machine through package dsl. FromMachine
// and Marshal go the other way, for exporting a machine built in code.
package schema
