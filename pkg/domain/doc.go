/*
Package domain contains the shared vocabulary of the automata engine.

It defines the values that cross package boundaries: input symbols, output values,
state handles, machine variants, the read-only graph view used by exporters, the
observer hooks and the two error families. The package is kept free of execution
logic so that adapters (exporters, schema loaders, metrics) can depend on it without
pulling in the engine.

# Key Entities

  - Symbol: an input symbol consumed by a transition.
  - StateID: a stable handle into a machine's state arena.
  - Variant: the tagged kind of a machine (Driver, Acceptor, Transducer, Moore, Mealy).
  - Graph: an introspection snapshot (nodes and edges) of a machine.
  - StructuralError / BehavioralError: construction and run-time failures.
*/
package domain
