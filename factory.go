package automata

// Factory builds a fresh machine. Registries hold factories rather than
// machines so that every caller drives its own cursor.
type Factory func(opts ...Option) (*Machine, error)
