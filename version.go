package automata

import _ "embed"

// Version is the release of the automata module.
//
//go:embed VERSION
var Version string
