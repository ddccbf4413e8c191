package domain

// Transition is one edge of a machine: consuming Symbol in From moves to To.
type Transition struct {
	From   StateID `json:"from" yaml:"from"`
	Symbol Symbol  `json:"symbol" yaml:"symbol"`
	To     StateID `json:"to" yaml:"to"`
}

// Edge is a transition enriched for exporters.
type Edge struct {
	Transition

	// Output is the per-symbol output registered alongside the transition.
	// HasOutput distinguishes a registered nil from no registration.
	Output    Output `json:"output,omitempty" yaml:"output,omitempty"`
	HasOutput bool   `json:"has_output,omitempty" yaml:"has_output,omitempty"`
}
