package schema

// Definition is the declarative form of a machine.
type Definition struct {
	Name    string     `json:"name" yaml:"name" mapstructure:"name"`
	Variant string     `json:"variant,omitempty" yaml:"variant,omitempty" mapstructure:"variant"`
	States  []StateDef `json:"states" yaml:"states" mapstructure:"states"`
}

// StateDef declares one state. Names must be unique within a definition.
type StateDef struct {
	Name      string `json:"name" yaml:"name" mapstructure:"name"`
	Initial   bool   `json:"initial,omitempty" yaml:"initial,omitempty" mapstructure:"initial"`
	Accepting bool   `json:"accepting,omitempty" yaml:"accepting,omitempty" mapstructure:"accepting"`

	// Output is the state-wide output emitted by Moore machines.
	Output any `json:"output,omitempty" yaml:"output,omitempty" mapstructure:"output"`

	// Default names the fallback state for undeclared symbols.
	Default string `json:"default,omitempty" yaml:"default,omitempty" mapstructure:"default"`

	Transitions []TransitionDef `json:"transitions,omitempty" yaml:"transitions,omitempty" mapstructure:"transitions"`
}

// TransitionDef declares one edge. Output is the per-symbol output emitted by
// Mealy machines.
type TransitionDef struct {
	On     string `json:"on" yaml:"on" mapstructure:"on"`
	To     string `json:"to" yaml:"to" mapstructure:"to"`
	Output any    `json:"output,omitempty" yaml:"output,omitempty" mapstructure:"output"`
}

// Initial returns the name of the first state flagged initial.
func (d *Definition) Initial() string {
	for _, s := range d.States {
		if s.Initial {
			return s.Name
		}
	}
	return ""
}
