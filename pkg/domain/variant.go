package domain

import "fmt"

// Variant tags the execution behaviour of a machine.
type Variant int

const (
	// Driver runs transitions and produces nothing.
	Driver Variant = iota
	// Acceptor reports whether the final state is accepting.
	Acceptor
	// Transducer emits the current state's name for every consumed symbol.
	Transducer
	// Moore emits the output bound to the current state.
	Moore
	// Mealy emits the output bound to the current state and consumed symbol.
	Mealy
)

var variantNames = map[Variant]string{
	Driver:     "driver",
	Acceptor:   "acceptor",
	Transducer: "transducer",
	Moore:      "moore",
	Mealy:      "mealy",
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// CanAccept reports whether the variant supports accepting states.
func (v Variant) CanAccept() bool {
	return v == Acceptor
}

// ProducesOutput reports whether the variant yields an output per symbol.
func (v Variant) ProducesOutput() bool {
	return v == Transducer || v == Moore || v == Mealy
}

// ParseVariant resolves a variant from its lowercase name.
// An empty name resolves to Driver.
func ParseVariant(name string) (Variant, error) {
	if name == "" {
		return Driver, nil
	}
	for v, n := range variantNames {
		if n == name {
			return v, nil
		}
	}
	return Driver, fmt.Errorf("unknown machine variant %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
