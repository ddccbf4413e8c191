package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/automata/pkg/schema"
)

// ErrInvalid is returned when at least one definition failed validation.
var ErrInvalid = errors.New("validation failed")

// Validate checks every definition and lists each problem found.
func Validate(out io.Writer, paths ...string) error {
	if len(paths) == 0 {
		return ErrNoDefinition
	}

	failed := 0
	for _, p := range paths {
		def, err := schema.Load(p)
		if err == nil {
			err = schema.Validate(def)
		}
		if err == nil {
			fmt.Fprintf(out, "%s: ok\n", p)
			continue
		}

		failed++
		problems := schema.ValidationErrors(err)
		if len(problems) == 0 {
			problems = []error{err}
		}
		fmt.Fprintf(out, "%s: %d problem(s)\n", p, len(problems))
		for _, e := range problems {
			fmt.Fprintf(out, "  - %v\n", e)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d definition(s)", ErrInvalid, failed, len(paths))
	}
	return nil
}
