package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/internal/presentation/tui"
	"github.com/aretw0/automata/pkg/domain"
)

// RunOptions contains the configuration for the run command.
type RunOptions struct {
	Options
	Definition string
	Symbols    []string
	SkipNone   bool
	JSON       bool
}

// RunResult is the outcome of a run.
type RunResult struct {
	Machine    string          `json:"machine"`
	FinalState string          `json:"final_state,omitempty"`
	Accepted   *bool           `json:"accepted,omitempty"`
	Outputs    []domain.Output `json:"outputs,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// Run feeds symbols to a machine and reports the final state together with
// the acceptance verdict or the produced outputs.
func Run(opts RunOptions) error {
	o := opts.withDefaults()

	m, err := loadMachine(opts.Definition, o.Logger, o.Debug)
	if err != nil {
		return err
	}

	res, runErr := execute(m, domain.Symbols(opts.Symbols...), opts.SkipNone)
	if runErr != nil {
		res.Error = runErr.Error()
	}

	if opts.JSON {
		enc := json.NewEncoder(o.Out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
		return runErr
	}

	palette := tui.NewPalette(o.Out)
	fmt.Fprintf(o.Out, "machine:     %s (%s)\n", res.Machine, m.Variant())
	fmt.Fprintf(o.Out, "final state: %s\n", palette.State(res.FinalState))
	if res.Accepted != nil {
		fmt.Fprintf(o.Out, "accepted:    %t\n", *res.Accepted)
	}
	if m.Variant().ProducesOutput() {
		fmt.Fprintf(o.Out, "outputs:     %s\n", palette.Output(formatOutputs(res.Outputs)))
	}

	return runErr
}

func execute(m *automata.Machine, symbols []domain.Symbol, skipNone bool) (RunResult, error) {
	res := RunResult{Machine: m.Name()}

	var err error
	switch {
	case m.Variant().CanAccept():
		var ok bool
		if ok, err = m.Accepts(symbols); err == nil {
			res.Accepted = &ok
		}
	case m.Variant().ProducesOutput():
		var opts []automata.OutputOption
		if skipNone {
			opts = append(opts, automata.SkipNone())
		}
		res.Outputs, err = m.Transduce(symbols, opts...)
	default:
		err = m.Process(symbols)
	}

	if cur := m.Current(); cur != nil {
		res.FinalState = cur.Name()
	}
	return res, err
}

func formatOutputs(outputs []domain.Output) string {
	parts := make([]string, len(outputs))
	for i, o := range outputs {
		if o == nil {
			parts[i] = "-"
			continue
		}
		parts[i] = fmt.Sprint(o)
	}
	return strings.Join(parts, " ")
}
