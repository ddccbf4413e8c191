package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/internal/logging"
	"github.com/aretw0/automata/internal/presentation/graph"
	"github.com/aretw0/automata/pkg/domain"
)

// GraphOptions configures the graph command.
type GraphOptions struct {
	Definition string
	Format     string
	NoTitle    bool
	// Symbols, when given, are run first and the path taken is highlighted.
	Symbols []string
}

// Graph writes the machine diagram in DOT or Mermaid syntax.
func Graph(out io.Writer, opts GraphOptions) error {
	if opts.Format != "" && opts.Format != "dot" && opts.Format != "mermaid" {
		return fmt.Errorf("unknown graph format %q (want dot or mermaid)", opts.Format)
	}

	_, factory, err := loadFactory(opts.Definition)
	if err != nil {
		return err
	}
	trace := graph.NewTrace()
	m, err := factory(automata.WithLogger(logging.NewNop()), automata.WithLifecycleHooks(trace.Hooks()))
	if err != nil {
		return fmt.Errorf("error initializing machine: %w", err)
	}

	var overlay *graph.GraphOverlay
	if len(opts.Symbols) > 0 {
		if err := m.Process(domain.Symbols(opts.Symbols...)); err != nil {
			return err
		}
		overlay = trace.Overlay()
	}
	g := m.Inspect()

	if opts.Format == "mermaid" {
		fmt.Fprint(out, graph.GenerateMermaid(g, overlay))
		return nil
	}
	fmt.Fprint(out, graph.GenerateDOT(g, graph.DOTOptions{NoTitle: opts.NoTitle, Overlay: overlay}))
	return nil
}
