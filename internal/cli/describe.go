package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/automata/internal/logging"
	"github.com/aretw0/automata/internal/presentation/tui"
)

// Describe renders a markdown summary of the machine. Plain output skips
// terminal styling.
func Describe(out io.Writer, definition string, plain bool) error {
	m, err := loadMachine(definition, logging.NewNop(), false)
	if err != nil {
		return err
	}

	render := tui.NewRenderer()
	if plain {
		render = tui.NewPlainRenderer()
	}

	md := tui.DescribeMarkdown(m.Inspect())
	rendered, err := render(md)
	if err != nil {
		// Fall back to the raw markdown.
		rendered = md
	}
	fmt.Fprintln(out, strings.TrimRight(rendered, "\n"))
	return nil
}
