package tui

import (
	"io"

	"github.com/muesli/termenv"
)

// Palette colors console output. On writers that are not terminals the
// detected profile is Ascii and strings pass through unchanged.
type Palette struct {
	out *termenv.Output
}

// NewPalette detects the color profile of w.
func NewPalette(w io.Writer) *Palette {
	return &Palette{out: termenv.NewOutput(w)}
}

// NewPlainPalette never emits escape sequences.
func NewPlainPalette(w io.Writer) *Palette {
	return &Palette{out: termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))}
}

// Error styles failure messages.
func (p *Palette) Error(s string) string {
	return p.out.String(s).Foreground(p.out.Color("#fb7185")).String()
}

// State styles state names.
func (p *Palette) State(s string) string {
	return p.out.String(s).Bold().Foreground(p.out.Color("#818cf8")).String()
}

// Output styles produced outputs.
func (p *Palette) Output(s string) string {
	return p.out.String(s).Foreground(p.out.Color("#c084fc")).String()
}
