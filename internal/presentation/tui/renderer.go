package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// It picks a light or dark style from the terminal background.
func NewRenderer() func(string) (string, error) {
	return newRenderer(glamour.WithAutoStyle())
}

// NewPlainRenderer renders markdown without ANSI styling, for pipes and tests.
func NewPlainRenderer() func(string) (string, error) {
	return newRenderer(glamour.WithStandardStyle("notty"))
}

func newRenderer(style glamour.TermRendererOption) func(string) (string, error) {
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(100))
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, err
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
