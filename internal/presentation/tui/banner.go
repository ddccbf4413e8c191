package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner with the version underneath.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	// Using a subtle gradient-like color scheme (Indigo/Violet)
	lines := []struct {
		text  string
		color string
	}{
		{"   __ _ _   _| |_ ___  _ __ ___   __ _| |_ __ _", "#818cf8"},
		{"  / _` | | | | __/ _ \\| '_ ` _ \\ / _` | __/ _` |", "#a78bfa"},
		{" | (_| | |_| | || (_) | | | | | | (_| | || (_| |", "#c084fc"},
		{"  \\__,_|\\__,_|\\__\\___/|_| |_| |_|\\__,_|\\__\\__,_|", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  v"+strings.TrimSpace(version)).Faint())
	fmt.Fprintln(w)
}
