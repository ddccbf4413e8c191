package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/automata/internal/logging"
)

// Options carries the settings shared by every command.
type Options struct {
	Debug  bool
	Logger *slog.Logger
	In     io.Reader
	Out    io.Writer
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = logging.NewNop()
	}
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	return o
}
