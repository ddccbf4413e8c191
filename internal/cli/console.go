package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/internal/presentation/tui"
	"github.com/aretw0/automata/internal/tcp"
)

// ConsoleOptions configures the TCP console.
type ConsoleOptions struct {
	Options
	// Interactive prints the banner and a prompt. Set it when In is a terminal.
	Interactive bool
}

// RunConsole drives a TCP connection from one event per line until EOF, a
// blank line or an interrupt.
func RunConsole(ctx context.Context, opts ConsoleOptions) error {
	o := opts.withDefaults()

	conn, err := tcp.New(machineOptions(o.Logger, o.Debug)...)
	if err != nil {
		return fmt.Errorf("error initializing machine: %w", err)
	}

	if opts.Interactive {
		tui.PrintBanner(o.Out, automata.Version)
		fmt.Fprintf(o.Out, ">>> %s ready in state %s. Enter one event per line, blank line to quit.\n",
			conn.Name(), conn.StateName())
	}

	console := tcp.NewConsole(conn, o.In, o.Out,
		tcp.WithPalette(tui.NewPalette(o.Out)),
		tcp.WithPrompt(opts.Interactive),
		tcp.WithConsoleLogger(o.Logger),
	)

	err = console.Run(ctx)
	if errors.Is(err, context.Canceled) {
		// Interrupts are a normal way to leave the console.
		err = nil
		if sig := Interrupted(ctx); sig != nil {
			o.Logger.Info("console interrupted", "signal", sig.String())
			fmt.Fprintf(o.Out, "\n>>> Interrupted (%s).\n", sig)
		}
	}
	if opts.Interactive {
		fmt.Fprintf(o.Out, ">>> Finished in state %s (sent %d, received %d).\n",
			conn.StateName(), conn.Sent, conn.Received)
	}
	return err
}

// EventNames lists the console events, for help text.
func EventNames() string {
	names := make([]string, len(tcp.Events))
	for i, e := range tcp.Events {
		names[i] = string(e)
	}
	return strings.Join(names, ", ")
}
