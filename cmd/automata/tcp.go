package main

import (
	"context"
	"os"

	"github.com/aretw0/automata/internal/cli"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var tcpCmd = &cobra.Command{
	Use:   "tcp",
	Short: "Drive the TCP connection machine from standard input",
	Long: `Reads one event per line and reports the resulting connection state.
A blank line or end of input stops the console.

Events: ` + cli.EventNames(),
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := cli.SignalContext(context.Background())
		defer stop()

		return cli.RunConsole(ctx, cli.ConsoleOptions{
			Options:     commonOptions(cmd),
			Interactive: isTerminal(cmd),
		})
	},
}

// isTerminal reports whether the command reads from an interactive terminal.
func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func init() {
	rootCmd.AddCommand(tcpCmd)
}
