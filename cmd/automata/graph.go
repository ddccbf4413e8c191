package main

import (
	"github.com/aretw0/automata/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [definition] [symbol...]",
	Short: "Export the machine diagram",
	Long: `Outputs a Graphviz DOT (default) or Mermaid diagram of the machine. Without a definition the TCP machine is drawn.
When symbols follow the definition they are run first, and the states visited and the final state are highlighted.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		noTitle, _ := cmd.Flags().GetBool("no-title")

		opts := cli.GraphOptions{Format: format, NoTitle: noTitle}
		if len(args) > 0 {
			opts.Definition = args[0]
			opts.Symbols = args[1:]
		}
		return cli.Graph(cmd.OutOrStdout(), opts)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringP("format", "f", "dot", "Diagram format: dot or mermaid")
	graphCmd.Flags().Bool("no-title", false, "Omit the graph title (dot only)")
}
