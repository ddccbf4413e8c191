package main

import (
	"github.com/aretw0/automata/internal/cli"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe [definition]",
	Short: "Print a summary of states and transitions",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plain, _ := cmd.Flags().GetBool("plain")

		definition := ""
		if len(args) > 0 {
			definition = args[0]
		}
		return cli.Describe(cmd.OutOrStdout(), definition, plain || !isTerminal(cmd))
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().Bool("plain", false, "Disable terminal styling")
}
