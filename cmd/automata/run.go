package main

import (
	"github.com/aretw0/automata/internal/cli"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <definition|tcp> [symbols...]",
	Short: "Feed symbols to a machine and report the result",
	Long: `Builds the machine described by a YAML or JSON definition (or the built-in
TCP machine when the argument is "tcp"), feeds it the given symbols and prints
the final state plus the acceptance verdict or the produced outputs.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		skipNone, _ := cmd.Flags().GetBool("skip-none")
		asJSON, _ := cmd.Flags().GetBool("json")

		return cli.Run(cli.RunOptions{
			Options:    commonOptions(cmd),
			Definition: args[0],
			Symbols:    args[1:],
			SkipNone:   skipNone,
			JSON:       asJSON,
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Bool("skip-none", false, "Omit empty outputs")
	runCmd.Flags().Bool("json", false, "Print the result as JSON")
}
