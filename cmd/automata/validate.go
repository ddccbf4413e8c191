package main

import (
	"fmt"

	"github.com/aretw0/automata/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <definition>...",
	Short: "Check definitions for consistency",
	Long:  `Reports every structural problem in each definition: unknown targets, duplicate names, missing or repeated initial states.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cli.Validate(cmd.OutOrStdout(), args...); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "All definitions are valid! ✅")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
