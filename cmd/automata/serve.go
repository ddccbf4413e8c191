package main

import (
	"context"

	"github.com/aretw0/automata/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve [definition...]",
	Short: "Start the HTTP server",
	Long: `Serves the TCP machine plus every definition given as an argument or in
AUTOMATA_DEFINITIONS. Each request runs on a fresh machine.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := appConfig.HTTPAddr
		if cmd.Flags().Changed("addr") {
			addr, _ = cmd.Flags().GetString("addr")
		}
		metrics := appConfig.Metrics
		if cmd.Flags().Changed("metrics") {
			metrics, _ = cmd.Flags().GetBool("metrics")
		}

		ctx, stop := cli.SignalContext(context.Background())
		defer stop()

		return cli.Serve(ctx, cli.ServeOptions{
			Options:     commonOptions(cmd),
			Addr:        addr,
			Definitions: append(appConfig.Definitions, args...),
			Metrics:     metrics,
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", ":8080", "Address to listen on (env AUTOMATA_HTTP_ADDR)")
	serveCmd.Flags().Bool("metrics", true, "Expose /metrics (env AUTOMATA_METRICS)")
}
