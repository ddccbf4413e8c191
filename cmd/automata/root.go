package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/automata/internal/cli"
	"github.com/aretw0/automata/internal/config"
	"github.com/aretw0/automata/internal/logging"
	"github.com/spf13/cobra"
)

var (
	appConfig config.Config
	logger    *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "automata",
	Short: "Automata is a deterministic finite-state machine toolkit",
	Long: `Automata builds drivers, acceptors, transducers, Moore and Mealy machines
from YAML or JSON definitions, runs them, draws them and serves them over HTTP.
A TCP connection machine is built in and used whenever no definition is given.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging of every transition")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (env AUTOMATA_LOG_LEVEL)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text or json (env AUTOMATA_LOG_FORMAT)")
	rootCmd.PersistentFlags().String("env-file", "", "Read settings from this dotenv file instead of ./.env")
}

// loadConfig reads the environment and lets explicit flags override it.
func loadConfig(cmd *cobra.Command) error {
	var err error
	if envFile, _ := cmd.Flags().GetString("env-file"); envFile != "" {
		appConfig, err = config.LoadFile(envFile)
	} else {
		appConfig, err = config.Load()
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		appConfig.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("log-level") {
		appConfig.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		appConfig.LogFormat, _ = flags.GetString("log-format")
	}

	if _, err := logging.ParseLevel(appConfig.LogLevel); err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	if _, err := logging.ParseFormat(appConfig.LogFormat); err != nil {
		return fmt.Errorf("invalid --log-format: %w", err)
	}

	logger = appConfig.Logger()
	return nil
}

// commonOptions builds the cli options for cmd.
func commonOptions(cmd *cobra.Command) cli.Options {
	return cli.Options{
		Debug:  appConfig.Debug,
		Logger: logger,
		In:     cmd.InOrStdin(),
		Out:    cmd.OutOrStdout(),
	}
}
