package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gatefall/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a session would use, as YAML.

Lookup order:
  1. --config <path>
  2. ~/.gatefall/config.yaml
  3. ./configs/gatefall.yaml
  4. built-in defaults

Examples:
  gatefall config > ~/.gatefall/config.yaml
  gatefall config --defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults with comments")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagConfigDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	logger, closeLog, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, source, err := loadConfig(logger)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}
