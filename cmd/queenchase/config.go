package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/queenchase/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration Queen Chase would run with, as YAML.

Search order: --config path, ~/.queenchase/configs/chase.yaml,
./configs/chase.yaml, built-in defaults.

Examples:
  queenchase config
  queenchase config --defaults > ~/.queenchase/configs/chase.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML())
		return err
	}

	cfg, err := config.LoadChase(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
