package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridflight/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective or default configuration",
	Long: `Print flight configuration as YAML.

Config search order:
  1. --config path
  2. ~/.gridflight/configs/flight.yaml
  3. ./configs/flight.yaml
  4. Built-in defaults

Examples:
  gridflight config show
  gridflight config show --difficulty hard
  gridflight config default > ~/.gridflight/configs/flight.yaml`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

var configDefaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Print the built-in default configuration",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Print(string(config.DefaultYAML()))
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configDefaultCmd)
}
