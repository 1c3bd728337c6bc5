package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-quoridor/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after the search order and flag overrides
have been applied. The output is valid input for --config.

Examples:
  quoridor config > ~/.quoridor/config.yaml
  quoridor config --config ./my-quoridor.yaml --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
