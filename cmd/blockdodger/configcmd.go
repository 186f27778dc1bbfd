package main

import (
	"github.com/spf13/cobra"

	"github.com/hsmto25519/block-game/internal/config"
	"github.com/hsmto25519/block-game/internal/games/dodger"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration a game would start with, after the config
file search and the difficulty preset, as YAML. The output is a valid
config file.

Examples:
  blockdodger config
  blockdodger config --difficulty hard > ~/.blockdodger/configs/dodger.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	addGameFlags(configCmd, false)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := dodger.LoadConfig(gameOptions())
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
