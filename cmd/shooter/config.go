package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-shooter/internal/config"
	"github.com/vovakirdan/arcade-shooter/internal/games/shooter"
)

var configCmd = &cobra.Command{
	Use:   "config [game]",
	Short: "Print the default config for a game",
	Long: `Print the built-in configuration of a game (default: shooter) as YAML.
Save it to ~/.arcade/configs/<game>.yaml or pass it with --config, then
edit the keys you want to change.

Examples:
  shooter config > ~/.arcade/configs/shooter.yaml
  shooter play --config ~/.arcade/configs/shooter.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	gameID := shooter.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		return fmt.Errorf("no default config for game %q", gameID)
	}
	_, err := cmd.OutOrStdout().Write(data)
	return err
}
