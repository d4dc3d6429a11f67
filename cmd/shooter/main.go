// shooter is a small real-time arcade shooter for the terminal or a window.
//
// Usage:
//
//	shooter list              - List available games
//	shooter play [game]       - Play a game (default: shooter)
//	shooter simulate          - Run the simulation headless and print the result
//	shooter scores [game]     - Show high scores for a game
//	shooter config [game]     - Print the default config YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/shooter.db)
//	--config <path>       - Use a custom game config YAML
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Log destination while the terminal UI runs
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-shooter/internal/games/shooter"
	"github.com/vovakirdan/arcade-shooter/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Arcade shooter for the terminal",
	Long: `Shooter is a small real-time arcade game. Slide your ship along the
bottom of the playfield and shoot the enemies descending from above.

Available commands:
  list      - Show all available games
  play      - Play in the terminal or in a window
  simulate  - Run a headless simulation
  scores    - View high scores
  config    - Print the default config

Examples:
  shooter play
  shooter play --window
  shooter simulate --seconds 30 --fire --seed 42
  shooter scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Games created through the registry load this file on Reset.
		shooter.SetConfigPath(flagConfig)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", defaultLogFile, "Log file used while the terminal UI runs")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
