package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-shooter/internal/config"
	"github.com/vovakirdan/arcade-shooter/internal/core"
	"github.com/vovakirdan/arcade-shooter/internal/games/shooter"
	"github.com/vovakirdan/arcade-shooter/internal/platform/tui"
	"github.com/vovakirdan/arcade-shooter/internal/platform/window"
	"github.com/vovakirdan/arcade-shooter/internal/registry"
	"github.com/vovakirdan/arcade-shooter/internal/storage"
)

var flagWindow bool

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: shooter).

Controls:
  Left/A, Right/D  - Move
  Space            - Fire
  P                - Pause
  X                - End the run
  R                - Restart (after game over)
  Q/Esc/Ctrl+C     - Quit

Terminals only report key presses, so a key counts as held for a while
after its last press (input.hold in the config, 500ms by default). That
covers the usual delay before key auto-repeat starts, so a held key keeps
the ship moving. Use --window for exact key state.

Examples:
  shooter play
  shooter play --window
  shooter play --config ./my-shooter.yaml --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
}

// newGame creates the game to play through the registry. The config is loaded
// here too, so a broken file fails before the frontend starts and the
// frontends can read the input and playfield settings.
func newGame(gameID string) (registry.Game, config.ShooterConfig, error) {
	if !registry.Exists(gameID) {
		return nil, config.ShooterConfig{}, fmt.Errorf("unknown game %q (run 'shooter list' to see available games)", gameID)
	}

	cfg, err := config.LoadShooter(flagConfig)
	if err != nil {
		return nil, cfg, err
	}

	game, err := registry.Create(gameID)
	return game, cfg, err
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := shooter.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	game, gameCfg, err := newGame(gameID)
	if err != nil {
		return err
	}

	// stdout belongs to the terminal UI, so logs go to a file there.
	logOut := os.Stderr
	if !flagWindow {
		f, err := openLogFile(flagLogFile)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		logger.Warn("could not open scores database", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	if flagWindow {
		return playWindow(game, store, gameCfg, logger)
	}
	return playTerminal(game, store, gameCfg, logger)
}

func playTerminal(game registry.Game, store *storage.Store, gameCfg config.ShooterConfig, logger *log.Logger) error {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	opts := tui.DefaultOptions()
	opts.Logger = logger
	opts.Hold = gameCfg.Input.Hold

	if err := tui.Run(game, store, cfg, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func playWindow(game registry.Game, store *storage.Store, gameCfg config.ShooterConfig, logger *log.Logger) error {
	w, h := int(gameCfg.Playfield.Width), int(gameCfg.Playfield.Height)
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = w, h
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	opts := window.Options{Logger: logger, Width: w, Height: h}
	if err := window.Run(game, store, cfg, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
