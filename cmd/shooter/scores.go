package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-shooter/internal/games/shooter"
	"github.com/vovakirdan/arcade-shooter/internal/platform/tui"
	"github.com/vovakirdan/arcade-shooter/internal/registry"
	"github.com/vovakirdan/arcade-shooter/internal/storage"
)

var (
	flagScoresAll    bool
	flagScoresClear  bool
	flagScoresBrowse bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the top 10 runs for the specified game (default: shooter)
along with totals across all recorded runs.

Examples:
  shooter scores
  shooter scores --all
  shooter scores --browse
  shooter scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every recorded run")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs for the game")
	scoresCmd.Flags().BoolVar(&flagScoresBrowse, "browse", false, "Browse runs in an interactive table")
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	bestStyle   = cellStyle.Foreground(lipgloss.Color("10"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func runScores(cmd *cobra.Command, args []string) error {
	gameID := shooter.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'shooter list' to see available games)", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared all runs for %s.\n", game.Title())
		return nil
	}

	if flagScoresBrowse {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, gameID, game.Title(), width, height)
	}

	var entries []storage.ScoreEntry
	if flagScoresAll {
		entries, err = store.AllScores(gameID)
	} else {
		entries, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, titleStyle.Render("High Scores - "+game.Title()))
	fmt.Fprintln(out)

	if len(entries) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'shooter play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintln(out, scoreTable(entries))

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	printStats(out, stats)
	return nil
}

// scoreTable renders entries ranked in the order given.
func scoreTable(entries []storage.ScoreEntry) string {
	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(e.Score),
			strconv.Itoa(e.Hits),
			e.Duration.Round(time.Second).String(),
			e.Frontend,
			e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers("Rank", "Score", "Hits", "Time", "Played in", "Date").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == 0:
				return bestStyle
			default:
				return cellStyle
			}
		}).
		String()
}

func printStats(w io.Writer, s *storage.GameStats) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d   Runs: %d   Average: %.1f\n", s.HighScore, s.GamesCount, s.AvgScore)
	fmt.Fprintf(w, "Total hits: %d   Play time: %s\n", s.TotalHits, s.PlayTime.Round(time.Second))
	if !s.LastPlayed.IsZero() {
		fmt.Fprintln(w, dimStyle.Render("Last played "+s.LastPlayed.Format("2006-01-02 15:04")))
	}
}
