package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-shooter/internal/registry"
	"github.com/vovakirdan/arcade-shooter/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all registered games.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()
	out := cmd.OutOrStdout()

	if len(games) == 0 {
		fmt.Fprintln(out, "No games available.")
		return
	}

	fmt.Fprintln(out, "Available games:")
	fmt.Fprintln(out)

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	best := bestScores()

	fmt.Fprintf(out, "  %-*s  %-10s  %s\n", maxIDLen, "ID", "Title", "Best")
	fmt.Fprintf(out, "  %-*s  %-10s  %s\n", maxIDLen, "--", "-----", "----")
	for _, g := range games {
		score := "-"
		if st, ok := best[g.ID]; ok {
			score = fmt.Sprint(st.HighScore)
		}
		fmt.Fprintf(out, "  %-*s  %-10s  %s\n", maxIDLen, g.ID, g.Title, score)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'shooter play <id>' to play a game.")
}

// bestScores loads per-game stats; listing works without a database.
func bestScores() map[string]*storage.GameStats {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil
	}
	defer store.Close()

	stats, err := store.GetAllGamesStats()
	if err != nil {
		return nil
	}
	return stats
}
