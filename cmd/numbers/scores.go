package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-numbers/internal/platform/tui"
	"github.com/vovakirdan/tui-numbers/internal/registry"
	"github.com/vovakirdan/tui-numbers/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show recent results and stats",
	Long: `Display recent results and win/loss stats. With no variant,
results of all variants are shown.

Examples:
  numbers scores
  numbers scores numbers_bounded
  numbers scores --limit 50
  numbers scores --tui`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse results in the terminal UI")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of recent results to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the stored results")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'numbers list' to see available variants.")
			os.Exit(1)
		}
	}

	s := loadSettings()
	store := s.mustOpenStore()
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearResults(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Results cleared.")
		return
	}

	if flagScoresTUI {
		rc := s.runtime()
		if _, err := tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	results, err := store.RecentResults(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	title := "All variants"
	if gameID != "" {
		title = gameID
	}
	fmt.Printf("Recent Results - %s\n", title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'numbers play' or run 'numbers autoplay' to record one!")
		return
	}

	fmt.Printf("  %-16s  %-6s  %-5s  %-5s  %s\n", "Variant", "Result", "Moves", "Tiles", "Date")
	fmt.Printf("  %-16s  %-6s  %-5s  %-5s  %s\n", "-------", "------", "-----", "-----", "----")
	for _, r := range results {
		fmt.Printf("  %-16s  %-6s  %-5d  %-5d  %s\n",
			r.GameID, r.Outcome, r.Moves, r.Tiles, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	all, err := store.AllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()
	for _, info := range registry.List() {
		st, ok := all[info.ID]
		if !ok || (gameID != "" && info.ID != gameID) {
			continue
		}
		printStats(st)
	}
}

func printStats(st *storage.Stats) {
	best := "-"
	if st.BestWin > 0 {
		best = fmt.Sprintf("%d moves", st.BestWin)
	}
	fmt.Printf("%s: %d games, %d won, %d lost (%.0f%%), best win %s\n",
		st.GameID, st.Games, st.Wins, st.Losses, st.WinRate()*100, best)
}
