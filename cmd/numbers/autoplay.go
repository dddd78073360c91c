package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-numbers/internal/games/numbers"
	"github.com/vovakirdan/tui-numbers/internal/games/numbers/boards"
	"github.com/vovakirdan/tui-numbers/internal/games/numbers/core"
	"github.com/vovakirdan/tui-numbers/internal/storage"
)

var (
	flagGames    int
	flagMaxMoves int
	flagNoSave   bool
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Let the autopilot play headless games",
	Long: `Play games without a terminal UI. The autopilot picks a random
tile that has a partner, then a random partner, until the board is won,
lost or the move limit is reached. Finished games are recorded.

Examples:
  numbers autoplay
  numbers autoplay --games 50 --seed 42
  numbers autoplay --board infinite --bounded --max-moves 200`,
	Args: cobra.NoArgs,
	Run:  runAutoplay,
}

func init() {
	autoplayCmd.Flags().IntVar(&flagGames, "games", 10, "Number of games to play")
	autoplayCmd.Flags().IntVar(&flagMaxMoves, "max-moves", numbers.DefaultMaxMoves, "Move limit per game")
	autoplayCmd.Flags().StringVar(&flagBoard, "board", "", "Preset board ID (see 'numbers boards')")
	autoplayCmd.Flags().BoolVar(&flagBounded, "bounded", false, "Stop left/right neighbours at the row edge")
	autoplayCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record results")
}

// autoplaySummary aggregates a batch of autopilot games.
type autoplaySummary struct {
	Games, Wins, Losses, Unfinished int
	Moves                           int
	BestWin                         int // Fewest moves in a win, 0 if none
}

func (s *autoplaySummary) add(status core.Status, moves int) {
	s.Games++
	s.Moves += moves
	switch status {
	case core.StatusWon:
		s.Wins++
		if s.BestWin == 0 || moves < s.BestWin {
			s.BestWin = moves
		}
	case core.StatusLost:
		s.Losses++
	default:
		s.Unfinished++
	}
}

// playOne plays a single game on a fresh board from the preset.
func playOne(preset boards.Preset, policy core.EdgePolicy, seed int64, maxMoves int) (*core.Board, error) {
	b, err := preset.NewBoard(core.WithEdgePolicy(policy))
	if err != nil {
		return nil, err
	}
	numbers.NewAutopilot(seed).Play(b, maxMoves)
	return b, nil
}

func runAutoplay(_ *cobra.Command, _ []string) {
	s := loadSettings()
	if flagGames < 1 {
		fmt.Fprintln(os.Stderr, "Error: --games must be positive")
		os.Exit(1)
	}

	boardID := s.cfg.Board.Preset
	if flagBoard != "" {
		boardID = flagBoard
	}
	preset, err := boards.NewLoader(s.cfg.PresetDir()).LoadByID(boardID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	policy, err := core.ParseEdgePolicy(s.cfg.Board.EdgePolicy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagBounded {
		policy = core.EdgeRowBounded
	}
	gameID := variantID(policy == core.EdgeRowBounded)

	var store *storage.Store
	if !flagNoSave {
		store = s.mustOpenStore()
		defer store.Close()
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var sum autoplaySummary
	for i := range flagGames {
		b, err := playOne(preset, policy, seed+int64(i), flagMaxMoves)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		status := b.Status()
		sum.add(status, b.Moves())
		s.logger.Debug("game finished", "game", i+1, "status", status, "moves", b.Moves(), "tiles", b.Len())

		if store != nil && status.Terminal() {
			if _, err := store.SaveResult(gameID, status.String(), b.Moves(), b.Len()); err != nil {
				s.logger.Warn("could not save result", "error", err)
			}
		}
	}

	fmt.Printf("Autopilot - %s on %s (seed %d)\n", gameID, preset.Name, seed)
	fmt.Println()
	fmt.Printf("  %-10s  %d\n", "Games", sum.Games)
	fmt.Printf("  %-10s  %d\n", "Wins", sum.Wins)
	fmt.Printf("  %-10s  %d\n", "Losses", sum.Losses)
	fmt.Printf("  %-10s  %d\n", "Unfinished", sum.Unfinished)
	fmt.Printf("  %-10s  %.1f\n", "Avg moves", float64(sum.Moves)/float64(sum.Games))
	if sum.BestWin > 0 {
		fmt.Printf("  %-10s  %d moves\n", "Best win", sum.BestWin)
	}
}
