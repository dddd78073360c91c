package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-numbers/internal/games/numbers"
	"github.com/vovakirdan/tui-numbers/internal/platform/tui"
	"github.com/vovakirdan/tui-numbers/internal/registry"
)

var (
	flagBoard   string
	flagBounded bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a board",
	Long: `Start playing Numbers on a preset board.

Select a digit, then a second digit it can see along its row, its column
or the reading order. Equal digits and digits summing to ten match. When
no pair is left, the rest of the board is appended to the end.

Controls:
  Arrows/WASD   - Move the cursor
  Space/Enter   - Select or match the tile under the cursor
  Mouse click   - Select or match the clicked tile
  U/Backspace   - Undo the last match
  H/?           - Jump to a tile that can be matched
  Tab/Shift+A   - Toggle the autopilot
  R             - New game
  P             - Pause
  Q/Ctrl+C      - Quit

Examples:
  numbers play
  numbers play --board infinite
  numbers play --bounded
  numbers play --config ./my-numbers.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBoard, "board", "", "Preset board ID (see 'numbers boards')")
	playCmd.Flags().BoolVar(&flagBounded, "bounded", false, "Stop left/right neighbours at the row edge")
}

// variantID returns the registry ID for the bounded flag.
func variantID(bounded bool) string {
	if bounded {
		return numbers.IDBounded
	}
	return numbers.IDWrap
}

func runPlay(cmd *cobra.Command, args []string) {
	s := loadSettings()
	cfg := s.runtime()
	if flagBoard != "" {
		cfg.Board = flagBoard
	}

	game, err := registry.Create(variantID(flagBounded))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := s.openStore()
	if store != nil {
		defer store.Close()
	}

	s.logger.Debug("starting game", "variant", game.ID(), "board", cfg.Board)
	if _, err := tui.Run(game, store, cfg, tui.Options{Debounce: s.cfg.Debounce(), Logger: s.logger}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
