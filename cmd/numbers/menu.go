package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-numbers/internal/platform/tui"
	"github.com/vovakirdan/tui-numbers/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant and board picker",
	Long: `Start Numbers in interactive menu mode.

Pick a variant with Up/Down and a preset board with Left/Right, then press
Enter. Press B or Esc during a game to return to the menu.

Controls:
  Up/Down/W/S     - Choose variant
  Left/Right/A/D  - Choose board
  Enter/Space     - Play
  Tab             - Results
  Q               - Quit

Examples:
  numbers menu
  numbers menu --db ./results.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	s := loadSettings()
	cfg := s.runtime()

	store := s.openStore()
	if store != nil {
		defer store.Close()
	}
	opts := tui.Options{Debounce: s.cfg.Debounce(), Logger: s.logger, InMenu: true}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Keep size and board changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			return
		}

		s.logger.Debug("starting game", "variant", game.ID(), "board", cfg.Board)
		back, err := tui.Run(game, store, cfg, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		if !back {
			return
		}
	}
}
