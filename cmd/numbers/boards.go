package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-numbers/internal/games/numbers/boards"
)

var flagShowBoard string

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "List preset boards",
	Long: `List the built-in preset boards and any found in the preset
directory (board.preset_dir, default $XDG_CONFIG_HOME/numbers/boards).
Files there replace built-ins with the same ID.

Examples:
  numbers boards
  numbers boards --show classic > ~/.config/numbers/boards/mine.yaml`,
	Args: cobra.NoArgs,
	Run:  runBoards,
}

func init() {
	boardsCmd.Flags().StringVar(&flagShowBoard, "show", "", "Print one preset as YAML")
}

func runBoards(_ *cobra.Command, _ []string) {
	s := loadSettings()
	loader := boards.NewLoader(s.cfg.PresetDir())

	if flagShowBoard != "" {
		p, err := loader.LoadByID(flagShowBoard)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		out, err := yaml.Marshal(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(string(out))
		return
	}

	presets, err := loader.LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading presets: %v\n", err)
		os.Exit(1)
	}

	maxIDLen := 2
	for _, p := range presets {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Println("Preset boards:")
	fmt.Println()
	fmt.Printf("  %-*s  %-6s  %-11s  %s\n", maxIDLen, "ID", "Tiles", "Edges", "Name")
	fmt.Printf("  %-*s  %-6s  %-11s  %s\n", maxIDLen, "--", "-----", "-----", "----")
	for _, p := range presets {
		b, err := p.NewBoard()
		if err != nil {
			s.logger.Warn("skipping preset", "id", p.ID, "error", err)
			continue
		}
		edges := p.EdgePolicy
		if edges == "" {
			edges = "-"
		}
		fmt.Printf("  %-*s  %-6d  %-11s  %s\n", maxIDLen, p.ID, b.Len(), edges, p.Name)
	}

	fmt.Println()
	fmt.Println("Run 'numbers play --board <id>' to play one.")
}
