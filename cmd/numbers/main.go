// numbers is a terminal number-matching puzzle.
//
// Usage:
//
//	numbers list              - List game variants
//	numbers play              - Play a board
//	numbers menu              - Pick a variant and board interactively
//	numbers autoplay          - Let the autopilot play headless games
//	numbers boards            - List preset boards
//	numbers scores [variant]  - Show recent results and stats
//	numbers serve             - Serve over SSH or HTTP
//	numbers config            - Show or create the config file
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for the autopilot
//	--db <path>         - Set database path (default: $XDG_DATA_HOME/numbers/results.db)
//	--config <path>     - Use a specific config file
//	--log-level <level> - debug, info, warn or error
//
// NUMBERS_CONFIG and NUMBERS_DB set --config and --db when the flags are
// not given. A .env file in the working directory is read first.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-numbers/internal/games/numbers"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfigPath string
	flagLogLevel   string
)

func main() {
	_ = godotenv.Load() // .env is optional

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "numbers",
	Short: "Numbers - a number-matching puzzle for your terminal",
	Long: `Numbers is a terminal puzzle. Clear the board by matching pairs of
equal digits, or digits that sum to ten, that can see each other along a
row, a column or the reading order. When no pair is left the remaining
digits are appended to the board.

Available commands:
  list      - Show game variants
  play      - Play a board directly
  menu      - Interactive variant and board picker
  autoplay  - Headless autopilot games
  boards    - List preset boards
  scores    - View results
  serve     - Start an SSH or HTTP server
  config    - Show or create the config file

Examples:
  numbers play
  numbers play --board infinite --bounded
  numbers menu
  numbers autoplay --games 20 --seed 7
  numbers serve --ssh :23234
  numbers serve --http :8080`,
	PersistentPreRun: applyEnv,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(autoplayCmd)
	rootCmd.AddCommand(boardsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// applyEnv fills unset global flags from the environment.
func applyEnv(cmd *cobra.Command, _ []string) {
	flags := cmd.Flags()
	if !flags.Changed("config") {
		if v := os.Getenv("NUMBERS_CONFIG"); v != "" {
			flagConfigPath = v
		}
	}
	if !flags.Changed("db") {
		if v := os.Getenv("NUMBERS_DB"); v != "" {
			flagDBPath = v
		}
	}
}
