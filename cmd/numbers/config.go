package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-numbers/internal/config"
)

var flagConfigInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the config file",
	Long: `Print the effective configuration as YAML. With --init, write the
default config to $XDG_CONFIG_HOME/numbers/numbers.yaml unless a file is
already there.

Examples:
  numbers config
  numbers config --init`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigInit, "init", false, "Write the default config file")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigInit {
		path, err := config.WriteDefault()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config file: %s\n", path)
		return
	}

	s := loadSettings()
	out, err := yaml.Marshal(s.cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}
