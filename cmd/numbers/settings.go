package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-numbers/internal/config"
	"github.com/vovakirdan/tui-numbers/internal/core"
	"github.com/vovakirdan/tui-numbers/internal/storage"
)

// settings bundles what every command needs after flag parsing.
type settings struct {
	cfg    config.NumbersConfig
	logger *log.Logger
}

// loadSettings loads the config file and builds the logger. It exits on
// error.
func loadSettings() settings {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "numbers",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.SetLevel(level)

	cfg, err := config.LoadNumbers(flagConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	logger.Debug("config loaded", "db", cfg.DBPath(), "presets", cfg.PresetDir())

	return settings{cfg: cfg, logger: logger}
}

// runtime builds the game config for the current terminal.
func (s settings) runtime() core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	s.cfg.Apply(&rc)
	return rc
}

// openStore opens the results database. A failure is logged and a nil
// store returned, so play goes on without recording.
func (s settings) openStore() *storage.Store {
	store, err := storage.Open(s.cfg.DBPath())
	if err != nil {
		s.logger.Warn("could not open results database", "path", s.cfg.DBPath(), "error", err)
		return nil
	}
	return store
}

// mustOpenStore opens the results database or exits.
func (s settings) mustOpenStore() *storage.Store {
	store, err := storage.Open(s.cfg.DBPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	return store
}
