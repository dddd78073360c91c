package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-numbers/internal/api"
	"github.com/vovakirdan/tui-numbers/internal/core"
	"github.com/vovakirdan/tui-numbers/internal/games/numbers/boards"
	"github.com/vovakirdan/tui-numbers/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
	flagReqTimeout  int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH or HTTP server",
	Long: `Start a server for remote play.

With --ssh, every SSH connection gets its own session with the variant
and board picker. With --http, boards are played through a JSON API.
Results are stored per server (all players share the same results).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at $XDG_DATA_HOME/numbers/host_key

Examples:
  numbers serve                          # SSH on :23234
  numbers serve --ssh :2222              # SSH on port 2222
  numbers serve --http :8080             # JSON API on port 8080
  numbers serve --host-key ./host_key    # Use specific host key

Users can connect with:
  ssh localhost -p 23234
  curl -X POST localhost:8080/games`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP API address (host:port); replaces the SSH server")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagReqTimeout, "request-timeout", 10, "HTTP handler timeout in seconds")
}

func runServe(_ *cobra.Command, _ []string) {
	s := loadSettings()
	if flagHTTPAddr != "" {
		serveHTTP(s)
		return
	}
	serveSSH(s)
}

func serveSSH(s settings) {
	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	s.cfg.Apply(&rc)

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      s.cfg.DBPath(),
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Runtime:     rc,
		Debounce:    s.cfg.Debounce(),
		Logger:      s.logger.WithPrefix("numbers-ssh"),
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Numbers SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

func serveHTTP(s settings) {
	store := s.openStore()
	if store != nil {
		defer store.Close()
	}

	srv := api.New(api.NewMemoryStore(), api.Config{
		Loader:  boards.NewLoader(s.cfg.PresetDir()),
		Results: store,
		Logger:  s.logger.WithPrefix("numbers-http"),
		Timeout: time.Duration(flagReqTimeout) * time.Second,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting Numbers HTTP API on %s\n", flagHTTPAddr)
	fmt.Println("Press Ctrl+C to stop")

	if err := srv.ListenAndServe(ctx, flagHTTPAddr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
