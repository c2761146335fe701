package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/queenchase/internal/config"
	"github.com/vovakirdan/queenchase/internal/games/chase"
	"github.com/vovakirdan/queenchase/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Queen Chase SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a variant menu and its own
game; sessions share nothing but the configuration. In a session, Q
returns to the menu and Q in the menu disconnects.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.queenchase/host_key

Examples:
  queenchase serve                           # Listen on :23234 with auto-generated key
  queenchase serve --ssh :2222               # Listen on port 2222
  queenchase serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	chaseCfg, err := config.LoadChase(flagConfig)
	if err != nil {
		return err
	}
	chase.SetConfigPath(flagConfig)

	logger, closeLog, err := newLogger(os.Stderr, "queenchase-ssh")
	if err != nil {
		return err
	}
	defer closeLog()
	chase.SetLogger(logger)

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.HoldTimeout = chaseCfg.Input.HoldTimeout()
	cfg.Logger = logger

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Starting Queen Chase SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
