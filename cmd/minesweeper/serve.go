package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-minesweeper/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the minesweeper SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the difficulty menu. The SSH
user name is the player name. All users share the same database and Expert
ledger.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.minesweeper/ssh_host_key

Examples:
  minesweeper serve                           # Listen on :23234
  minesweeper serve --ssh :2222               # Listen on port 2222
  minesweeper serve --host-key ./my_host_key  # Use specific host key
  minesweeper serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from settings)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (default from settings)")
}

func runServe(cmd *cobra.Command, _ []string) {
	logger := newLogger()
	settings := loadSettings(cmd, logger)
	minesweeper.SetLogger(logger.WithPrefix("minesweeper-engine"))

	flags := cmd.Flags()
	if flags.Changed("ssh") {
		settings.SSH.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		settings.SSH.HostKey = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		settings.SSH.IdleTimeoutMinutes = flagIdleTimeout
	}

	store := openStore(settings, logger)
	if store != nil {
		defer store.Close()
	}

	cfg := tui.SSHServerConfig{
		Address:     settings.SSH.Address,
		HostKeyPath: settings.SSH.HostKey,
		IdleTimeout: settings.SSH.IdleTimeout(),
		TickRate:    settings.TickRate,
		Seed:        settings.Seed,
		InitialMode: settings.Difficulty,
	}

	server, err := tui.NewSSHServer(cfg, store, logger.WithPrefix("minesweeper-ssh"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting minesweeper SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
