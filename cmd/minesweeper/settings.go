package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-minesweeper/internal/highscore"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

// newLogger builds the CLI logger on stderr.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "minesweeper",
	})
}

// loadSettings reads the settings file and applies the flags the user set.
func loadSettings(cmd *cobra.Command, logger *log.Logger) config.Settings {
	s, err := config.Load(flagConfig)
	if err != nil {
		logger.Warn("using default settings", "error", err)
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		s.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		s.Seed = flagSeed
	}
	if flags.Changed("db") {
		s.DBPath = flagDBPath
	}
	if flags.Changed("name") {
		s.PlayerName = flagName
	}

	if err := minesweeper.SetCustomDifficulty(s.Custom); err != nil {
		logger.Warn("ignoring custom board from settings", "error", err)
	}
	return s
}

// saveSettings remembers the player and the last difficulty.
func saveSettings(s config.Settings, logger *log.Logger) {
	if err := config.Save(flagConfig, s); err != nil {
		logger.Warn("could not save settings", "error", err)
	}
}

// player returns the sanitized player name.
func player(s config.Settings) string {
	name, err := highscore.SanitizeName(s.PlayerName)
	if err != nil {
		return "Anonymous"
	}
	return name
}

// openStore opens the database, or returns nil with a warning.
func openStore(s config.Settings, logger *log.Logger) *storage.Store {
	store, err := storage.Open(s.DBPath)
	if err != nil {
		logger.Warn("could not open scores database, results will not be kept", "error", err)
		return nil
	}
	return store
}

// gameLogger returns the logger used while a TUI owns the terminal: a debug
// logger on the --log file, or nil.
func gameLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return nil, func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, func() {}, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "minesweeper",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig(s config.Settings) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = s.TickRate
	cfg.Seed = s.Seed
	return cfg
}
