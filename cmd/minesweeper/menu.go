package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-minesweeper/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty from a menu",
	Long: `Start minesweeper in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play, Tab for the scoreboard.
Leaving a game with B or Esc returns to the menu.

Examples:
  minesweeper menu
  minesweeper menu --name ace
  minesweeper menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) {
	logger := newLogger()
	settings := loadSettings(cmd, logger)

	gl, closeLog, err := gameLogger()
	if err != nil {
		logger.Warn("debug log disabled", "error", err)
	}
	defer closeLog()
	minesweeper.SetLogger(gl)

	store := openStore(settings, logger)
	if store != nil {
		defer store.Close()
	}

	opts := tui.GameOptions{
		Store:  store,
		Player: player(settings),
		Logger: gl,
	}
	last, err := tui.RunSession(runtimeConfig(settings), opts, settings.Difficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	settings.Difficulty = last
	saveSettings(settings, logger)
}
