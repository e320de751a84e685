// minesweeper is the classic mine-clearing game for the terminal.
//
// Usage:
//
//	minesweeper list               - List difficulties
//	minesweeper play [difficulty]  - Play a board
//	minesweeper menu               - Pick difficulties interactively
//	minesweeper scores             - Show the Expert ledger and stats
//	minesweeper serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 30)
//	--seed <value>   - Set RNG seed for reproducible boards
//	--db <path>      - Set database path (default: ~/.minesweeper/scores.db)
//	--config <path>  - Use a specific settings file
//	--name <player>  - Player name for high scores
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagName    string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minesweeper",
	Short: "Minesweeper - clear the minefield in your terminal",
	Long: `Minesweeper for the terminal. Open every safe cell without
touching a mine. The first cell you open is never a mine.

Available commands:
  list     - Show the difficulties
  play     - Play a board directly
  menu     - Interactive difficulty picker
  scores   - Expert high scores and statistics
  serve    - Start SSH server for remote play

Examples:
  minesweeper play expert
  minesweeper play custom --width 24 --height 20 --mines 99
  minesweeper menu --name ace
  minesweeper serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from settings)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagName, "name", "", "Player name for high scores")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log", "", "Write debug logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
