package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-minesweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-minesweeper/internal/registry"
)

var (
	flagWidth  int
	flagHeight int
	flagMines  int
)

var playCmd = &cobra.Command{
	Use:   "play [difficulty]",
	Short: "Play a board",
	Long: `Start playing at the given difficulty, or the one from your settings.

Controls:
  Arrows/hjkl  - Move the cursor
  Space/Enter  - Open a cell
  F            - Flag or unflag a cell
  C            - Open around a number whose flags are all placed
  P            - Pause
  R            - New board
  B/Esc        - Leave
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a screenshot to ~/.minesweeper/screenshots

Difficulties:
  beginner      - 9x9, 10 mines
  intermediate  - 16x16, 40 mines
  expert        - 30x16, 99 mines (ranked)
  custom        - --width/--height/--mines or the custom block in settings

Examples:
  minesweeper play
  minesweeper play expert --name ace
  minesweeper play custom --width 20 --height 20 --mines 60
  minesweeper play beginner --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Custom board width")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Custom board height")
	playCmd.Flags().IntVar(&flagMines, "mines", 0, "Custom mine count")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := newLogger()
	settings := loadSettings(cmd, logger)

	modeID := settings.Difficulty
	if len(args) == 1 {
		modeID = args[0]
	}

	if modeID == config.DifficultyCustom {
		if err := applyCustomFlags(cmd, &settings); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'minesweeper list' to see available difficulties.")
		os.Exit(1)
	}

	game, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

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
	if err := tui.Run(game, runtimeConfig(settings), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	settings.Difficulty = modeID
	saveSettings(settings, logger)
}

// applyCustomFlags folds --width/--height/--mines into the custom board.
func applyCustomFlags(cmd *cobra.Command, s *config.Settings) error {
	flags := cmd.Flags()
	if flags.Changed("width") {
		s.Custom.Width = flagWidth
	}
	if flags.Changed("height") {
		s.Custom.Height = flagHeight
	}
	if flags.Changed("mines") {
		s.Custom.MineCount = flagMines
	}
	return minesweeper.SetCustomDifficulty(s.Custom)
}
