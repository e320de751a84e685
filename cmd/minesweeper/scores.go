package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/engine"
	"github.com/vovakirdan/tui-minesweeper/internal/highscore"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

var (
	flagRecent int
	flagReset  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the Expert high scores and statistics",
	Long: `Display the Expert ledger, per-difficulty statistics and the most
recent games.

Only Expert wins are ranked. A score is 1,000,000/time + 1,000,000/clicks,
so fast games with few clicks rank highest.

Examples:
  minesweeper scores
  minesweeper scores --recent 20
  minesweeper scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 5, "Number of recent games to list")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Restore the default Expert ledger")
}

func runScores(cmd *cobra.Command, _ []string) {
	logger := newLogger()
	settings := loadSettings(cmd, logger)

	store, err := storage.Open(settings.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := store.ClearLedger(highscore.ExpertBoard); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Expert ledger reset.")
		fmt.Println()
	}

	ledger, err := store.LoadLedger(highscore.ExpertBoard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Expert")
	fmt.Println()
	fmt.Printf("  %-4s  %-*s  %-8s  %-8s  %s\n", "Rank", highscore.MaxNameLength, "Name", "Score", "Time", "Clicks")
	fmt.Printf("  %-4s  %-*s  %-8s  %-8s  %s\n", "----", highscore.MaxNameLength, "----", "-----", "----", "------")
	for i, e := range ledger.Entries() {
		fmt.Printf("  %-4d  %-*s  %-8d  %-8s  %d\n",
			i+1, highscore.MaxNameLength, e.Name, e.Score, fmt.Sprintf("%.1fs", e.Time), e.Clicks)
	}

	fmt.Println()
	fmt.Println("Statistics")
	fmt.Println()
	fmt.Printf("  %-13s  %-6s  %-6s  %-6s  %-9s  %s\n", "Difficulty", "Games", "Wins", "Rate", "Best", "Average")
	for _, p := range engine.Presets() {
		st, err := store.Stats(p.Name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
			os.Exit(1)
		}
		best, avg := "-", "-"
		if st.Wins > 0 {
			best = fmt.Sprintf("%.1fs", st.BestTime)
			avg = fmt.Sprintf("%.1fs", st.AvgTime)
		}
		fmt.Printf("  %-13s  %-6d  %-6d  %-6s  %-9s  %s\n",
			p.Title, st.Games, st.Wins, fmt.Sprintf("%.0f%%", st.WinRate()*100), best, avg)
	}

	if flagRecent <= 0 {
		return
	}
	recent, err := store.RecentResults(flagRecent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving games: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Recent Games")
	fmt.Println()
	if len(recent) == 0 {
		fmt.Println("  No games recorded yet. Run 'minesweeper play' to start one!")
		return
	}
	for _, r := range recent {
		result := "lost"
		if r.Won {
			result = "won "
		}
		fmt.Printf("  %s  %-13s  %-*s  %s  %7.1fs  %d clicks\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Difficulty,
			highscore.MaxNameLength, r.Player, result, r.Time, r.Clicks)
	}
}
