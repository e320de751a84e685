package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minesweeper/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the difficulties",
	Long:  `Shows every playable difficulty with its board size and mine count.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	loadSettings(cmd, newLogger()) // applies the configured custom board

	modes := registry.List()
	if len(modes) == 0 {
		fmt.Println("No difficulties available.")
		return
	}

	fmt.Println("Difficulties:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		maxIDLen = max(maxIDLen, len(m.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Board")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, m := range modes {
		fmt.Printf("  %-*s  %s\n", maxIDLen, m.ID, m.Description)
	}

	fmt.Println()
	fmt.Println("Run 'minesweeper play <id>' to play.")
}
