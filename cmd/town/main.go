// town runs Ceon Town, a top-down action game played in the terminal.
//
// Usage:
//
//	town play               - Walk into town and fight
//	town menu               - Title menu with difficulty and scoreboard
//	town serve              - Start SSH server for remote play
//	town scores             - Show high scores and recent runs
//	town map                - Print the town map
//	town config             - Print the default tuning YAML
//	town list               - List available games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.town/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/ceon-town/internal/games/town"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "town",
	Short: "Ceon Town - a top-down action game in your terminal",
	Long: `Ceon Town is a small town you can walk around in your terminal.
Enter the buildings, pick up the weapons that turn up inside and hold
off the waves of bugs, legacy code, tech debt and null pointers.

Available commands:
  play     - Start a run directly
  menu     - Title menu with difficulty and scoreboard
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs
  map      - Print the town map
  config   - Print the default tuning YAML

Examples:
  town play
  town play --difficulty hard --log town.log
  town menu
  town serve --ssh :2222
  town scores --recent 20`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.town/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(configCmd)
}
