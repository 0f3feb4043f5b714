package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ceon-town/internal/games/town"
	"github.com/vovakirdan/ceon-town/internal/storage"
)

var (
	flagTop    int
	flagRecent int
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and recent runs",
	Long: `Display the best scores, a summary of every recorded run and,
with --recent, the latest runs.

Examples:
  town scores
  town scores --top 25
  town scores --recent 10
  town scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagTop, "top", 10, "Number of high scores to show")
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 0, "Also list this many recent runs")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores and runs")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(town.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	scores, err := store.TopScores(town.ID, flagTop)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Ceon Town")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'town play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %s\n", "Rank", "Score", "Wave", "Kills", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %s\n", "----", "-----", "----", "-----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-8d  %-5d  %-5d  %s\n", i+1, e.Score, e.Wave, e.Kills, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(town.ID); err == nil && stats.RunsCount > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Best wave: %d  Total kills: %d  Average run: %s\n",
			stats.RunsCount, stats.BestWave, stats.TotalKills, formatTicks(int(stats.AvgTicks)))
	}

	if flagRecent > 0 {
		printRecent(store, flagRecent)
	}
}

func printRecent(store *storage.Store, n int) {
	runs, err := store.RecentRuns(town.ID, n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("Recent runs")
	fmt.Println()
	fmt.Printf("  %-12s  %-8s  %-5s  %-6s  %-5s  %s\n", "Player", "Score", "Wave", "Time", "End", "Run")
	for _, r := range runs {
		fmt.Printf("  %-12s  %-8d  %-5d  %-6s  %-5s  %s\n",
			r.Player, r.Score, r.Wave, formatTicks(r.Ticks), r.EndReason, r.ID)
	}
}

// formatTicks renders a tick count at the configured rate as m:ss.
func formatTicks(ticks int) string {
	rate := max(1, flagFPS)
	secs := ticks / rate
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
