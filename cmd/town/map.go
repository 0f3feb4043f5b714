package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ceon-town/internal/games/town"
	"github.com/vovakirdan/ceon-town/internal/games/town/sim"
	"github.com/vovakirdan/ceon-town/internal/platform/tui"
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Print the town map",
	Long: `Print the whole town, one character per tile, with a legend of
the buildings. The layout is the same for every run.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(tui.RenderScreen(town.MapScreen(sim.DefaultMap())))
	},
}
