package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ceon-town/internal/config"
	"github.com/vovakirdan/ceon-town/internal/games/town"
)

var flagCheck string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default tuning YAML",
	Long: `Print the built-in town tuning. Save it, edit it and pass it back
with --config to change player speed, weapons, enemies or waves.

Examples:
  town config > my-town.yaml
  town config --check my-town.yaml
  town play --config my-town.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheck, "check", "", "Validate a config file instead of printing the defaults")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagCheck == "" {
		//nolint:errcheck // Nothing to do if stdout is gone
		os.Stdout.Write(config.GetDefaultYAML(town.ID))
		return
	}

	cfg, err := config.LoadTown(flagCheck)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s is valid: first wave after %d ticks, then one every %d\n",
		flagCheck, cfg.Waves.FirstDelay, cfg.Waves.Interval)
}
