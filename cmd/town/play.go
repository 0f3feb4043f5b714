package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ceon-town/internal/config"
	"github.com/vovakirdan/ceon-town/internal/core"
	"github.com/vovakirdan/ceon-town/internal/games/town"
	"github.com/vovakirdan/ceon-town/internal/platform/tui"
	"github.com/vovakirdan/ceon-town/internal/registry"
	"github.com/vovakirdan/ceon-town/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
	flagName       string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Walk into Ceon Town and start a run.

Controls:
  WASD/Arrows  - Move
  Space/Click  - Fire toward the mouse (or where you face)
  E/Enter      - Enter a building, pick up its weapon
  Esc          - Close a building, leave after death
  P            - Pause
  R            - Respawn after death
  Ctrl+S       - Save a screenshot to ~/.town/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More health, slower and weaker waves
  normal - The default tuning
  hard   - Less health, faster and bigger waves

The terminal cannot play sound, so the game is silent. Events (waves,
kills, pickups, deaths) can be written to a log file with --log.

Examples:
  town play
  town play --difficulty hard
  town play --config ./my-town.yaml
  town play --log town.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom town config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write game events to this file")
	playCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Event log level: debug, info, warn")
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name stored with your runs (default: $USER)")

	menuCmd.Flags().AddFlagSet(playCmd.Flags())
}

// terminalConfig sizes the runtime config from the attached terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database; the game still runs without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// setupGame applies the shared play flags to the town package and
// returns the event logger with its closer.
func setupGame() (config.DifficultyPreset, *log.Logger, func(), error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return "", nil, nil, err
	}
	town.SetConfigPath(flagConfig)
	town.SetDifficultyPreset(preset)

	if flagLogFile == "" {
		return preset, log.New(io.Discard), func() {}, nil
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return "", nil, nil, fmt.Errorf("bad --log-level: %w", err)
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return "", nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "town",
		Level:           level,
	})
	town.SetEventLogger(logger)

	return preset, logger, func() {
		town.SetEventLogger(nil)
		f.Close()
	}, nil
}

func playerName() string {
	if flagName != "" {
		return flagName
	}
	return os.Getenv("USER")
}

func runPlay(cmd *cobra.Command, args []string) {
	_, logger, closeLog, err := setupGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(town.ID)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	runErr := tui.Run(game, store, terminalConfig(), playerName(), logger)

	// Close before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
