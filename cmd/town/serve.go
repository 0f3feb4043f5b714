package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ceon-town/internal/config"
	"github.com/vovakirdan/ceon-town/internal/games/town"
	"github.com/vovakirdan/ceon-town/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagRateLimit   float64
	flagRateBurst   int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Ceon Town SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the title menu.
Scores are stored per-server (all users share the same leaderboard).

Settings are read from flags, then from the environment, then from a
.env file in the working directory:
  TOWN_SSH_ADDR, TOWN_HOST_KEY, TOWN_DB, TOWN_IDLE_TIMEOUT (minutes),
  TOWN_CONFIG, TOWN_DIFFICULTY, TOWN_RATE_LIMIT (sessions/s, 0 = off),
  TOWN_RATE_BURST

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.town/host_key

Examples:
  town serve                           # Listen on :23234 with auto-generated key
  town serve --ssh :2222               # Listen on port 2222
  town serve --host-key ./my_host_key  # Use specific host key
  town serve --rate-limit 0            # No per-address session limit

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().Float64Var(&flagRateLimit, "rate-limit", defaults.RateLimit.SessionsPerSecond, "New sessions per second allowed per address (0 = off)")
	serveCmd.Flags().IntVar(&flagRateBurst, "rate-burst", defaults.RateLimit.BurstSize, "Sessions an address may open at once")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom town config YAML")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Default difficulty preset: easy, normal, hard")
}

// envString fills *dst from the environment unless its flag was given.
func envString(cmd *cobra.Command, flag, env string, dst *string) {
	if v, ok := os.LookupEnv(env); ok && !cmd.Flags().Changed(flag) {
		*dst = v
	}
}

// envNumber is envString for numeric flags.
func envNumber[T int | float64](cmd *cobra.Command, flag, env string, dst *T) error {
	v, ok := os.LookupEnv(env)
	if !ok || cmd.Flags().Changed(flag) {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", env, err)
	}
	*dst = T(f)
	return nil
}

// loadServeEnv merges .env and the environment into the serve flags.
func loadServeEnv(cmd *cobra.Command) error {
	// A missing .env is fine; real environment variables win over it.
	_ = godotenv.Load()

	envString(cmd, "ssh", "TOWN_SSH_ADDR", &flagSSHAddr)
	envString(cmd, "host-key", "TOWN_HOST_KEY", &flagHostKey)
	envString(cmd, "db", "TOWN_DB", &flagDBPath)
	envString(cmd, "config", "TOWN_CONFIG", &flagConfig)
	envString(cmd, "difficulty", "TOWN_DIFFICULTY", &flagDifficulty)

	if err := envNumber(cmd, "idle-timeout", "TOWN_IDLE_TIMEOUT", &flagIdleTimeout); err != nil {
		return err
	}
	if err := envNumber(cmd, "rate-limit", "TOWN_RATE_LIMIT", &flagRateLimit); err != nil {
		return err
	}
	return envNumber(cmd, "rate-burst", "TOWN_RATE_BURST", &flagRateBurst)
}

func runServe(cmd *cobra.Command, _ []string) {
	if err := loadServeEnv(cmd); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	town.SetConfigPath(flagConfig)

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Difficulty:  preset,
		RateLimit: tui.RateLimitConfig{
			SessionsPerSecond: flagRateLimit,
			BurstSize:         max(1, flagRateBurst),
			Enabled:           flagRateLimit > 0,
		},
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Ceon Town SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
