// Package main is the entry point for the progression CLI
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-progression/internal/config"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

var (
	logFormat  string
	logLevel   string
	tuningPath string
	store      string

	settings *config.Runtime
)

var rootCmd = &cobra.Command{
	Use:   "progression",
	Short: "Skill and attribute progression engine",
	Long: `progression resolves skill uses against stored mobiles, raising skills and
stats the way a classic shard does. Settings come from PROGRESSION_* environment
variables; flags override them.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text or json")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&tuningPath, "tuning", "", "path to a tuning YAML file")
	rootCmd.PersistentFlags().StringVar(&store, "store", "", "mobile store: memory or redis")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(useCmd)
	rootCmd.AddCommand(lockCmd)
	rootCmd.AddCommand(equipCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(auditCmd)
}

// setup loads the runtime settings, applies flag overrides and installs
// the default logger
func setup(cmd *cobra.Command, _ []string) error {
	rt, err := config.LoadRuntime()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-format") {
		rt.LogFormat = logFormat
	}
	if flags.Changed("log-level") {
		rt.LogLevel = logLevel
	}
	if flags.Changed("tuning") {
		rt.TuningPath = tuningPath
	}
	if flags.Changed("store") {
		rt.Store = store
	}
	if err := rt.Validate(); err != nil {
		return err
	}

	slog.SetDefault(newLogger(rt.LogFormat, rt.LogLevel))
	settings = rt

	return nil
}

func newLogger(format, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(level)}

	// stdout carries command output
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
