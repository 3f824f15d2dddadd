// @title           AgriBrain API
// @version         1.0
// @description     Assistant backend for the AgriBrain farm dashboard: chat, crop image analysis, weather, crop recommendation and reports.
// @BasePath        /api
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"agribrain/backend/internal/app"
	"agribrain/backend/internal/config"
)

var (
	dbPath    string
	ephemeral bool
	logLevel  string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "agribrain",
		Short:         "AgriBrain farm assistant backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path (overrides DATABASE_PATH)")
	root.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep history in memory only")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides LOG_LEVEL)")

	root.AddCommand(
		newServeCmd(),
		newAskCmd(),
		newWeatherCmd(),
		newCropCmd(),
		newAnalyzeCmd(),
		newReportCmd(),
		newHistoryCmd(),
	)
	return root
}

// loadConfig reads the configuration and applies the persistent flag
// overrides. Commands other than serve default to warnings only so their
// output stays readable.
func loadConfig(quietByDefault bool) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if dbPath != "" {
		cfg.DatabasePath = dbPath
	}
	if ephemeral {
		cfg.HistoryBackend = config.BackendMemory
	}
	switch {
	case logLevel != "":
		cfg.LogLevel = logLevel
	case quietByDefault:
		cfg.LogLevel = "WARN"
	}
	app.SetupLogger(cfg.LogLevel)
	return cfg, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
