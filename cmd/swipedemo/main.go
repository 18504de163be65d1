// Command swipedemo shows swipe rows in an SDL window and replays gesture
// scripts headlessly.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/BrandonKowalski/swipecell/pkg/swipecell"
	"github.com/spf13/cobra"
)

var (
	settingsPath string
	logLevel     string
	logFile      string
	jsonOutput   bool

	settings swipecell.Settings
	logger   *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "swipedemo",
	Short:         "Swipeable list row demo and gesture replay tool",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logFile != "" {
			swipecell.SetLogPath(logFile)
		}
		swipecell.SetRawLogLevel(logLevel)
		logger = swipecell.GetLogger()

		var err error
		if settingsPath != "" {
			settings, err = swipecell.LoadSettings(settingsPath)
		} else {
			settings, err = swipecell.SettingsFromEnv()
		}
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		swipecell.CloseLogger()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "TOML settings file (default $SWIPECELL_SETTINGS)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replayCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
