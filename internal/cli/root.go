// Package cli wires the command line surface of TabDeck
package cli

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tabdeck/tabdeck-tui/internal/config"
	"github.com/tabdeck/tabdeck-tui/internal/domain"
	"github.com/tabdeck/tabdeck-tui/internal/tui"
)

var (
	verbose bool
	cfgFile string
	logger  *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tabdeck",
	Short: "TabDeck - a start page deck for your terminal",
	Long: `TabDeck renders a configurable deck of sites and opens its
options page for editing background, animation, display scale,
general and theme settings.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOptionsPage()
	},
}

// runOptionsPage loads the settings and starts the options TUI
func runOptionsPage() error {
	store := config.NewStore(logger)

	settings, err := loadSettings(store)
	if err != nil {
		return err
	}

	model := tui.NewOptionsModel(settings, store, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		logger.Error("options page exited with error", "err", err)
		return err
	}
	return nil
}

func loadSettings(store *config.Store) (*domain.Settings, error) {
	if cfgFile != "" {
		return store.LoadFromFile(cfgFile)
	}
	return store.Load()
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if logger != nil {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Settings file (default: ~/.config/tabdeck/settings.yaml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func setupLogger() {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: verbose,
		TimeFormat:      time.Kitchen,
		Level:           level,
	})
}
