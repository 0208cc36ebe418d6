package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tabdeck/tabdeck-tui/internal/config"
	"github.com/tabdeck/tabdeck-tui/internal/storage"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export the settings to a snapshot file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := config.NewStore(logger)
		settings, err := loadSettings(store)
		if err != nil {
			return err
		}

		manager := storage.NewManager(settings, store.ConfigFile, logger)
		if err := manager.Export(args[0]); err != nil {
			return err
		}
		fmt.Printf("Settings exported to %s\n", args[0])
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import settings from a snapshot file and save them",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := config.NewStore(logger)
		settings, err := loadSettings(store)
		if err != nil {
			return err
		}

		manager := storage.NewManager(settings, store.ConfigFile, logger)
		if err := manager.Import(args[0]); err != nil {
			return err
		}
		if err := store.Save(settings); err != nil {
			return err
		}
		fmt.Printf("Settings imported from %s\n", args[0])
		return nil
	},
}
