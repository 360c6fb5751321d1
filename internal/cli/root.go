// Package cli wires the application together and drives the menu loop.
package cli

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SebastienPengdwende/PROJECT-PYTHON-C/internal/changelog"
	"github.com/SebastienPengdwende/PROJECT-PYTHON-C/internal/config"
	"github.com/SebastienPengdwende/PROJECT-PYTHON-C/internal/inventory"
	"github.com/SebastienPengdwende/PROJECT-PYTHON-C/internal/repo"
	"github.com/SebastienPengdwende/PROJECT-PYTHON-C/internal/store"
)

// NewRootCommand builds the stock command. Flags override the file paths
// from configuration.
func NewRootCommand() *cobra.Command {
	var (
		cfgFile   string
		storePath string
		logPath   string
	)

	cmd := &cobra.Command{
		Use:          "stock",
		Short:        "Console inventory manager",
		Long:         "stock maintains a bounded product inventory in a flat text file\nand drives add/modify/delete/search/statistics/history operations\nthrough a numbered menu.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if storePath != "" {
				cfg.Store.Path = storePath
			}
			if logPath != "" {
				cfg.ChangeLog.Path = logPath
			}
			return run(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&cfgFile, "config", "", "path to a config file (default ./stock.yaml when present)")
	cmd.Flags().StringVar(&storePath, "store", "", "inventory store file (overrides config)")
	cmd.Flags().StringVar(&logPath, "log", "", "change log file (overrides config)")
	return cmd
}

func run(cmd *cobra.Command, cfg config.Config) error {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	productRepo := repo.NewInMemoryProductRepository(cfg.Inventory.MaxProducts)
	fileStore := store.NewFileStore(cfg.Store.Path, cfg.Inventory.MaxProducts)
	changeLog := changelog.NewFileChangeLog(cfg.ChangeLog.Path, cfg.ChangeLog.RecentWindow)
	svc := inventory.NewService(productRepo, fileStore, changeLog, logger)

	// A failed load is still a valid empty start.
	if _, err := svc.Hydrate(); err != nil {
		logger.WithError(err).Warn("could not load prior inventory, starting empty")
	}

	menu := NewMenu(svc, cfg, cmd.InOrStdin(), cmd.OutOrStdout())
	return menu.Run()
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
