package cmd

import (
	"context"
	"fmt"

	"stocktake/core/config"
	"stocktake/core/database"
	"stocktake/core/journal"
	"stocktake/core/logger"
	"stocktake/core/retail"
	"stocktake/feature/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// catalogCmd is the parent command for catalog operations.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and rebuild the product catalog cache",
}

// catalogVersionCmd prints the catalog hash without starting the server.
var catalogVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the catalog hash, row count and build timestamp",
	RunE:  runCatalogVersion,
}

// catalogRefreshCmd rebuilds the catalog from the retail database.
var catalogRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Rebuild the catalog from the retail database and print the new hash",
	RunE:  runCatalogRefresh,
}

func init() {
	catalogCmd.AddCommand(catalogVersionCmd)
	catalogCmd.AddCommand(catalogRefreshCmd)
	RootCmd.AddCommand(catalogCmd)
}

func catalogService() (*catalog.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	retailDB, err := database.Connect(cfg.Retail)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to retail database: %w", err)
	}

	svc := catalog.NewService(retail.NewGormSource(retailDB), journal.New(), l)
	return svc, l, nil
}

func runCatalogVersion(cmd *cobra.Command, args []string) error {
	svc, l, err := catalogService()
	if err != nil {
		return err
	}

	v, err := svc.Version(context.Background())
	if err != nil {
		return fmt.Errorf("failed to build catalog: %w", err)
	}

	l.Info("Catalog version",
		zap.String("hash", v.Hash),
		zap.Int("count", v.Count),
		zap.Time("timestamp", v.Timestamp),
	)
	return nil
}

func runCatalogRefresh(cmd *cobra.Command, args []string) error {
	svc, l, err := catalogService()
	if err != nil {
		return err
	}

	hash, count, err := svc.Refresh(context.Background())
	if err != nil {
		return fmt.Errorf("failed to refresh catalog: %w", err)
	}

	l.Info("Catalog refreshed", zap.String("hash", hash), zap.Int("count", count))
	return nil
}
