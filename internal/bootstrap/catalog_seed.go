package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/NeuroFarm_Go/internal/catalog"
	"github.com/osse101/NeuroFarm_Go/internal/domain"
)

// SeedCatalog upserts the catalog from path, or the built-in default catalog
// when path is empty.
func SeedCatalog(ctx context.Context, svc catalog.Service, path string) (*domain.SeedReport, error) {
	cat, source := catalog.DefaultCatalog(), catalog.SourceDefault
	if path != "" {
		loader, err := catalog.NewLoader()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedNewLoader, err)
		}
		if cat, err = loader.LoadFile(path); err != nil {
			return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedLoadFile, path, err)
		}
		source = catalog.SourceFile
	}

	slog.Info(LogMsgSeedingCatalog, "source", source, "path", path)
	report, err := svc.Seed(ctx, cat, source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedSeed, err)
	}

	slog.Info(LogMsgCatalogSeeded,
		"crops", report.Crops,
		"animals", report.Animals,
		"regions", report.Regions)
	return report, nil
}
