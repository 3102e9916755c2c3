package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/osse101/NeuroFarm_Go/internal/catalog"
	"github.com/osse101/NeuroFarm_Go/internal/domain"
)

type CatalogCommand struct{}

func (c *CatalogCommand) Name() string {
	return "catalog"
}

func (c *CatalogCommand) Description() string {
	return "Validate or export catalog files (validate <path>, export [-from-db] <path>)"
}

func (c *CatalogCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: validate, export")
	}

	switch args[0] {
	case "validate":
		return c.validate(args[1:])
	case "export":
		return c.export(args[1:])
	default:
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}
}

func (c *CatalogCommand) validate(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("catalog file path required")
	}

	loader, err := catalog.NewLoader()
	if err != nil {
		return err
	}
	cat, err := loader.LoadFile(args[0])
	if err != nil {
		PrintError("%s is invalid", args[0])
		return err
	}

	PrintSuccess("%s is valid: %d crops, %d animals, %d regions", args[0], len(cat.Crops), len(cat.Animals), len(cat.Regions))
	return nil
}

func (c *CatalogCommand) export(args []string) error {
	fs := flag.NewFlagSet("catalog export", flag.ContinueOnError)
	fromDB := fs.Bool("from-db", false, "Export the catalog stored in the database instead of the built-in default")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("output path required")
	}
	path := fs.Arg(0)

	cat := catalog.DefaultCatalog()
	if *fromDB {
		var err error
		if cat, err = c.loadFromDB(); err != nil {
			return err
		}
	}

	if err := catalog.Export(path, cat); err != nil {
		return fmt.Errorf("failed to export catalog: %w", err)
	}
	PrintSuccess("Catalog written to %s", path)
	return nil
}

func (c *CatalogCommand) loadFromDB() (domain.Catalog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	pool, err := openPool(ctx)
	if err != nil {
		return domain.Catalog{}, err
	}
	defer pool.Close()

	svc := newCatalogService(pool)

	var cat domain.Catalog
	if cat.Crops, err = svc.ListCrops(ctx); err != nil {
		return domain.Catalog{}, err
	}
	if cat.Animals, err = svc.ListAnimals(ctx); err != nil {
		return domain.Catalog{}, err
	}
	if cat.Regions, err = svc.ListRegions(ctx); err != nil {
		return domain.Catalog{}, err
	}
	return cat, nil
}
