package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
)

const (
	cropTypeColumns   = `crop_type_id, name, growth_seconds, sell_price, planting_cost, glyph`
	animalTypeColumns = `animal_type_id, name, product_name, production_seconds, product_sell_price, purchase_cost, glyph`
	regionColumns     = `region_id, name, required_level, exploration_cost, glyph`
)

// CatalogRepository implements the catalog repository for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// SeedCatalog upserts every entry keyed by case-insensitive name. Re-running
// it with the same input changes nothing.
func (r *CatalogRepository) SeedCatalog(ctx context.Context, catalog domain.Catalog) (*domain.SeedReport, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, wrap(ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	report := &domain.SeedReport{}

	for _, c := range catalog.Crops {
		_, err := tx.Exec(ctx, `
			INSERT INTO crop_types (name, growth_seconds, sell_price, planting_cost, glyph)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT ((LOWER(name))) DO UPDATE
			SET name = EXCLUDED.name,
			    growth_seconds = EXCLUDED.growth_seconds,
			    sell_price = EXCLUDED.sell_price,
			    planting_cost = EXCLUDED.planting_cost,
			    glyph = EXCLUDED.glyph
		`, c.Name, seconds(c.GrowthDuration), c.SellPrice, c.PlantingCost, c.Glyph)
		if err != nil {
			return nil, wrap(fmt.Sprintf("%s %q", ErrMsgFailedToUpsertCrop, c.Name), err)
		}
		report.Crops++
	}

	for _, a := range catalog.Animals {
		_, err := tx.Exec(ctx, `
			INSERT INTO animal_types (name, product_name, production_seconds, product_sell_price, purchase_cost, glyph)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT ((LOWER(name))) DO UPDATE
			SET name = EXCLUDED.name,
			    product_name = EXCLUDED.product_name,
			    production_seconds = EXCLUDED.production_seconds,
			    product_sell_price = EXCLUDED.product_sell_price,
			    purchase_cost = EXCLUDED.purchase_cost,
			    glyph = EXCLUDED.glyph
		`, a.Name, a.ProductName, seconds(a.ProductionInterval), a.ProductSellPrice, a.PurchaseCost, a.Glyph)
		if err != nil {
			return nil, wrap(fmt.Sprintf("%s %q", ErrMsgFailedToUpsertAnimal, a.Name), err)
		}
		report.Animals++
	}

	for _, reg := range catalog.Regions {
		_, err := tx.Exec(ctx, `
			INSERT INTO regions (name, required_level, exploration_cost, glyph)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT ((LOWER(name))) DO UPDATE
			SET name = EXCLUDED.name,
			    required_level = EXCLUDED.required_level,
			    exploration_cost = EXCLUDED.exploration_cost,
			    glyph = EXCLUDED.glyph
		`, reg.Name, reg.RequiredLevel, reg.ExplorationCost, reg.Glyph)
		if err != nil {
			return nil, wrap(fmt.Sprintf("%s %q", ErrMsgFailedToUpsertRegion, reg.Name), err)
		}
		report.Regions++
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, wrap(ErrMsgFailedToCommitTransaction, err)
	}
	return report, nil
}

func scanCropType(row pgx.Row) (*domain.CropType, error) {
	var (
		c      domain.CropType
		growth int64
	)
	if err := row.Scan(&c.ID, &c.Name, &growth, &c.SellPrice, &c.PlantingCost, &c.Glyph); err != nil {
		return nil, err
	}
	c.GrowthDuration = fromSeconds(growth)
	return &c, nil
}

func scanAnimalType(row pgx.Row) (*domain.AnimalType, error) {
	var (
		a        domain.AnimalType
		interval int64
	)
	if err := row.Scan(&a.ID, &a.Name, &a.ProductName, &interval, &a.ProductSellPrice, &a.PurchaseCost, &a.Glyph); err != nil {
		return nil, err
	}
	a.ProductionInterval = fromSeconds(interval)
	return &a, nil
}

func scanRegion(row pgx.Row) (*domain.Region, error) {
	var reg domain.Region
	if err := row.Scan(&reg.ID, &reg.Name, &reg.RequiredLevel, &reg.ExplorationCost, &reg.Glyph); err != nil {
		return nil, err
	}
	return &reg, nil
}

// GetCropTypeByName looks up a crop case-insensitively
func (r *CatalogRepository) GetCropTypeByName(ctx context.Context, name string) (*domain.CropType, error) {
	c, err := scanCropType(r.db.QueryRow(ctx, `SELECT `+cropTypeColumns+` FROM crop_types WHERE LOWER(name) = LOWER($1)`, name))
	if err != nil {
		return nil, catalogLookupErr(err, domain.ErrUnknownCrop)
	}
	return c, nil
}

// GetAnimalTypeByName looks up an animal case-insensitively
func (r *CatalogRepository) GetAnimalTypeByName(ctx context.Context, name string) (*domain.AnimalType, error) {
	a, err := scanAnimalType(r.db.QueryRow(ctx, `SELECT `+animalTypeColumns+` FROM animal_types WHERE LOWER(name) = LOWER($1)`, name))
	if err != nil {
		return nil, catalogLookupErr(err, domain.ErrUnknownAnimal)
	}
	return a, nil
}

// GetRegionByName looks up a region case-insensitively
func (r *CatalogRepository) GetRegionByName(ctx context.Context, name string) (*domain.Region, error) {
	reg, err := scanRegion(r.db.QueryRow(ctx, `SELECT `+regionColumns+` FROM regions WHERE LOWER(name) = LOWER($1)`, name))
	if err != nil {
		return nil, catalogLookupErr(err, domain.ErrUnknownRegion)
	}
	return reg, nil
}

func catalogLookupErr(err, notFound error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound
	}
	return wrap(ErrMsgFailedToGetCatalog, err)
}

// ListCropTypes returns all crops ordered by id
func (r *CatalogRepository) ListCropTypes(ctx context.Context) ([]domain.CropType, error) {
	rows, err := r.db.Query(ctx, `SELECT `+cropTypeColumns+` FROM crop_types ORDER BY crop_type_id`)
	if err != nil {
		return nil, wrap(ErrMsgFailedToListCatalog, err)
	}
	defer rows.Close()

	out := []domain.CropType{}
	for rows.Next() {
		c, err := scanCropType(rows)
		if err != nil {
			return nil, wrap(ErrMsgFailedToListCatalog, err)
		}
		out = append(out, *c)
	}
	return out, wrap(ErrMsgFailedToListCatalog, rows.Err())
}

// ListAnimalTypes returns all animals ordered by id
func (r *CatalogRepository) ListAnimalTypes(ctx context.Context) ([]domain.AnimalType, error) {
	rows, err := r.db.Query(ctx, `SELECT `+animalTypeColumns+` FROM animal_types ORDER BY animal_type_id`)
	if err != nil {
		return nil, wrap(ErrMsgFailedToListCatalog, err)
	}
	defer rows.Close()

	out := []domain.AnimalType{}
	for rows.Next() {
		a, err := scanAnimalType(rows)
		if err != nil {
			return nil, wrap(ErrMsgFailedToListCatalog, err)
		}
		out = append(out, *a)
	}
	return out, wrap(ErrMsgFailedToListCatalog, rows.Err())
}

// ListRegions returns all regions ordered by id
func (r *CatalogRepository) ListRegions(ctx context.Context) ([]domain.Region, error) {
	rows, err := r.db.Query(ctx, `SELECT `+regionColumns+` FROM regions ORDER BY region_id`)
	if err != nil {
		return nil, wrap(ErrMsgFailedToListCatalog, err)
	}
	defer rows.Close()

	out := []domain.Region{}
	for rows.Next() {
		reg, err := scanRegion(rows)
		if err != nil {
			return nil, wrap(ErrMsgFailedToListCatalog, err)
		}
		out = append(out, *reg)
	}
	return out, wrap(ErrMsgFailedToListCatalog, rows.Err())
}
