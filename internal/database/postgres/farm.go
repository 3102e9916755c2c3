package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/repository"
)

const farmColumns = `farm_id, player_id, name, level, created_at`

// FarmRepository implements the farm repository for PostgreSQL
type FarmRepository struct {
	db *pgxpool.Pool
}

// NewFarmRepository creates a new FarmRepository
func NewFarmRepository(db *pgxpool.Pool) *FarmRepository {
	return &FarmRepository{db: db}
}

func (r *FarmRepository) getFarm(ctx context.Context, query string, arg any) (*domain.Farm, error) {
	var f domain.Farm
	err := r.db.QueryRow(ctx, query, arg).Scan(&f.ID, &f.PlayerID, &f.Name, &f.Level, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFarmNotFound
		}
		return nil, wrap(ErrMsgFailedToGetFarm, err)
	}
	return &f, nil
}

// GetFarmByID returns the farm or domain.ErrFarmNotFound
func (r *FarmRepository) GetFarmByID(ctx context.Context, farmID int64) (*domain.Farm, error) {
	return r.getFarm(ctx, `SELECT `+farmColumns+` FROM farms WHERE farm_id = $1`, farmID)
}

// GetFarmByPlayer returns the player's farm or domain.ErrFarmNotFound
func (r *FarmRepository) GetFarmByPlayer(ctx context.Context, playerID string) (*domain.Farm, error) {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}
	return r.getFarm(ctx, `SELECT `+farmColumns+` FROM farms WHERE player_id = $1`, id)
}

// CreateFarm inserts the player's farm if it does not exist yet. The unique
// player_id constraint settles concurrent first visits.
func (r *FarmRepository) CreateFarm(ctx context.Context, playerID, name string) (*domain.Farm, error) {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO farms (player_id, name)
		VALUES ($1, $2)
		ON CONFLICT (player_id) DO NOTHING
	`, id, name)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, wrap(ErrMsgFailedToInsertFarm, err)
	}
	return r.GetFarmByPlayer(ctx, playerID)
}

// ListPlantedCrops returns unharvested crops ordered by planting time
func (r *FarmRepository) ListPlantedCrops(ctx context.Context, farmID int64) ([]domain.PlantedCrop, error) {
	query := `
		SELECT pc.planted_crop_id, pc.farm_id, pc.crop_type_id, ct.name, ct.glyph,
		       pc.planted_at, ct.growth_seconds
		FROM planted_crops pc
		JOIN crop_types ct ON ct.crop_type_id = pc.crop_type_id
		WHERE pc.farm_id = $1 AND pc.harvested_at IS NULL
		ORDER BY pc.planted_at ASC, pc.planted_crop_id ASC
	`
	rows, err := r.db.Query(ctx, query, farmID)
	if err != nil {
		return nil, wrap(ErrMsgFailedToListCrops, err)
	}
	defer rows.Close()

	crops := []domain.PlantedCrop{}
	for rows.Next() {
		var (
			c      domain.PlantedCrop
			growth int64
		)
		if err := rows.Scan(&c.ID, &c.FarmID, &c.CropTypeID, &c.CropName, &c.Glyph, &c.PlantedAt, &growth); err != nil {
			return nil, wrap(ErrMsgFailedToListCrops, err)
		}
		c.ReadyAt = c.PlantedAt.Add(fromSeconds(growth))
		crops = append(crops, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(ErrMsgFailedToListCrops, err)
	}
	return crops, nil
}

// ListOwnedAnimals returns animals ordered by purchase time
func (r *FarmRepository) ListOwnedAnimals(ctx context.Context, farmID int64) ([]domain.OwnedAnimal, error) {
	query := `
		SELECT oa.owned_animal_id, oa.farm_id, oa.animal_type_id, atype.name, atype.product_name,
		       atype.glyph, oa.purchased_at, oa.last_collected_at, atype.production_seconds
		FROM owned_animals oa
		JOIN animal_types atype ON atype.animal_type_id = oa.animal_type_id
		WHERE oa.farm_id = $1
		ORDER BY oa.purchased_at ASC, oa.owned_animal_id ASC
	`
	rows, err := r.db.Query(ctx, query, farmID)
	if err != nil {
		return nil, wrap(ErrMsgFailedToListAnimals, err)
	}
	defer rows.Close()

	animals := []domain.OwnedAnimal{}
	for rows.Next() {
		var (
			a        domain.OwnedAnimal
			interval int64
		)
		if err := rows.Scan(&a.ID, &a.FarmID, &a.AnimalTypeID, &a.AnimalName, &a.ProductName,
			&a.Glyph, &a.PurchasedAt, &a.LastCollectedAt, &interval); err != nil {
			return nil, wrap(ErrMsgFailedToListAnimals, err)
		}
		a.NextReadyAt = a.LastCollectedAt.Add(fromSeconds(interval))
		animals = append(animals, a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(ErrMsgFailedToListAnimals, err)
	}
	return animals, nil
}

// BeginTx starts a farm transaction
func (r *FarmRepository) BeginTx(ctx context.Context) (repository.FarmTx, error) {
	return beginGameTx(ctx, r.db)
}
