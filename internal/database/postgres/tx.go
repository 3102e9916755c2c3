package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/repository"
)

// gameTx implements repository.FarmTx (and so repository.PlayerTx) over a
// pgx transaction. Every mutation is one guarded statement; when the guard
// rejects it, a follow-up read inside the same transaction names the reason.
type gameTx struct {
	tx pgx.Tx
}

func beginGameTx(ctx context.Context, db *pgxpool.Pool) (*gameTx, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, wrap(ErrMsgFailedToBeginTransaction, err)
	}
	return &gameTx{tx: tx}, nil
}

var _ repository.FarmTx = (*gameTx)(nil)

func (t *gameTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return domain.ErrTxClosed
		}
		return wrap(ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (t *gameTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return domain.ErrTxClosed
		}
		return wrap(ErrMsgFailedToRollbackTransaction, err)
	}
	return nil
}

func (t *gameTx) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}
	return getPlayer(ctx, t.tx, `SELECT `+playerColumns+` FROM players WHERE player_id = $1`, id)
}

func (t *gameTx) AdjustCoins(ctx context.Context, playerID string, delta int64) (int64, error) {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return 0, err
	}

	query := `
		UPDATE players
		SET coins = coins + $2, updated_at = NOW()
		WHERE player_id = $1 AND coins + $2 >= 0
		RETURNING coins
	`
	var balance int64
	err = t.tx.QueryRow(ctx, query, id, delta).Scan(&balance)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, wrap(ErrMsgFailedToAdjustCoins, err)
	}

	if _, err := t.GetPlayer(ctx, playerID); err != nil {
		return 0, err
	}
	return 0, domain.ErrInsufficientFunds
}

func (t *gameTx) AddExperience(ctx context.Context, playerID string, amount int64) (*domain.Player, error) {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE players
		SET experience = experience + $2, updated_at = NOW()
		WHERE player_id = $1
		RETURNING ` + playerColumns

	p, err := scanPlayer(t.tx.QueryRow(ctx, query, id, amount))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, wrap(ErrMsgFailedToAddExperience, err)
	}
	return p, nil
}

func (t *gameTx) RaiseLevel(ctx context.Context, playerID string, newLevel int) error {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return err
	}
	tag, err := t.tx.Exec(ctx, `UPDATE players SET level = GREATEST(level, $2), updated_at = NOW() WHERE player_id = $1`, id, newLevel)
	if err != nil {
		return wrap(ErrMsgFailedToRaiseLevel, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

func (t *gameTx) ChargeExploration(ctx context.Context, playerID string, requiredLevel int, cost, experience int64) (*domain.Player, error) {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE players
		SET coins = coins - $3, experience = experience + $4, updated_at = NOW()
		WHERE player_id = $1 AND level >= $2 AND coins >= $3
		RETURNING ` + playerColumns

	p, err := scanPlayer(t.tx.QueryRow(ctx, query, id, requiredLevel, cost, experience))
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, wrap(ErrMsgFailedToChargeExplore, err)
	}

	current, err := t.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if current.Level < requiredLevel {
		return nil, domain.ErrLevelTooLow
	}
	return nil, domain.ErrInsufficientFunds
}

func (t *gameTx) InsertPlantedCrop(ctx context.Context, farmID int64, crop domain.CropType, plantedAt time.Time) (*domain.PlantedCrop, error) {
	query := `
		INSERT INTO planted_crops (farm_id, crop_type_id, planted_at)
		VALUES ($1, $2, $3)
		RETURNING planted_crop_id, planted_at
	`
	pc := domain.PlantedCrop{
		FarmID:     farmID,
		CropTypeID: crop.ID,
		CropName:   crop.Name,
		Glyph:      crop.Glyph,
	}
	if err := t.tx.QueryRow(ctx, query, farmID, crop.ID, plantedAt).Scan(&pc.ID, &pc.PlantedAt); err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrFarmNotFound
		}
		return nil, wrap(ErrMsgFailedToInsertCrop, err)
	}
	pc.ReadyAt = pc.PlantedAt.Add(crop.GrowthDuration)
	return &pc, nil
}

func (t *gameTx) HarvestCrop(ctx context.Context, farmID, plantedCropID int64, now time.Time) (*repository.HarvestRecord, error) {
	query := `
		UPDATE planted_crops pc
		SET harvested_at = $3
		FROM crop_types ct, farms f
		WHERE pc.planted_crop_id = $1
		  AND pc.farm_id = $2
		  AND ct.crop_type_id = pc.crop_type_id
		  AND f.farm_id = pc.farm_id
		  AND pc.harvested_at IS NULL
		  AND pc.planted_at + make_interval(secs => ct.growth_seconds) <= $3
		RETURNING pc.planted_crop_id, pc.farm_id, pc.crop_type_id, ct.name, ct.glyph,
		          pc.planted_at, ct.growth_seconds, pc.harvested_at, ct.sell_price, f.player_id
	`
	var (
		rec         repository.HarvestRecord
		growth      int64
		harvestedAt time.Time
	)
	err := t.tx.QueryRow(ctx, query, plantedCropID, farmID, now).Scan(
		&rec.Crop.ID, &rec.Crop.FarmID, &rec.Crop.CropTypeID, &rec.Crop.CropName, &rec.Crop.Glyph,
		&rec.Crop.PlantedAt, &growth, &harvestedAt, &rec.SellPrice, &rec.PlayerID,
	)
	if err == nil {
		rec.Crop.ReadyAt = rec.Crop.PlantedAt.Add(fromSeconds(growth))
		rec.Crop.HarvestedAt = &harvestedAt
		return &rec, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, wrap(ErrMsgFailedToHarvestCrop, err)
	}

	var harvested bool
	err = t.tx.QueryRow(ctx,
		`SELECT harvested_at IS NOT NULL FROM planted_crops WHERE planted_crop_id = $1 AND farm_id = $2`,
		plantedCropID, farmID,
	).Scan(&harvested)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return nil, domain.ErrPlantedCropNotFound
	case err != nil:
		return nil, wrap(ErrMsgFailedToClassifyFailure, err)
	case harvested:
		return nil, domain.ErrAlreadyHarvested
	default:
		return nil, domain.ErrNotReady
	}
}

func (t *gameTx) InsertOwnedAnimal(ctx context.Context, farmID int64, animal domain.AnimalType, purchasedAt time.Time) (*domain.OwnedAnimal, error) {
	query := `
		INSERT INTO owned_animals (farm_id, animal_type_id, purchased_at, last_collected_at)
		VALUES ($1, $2, $3, $3)
		RETURNING owned_animal_id, purchased_at, last_collected_at
	`
	oa := domain.OwnedAnimal{
		FarmID:       farmID,
		AnimalTypeID: animal.ID,
		AnimalName:   animal.Name,
		ProductName:  animal.ProductName,
		Glyph:        animal.Glyph,
	}
	if err := t.tx.QueryRow(ctx, query, farmID, animal.ID, purchasedAt).Scan(&oa.ID, &oa.PurchasedAt, &oa.LastCollectedAt); err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrFarmNotFound
		}
		return nil, wrap(ErrMsgFailedToInsertAnimal, err)
	}
	oa.NextReadyAt = oa.LastCollectedAt.Add(animal.ProductionInterval)
	return &oa, nil
}

func (t *gameTx) CollectAnimal(ctx context.Context, farmID, ownedAnimalID int64, now time.Time) (*repository.CollectRecord, error) {
	query := `
		UPDATE owned_animals oa
		SET last_collected_at = $3
		FROM animal_types atype, farms f
		WHERE oa.owned_animal_id = $1
		  AND oa.farm_id = $2
		  AND atype.animal_type_id = oa.animal_type_id
		  AND f.farm_id = oa.farm_id
		  AND oa.last_collected_at + make_interval(secs => atype.production_seconds) <= $3
		RETURNING oa.owned_animal_id, oa.farm_id, oa.animal_type_id, atype.name, atype.product_name, atype.glyph,
		          oa.purchased_at, oa.last_collected_at, atype.production_seconds, atype.product_sell_price, f.player_id
	`
	var (
		rec      repository.CollectRecord
		interval int64
	)
	err := t.tx.QueryRow(ctx, query, ownedAnimalID, farmID, now).Scan(
		&rec.Animal.ID, &rec.Animal.FarmID, &rec.Animal.AnimalTypeID, &rec.Animal.AnimalName,
		&rec.Animal.ProductName, &rec.Animal.Glyph, &rec.Animal.PurchasedAt, &rec.Animal.LastCollectedAt,
		&interval, &rec.SellPrice, &rec.PlayerID,
	)
	if err == nil {
		rec.Animal.NextReadyAt = rec.Animal.LastCollectedAt.Add(fromSeconds(interval))
		return &rec, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, wrap(ErrMsgFailedToCollectAnimal, err)
	}

	var exists bool
	err = t.tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM owned_animals WHERE owned_animal_id = $1 AND farm_id = $2)`,
		ownedAnimalID, farmID,
	).Scan(&exists)
	switch {
	case err != nil:
		return nil, wrap(ErrMsgFailedToClassifyFailure, err)
	case !exists:
		return nil, domain.ErrOwnedAnimalNotFound
	default:
		return nil, domain.ErrNotReady
	}
}
