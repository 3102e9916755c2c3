package fakestore

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/repository"
)

// tx holds the store's transaction lock until Commit or Rollback. Every
// mutation pushes an undo step so Rollback restores the prior state.
type tx struct {
	s    *Store
	undo []func()
	once sync.Once
	done bool
}

var _ repository.FarmTx = (*tx)(nil)

func (s *Store) begin(ctx context.Context) (*tx, error) {
	if err := s.enter("BeginTx"); err != nil {
		return nil, err
	}
	s.mu.Unlock()

	s.txMu.Lock()
	return &tx{s: s}, nil
}

func (t *tx) finish() {
	t.once.Do(func() {
		t.done = true
		t.s.txMu.Unlock()
	})
}

func (t *tx) Commit(ctx context.Context) error {
	if t.done {
		return domain.ErrTxClosed
	}
	if err := t.s.enter("Commit"); err != nil {
		t.s.mu.Lock()
		t.rollbackLocked()
		t.s.mu.Unlock()
		t.finish()
		return err
	}
	t.s.mu.Unlock()
	t.undo = nil
	t.finish()
	return nil
}

func (t *tx) Rollback(ctx context.Context) error {
	if t.done {
		return domain.ErrTxClosed
	}
	t.s.mu.Lock()
	t.rollbackLocked()
	t.s.mu.Unlock()
	t.finish()
	return nil
}

func (t *tx) rollbackLocked() {
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
}

func (t *tx) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	return t.s.GetPlayerByID(ctx, playerID)
}

func (t *tx) AdjustCoins(ctx context.Context, playerID string, delta int64) (int64, error) {
	if err := t.s.enter("AdjustCoins"); err != nil {
		return 0, err
	}
	defer t.s.mu.Unlock()

	p, ok := t.s.players[playerID]
	if !ok {
		return 0, domain.ErrPlayerNotFound
	}
	if p.Coins+delta < 0 {
		return 0, domain.ErrInsufficientFunds
	}
	prev := p.Coins
	p.Coins += delta
	t.undo = append(t.undo, func() { p.Coins = prev })
	return p.Coins, nil
}

func (t *tx) AddExperience(ctx context.Context, playerID string, amount int64) (*domain.Player, error) {
	if err := t.s.enter("AddExperience"); err != nil {
		return nil, err
	}
	defer t.s.mu.Unlock()

	p, ok := t.s.players[playerID]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	prev := p.Experience
	p.Experience += amount
	t.undo = append(t.undo, func() { p.Experience = prev })
	cp := *p
	return &cp, nil
}

func (t *tx) RaiseLevel(ctx context.Context, playerID string, newLevel int) error {
	if err := t.s.enter("RaiseLevel"); err != nil {
		return err
	}
	defer t.s.mu.Unlock()

	p, ok := t.s.players[playerID]
	if !ok {
		return domain.ErrPlayerNotFound
	}
	if newLevel > p.Level {
		prev := p.Level
		p.Level = newLevel
		t.undo = append(t.undo, func() { p.Level = prev })
	}
	return nil
}

func (t *tx) ChargeExploration(ctx context.Context, playerID string, requiredLevel int, cost, experience int64) (*domain.Player, error) {
	if err := t.s.enter("ChargeExploration"); err != nil {
		return nil, err
	}
	defer t.s.mu.Unlock()

	p, ok := t.s.players[playerID]
	switch {
	case !ok:
		return nil, domain.ErrPlayerNotFound
	case p.Level < requiredLevel:
		return nil, domain.ErrLevelTooLow
	case p.Coins < cost:
		return nil, domain.ErrInsufficientFunds
	}
	prevCoins, prevXP := p.Coins, p.Experience
	p.Coins -= cost
	p.Experience += experience
	t.undo = append(t.undo, func() { p.Coins, p.Experience = prevCoins, prevXP })
	cp := *p
	return &cp, nil
}

func (t *tx) InsertPlantedCrop(ctx context.Context, farmID int64, crop domain.CropType, plantedAt time.Time) (*domain.PlantedCrop, error) {
	if err := t.s.enter("InsertPlantedCrop"); err != nil {
		return nil, err
	}
	defer t.s.mu.Unlock()

	if _, ok := t.s.farms[farmID]; !ok {
		return nil, domain.ErrFarmNotFound
	}
	t.s.nextCropID++
	pc := &domain.PlantedCrop{
		ID:         t.s.nextCropID,
		FarmID:     farmID,
		CropTypeID: crop.ID,
		CropName:   crop.Name,
		Glyph:      crop.Glyph,
		PlantedAt:  plantedAt,
		ReadyAt:    plantedAt.Add(crop.GrowthDuration),
	}
	t.s.crops[pc.ID] = pc
	t.undo = append(t.undo, func() { delete(t.s.crops, pc.ID) })
	cp := *pc
	return &cp, nil
}

func (t *tx) HarvestCrop(ctx context.Context, farmID, plantedCropID int64, now time.Time) (*repository.HarvestRecord, error) {
	if err := t.s.enter("HarvestCrop"); err != nil {
		return nil, err
	}
	defer t.s.mu.Unlock()

	pc, ok := t.s.crops[plantedCropID]
	switch {
	case !ok || pc.FarmID != farmID:
		return nil, domain.ErrPlantedCropNotFound
	case pc.HarvestedAt != nil:
		return nil, domain.ErrAlreadyHarvested
	case now.Before(pc.ReadyAt):
		return nil, domain.ErrNotReady
	}

	harvestedAt := now
	pc.HarvestedAt = &harvestedAt
	t.undo = append(t.undo, func() { pc.HarvestedAt = nil })

	rec := &repository.HarvestRecord{
		Crop:     *pc,
		PlayerID: t.s.farms[farmID].PlayerID,
	}
	for _, ct := range t.s.cropTypes {
		if ct.ID == pc.CropTypeID {
			rec.SellPrice = ct.SellPrice
		}
	}
	return rec, nil
}

func (t *tx) InsertOwnedAnimal(ctx context.Context, farmID int64, animal domain.AnimalType, purchasedAt time.Time) (*domain.OwnedAnimal, error) {
	if err := t.s.enter("InsertOwnedAnimal"); err != nil {
		return nil, err
	}
	defer t.s.mu.Unlock()

	if _, ok := t.s.farms[farmID]; !ok {
		return nil, domain.ErrFarmNotFound
	}
	t.s.nextAnimal++
	oa := &domain.OwnedAnimal{
		ID:              t.s.nextAnimal,
		FarmID:          farmID,
		AnimalTypeID:    animal.ID,
		AnimalName:      animal.Name,
		ProductName:     animal.ProductName,
		Glyph:           animal.Glyph,
		PurchasedAt:     purchasedAt,
		LastCollectedAt: purchasedAt,
		NextReadyAt:     purchasedAt.Add(animal.ProductionInterval),
	}
	t.s.animals[oa.ID] = oa
	t.undo = append(t.undo, func() { delete(t.s.animals, oa.ID) })
	cp := *oa
	return &cp, nil
}

func (t *tx) CollectAnimal(ctx context.Context, farmID, ownedAnimalID int64, now time.Time) (*repository.CollectRecord, error) {
	if err := t.s.enter("CollectAnimal"); err != nil {
		return nil, err
	}
	defer t.s.mu.Unlock()

	oa, ok := t.s.animals[ownedAnimalID]
	if !ok || oa.FarmID != farmID {
		return nil, domain.ErrOwnedAnimalNotFound
	}

	var at domain.AnimalType
	for _, a := range t.s.animalTypes {
		if a.ID == oa.AnimalTypeID {
			at = a
		}
	}
	if now.Before(oa.LastCollectedAt.Add(at.ProductionInterval)) {
		return nil, domain.ErrNotReady
	}

	prevCollected, prevReady := oa.LastCollectedAt, oa.NextReadyAt
	oa.LastCollectedAt = now
	oa.NextReadyAt = now.Add(at.ProductionInterval)
	t.undo = append(t.undo, func() { oa.LastCollectedAt, oa.NextReadyAt = prevCollected, prevReady })

	return &repository.CollectRecord{
		Animal:    *oa,
		PlayerID:  t.s.farms[farmID].PlayerID,
		SellPrice: at.ProductSellPrice,
	}, nil
}
