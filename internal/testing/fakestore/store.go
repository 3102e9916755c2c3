// Package fakestore is an in-memory stand-in for the Postgres repositories.
// It enforces the same guards as the SQL statements under one mutex and
// serializes transactions, so service tests can exercise the full
// validate-then-mutate paths without a database.
package fakestore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/repository"
)

// Store implements repository.Player and repository.Catalog. FarmRepo
// exposes the same data as a repository.Farm.
type Store struct {
	// txMu serializes transactions the way row locks do for a single player
	txMu sync.Mutex
	mu   sync.Mutex

	players   map[string]*domain.Player
	byAccount map[string]string

	farms       map[int64]*domain.Farm
	farmsByUser map[string]int64
	nextFarmID  int64

	crops       map[int64]*domain.PlantedCrop
	nextCropID  int64
	animals     map[int64]*domain.OwnedAnimal
	nextAnimal  int64
	cropTypes   []domain.CropType
	animalTypes []domain.AnimalType
	regions     []domain.Region

	unavailable bool
	calls       map[string]int
}

var (
	_ repository.Player  = (*Store)(nil)
	_ repository.Farm    = farmRepo{}
	_ repository.Catalog = (*Store)(nil)
)

// New returns an empty store
func New() *Store {
	return &Store{
		players:     make(map[string]*domain.Player),
		byAccount:   make(map[string]string),
		farms:       make(map[int64]*domain.Farm),
		farmsByUser: make(map[string]int64),
		crops:       make(map[int64]*domain.PlantedCrop),
		animals:     make(map[int64]*domain.OwnedAnimal),
		calls:       make(map[string]int),
	}
}

// SetUnavailable makes every subsequent call fail with ErrStorageUnavailable
func (s *Store) SetUnavailable(down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unavailable = down
}

// Calls returns how many times the named method was invoked
func (s *Store) Calls(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method]
}

// enter locks the data mutex and records the call. Callers must unlock.
func (s *Store) enter(method string) error {
	s.mu.Lock()
	s.calls[method]++
	if s.unavailable {
		s.mu.Unlock()
		return fmt.Errorf("fakestore %s: %w", method, domain.ErrStorageUnavailable)
	}
	return nil
}

// SetCoins overwrites a player's balance for test setup
func (s *Store) SetCoins(playerID string, coins int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.players[playerID]; ok {
		p.Coins = coins
	}
}

// SetLevel overwrites a player's level for test setup
func (s *Store) SetLevel(playerID string, level int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.players[playerID]; ok {
		p.Level = level
	}
}

// Player repository

func (s *Store) GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error) {
	if err := s.enter("GetPlayerByID"); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()
	p, ok := s.players[playerID]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *Store) GetPlayerByAccount(ctx context.Context, accountKey string) (*domain.Player, error) {
	if err := s.enter("GetPlayerByAccount"); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()
	id, ok := s.byAccount[accountKey]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	cp := *s.players[id]
	return &cp, nil
}

func (s *Store) CreatePlayer(ctx context.Context, accountKey, language string) (*domain.Player, bool, error) {
	if err := s.enter("CreatePlayer"); err != nil {
		return nil, false, err
	}
	defer s.mu.Unlock()
	if id, ok := s.byAccount[accountKey]; ok {
		cp := *s.players[id]
		return &cp, false, nil
	}
	now := time.Now()
	p := &domain.Player{
		ID:         uuid.NewString(),
		AccountKey: accountKey,
		Language:   language,
		Coins:      domain.StartingCoins,
		Experience: domain.StartingExperience,
		Level:      domain.StartingLevel,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.players[p.ID] = p
	s.byAccount[accountKey] = p.ID
	cp := *p
	return &cp, true, nil
}

func (s *Store) UpdateLanguage(ctx context.Context, playerID, language string) error {
	if err := s.enter("UpdateLanguage"); err != nil {
		return err
	}
	defer s.mu.Unlock()
	p, ok := s.players[playerID]
	if !ok {
		return domain.ErrPlayerNotFound
	}
	p.Language = language
	return nil
}

// BeginTx implements repository.Player
func (s *Store) BeginTx(ctx context.Context) (repository.PlayerTx, error) {
	return s.begin(ctx)
}

// FarmRepo adapts the store to repository.Farm, whose BeginTx returns a FarmTx
func (s *Store) FarmRepo() repository.Farm {
	return farmRepo{s}
}

type farmRepo struct{ *Store }

func (f farmRepo) BeginTx(ctx context.Context) (repository.FarmTx, error) {
	return f.begin(ctx)
}

// Farm repository

func (s *Store) GetFarmByID(ctx context.Context, farmID int64) (*domain.Farm, error) {
	if err := s.enter("GetFarmByID"); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()
	f, ok := s.farms[farmID]
	if !ok {
		return nil, domain.ErrFarmNotFound
	}
	cp := *f
	return &cp, nil
}

func (s *Store) GetFarmByPlayer(ctx context.Context, playerID string) (*domain.Farm, error) {
	if err := s.enter("GetFarmByPlayer"); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()
	id, ok := s.farmsByUser[playerID]
	if !ok {
		return nil, domain.ErrFarmNotFound
	}
	cp := *s.farms[id]
	return &cp, nil
}

func (s *Store) CreateFarm(ctx context.Context, playerID, name string) (*domain.Farm, error) {
	if err := s.enter("CreateFarm"); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()
	if _, ok := s.players[playerID]; !ok {
		return nil, domain.ErrPlayerNotFound
	}
	if id, ok := s.farmsByUser[playerID]; ok {
		cp := *s.farms[id]
		return &cp, nil
	}
	s.nextFarmID++
	f := &domain.Farm{ID: s.nextFarmID, PlayerID: playerID, Name: name, Level: 1, CreatedAt: time.Now()}
	s.farms[f.ID] = f
	s.farmsByUser[playerID] = f.ID
	cp := *f
	return &cp, nil
}

func (s *Store) ListPlantedCrops(ctx context.Context, farmID int64) ([]domain.PlantedCrop, error) {
	if err := s.enter("ListPlantedCrops"); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()
	out := []domain.PlantedCrop{}
	for _, c := range s.crops {
		if c.FarmID == farmID && c.HarvestedAt == nil {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PlantedAt.Equal(out[j].PlantedAt) {
			return out[i].PlantedAt.Before(out[j].PlantedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) ListOwnedAnimals(ctx context.Context, farmID int64) ([]domain.OwnedAnimal, error) {
	if err := s.enter("ListOwnedAnimals"); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()
	out := []domain.OwnedAnimal{}
	for _, a := range s.animals {
		if a.FarmID == farmID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PurchasedAt.Equal(out[j].PurchasedAt) {
			return out[i].PurchasedAt.Before(out[j].PurchasedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Catalog repository

func (s *Store) SeedCatalog(ctx context.Context, catalog domain.Catalog) (*domain.SeedReport, error) {
	if err := s.enter("SeedCatalog"); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	for _, c := range catalog.Crops {
		if i := indexByName(len(s.cropTypes), func(i int) string { return s.cropTypes[i].Name }, c.Name); i >= 0 {
			c.ID = s.cropTypes[i].ID
			s.cropTypes[i] = c
			continue
		}
		c.ID = int64(len(s.cropTypes) + 1)
		s.cropTypes = append(s.cropTypes, c)
	}
	for _, a := range catalog.Animals {
		if i := indexByName(len(s.animalTypes), func(i int) string { return s.animalTypes[i].Name }, a.Name); i >= 0 {
			a.ID = s.animalTypes[i].ID
			s.animalTypes[i] = a
			continue
		}
		a.ID = int64(len(s.animalTypes) + 1)
		s.animalTypes = append(s.animalTypes, a)
	}
	for _, r := range catalog.Regions {
		if i := indexByName(len(s.regions), func(i int) string { return s.regions[i].Name }, r.Name); i >= 0 {
			r.ID = s.regions[i].ID
			s.regions[i] = r
			continue
		}
		r.ID = int64(len(s.regions) + 1)
		s.regions = append(s.regions, r)
	}

	return &domain.SeedReport{
		Crops:   len(catalog.Crops),
		Animals: len(catalog.Animals),
		Regions: len(catalog.Regions),
	}, nil
}

func indexByName(n int, name func(int) string, want string) int {
	for i := 0; i < n; i++ {
		if strings.EqualFold(name(i), want) {
			return i
		}
	}
	return -1
}

func (s *Store) GetCropTypeByName(ctx context.Context, name string) (*domain.CropType, error) {
	if err := s.enter("GetCropTypeByName"); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()
	if i := indexByName(len(s.cropTypes), func(i int) string { return s.cropTypes[i].Name }, name); i >= 0 {
		cp := s.cropTypes[i]
		return &cp, nil
	}
	return nil, domain.ErrUnknownCrop
}

func (s *Store) GetAnimalTypeByName(ctx context.Context, name string) (*domain.AnimalType, error) {
	if err := s.enter("GetAnimalTypeByName"); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()
	if i := indexByName(len(s.animalTypes), func(i int) string { return s.animalTypes[i].Name }, name); i >= 0 {
		cp := s.animalTypes[i]
		return &cp, nil
	}
	return nil, domain.ErrUnknownAnimal
}

func (s *Store) GetRegionByName(ctx context.Context, name string) (*domain.Region, error) {
	if err := s.enter("GetRegionByName"); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()
	if i := indexByName(len(s.regions), func(i int) string { return s.regions[i].Name }, name); i >= 0 {
		cp := s.regions[i]
		return &cp, nil
	}
	return nil, domain.ErrUnknownRegion
}

func (s *Store) ListCropTypes(ctx context.Context) ([]domain.CropType, error) {
	if err := s.enter("ListCropTypes"); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()
	return append([]domain.CropType{}, s.cropTypes...), nil
}

func (s *Store) ListAnimalTypes(ctx context.Context) ([]domain.AnimalType, error) {
	if err := s.enter("ListAnimalTypes"); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()
	return append([]domain.AnimalType{}, s.animalTypes...), nil
}

func (s *Store) ListRegions(ctx context.Context) ([]domain.Region, error) {
	if err := s.enter("ListRegions"); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()
	return append([]domain.Region{}, s.regions...), nil
}
