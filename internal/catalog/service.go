package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/event"
	"github.com/osse101/NeuroFarm_Go/internal/logger"
	"github.com/osse101/NeuroFarm_Go/internal/repository"
)

// Service defines the catalog business logic
type Service interface {
	// Seed upserts every entry by name and purges the lookup cache
	Seed(ctx context.Context, cat domain.Catalog, source string) (*domain.SeedReport, error)

	CropByName(ctx context.Context, name string) (*domain.CropType, error)
	AnimalByName(ctx context.Context, name string) (*domain.AnimalType, error)
	RegionByName(ctx context.Context, name string) (*domain.Region, error)

	ListCrops(ctx context.Context) ([]domain.CropType, error)
	ListAnimals(ctx context.Context) ([]domain.AnimalType, error)
	ListRegions(ctx context.Context) ([]domain.Region, error)
}

type service struct {
	repo      repository.Catalog
	publisher event.Publisher

	crops   *expirable.LRU[string, domain.CropType]
	animals *expirable.LRU[string, domain.AnimalType]
	regions *expirable.LRU[string, domain.Region]
}

// NewService creates a catalog service whose lookups are cached for ttl.
// Catalog rows only change through Seed, which purges the cache.
func NewService(repo repository.Catalog, publisher event.Publisher, cacheSize int, ttl time.Duration) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
		crops:     expirable.NewLRU[string, domain.CropType](cacheSize, nil, ttl),
		animals:   expirable.NewLRU[string, domain.AnimalType](cacheSize, nil, ttl),
		regions:   expirable.NewLRU[string, domain.Region](cacheSize, nil, ttl),
	}
}

func cacheKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (s *service) Seed(ctx context.Context, cat domain.Catalog, source string) (*domain.SeedReport, error) {
	if err := checkDuplicates(cat); err != nil {
		return nil, err
	}

	report, err := s.repo.SeedCatalog(ctx, cat)
	if err != nil {
		return nil, fmt.Errorf("failed to seed catalog: %w", err)
	}

	s.crops.Purge()
	s.animals.Purge()
	s.regions.Purge()

	logger.FromContext(ctx).Info(LogMsgCatalogSeeded,
		"source", source, "crops", report.Crops, "animals", report.Animals, "regions", report.Regions)

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewCatalogSeededEvent(report, source))
	}
	return report, nil
}

func (s *service) CropByName(ctx context.Context, name string) (*domain.CropType, error) {
	key := cacheKey(name)
	if c, ok := s.crops.Get(key); ok {
		return &c, nil
	}

	crop, err := s.repo.GetCropTypeByName(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownCrop) {
			return nil, s.unknown(ctx, domain.ErrUnknownCrop, name, s.cropNames)
		}
		return nil, fmt.Errorf("failed to look up crop %q: %w", name, err)
	}

	s.crops.Add(key, *crop)
	return crop, nil
}

func (s *service) AnimalByName(ctx context.Context, name string) (*domain.AnimalType, error) {
	key := cacheKey(name)
	if a, ok := s.animals.Get(key); ok {
		return &a, nil
	}

	animal, err := s.repo.GetAnimalTypeByName(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownAnimal) {
			return nil, s.unknown(ctx, domain.ErrUnknownAnimal, name, s.animalNames)
		}
		return nil, fmt.Errorf("failed to look up animal %q: %w", name, err)
	}

	s.animals.Add(key, *animal)
	return animal, nil
}

func (s *service) RegionByName(ctx context.Context, name string) (*domain.Region, error) {
	key := cacheKey(name)
	if r, ok := s.regions.Get(key); ok {
		return &r, nil
	}

	region, err := s.repo.GetRegionByName(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownRegion) {
			return nil, s.unknown(ctx, domain.ErrUnknownRegion, name, s.regionNames)
		}
		return nil, fmt.Errorf("failed to look up region %q: %w", name, err)
	}

	s.regions.Add(key, *region)
	return region, nil
}

// unknown builds an UnknownNameError, attaching a suggestion when the
// candidate names can be listed. A failed listing only costs the suggestion.
func (s *service) unknown(ctx context.Context, kind error, name string, names func(context.Context) ([]string, error)) error {
	unk := &domain.UnknownNameError{Kind: kind, Name: name}
	candidates, err := names(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgCatalogMiss, "name", name, "error", err)
		return unk
	}
	unk.Suggestion = closestName(name, candidates)
	logger.FromContext(ctx).Debug(LogMsgCatalogMiss, "name", name, "suggestion", unk.Suggestion)
	return unk
}

func (s *service) cropNames(ctx context.Context) ([]string, error) {
	crops, err := s.repo.ListCropTypes(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(crops))
	for _, c := range crops {
		names = append(names, c.Name)
	}
	return names, nil
}

func (s *service) animalNames(ctx context.Context) ([]string, error) {
	animals, err := s.repo.ListAnimalTypes(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(animals))
	for _, a := range animals {
		names = append(names, a.Name)
	}
	return names, nil
}

func (s *service) regionNames(ctx context.Context) ([]string, error) {
	regions, err := s.repo.ListRegions(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(regions))
	for _, r := range regions {
		names = append(names, r.Name)
	}
	return names, nil
}

func (s *service) ListCrops(ctx context.Context) ([]domain.CropType, error) {
	crops, err := s.repo.ListCropTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list crops: %w", err)
	}
	return crops, nil
}

func (s *service) ListAnimals(ctx context.Context) ([]domain.AnimalType, error) {
	animals, err := s.repo.ListAnimalTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list animals: %w", err)
	}
	return animals, nil
}

func (s *service) ListRegions(ctx context.Context) ([]domain.Region, error) {
	regions, err := s.repo.ListRegions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}
	return regions, nil
}
