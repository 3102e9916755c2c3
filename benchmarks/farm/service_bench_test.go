package farm_bench

import (
	"context"
	"testing"
	"time"

	"github.com/osse101/NeuroFarm_Go/internal/catalog"
	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/event"
	"github.com/osse101/NeuroFarm_Go/internal/exploration"
	"github.com/osse101/NeuroFarm_Go/internal/ledger"
	"github.com/osse101/NeuroFarm_Go/internal/sse"
	"github.com/osse101/NeuroFarm_Go/internal/testing/fakestore"
	"github.com/osse101/NeuroFarm_Go/internal/utils"
)

// --- Stubs ---

type StubPublisher struct{}

func (StubPublisher) PublishWithRetry(ctx context.Context, e event.Event) {}

func seededCatalog(b *testing.B, store *fakestore.Store) catalog.Service {
	b.Helper()
	svc := catalog.NewService(store, nil, 64, time.Hour)
	if _, err := svc.Seed(context.Background(), catalog.DefaultCatalog(), catalog.SourceDefault); err != nil {
		b.Fatal(err)
	}
	return svc
}

// --- Benchmarks ---

func BenchmarkExplore(b *testing.B) {
	ctx := context.Background()
	store := fakestore.New()
	catalogSvc := seededCatalog(b, store)

	p, _, err := store.CreatePlayer(ctx, "bench", domain.LanguageEnglish)
	if err != nil {
		b.Fatal(err)
	}
	svc := exploration.NewService(store, catalogSvc, StubPublisher{}, utils.NewRandomSource(1))
	now := time.Now()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Top up so the run never stops on insufficient funds
		store.SetCoins(p.ID, 1_000)
		if _, err := svc.Explore(ctx, p.ID, "forest", now); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCatalogLookup(b *testing.B) {
	ctx := context.Background()
	svc := seededCatalog(b, fakestore.New())

	b.Run("cached", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := svc.CropByName(ctx, "Wheat"); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("unknown_with_suggestion", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := svc.CropByName(ctx, "wheet"); err == nil {
				b.Fatal("expected unknown crop")
			}
		}
	})
}

func BenchmarkLevelForExperience(b *testing.B) {
	top := ledger.ExperienceForLevel(domain.MaxLevel)
	for i := 0; i < b.N; i++ {
		_ = ledger.ProgressFor(int64(i) % top)
	}
}

func BenchmarkFormatSSEMessage(b *testing.B) {
	evt := sse.Event{
		ID:        "bench",
		Type:      sse.EventTypeLevelUp,
		Timestamp: time.Now().Unix(),
		Payload:   sse.LevelUpPayload{PlayerID: "p", AccountKey: "discord:1", OldLevel: 4, NewLevel: 5},
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := sse.FormatSSEMessage(evt); err != nil {
			b.Fatal(err)
		}
	}
}
