package bootstrap

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/NeuroFarm_Go/internal/activity"
	"github.com/osse101/NeuroFarm_Go/internal/catalog"
	"github.com/osse101/NeuroFarm_Go/internal/config"
	"github.com/osse101/NeuroFarm_Go/internal/cooldown"
	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/event"
	"github.com/osse101/NeuroFarm_Go/internal/eventlog"
	"github.com/osse101/NeuroFarm_Go/internal/exploration"
	"github.com/osse101/NeuroFarm_Go/internal/farm"
	"github.com/osse101/NeuroFarm_Go/internal/husbandry"
	"github.com/osse101/NeuroFarm_Go/internal/ledger"
	"github.com/osse101/NeuroFarm_Go/internal/plot"
	"github.com/osse101/NeuroFarm_Go/internal/utils"
)

// Services holds every domain service the front ends call
type Services struct {
	Ledger      ledger.Service
	Farm        farm.Service
	Plot        plot.Service
	Husbandry   husbandry.Service
	Exploration exploration.Service
	Activity    activity.Service
	Catalog     catalog.Service
	Cooldown    cooldown.Service
	EventLog    eventlog.Service
}

// InitializeServices wires the services over the repositories. Domain events
// go out through publisher.
func InitializeServices(cfg *config.Config, dbPool *pgxpool.Pool, repos *Repositories, publisher event.Publisher) *Services {
	rng := utils.DefaultRandomSource()

	cooldownSvc := cooldown.NewPostgresService(dbPool, cooldown.Config{
		DevMode: cfg.DevMode,
		Cooldowns: map[string]time.Duration{
			domain.ActionFish:      cfg.FishCooldown,
			domain.ActionOpenChest: cfg.OpenChestCooldown,
		},
	})

	catalogSvc := catalog.NewService(repos.Catalog, publisher, cfg.CatalogCacheSz, cfg.CatalogTTL)

	return &Services{
		Ledger:      ledger.NewService(repos.Player, publisher),
		Farm:        farm.NewService(repos.Farm),
		Plot:        plot.NewService(repos.Farm, catalogSvc, publisher),
		Husbandry:   husbandry.NewService(repos.Farm, catalogSvc, publisher),
		Exploration: exploration.NewService(repos.Player, catalogSvc, publisher, rng),
		Activity:    activity.NewService(repos.Player, cooldownSvc, publisher, rng),
		Catalog:     catalogSvc,
		Cooldown:    cooldownSvc,
		EventLog:    eventlog.NewService(repos.EventLog),
	}
}
