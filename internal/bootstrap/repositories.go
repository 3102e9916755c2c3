package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/NeuroFarm_Go/internal/database/postgres"
	"github.com/osse101/NeuroFarm_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Player   repository.Player
	Farm     repository.Farm
	Catalog  repository.Catalog
	EventLog repository.EventLog
}

// InitializeRepositories creates the Postgres repositories over one pool
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Player:   postgres.NewPlayerRepository(dbPool),
		Farm:     postgres.NewFarmRepository(dbPool),
		Catalog:  postgres.NewCatalogRepository(dbPool),
		EventLog: postgres.NewEventLogRepository(dbPool),
	}
}
