package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/alion/internal/database/postgres"
	"github.com/osse101/alion/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	User    repository.User
	Village repository.VillageRepository
	Tribe   repository.TribeRepository
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:    postgres.NewUserRepository(dbPool),
		Village: postgres.NewVillageRepository(dbPool),
		Tribe:   postgres.NewTribeRepository(dbPool),
	}
}
