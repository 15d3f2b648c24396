package repository

import (
	"context"

	"github.com/osse101/alion/internal/domain"
)

// VillageRepository handles village persistence
type VillageRepository interface {
	// GetVillage returns a village owned by userID, or domain.ErrVillageNotFound
	GetVillage(ctx context.Context, userID, villageID string) (*domain.Village, error)

	// ListVillagesByUser returns every village owned by userID, oldest first
	ListVillagesByUser(ctx context.Context, userID string) ([]domain.Village, error)

	// SaveResources writes a reconciled resource state if the stored version still
	// equals expectedVersion. A lost race returns domain.ErrVersionConflict and
	// leaves the row untouched.
	SaveResources(ctx context.Context, villageID string, state domain.ResourceState, expectedVersion int64) error

	// RenameVillage changes the name of a village owned by userID
	RenameVillage(ctx context.Context, userID, villageID, name string) error

	// HasVillages reports whether userID owns at least one village
	HasVillages(ctx context.Context, userID string) (bool, error)
}
