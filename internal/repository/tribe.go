package repository

import (
	"context"

	"github.com/osse101/alion/internal/domain"
)

// TribeRepository handles the tribe catalogue and tribe selection
type TribeRepository interface {
	// ListTribes returns all tribes ordered by ID
	ListTribes(ctx context.Context) ([]domain.Tribe, error)

	// GetTribe returns a tribe or domain.ErrTribeNotFound
	GetTribe(ctx context.Context, tribeID int) (*domain.Tribe, error)

	// Transaction support
	BeginTx(ctx context.Context) (TribeTx, error)
}

// TribeTx groups the writes of a tribe selection into one transaction
type TribeTx interface {
	Tx

	// GetUserForUpdate retrieves the user with a FOR UPDATE lock
	GetUserForUpdate(ctx context.Context, userID string) (*domain.User, error)

	// SetUserTribe records the tribe chosen by the user
	SetUserTribe(ctx context.Context, userID string, tribeID int) error

	// CoordinatesTaken reports whether a village already occupies (x, y)
	CoordinatesTaken(ctx context.Context, x, y int) (bool, error)

	// CreateVillage inserts a new village; an occupied coordinate pair returns
	// domain.ErrCoordinatesTaken
	CreateVillage(ctx context.Context, village *domain.Village) error
}
