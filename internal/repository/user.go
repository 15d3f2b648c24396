package repository

import (
	"context"

	"github.com/osse101/alion/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	// UpsertUser creates the user or refreshes its profile fields, keyed by ID
	UpsertUser(ctx context.Context, user *domain.User) error

	// GetUserByID returns the user or domain.ErrUserNotFound
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
