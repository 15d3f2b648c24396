package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/alion/internal/domain"
	"github.com/osse101/alion/internal/logger"
	"github.com/osse101/alion/internal/repository"
)

// Service defines player account operations
type Service interface {
	// EnsureUser provisions or refreshes the user described by a verified identity
	EnsureUser(ctx context.Context, id domain.Identity) (*domain.User, error)

	// GetCurrentUser returns the authenticated user's profile
	GetCurrentUser(ctx context.Context, userID string) (*domain.CurrentUserResponse, error)

	// GetPlayer returns the player summary used by the client to route onboarding
	GetPlayer(ctx context.Context, userID string) (*domain.PlayerResponse, error)

	// InvalidateUser drops the cached provisioning record of userID
	InvalidateUser(userID string)
}

type service struct {
	userRepo    repository.User
	villageRepo repository.VillageRepository
	cache       *userCache
}

// NewService creates a new user service
func NewService(userRepo repository.User, villageRepo repository.VillageRepository, cacheCfg CacheConfig) Service {
	return &service{
		userRepo:    userRepo,
		villageRepo: villageRepo,
		cache:       newUserCache(cacheCfg),
	}
}

// EnsureUser upserts the user unless the same identity was provisioned recently
func (s *service) EnsureUser(ctx context.Context, id domain.Identity) (*domain.User, error) {
	if id.UserID == "" {
		return nil, fmt.Errorf("%w: identity has no subject", domain.ErrInvalidInput)
	}
	if u, ok := s.cache.Get(id); ok {
		return u, nil
	}

	u := &domain.User{
		ID:        id.UserID,
		Username:  id.Username,
		Email:     id.Email,
		FirstName: id.FirstName,
		LastName:  id.LastName,
	}
	if u.Username == "" {
		u.Username = id.Email
	}
	if err := s.userRepo.UpsertUser(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to provision user: %w", err)
	}

	logger.FromContext(ctx).Debug(LogMsgUserProvisioned, "user_id", u.ID, "username", u.Username)
	s.cache.Set(id, u)
	return u, nil
}

// GetCurrentUser returns the authenticated user's profile
func (s *service) GetCurrentUser(ctx context.Context, userID string) (*domain.CurrentUserResponse, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &domain.CurrentUserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}, nil
}

// GetPlayer returns profile, tribe choice and whether the player owns a village
func (s *service) GetPlayer(ctx context.Context, userID string) (*domain.PlayerResponse, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	hasVillages, err := s.villageRepo.HasVillages(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check villages: %w", err)
	}

	return &domain.PlayerResponse{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		TribeID:     u.TribeID,
		HasVillages: hasVillages,
	}, nil
}

// InvalidateUser drops the cached provisioning record of userID
func (s *service) InvalidateUser(userID string) {
	s.cache.Invalidate(userID)
}

func (s *service) getUser(ctx context.Context, userID string) (*domain.User, error) {
	u, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}
