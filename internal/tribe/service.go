package tribe

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
	"unicode/utf8"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/alion/internal/domain"
	"github.com/osse101/alion/internal/logger"
	"github.com/osse101/alion/internal/metrics"
	"github.com/osse101/alion/internal/repository"
)

const (
	// MaxPlacementAttempts bounds the search for a free map tile
	MaxPlacementAttempts = 50

	catalogueKey = "tribes"
)

// Service defines tribe catalogue and tribe selection logic
type Service interface {
	// ListTribes returns the tribe catalogue
	ListTribes(ctx context.Context) ([]domain.Tribe, error)

	// SelectTribe assigns a tribe to the user and founds their capital village
	SelectTribe(ctx context.Context, userID string, tribeID int) (*domain.Village, error)
}

// UserInvalidator drops cached user records after the user changes
type UserInvalidator interface {
	InvalidateUser(userID string)
}

// Option configures the service
type Option func(*service)

// WithCoordinateSource replaces the random tile picker
func WithCoordinateSource(next func() (int, int)) Option {
	return func(s *service) {
		s.coords = next
	}
}

// WithClock replaces the wall clock stamped on new villages
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

type service struct {
	repo   repository.TribeRepository
	users  UserInvalidator
	cache  *expirable.LRU[string, []domain.Tribe]
	coords func() (int, int)
	now    func() time.Time
}

// NewService creates a new tribe service. The catalogue is cached for cacheTTL.
func NewService(repo repository.TribeRepository, users UserInvalidator, cacheTTL time.Duration, opts ...Option) Service {
	s := &service{
		repo:   repo,
		users:  users,
		cache:  expirable.NewLRU[string, []domain.Tribe](1, nil, cacheTTL),
		coords: randomCoordinates,
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func randomCoordinates() (int, int) {
	span := domain.MapMaxCoordinate - domain.MapMinCoordinate + 1
	return domain.MapMinCoordinate + rand.IntN(span), domain.MapMinCoordinate + rand.IntN(span)
}

// ListTribes returns the tribe catalogue
func (s *service) ListTribes(ctx context.Context) ([]domain.Tribe, error) {
	if tribes, ok := s.cache.Get(catalogueKey); ok {
		return tribes, nil
	}

	tribes, err := s.repo.ListTribes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tribes: %w", err)
	}
	s.cache.Add(catalogueKey, tribes)
	return tribes, nil
}

// SelectTribe assigns a tribe to the user and founds their capital village.
// A user may select a tribe only once.
func (s *service) SelectTribe(ctx context.Context, userID string, tribeID int) (*domain.Village, error) {
	log := logger.FromContext(ctx)

	tribe, err := s.findTribe(ctx, tribeID)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	user, err := tx.GetUserForUpdate(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user.TribeID != nil {
		return nil, domain.ErrTribeAlreadySelected
	}

	if err := tx.SetUserTribe(ctx, userID, tribe.ID); err != nil {
		return nil, fmt.Errorf("failed to set tribe: %w", err)
	}

	village := &domain.Village{
		Name:            capitalName(user.Username),
		UserID:          userID,
		TribeID:         tribe.ID,
		TribeName:       tribe.Name,
		Resources:       domain.NewResourceState(s.now()),
		Population:      domain.DefaultPopulation,
		PopulationLimit: domain.DefaultPopulationLimit,
		IsCapital:       true,
	}
	if err := s.placeVillage(ctx, tx, village); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if s.users != nil {
		s.users.InvalidateUser(userID)
	}
	metrics.TribesSelected.WithLabelValues(tribe.Name).Inc()
	metrics.VillagesFounded.Inc()
	log.Info("Tribe selected", "user_id", userID, "tribe", tribe.Name,
		"village_id", village.ID, "x", village.CoordinateX, "y", village.CoordinateY)

	return village, nil
}

// placeVillage inserts the village at the first free random tile
func (s *service) placeVillage(ctx context.Context, tx repository.TribeTx, village *domain.Village) error {
	for attempt := 0; attempt < MaxPlacementAttempts; attempt++ {
		x, y := s.coords()
		taken, err := tx.CoordinatesTaken(ctx, x, y)
		if err != nil {
			return fmt.Errorf("failed to check coordinates: %w", err)
		}
		if taken {
			continue
		}

		village.CoordinateX, village.CoordinateY = x, y
		err = tx.CreateVillage(ctx, village)
		if err == nil {
			return nil
		}
		// Lost the tile to a concurrent founder
		if !errors.Is(err, domain.ErrCoordinatesTaken) {
			return fmt.Errorf("failed to create village: %w", err)
		}
	}
	return domain.ErrNoFreeCoordinates
}

func (s *service) findTribe(ctx context.Context, tribeID int) (*domain.Tribe, error) {
	tribes, err := s.ListTribes(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tribes {
		if tribes[i].ID == tribeID {
			return &tribes[i], nil
		}
	}

	// The cached catalogue may predate a newly seeded tribe
	tribe, err := s.repo.GetTribe(ctx, tribeID)
	if err != nil {
		if errors.Is(err, domain.ErrTribeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get tribe: %w", err)
	}
	s.cache.Remove(catalogueKey)
	return tribe, nil
}

// capitalName returns "<username>'s Village", shortened to fit the name limit
func capitalName(username string) string {
	if username == "" {
		return "New Village"
	}
	const suffix = "'s Village"
	maxUser := domain.MaxVillageNameLength - utf8.RuneCountInString(suffix)
	if utf8.RuneCountInString(username) > maxUser {
		username = string([]rune(username)[:maxUser])
	}
	return username + suffix
}
