// Package village serves village reads and writes. Every read reconciles the
// stored resource state up to the current instant before returning it.
package village

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/osse101/alion/internal/concurrency"
	"github.com/osse101/alion/internal/domain"
	"github.com/osse101/alion/internal/logger"
	"github.com/osse101/alion/internal/metrics"
	"github.com/osse101/alion/internal/repository"
	"github.com/osse101/alion/internal/resource"
)

// Service defines village business logic
type Service interface {
	// ListVillages returns the user's villages with resources projected to now.
	// The projection is not written back.
	ListVillages(ctx context.Context, userID string) ([]domain.Village, error)

	// GetVillage returns a village reconciled and persisted up to now
	GetVillage(ctx context.Context, userID, villageID string) (*domain.Village, error)

	// GetResources is the polling view of GetVillage
	GetResources(ctx context.Context, userID, villageID string) (*domain.VillageResourcesResponse, error)

	// RenameVillage changes the village name and returns the renamed village with
	// resources projected to now. The projection is not persisted.
	RenameVillage(ctx context.Context, userID, villageID, name string) (*domain.Village, error)
}

// Option configures the service
type Option func(*service)

// WithClock replaces the wall clock used to reconcile
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

type service struct {
	repo       repository.VillageRepository
	engine     *resource.Engine
	locks      *concurrency.LockManager
	maxRetries int
	now        func() time.Time
}

// NewService creates a new village service. maxRetries is the number of
// reload-and-retry rounds after the first attempt loses its version check.
func NewService(
	repo repository.VillageRepository,
	engine *resource.Engine,
	locks *concurrency.LockManager,
	maxRetries int,
	opts ...Option,
) Service {
	if maxRetries < 0 {
		maxRetries = DefaultMaxRetries
	}
	s := &service{
		repo:       repo,
		engine:     engine,
		locks:      locks,
		maxRetries: maxRetries,
		now:        systemNow,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// systemNow truncates to the store's timestamp precision so that the value
// returned to the caller equals the value persisted
func systemNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// ListVillages returns the user's villages with resources projected to now
func (s *service) ListVillages(ctx context.Context, userID string) ([]domain.Village, error) {
	villages, err := s.repo.ListVillagesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list villages: %w", err)
	}

	now := s.now()
	for i := range villages {
		updated, changed := s.engine.Reconcile(villages[i].Resources, now)
		if changed {
			villages[i].Resources = updated
			metrics.Reconciliations.WithLabelValues(metrics.OutcomeReadOnly).Inc()
		}
	}
	return villages, nil
}

// GetVillage returns a village reconciled and persisted up to now
func (s *service) GetVillage(ctx context.Context, userID, villageID string) (*domain.Village, error) {
	return s.reconcile(ctx, userID, villageID)
}

// GetResources returns only the reconciled resource levels
func (s *service) GetResources(ctx context.Context, userID, villageID string) (*domain.VillageResourcesResponse, error) {
	v, err := s.reconcile(ctx, userID, villageID)
	if err != nil {
		return nil, err
	}
	resp := v.ToResourcesResponse()
	return &resp, nil
}

// RenameVillage normalises and stores a new village name. Resources in the
// returned village are projected, not persisted, like ListVillages.
func (s *service) RenameVillage(ctx context.Context, userID, villageID, name string) (*domain.Village, error) {
	name, err := NormalizeName(name)
	if err != nil {
		return nil, err
	}

	var renamed *domain.Village
	if err := s.withVillageLock(ctx, villageID, func() error {
		if err := s.repo.RenameVillage(ctx, userID, villageID, name); err != nil {
			return err
		}
		v, err := s.repo.GetVillage(ctx, userID, villageID)
		renamed = v
		return err
	}); err != nil {
		if errors.Is(err, domain.ErrVillageNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to rename village: %w", err)
	}

	logger.FromContext(ctx).Info(LogMsgVillageRenamed, "village_id", villageID, "name", name)

	// Projected only: nothing after the committed rename may fail the request.
	if updated, changed := s.engine.Reconcile(renamed.Resources, s.now()); changed {
		renamed.Resources = updated
		metrics.Reconciliations.WithLabelValues(metrics.OutcomeReadOnly).Inc()
	}
	return renamed, nil
}

// NormalizeName returns the NFC form of name without surrounding whitespace.
// Empty names and names longer than domain.MaxVillageNameLength runes are rejected.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(norm.NFC.String(name))
	n := utf8.RuneCountInString(name)
	if n == 0 {
		return "", fmt.Errorf("%w: village name is required", domain.ErrInvalidInput)
	}
	if n > domain.MaxVillageNameLength {
		return "", fmt.Errorf("%w: village name exceeds %d characters", domain.ErrInvalidInput, domain.MaxVillageNameLength)
	}
	return name, nil
}

// reconcile loads the village, applies accrued production and writes it back
// under the version read. A lost version check discards the computed state
// and starts over from a fresh read.
func (s *service) reconcile(ctx context.Context, userID, villageID string) (*domain.Village, error) {
	var result *domain.Village
	err := s.withVillageLock(ctx, villageID, func() error {
		v, err := s.reconcileLocked(ctx, userID, villageID)
		result = v
		return err
	})
	return result, err
}

func (s *service) reconcileLocked(ctx context.Context, userID, villageID string) (*domain.Village, error) {
	log := logger.FromContext(ctx)

	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		v, err := s.repo.GetVillage(ctx, userID, villageID)
		if err != nil {
			if errors.Is(err, domain.ErrVillageNotFound) {
				return nil, err
			}
			metrics.Reconciliations.WithLabelValues(metrics.OutcomeFailed).Inc()
			return nil, fmt.Errorf("failed to load village: %w", err)
		}

		updated, changed := s.engine.Reconcile(v.Resources, s.now())
		if !changed {
			metrics.Reconciliations.WithLabelValues(metrics.OutcomeUnchanged).Inc()
			return v, nil
		}

		err = s.repo.SaveResources(ctx, v.ID, updated, v.Version)
		if err == nil {
			produced := s.engine.Produced(v.Resources, updated)
			metrics.RecordProduced(produced)
			metrics.Reconciliations.WithLabelValues(metrics.OutcomePersisted).Inc()
			log.Debug(LogMsgResourcesAccrued, "village_id", v.ID, "produced", produced, "version", v.Version+1)

			v.Resources = updated
			v.Version++
			return v, nil
		}
		if !errors.Is(err, domain.ErrVersionConflict) {
			metrics.Reconciliations.WithLabelValues(metrics.OutcomeFailed).Inc()
			return nil, fmt.Errorf("failed to save village resources: %w", err)
		}

		metrics.VersionConflicts.Inc()
		log.Warn(LogMsgVersionConflict, "village_id", v.ID, "attempt", attempt+1, "expected_version", v.Version)
	}

	metrics.Reconciliations.WithLabelValues(metrics.OutcomeExhausted).Inc()
	log.Error(LogMsgRetriesExhausted, "village_id", villageID, "attempts", s.maxRetries+1)
	return nil, domain.ErrReconcileConflict
}

func (s *service) withVillageLock(ctx context.Context, villageID string, fn func() error) error {
	unlock, err := s.locks.Lock(ctx, villageID)
	if err != nil {
		return err
	}
	defer unlock()
	return fn()
}
