package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/alion/internal/concurrency"
	"github.com/osse101/alion/internal/domain"
	"github.com/osse101/alion/internal/resource"
	"github.com/osse101/alion/internal/village"
)

// TestConcurrentReconciliation_Integration runs overlapping reads of one village
// through independent services, each standing in for a separate server process.
// The stored version check must let exactly one reconciliation credit production.
func TestConcurrentReconciliation_Integration(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()

	owner := createTestUser(t, pool)
	start := nowMicro().Add(-3 * time.Hour)
	v := foundVillage(t, pool, owner, start)

	repo := NewVillageRepository(pool)
	// Drain the village so the cap does not mask double crediting
	state := v.Resources
	state.Levels = domain.Resources{Wood: 100, Clay: 100, Iron: 100, Crop: 100}
	require.NoError(t, repo.SaveResources(ctx, v.ID, state, 0))

	now := start.Add(2 * time.Hour)
	const workers = 12

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			svc := village.NewService(repo, resource.NewEngine(), concurrency.NewLockManager(), workers,
				village.WithClock(func() time.Time { return now }))
			_, errs[i] = svc.GetResources(ctx, owner.ID, v.ID)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	got, err := repo.GetVillage(ctx, owner.ID, v.ID)
	require.NoError(t, err)
	assert.Equal(t, 160, got.Resources.Levels.Wood)
	assert.Equal(t, 160, got.Resources.Levels.Crop)
	assert.True(t, now.Equal(got.Resources.LastUpdate))
	assert.Equal(t, int64(2), got.Version, "drain write plus a single reconciliation")
}
