package server

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgmodule "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/alion/internal/auth"
	"github.com/osse101/alion/internal/concurrency"
	"github.com/osse101/alion/internal/database"
	"github.com/osse101/alion/internal/database/postgres"
	"github.com/osse101/alion/internal/domain"
	"github.com/osse101/alion/internal/resource"
	"github.com/osse101/alion/internal/tribe"
	"github.com/osse101/alion/internal/user"
	"github.com/osse101/alion/internal/village"
)

var apiPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		apiPool, terminate = setupDatabase(context.Background())
	}

	code := m.Run()

	if apiPool != nil {
		apiPool.Close()
	}
	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func setupDatabase(ctx context.Context) (pool *pgxpool.Pool, terminate func()) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupDatabase (likely Docker issue): %v\n", r)
			pool, terminate = nil, nil
		}
	}()

	pgContainer, err := pgmodule.Run(ctx,
		"postgres:15-alpine",
		pgmodule.WithDatabase("testdb"),
		pgmodule.WithUsername("testuser"),
		pgmodule.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return nil, nil
	}
	terminate = func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		return nil, terminate
	}

	pool, err = database.NewPool(connStr, 10, time.Minute, 5*time.Minute)
	if err != nil {
		fmt.Printf("WARNING: Failed to connect: %v\n", err)
		return nil, terminate
	}
	if err := database.Migrate(ctx, pool); err != nil {
		fmt.Printf("WARNING: Failed to migrate: %v\n", err)
		pool.Close()
		return nil, terminate
	}
	return pool, terminate
}

// manualClock is shared by the services so a test can move time forward
type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type apiClient struct {
	t      *testing.T
	router http.Handler
	token  string
}

func (c *apiClient) do(method, path, body string) (int, []byte) {
	c.t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(HeaderAuthorization, BearerPrefix+c.token)
	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)
	return rec.Code, rec.Body.Bytes()
}

func TestAPI_PlayerOnboardingAndAccrual(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if apiPool == nil {
		t.Skip("Skipping integration test: database not available")
	}

	clock := &manualClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}

	userRepo := postgres.NewUserRepository(apiPool)
	villageRepo := postgres.NewVillageRepository(apiPool)
	tribeRepo := postgres.NewTribeRepository(apiPool)

	userSvc := user.NewService(userRepo, villageRepo, user.DefaultCacheConfig())
	villageSvc := village.NewService(villageRepo, resource.NewEngine(), concurrency.NewLockManager(),
		village.DefaultMaxRetries, village.WithClock(clock.Now))
	tribeSvc := tribe.NewService(tribeRepo, userSvc, time.Minute, tribe.WithClock(clock.Now))

	verifier, err := auth.NewVerifier(testSecret)
	require.NoError(t, err)
	token, err := verifier.Issue(domain.Identity{
		UserID:   uuid.NewString(),
		Username: "ambiorix",
		Email:    "ambiorix@example.com",
	}, time.Hour)
	require.NoError(t, err)

	c := &apiClient{t: t, token: token, router: NewRouter(Params{
		DBPool:         apiPool,
		Verifier:       verifier,
		UserService:    userSvc,
		VillageService: villageSvc,
		TribeService:   tribeSvc,
	})}

	// Fresh player: provisioned on first request, no tribe, no villages
	status, body := c.do(http.MethodGet, "/api/users/player", "")
	require.Equal(t, http.StatusOK, status, string(body))
	var player domain.PlayerResponse
	require.NoError(t, json.Unmarshal(body, &player))
	assert.Nil(t, player.TribeID)
	assert.False(t, player.HasVillages)

	status, body = c.do(http.MethodGet, "/api/tribes", "")
	require.Equal(t, http.StatusOK, status)
	var tribes []domain.Tribe
	require.NoError(t, json.Unmarshal(body, &tribes))
	require.Len(t, tribes, 3)

	// Choosing a tribe founds the capital with the starting state
	status, body = c.do(http.MethodPost, "/api/tribes/select", `{"tribe_id":3}`)
	require.Equal(t, http.StatusCreated, status, string(body))
	var capital domain.VillageResponse
	require.NoError(t, json.Unmarshal(body, &capital))
	assert.Equal(t, "ambiorix's Village", capital.Name)
	assert.Equal(t, "Gauls", capital.TribeName)
	assert.True(t, capital.IsCapital)
	assert.Equal(t, 750, capital.Wood)
	assert.Equal(t, 30, capital.WoodProduction)
	assert.Equal(t, 800, capital.GranaryCapacity)
	assert.GreaterOrEqual(t, capital.CoordinateX, domain.MapMinCoordinate)
	assert.LessOrEqual(t, capital.CoordinateX, domain.MapMaxCoordinate)

	status, _ = c.do(http.MethodPost, "/api/tribes/select", `{"tribe_id":1}`)
	assert.Equal(t, http.StatusBadRequest, status, "tribe choice is final")

	status, body = c.do(http.MethodGet, "/api/users/player", "")
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &player))
	require.NotNil(t, player.TribeID)
	assert.Equal(t, 3, *player.TribeID)
	assert.True(t, player.HasVillages)

	// One hour later: +30 of each resource
	clock.Advance(time.Hour)
	status, body = c.do(http.MethodGet, "/api/villages/"+capital.ID+"/resources", "")
	require.Equal(t, http.StatusOK, status, string(body))
	var res domain.VillageResourcesResponse
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, 780, res.Wood)
	assert.Equal(t, 780, res.Crop)
	assert.True(t, res.LastResourceUpdate.Equal(clock.Now()))

	// Another hour hits the 800 cap
	clock.Advance(time.Hour)
	status, body = c.do(http.MethodGet, "/api/villages", "")
	require.Equal(t, http.StatusOK, status)
	var list []domain.VillageResponse
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list, 1)
	assert.Equal(t, 800, list[0].Wood)

	status, body = c.do(http.MethodPut, "/api/villages/"+capital.ID+"/rename", `{"name":"  Alesia  "}`)
	require.Equal(t, http.StatusOK, status, string(body))
	var renamed domain.VillageResponse
	require.NoError(t, json.Unmarshal(body, &renamed))
	assert.Equal(t, "Alesia", renamed.Name)
	assert.Equal(t, 800, renamed.Wood)

	status, _ = c.do(http.MethodGet, "/api/villages/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, status)
}
