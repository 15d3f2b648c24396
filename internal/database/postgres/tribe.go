package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/alion/internal/domain"
	"github.com/osse101/alion/internal/repository"
)

// TribeRepository implements repository.TribeRepository for PostgreSQL
type TribeRepository struct {
	db *pgxpool.Pool
}

// NewTribeRepository creates a new TribeRepository
func NewTribeRepository(db *pgxpool.Pool) *TribeRepository {
	return &TribeRepository{db: db}
}

const selectTribe = `
	SELECT tribe_id, name, COALESCE(description, ''),
	       wood_bonus, clay_bonus, iron_bonus, crop_bonus,
	       COALESCE(icon_name, ''), COALESCE(color_hex, '')
	FROM tribes`

// ListTribes returns the tribe catalogue ordered by ID
func (r *TribeRepository) ListTribes(ctx context.Context) ([]domain.Tribe, error) {
	rows, err := r.db.Query(ctx, selectTribe+` ORDER BY tribe_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tribes: %w", err)
	}
	defer rows.Close()

	tribes := make([]domain.Tribe, 0, 3)
	for rows.Next() {
		t, err := scanTribe(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tribe: %w", err)
		}
		tribes = append(tribes, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tribes: %w", err)
	}
	return tribes, nil
}

// GetTribe returns a tribe or domain.ErrTribeNotFound
func (r *TribeRepository) GetTribe(ctx context.Context, tribeID int) (*domain.Tribe, error) {
	t, err := scanTribe(r.db.QueryRow(ctx, selectTribe+` WHERE tribe_id = $1`, tribeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTribeNotFound
		}
		return nil, fmt.Errorf("failed to get tribe: %w", err)
	}
	return t, nil
}

// BeginTx starts a transaction and returns a TribeTx
func (r *TribeRepository) BeginTx(ctx context.Context) (repository.TribeTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin tribe transaction: %w", err)
	}
	return &tribeTx{tx: tx}, nil
}

// tribeTx implements repository.TribeTx
type tribeTx struct {
	tx pgx.Tx
}

// Commit commits the transaction
func (t *tribeTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *tribeTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetUserForUpdate retrieves the user with a FOR UPDATE lock
func (t *tribeTx) GetUserForUpdate(ctx context.Context, userID string) (*domain.User, error) {
	userUUID, err := parseUUID("user", userID)
	if err != nil {
		return nil, err
	}

	row := t.tx.QueryRow(ctx, `SELECT `+selectUserColumns+` FROM users WHERE user_id = $1 FOR UPDATE`, userUUID)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user with lock: %w", err)
	}
	return user, nil
}

// SetUserTribe records the tribe chosen by the user
func (t *tribeTx) SetUserTribe(ctx context.Context, userID string, tribeID int) error {
	userUUID, err := parseUUID("user", userID)
	if err != nil {
		return err
	}

	tag, err := t.tx.Exec(ctx, `UPDATE users SET tribe_id = $2, updated_at = NOW() WHERE user_id = $1`, userUUID, tribeID)
	if err != nil {
		return fmt.Errorf("failed to set user tribe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// CoordinatesTaken reports whether a village already occupies (x, y)
func (t *tribeTx) CoordinatesTaken(ctx context.Context, x, y int) (bool, error) {
	var taken bool
	err := t.tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM villages WHERE coordinate_x = $1 AND coordinate_y = $2)`, x, y).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("failed to check coordinates: %w", err)
	}
	return taken, nil
}

// CreateVillage inserts the village inside a savepoint so that a coordinate
// collision leaves the surrounding transaction usable
func (t *tribeTx) CreateVillage(ctx context.Context, village *domain.Village) error {
	if village.ID == "" {
		village.ID = uuid.NewString()
	}
	villageUUID, err := parseUUID("village", village.ID)
	if err != nil {
		return err
	}
	userUUID, err := parseUUID("user", village.UserID)
	if err != nil {
		return err
	}

	sp, err := t.tx.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to create savepoint: %w", err)
	}
	defer SafeRollback(ctx, sp)

	rs := village.Resources
	query := `
		INSERT INTO villages (
			village_id, name, coordinate_x, coordinate_y, user_id, tribe_id,
			wood, clay, iron, crop,
			wood_production, clay_production, iron_production, crop_production,
			warehouse_capacity, granary_capacity,
			population, population_limit, is_capital,
			last_resource_update, created_at, version
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $20, 0)
		RETURNING created_at`

	err = sp.QueryRow(ctx, query,
		villageUUID, village.Name, village.CoordinateX, village.CoordinateY, userUUID, village.TribeID,
		rs.Levels.Wood, rs.Levels.Clay, rs.Levels.Iron, rs.Levels.Crop,
		rs.Production.Wood, rs.Production.Clay, rs.Production.Iron, rs.Production.Crop,
		rs.WarehouseCapacity, rs.GranaryCapacity,
		village.Population, village.PopulationLimit, village.IsCapital,
		rs.LastUpdate,
	).Scan(&village.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, constraintVillageCoordinates) {
			return domain.ErrCoordinatesTaken
		}
		return fmt.Errorf("failed to create village: %w", err)
	}

	if err := sp.Commit(ctx); err != nil {
		return fmt.Errorf("failed to release savepoint: %w", err)
	}
	village.Version = 0
	return nil
}

func scanTribe(row pgx.Row) (*domain.Tribe, error) {
	var t domain.Tribe
	err := row.Scan(&t.ID, &t.Name, &t.Description,
		&t.WoodBonus, &t.ClayBonus, &t.IronBonus, &t.CropBonus,
		&t.IconName, &t.ColorHex)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
