package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/alion/internal/domain"
)

// VillageRepository implements repository.VillageRepository for PostgreSQL
type VillageRepository struct {
	db *pgxpool.Pool
}

// NewVillageRepository creates a new VillageRepository
func NewVillageRepository(db *pgxpool.Pool) *VillageRepository {
	return &VillageRepository{db: db}
}

const selectVillage = `
	SELECT v.village_id, v.name, v.coordinate_x, v.coordinate_y, v.user_id, v.tribe_id, t.name,
	       v.wood, v.clay, v.iron, v.crop,
	       v.wood_production, v.clay_production, v.iron_production, v.crop_production,
	       v.warehouse_capacity, v.granary_capacity,
	       v.population, v.population_limit, v.is_capital,
	       v.last_resource_update, v.created_at, v.version
	FROM villages v
	JOIN tribes t ON t.tribe_id = v.tribe_id`

// GetVillage returns a village owned by userID. A village owned by someone else
// is reported as not found.
func (r *VillageRepository) GetVillage(ctx context.Context, userID, villageID string) (*domain.Village, error) {
	userUUID, err := parseUUID("user", userID)
	if err != nil {
		return nil, err
	}
	villageUUID, err := parseUUID("village", villageID)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, selectVillage+` WHERE v.village_id = $1 AND v.user_id = $2`, villageUUID, userUUID)
	village, err := scanVillage(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVillageNotFound
		}
		return nil, fmt.Errorf("failed to get village: %w", err)
	}
	return village, nil
}

// ListVillagesByUser returns the villages of userID, oldest first
func (r *VillageRepository) ListVillagesByUser(ctx context.Context, userID string) ([]domain.Village, error) {
	userUUID, err := parseUUID("user", userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, selectVillage+` WHERE v.user_id = $1 ORDER BY v.created_at, v.village_id`, userUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to list villages: %w", err)
	}
	defer rows.Close()

	villages := make([]domain.Village, 0)
	for rows.Next() {
		v, err := scanVillage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan village: %w", err)
		}
		villages = append(villages, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate villages: %w", err)
	}
	return villages, nil
}

// SaveResources writes levels and the reconciliation timestamp when the row is
// still at expectedVersion
func (r *VillageRepository) SaveResources(ctx context.Context, villageID string, state domain.ResourceState, expectedVersion int64) error {
	villageUUID, err := parseUUID("village", villageID)
	if err != nil {
		return err
	}

	query := `
		UPDATE villages
		SET wood = $3, clay = $4, iron = $5, crop = $6,
		    last_resource_update = $7,
		    version = version + 1
		WHERE village_id = $1 AND version = $2`

	tag, err := r.db.Exec(ctx, query, villageUUID, expectedVersion,
		state.Levels.Wood, state.Levels.Clay, state.Levels.Iron, state.Levels.Crop,
		state.LastUpdate)
	if err != nil {
		return fmt.Errorf("failed to save village resources: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVersionConflict
	}
	return nil
}

// RenameVillage changes the name of a village owned by userID
func (r *VillageRepository) RenameVillage(ctx context.Context, userID, villageID, name string) error {
	userUUID, err := parseUUID("user", userID)
	if err != nil {
		return err
	}
	villageUUID, err := parseUUID("village", villageID)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE villages SET name = $3, version = version + 1 WHERE village_id = $1 AND user_id = $2`,
		villageUUID, userUUID, name)
	if err != nil {
		return fmt.Errorf("failed to rename village: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVillageNotFound
	}
	return nil
}

// HasVillages reports whether userID owns at least one village
func (r *VillageRepository) HasVillages(ctx context.Context, userID string) (bool, error) {
	userUUID, err := parseUUID("user", userID)
	if err != nil {
		return false, err
	}

	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM villages WHERE user_id = $1)`, userUUID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check villages: %w", err)
	}
	return exists, nil
}

func scanVillage(row pgx.Row) (*domain.Village, error) {
	var (
		v                  domain.Village
		villageID, ownerID uuid.UUID
	)
	rs := &v.Resources
	err := row.Scan(
		&villageID, &v.Name, &v.CoordinateX, &v.CoordinateY, &ownerID, &v.TribeID, &v.TribeName,
		&rs.Levels.Wood, &rs.Levels.Clay, &rs.Levels.Iron, &rs.Levels.Crop,
		&rs.Production.Wood, &rs.Production.Clay, &rs.Production.Iron, &rs.Production.Crop,
		&rs.WarehouseCapacity, &rs.GranaryCapacity,
		&v.Population, &v.PopulationLimit, &v.IsCapital,
		&rs.LastUpdate, &v.CreatedAt, &v.Version,
	)
	if err != nil {
		return nil, err
	}
	v.ID = villageID.String()
	v.UserID = ownerID.String()
	return &v, nil
}
