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

// UserRepository implements repository.User for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const selectUserColumns = `user_id, username, COALESCE(email, ''), COALESCE(first_name, ''),
	COALESCE(last_name, ''), tribe_id, created_at, updated_at`

// UpsertUser inserts the user or refreshes its profile fields. The tribe choice is
// never touched here. Timestamps and tribe are written back into user.
func (r *UserRepository) UpsertUser(ctx context.Context, user *domain.User) error {
	userUUID, err := parseUUID("user", user.ID)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (user_id, username, email, first_name, last_name, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET username = EXCLUDED.username,
		    email = COALESCE(EXCLUDED.email, users.email),
		    first_name = COALESCE(EXCLUDED.first_name, users.first_name),
		    last_name = COALESCE(EXCLUDED.last_name, users.last_name),
		    updated_at = NOW()
		RETURNING ` + selectUserColumns

	row := r.db.QueryRow(ctx, query, userUUID, user.Username, user.Email, user.FirstName, user.LastName)
	stored, err := scanUser(row)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	*user = *stored
	return nil
}

// GetUserByID returns the user or domain.ErrUserNotFound
func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	userUUID, err := parseUUID("user", userID)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, `SELECT `+selectUserColumns+` FROM users WHERE user_id = $1`, userUUID)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u       domain.User
		id      uuid.UUID
		tribeID *int32
	)
	if err := row.Scan(&id, &u.Username, &u.Email, &u.FirstName, &u.LastName, &tribeID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.ID = id.String()
	if tribeID != nil {
		v := int(*tribeID)
		u.TribeID = &v
	}
	return &u, nil
}
