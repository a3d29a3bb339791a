// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phamtuan/vitalog/internal/platform/apperr"
)

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the profile Repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
FindByUserID retrieves the profile owned by the given account.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *Profile: Hydrated entity
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresRepository) FindByUserID(context context.Context, userID string) (*Profile, error) {
	const query = `
		SELECT id, userid, displayname, gender, dateofbirth, heightcm, weightkg, createdat, updatedat
		FROM users.profile
		WHERE userid = $1`

	entity := &Profile{}
	err := repository.pool.QueryRow(context, query, userID).Scan(
		&entity.ID,
		&entity.UserID,
		&entity.DisplayName,
		&entity.Gender,
		&entity.DateOfBirth,
		&entity.HeightCm,
		&entity.WeightKg,
		&entity.CreatedAt,
		&entity.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Profile")
		}
		return nil, fmt.Errorf("postgres_profile_repo_find_failed: %w", err)
	}

	return entity, nil
}

/*
Create persists a new profile row into users.profile.

Parameters:
  - context: context.Context
  - profile: *Profile

Returns:
  - error: Constraint violations or connectivity errors
*/
func (repository *PostgresRepository) Create(context context.Context, profile *Profile) error {
	const query = `
		INSERT INTO users.profile (
			id, userid, displayname, gender, dateofbirth, heightcm, weightkg, createdat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := repository.pool.Exec(context, query,
		profile.ID,
		profile.UserID,
		profile.DisplayName,
		profile.Gender,
		profile.DateOfBirth,
		profile.HeightCm,
		profile.WeightKg,
		profile.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_profile_repo_create_failed: %w", err)
	}

	return nil
}

/*
Update persists changes to an existing profile row.

Parameters:
  - context: context.Context
  - profile: *Profile

Returns:
  - error: Update failures
*/
func (repository *PostgresRepository) Update(context context.Context, profile *Profile) error {
	const query = `
		UPDATE users.profile
		SET displayname = $2, gender = $3, dateofbirth = $4, heightcm = $5, weightkg = $6, updatedat = $7
		WHERE id = $1`

	_, err := repository.pool.Exec(context, query,
		profile.ID,
		profile.DisplayName,
		profile.Gender,
		profile.DateOfBirth,
		profile.HeightCm,
		profile.WeightKg,
		profile.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_profile_repo_update_failed: %w", err)
	}

	return nil
}
