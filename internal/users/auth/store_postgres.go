// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

// PostgreSQL implementation of the account repository.
//
// # err Mapping
//
// Storage-specific errors (like pgx.ErrNoRows) are mapped to domain-friendly
// [apperr.AppError] types to avoid leaking storage implementation details.
// Unique violations are passed through raw so the service can classify them
// with dberr.IsUniqueViolation.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phamtuan/vitalog/internal/platform/apperr"
)

// # User Repository

// PostgresUserRepository implements the UserRepository interface using pgx.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

/*
Create persists a new account record into the users.account table.

Description: Inserts the account with its normalized-email uniqueness key.
Unique violations are returned raw for SQLSTATE classification upstream.

Parameters:
  - context: context.Context
  - user: *User (Entity to persist)

Returns:
  - error: Database constraint violations or connectivity errors
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	const query = `
		INSERT INTO users.account (
			id, email, normalizedemail, passwordhash, isbanned, isadmin, createdat
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	_, err := repository.pool.Exec(context, query,
		user.ID,
		user.Email,
		user.NormalizedEmail,
		user.PasswordHash,
		user.IsBanned,
		user.IsAdmin,
		user.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_user_repo_create_failed: %w", err)
	}

	return nil
}

/*
FindByID retrieves an account record by its unique ID.

Description: Primary key resolution for accounts.

Parameters:
  - context: context.Context
  - id: string (UUIDv7)

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresUserRepository) FindByID(context context.Context, id string) (*User, error) {
	const query = `
		SELECT id, email, normalizedemail, passwordhash, isbanned, isadmin, createdat
		FROM users.account
		WHERE id = $1`

	return repository.scanOne(repository.pool.QueryRow(context, query, id), "User")
}

/*
FindByNormalizedEmail retrieves an account by its normalized email key.

Description: Lookup used by registration pre-checks and login. The caller is
expected to pass the output of NormalizeEmail, never a raw address.

Parameters:
  - context: context.Context
  - normalizedEmail: string

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByNormalizedEmail(context context.Context, normalizedEmail string) (*User, error) {
	const query = `
		SELECT id, email, normalizedemail, passwordhash, isbanned, isadmin, createdat
		FROM users.account
		WHERE normalizedemail = $1`

	return repository.scanOne(repository.pool.QueryRow(context, query, normalizedEmail), "User")
}

/*
HasCompletedProfile reports whether a profile row with a non-blank display
name exists for the account.

Description: EXISTS probe feeding the hasProfile flag in auth responses.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - bool: Profile completeness flag
  - error: Execution errors
*/
func (repository *PostgresUserRepository) HasCompletedProfile(context context.Context, userID string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM users.profile
			WHERE userid = $1 AND displayname IS NOT NULL AND btrim(displayname) <> ''
		)`

	var hasProfile bool
	if err := repository.pool.QueryRow(context, query, userID).Scan(&hasProfile); err != nil {
		return false, fmt.Errorf("postgres_user_repo_profile_check_failed: %w", err)
	}

	return hasProfile, nil
}

/*
IsBanned returns the account's current ban flag.

Description: Source of truth consulted by the access guard (via the Redis
cache decorator) and by the follow-target ban rule.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - bool: Ban flag
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresUserRepository) IsBanned(context context.Context, userID string) (bool, error) {
	const query = "SELECT isbanned FROM users.account WHERE id = $1"

	var banned bool
	err := repository.pool.QueryRow(context, query, userID).Scan(&banned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, apperr.NotFound("User")
		}
		return false, fmt.Errorf("postgres_user_repo_ban_check_failed: %w", err)
	}

	return banned, nil
}

// scanOne hydrates a single account row, mapping absent rows to NotFound.
func (repository *PostgresUserRepository) scanOne(row pgx.Row, resource string) (*User, error) {
	user := &User{}
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.NormalizedEmail,
		&user.PasswordHash,
		&user.IsBanned,
		&user.IsAdmin,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(resource)
		}
		return nil, fmt.Errorf("postgres_user_repo_scan_failed: %w", err)
	}

	return user, nil
}
