// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package auth

import (
	"context"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {

	/*
		Create persists a brand-new account to the storage.

		The unique index on normalizedemail is the authoritative duplicate
		guard; concurrent registrations surface here as a unique violation.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: Persistence failures (including unique violations)
	*/
	Create(context context.Context, user *User) error

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or retrieval failures
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByNormalizedEmail returns the account matching a normalized email key.

		Parameters:
		  - context: context.Context
		  - normalizedEmail: string (output of NormalizeEmail)

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or retrieval failures
	*/
	FindByNormalizedEmail(context context.Context, normalizedEmail string) (*User, error)

	/*
		HasCompletedProfile reports whether the account has a profile row with
		a non-blank display name.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - bool: Profile completeness flag
		  - error: Retrieval failures
	*/
	HasCompletedProfile(context context.Context, userID string) (bool, error)

	/*
		IsBanned returns the account's current ban flag.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - bool: Ban flag
		  - error: apperr.NotFound or retrieval failures
	*/
	IsBanned(context context.Context, userID string) (bool, error)
}

// # Ban-Status Access

// BanStatusSource resolves the authoritative ban flag for an account.
type BanStatusSource interface {

	/*
		IsBanned returns the account's current ban flag from persistent storage.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - bool: Ban flag
		  - error: Retrieval failures
	*/
	IsBanned(context context.Context, userID string) (bool, error)
}

// BanStatusRepository is the cache-aware view of account ban state consulted
// on every authenticated request.
type BanStatusRepository interface {
	BanStatusSource

	/*
		Invalidate drops the cached ban flag so the next lookup re-reads
		persistent storage. Called when an admin toggles the ban state.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - error: Cache eviction failures
	*/
	Invalidate(context context.Context, userID string) error
}
