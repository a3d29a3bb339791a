// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package profile

import "context"

// # Profile Data Access

// Repository defines the data access contract for body profiles.
type Repository interface {

	/*
		FindByUserID returns the profile owned by the given account.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - *Profile: Hydrated entity
		  - error: apperr.NotFound when absent, or retrieval failures
	*/
	FindByUserID(context context.Context, userID string) (*Profile, error)

	/*
		Create persists a brand-new profile row.

		Parameters:
		  - context: context.Context
		  - profile: *Profile

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, profile *Profile) error

	/*
		Update persists changes to an existing profile row.

		Parameters:
		  - context: context.Context
		  - profile: *Profile

		Returns:
		  - error: Persistence failures
	*/
	Update(context context.Context, profile *Profile) error
}
