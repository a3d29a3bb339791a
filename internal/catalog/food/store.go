// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package food

import "context"

// # Food Data Access

// Repository defines the data access contract for the food vocabulary.
type Repository interface {

	/*
		List returns foods ordered by name, optionally filtered by a
		case-insensitive substring match on the name.

		Parameters:
		  - context: context.Context
		  - search: string (blank returns everything)

		Returns:
		  - []Food: Ordered rows
		  - error: Retrieval failures
	*/
	List(context context.Context, search string) ([]Food, error)

	/*
		FindByID returns the food with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Food: Hydrated entity
		  - error: apperr.NotFound or retrieval failures
	*/
	FindByID(context context.Context, id string) (*Food, error)

	/*
		Create persists a new food row.

		Parameters:
		  - context: context.Context
		  - food: *Food

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, food *Food) error

	/*
		Update persists changes to an existing food row.

		Parameters:
		  - context: context.Context
		  - food: *Food

		Returns:
		  - bool: Whether a row was actually updated
		  - error: Persistence failures
	*/
	Update(context context.Context, food *Food) (bool, error)

	/*
		Delete removes a food row.

		Foreign-key violations (entries still referencing the food) are
		returned raw for SQLSTATE classification upstream.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - bool: Whether a row was actually deleted
		  - error: Constraint violations or execution failures
	*/
	Delete(context context.Context, id string) (bool, error)
}

// ListCache caches the unfiltered food listing.
type ListCache interface {

	/*
		Get returns the cached listing, or a miss.

		Parameters:
		  - context: context.Context

		Returns:
		  - []Food: Cached rows
		  - bool: Whether the cache held a value
	*/
	Get(context context.Context) ([]Food, bool)

	/*
		Set stores the listing with a bounded TTL.

		Parameters:
		  - context: context.Context
		  - foods: []Food
	*/
	Set(context context.Context, foods []Food)

	/*
		Invalidate drops the cached listing after any vocabulary write.

		Parameters:
		  - context: context.Context
	*/
	Invalidate(context context.Context)
}
