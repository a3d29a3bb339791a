// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package exercise

import "context"

// Repository defines the data access contract for the exercise vocabulary.
type Repository interface {

	// List returns exercises ordered by name, optionally filtered by a
	// case-insensitive substring match on the name.
	List(context context.Context, search string) ([]Exercise, error)

	// FindByID returns the exercise with the given ID, or apperr.NotFound.
	FindByID(context context.Context, id string) (*Exercise, error)

	// Create persists a new exercise row.
	Create(context context.Context, exercise *Exercise) error

	// Update persists changes to an existing row, reporting whether one matched.
	Update(context context.Context, exercise *Exercise) (bool, error)

	// Delete removes a row, reporting whether one matched. Foreign-key
	// violations are returned raw for SQLSTATE classification upstream.
	Delete(context context.Context, id string) (bool, error)
}

// ListCache caches the unfiltered exercise listing.
type ListCache interface {
	Get(context context.Context) ([]Exercise, bool)
	Set(context context.Context, exercises []Exercise)
	Invalidate(context context.Context)
}
