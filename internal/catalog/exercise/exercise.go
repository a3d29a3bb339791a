// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

// Package exercise implements the shared exercise vocabulary referenced by
// workout-plan entries. Deletion is refused while entries reference a row.
package exercise

import "time"

// Exercise is one row of the shared exercise vocabulary.
type Exercise struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	CreatedAt   time.Time `json:"-"`
}

const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldCategory    = "category"
)

const (
	MaxNameLength        = 200
	MaxDescriptionLength = 2000
	MaxCategoryLength    = 100
)
