// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

/*
Package profile implements the optional 1:1 body profile attached to an account.

A profile is created lazily on the first PUT; until then reads return null.
An account with a profile row whose display name is blank still counts as
"no profile" for the hasProfile flag in auth responses.
*/
package profile

import "time"

// # Domain Entities

// Profile holds the optional body measurements and identity of an account.
//
// All descriptive fields are pointers: nil means the column is NULL and the
// client never sent a value (or sent a blank one, which is normalized to NULL).
type Profile struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	DisplayName *string    `json:"displayName"`
	Gender      *string    `json:"gender"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	HeightCm    *float64   `json:"heightCm"`
	WeightKg    *float64   `json:"weightKg"`
	CreatedAt   time.Time  `json:"-"`
	UpdatedAt   *time.Time `json:"-"`
}

// # Field Identifiers

const (
	FieldDisplayName = "displayName"
	FieldGender      = "gender"
	FieldHeightCm    = "heightCm"
	FieldWeightKg    = "weightKg"
)

// # Validation Constraints

const (
	MaxDisplayNameLength = 200
	MaxGenderLength      = 50
	MaxHeightCm          = 300.0
	MaxWeightKg          = 500.0
)
