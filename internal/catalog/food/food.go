// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

/*
Package food implements the shared food vocabulary of the diary system.

Foods carry per-100g macros and are referenced by eating-plan entries.
Deleting a food that entries still reference is refused (RESTRICT), so the
diary can always resolve its references.
*/
package food

import "time"

// # Domain Entities

// Food is one row of the shared food vocabulary.
type Food struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	CaloriesPer100g float64   `json:"caloriesPer100g"`
	ProteinPer100g  float64   `json:"proteinPer100g"`
	CarbsPer100g    float64   `json:"carbsPer100g"`
	FatPer100g      float64   `json:"fatPer100g"`
	CreatedAt       time.Time `json:"-"`
}

// # Field Identifiers

const (
	FieldName     = "name"
	FieldCalories = "caloriesPer100g"
	FieldProtein  = "proteinPer100g"
	FieldCarbs    = "carbsPer100g"
	FieldFat      = "fatPer100g"
)

// # Validation Constraints

const (
	MaxNameLength = 200
	MaxCalories   = 10000.0
	MaxMacro      = 1000.0
)
