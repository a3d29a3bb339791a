// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

/*
Package diary implements the daily eating and workout plan diaries.

Every member keeps at most one eating plan and one workout plan per
calendar day. Plan dates are normalized to UTC midnight before any
comparison or write, so two timestamps on the same day always land on
the same plan. Uniqueness is enforced twice: a service pre-check shapes
the error message, and a unique index on (userid, plandate) resolves
concurrent creates at the store.

Entries reference the shared catalog vocabularies. The referenced food
or exercise must exist when an entry is written, and catalog rows cannot
be deleted while entries still point at them.
*/
package diary

import (
	"fmt"
	"time"
)

// EatingPlan is one member's eating diary for a single calendar day.
type EatingPlan struct {
	ID        string        `json:"id"`
	UserID    string        `json:"-"`
	PlanDate  time.Time     `json:"planDate"`
	CreatedAt time.Time     `json:"createdAtUtc"`
	Entries   []EatingEntry `json:"entries"`
}

// EatingEntry is one food line inside an eating plan. FoodName is
// resolved from the catalog at read time.
type EatingEntry struct {
	ID            string  `json:"id"`
	PlanID        string  `json:"-"`
	FoodID        string  `json:"foodId"`
	FoodName      *string `json:"foodName"`
	QuantityGrams float64 `json:"quantityGrams"`
}

// WorkoutPlan is one member's workout diary for a single calendar day.
type WorkoutPlan struct {
	ID        string         `json:"id"`
	UserID    string         `json:"-"`
	PlanDate  time.Time      `json:"planDate"`
	CreatedAt time.Time      `json:"createdAtUtc"`
	Entries   []WorkoutEntry `json:"entries"`
}

// WorkoutEntry is one exercise line inside a workout plan. The
// measurement fields are all optional.
type WorkoutEntry struct {
	ID              string  `json:"id"`
	PlanID          string  `json:"-"`
	ExerciseID      string  `json:"exerciseId"`
	ExerciseName    *string `json:"exerciseName"`
	DurationMinutes *int    `json:"durationMinutes"`
	Sets            *int    `json:"sets"`
	Reps            *int    `json:"reps"`
}

// Boundary limits for entry measurements.
const (
	MaxQuantityGrams   = 10000.0
	MaxDurationMinutes = 1440
	MaxSets            = 1000
	MaxReps            = 1000
)

// NormalizeDay truncates a timestamp to UTC midnight of its calendar day.
func NormalizeDay(value time.Time) time.Time {
	utc := value.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a client-sent date and normalizes it to UTC midnight.
// Both plain dates (2026-03-01) and RFC 3339 timestamps are accepted.
func ParseDay(value string) (time.Time, error) {
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return NormalizeDay(parsed), nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("diary_invalid_date: %q", value)
	}
	return NormalizeDay(parsed), nil
}
