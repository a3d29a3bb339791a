// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package auth

import (
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// # Domain Entities

// User represents a registered account on the Vitalog platform.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`

	// NormalizedEmail is the uniqueness key: trimmed, NFKC-folded, upper-cased.
	// Never exposed; clients only see the email as they typed it.
	NormalizedEmail string `json:"-"`

	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	IsBanned     bool      `json:"is_banned"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

// NormalizeEmail produces the canonical uniqueness key for an email address.
//
// Two addresses that differ only in surrounding whitespace, Unicode
// compatibility form, or letter case map to the same key, so they cannot
// both register.
func NormalizeEmail(email string) string {
	trimmed := strings.TrimSpace(email)
	folded := norm.NFKC.String(trimmed)
	return strings.ToUpper(folded)
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

// # Authentication Constraints

const (
	// MinPasswordLength is the minimum accepted raw password length.
	MinPasswordLength = 6

	// MaxEmailLength bounds the stored email column.
	MaxEmailLength = 320
)
