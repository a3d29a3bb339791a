// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

/*
Package auth implements the core identity and access management system.

It handles user registration with normalized-email uniqueness, secure
password hashing, and stateless JWT access tokens.

Architecture:

  - Service: Orchestrates business logic (Register, Login, Me).
  - Repository: Abstracted interfaces for Postgres (accounts) and Redis (ban cache).
  - Security: Leverages bcrypt hashing and HS256-signed JWTs.

Tokens are stateless and never revoked; only the ban flag is re-checked live
on each request, which is why admin bans take effect before token expiry.
*/
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/phamtuan/vitalog/internal/platform/apperr"
	"github.com/phamtuan/vitalog/internal/platform/dberr"
	"github.com/phamtuan/vitalog/internal/platform/sec"
	"github.com/phamtuan/vitalog/pkg/uuid"
)

// # Contracts & Types

// TokenProvider defines the contract for generating security tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	//
	// # Parameters
	//   - userID: The ID of the account.
	//   - email: The email of the account.
	//   - role: The role of the account.
	//
	// # Returns
	//   - A signed JWT string, or an err if signing fails.
	GenerateAccessToken(userID, email, role string) (string, error)
}

// Session is the transport-ready result of every successful auth operation.
//
// Register, Login, and Me all return the same shape, so the SPA can treat
// any of them as a session refresh.
type Session struct {
	Token      string `json:"token"`
	UserID     string `json:"userId"`
	Email      string `json:"email"`
	HasProfile bool   `json:"hasProfile"`
	IsAdmin    bool   `json:"isAdmin"`
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed carefully.
type Service struct {
	userRepository UserRepository
	tokenProvider  TokenProvider
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(userRepo UserRepository, tokenProv TokenProvider) *Service {
	return &Service{
		userRepository: userRepo,
		tokenProvider:  tokenProv,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Email    string
	Password string
}

/*
Register validates, hashes, and persists a brand new account.

Description: Enrolls a new member under the normalized-email uniqueness rule
and immediately issues an access token so registration doubles as login.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *Session: Token plus account facts (hasProfile always false here)
  - err: Conflict (if the normalized email exists) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*Session, error) {
	normalizedEmail := NormalizeEmail(input.Email)

	// Pre-check for a friendly Conflict before attempting the insert.
	_, err := service.userRepository.FindByNormalizedEmail(context, normalizedEmail)
	if err == nil {
		return nil, apperr.Conflict("Email is already registered.")
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Construct the new User entity. Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:              uuid.New(),
		Email:           strings.TrimSpace(input.Email),
		NormalizedEmail: normalizedEmail,
		PasswordHash:    hashedPassword,
		IsBanned:        false,
		IsAdmin:         false,
	}

	// Persist the user. The unique index resolves races the pre-check missed:
	// two concurrent registrations both pass the lookup, but only one insert
	// survives and the loser maps to the same Conflict.
	if err := service.userRepository.Create(context, user); err != nil {
		if dberr.IsUniqueViolation(err) {
			return nil, apperr.Conflict("Email is already registered.")
		}
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	token, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Email, string(sec.RoleFor(user.IsAdmin)))
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &Session{
		Token:      token,
		UserID:     user.ID,
		Email:      user.Email,
		HasProfile: false,
		IsAdmin:    false,
	}, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

/*
Login validates credentials and issues an access token.

Description: Performs a constant-time password comparison against the stored
bcrypt hash. The ban flag is checked only AFTER the credential match, so a
banned user cannot probe which emails are registered.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *Session: Token plus current hasProfile/isAdmin facts
  - err: Unauthorized (bad credentials or banned) or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*Session, error) {
	normalizedEmail := NormalizeEmail(input.Email)

	// If (err != nil) the account does not exist. Generic message to prevent enumeration.
	user, err := service.userRepository.FindByNormalizedEmail(context, normalizedEmail)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid email or password.")
	}

	// Verify password hash using constant-time comparison in bcrypt to prevent timing attacks
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid email or password.")
	}

	// Ban verdict comes strictly after the credential match.
	if user.IsBanned {
		return nil, apperr.Unauthorized("Account is banned.")
	}

	return service.sessionFor(context, user)
}

// # Session Refresh

/*
Me re-reads the calling account and returns a refreshed session.

Description: The SPA calls this on startup to restore state. The account is
re-read so a ban or admin promotion issued after the token was minted is
reflected immediately.

Parameters:
  - context: context.Context
  - userID: string (from the verified token's claims)

Returns:
  - *Session: Fresh token plus current hasProfile/isAdmin facts
  - err: Unauthorized when the account is gone or banned
*/
func (service *Service) Me(context context.Context, userID string) (*Session, error) {
	user, err := service.userRepository.FindByID(context, userID)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid session.")
	}

	if user.IsBanned {
		return nil, apperr.Unauthorized("Account is banned.")
	}

	return service.sessionFor(context, user)
}

// sessionFor assembles the token and account facts shared by Login and Me.
func (service *Service) sessionFor(context context.Context, user *User) (*Session, error) {
	hasProfile, err := service.userRepository.HasCompletedProfile(context, user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth_service_profile_check_failed: %w", err)
	}

	token, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Email, string(sec.RoleFor(user.IsAdmin)))
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &Session{
		Token:      token,
		UserID:     user.ID,
		Email:      user.Email,
		HasProfile: hasProfile,
		IsAdmin:    user.IsAdmin,
	}, nil
}
