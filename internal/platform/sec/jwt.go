// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via small interfaces.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/phamtuan/vitalog/internal/platform/constants"
	"github.com/phamtuan/vitalog/pkg/uuid"
)

// ErrInvalidToken is the single opaque failure returned by [TokenService.VerifyToken].
//
// # Why one error?
//
// Expired, malformed, wrong-issuer, and wrong-signature tokens all collapse
// into this value so the API never leaks which validation step rejected the
// token.
var ErrInvalidToken = errors.New("sec: invalid token")

// AuthClaims represents the payload embedded inside a JWT access token.
//
// # Why custom claims?
//
// By embedding the UserID, Email, and Role directly inside the JWT,
// [middleware.Authenticate] can reconstruct the calling principal WITHOUT
// querying the database on every single API request. Only the ban flag is
// re-checked live, because bans must take effect before token expiry.
type AuthClaims struct {
	jwt.RegisteredClaims

	// Custom application claims are abbreviated to keep the JWT payload small.
	UserID string `json:"uid"`
	Email  string `json:"eml"`
	Role   string `json:"rol"`
}

// TokenService handles generation and verification of JWT tokens using HS256.
type TokenService struct {
	secret     []byte
	issuer     string
	audience   string
	timeToLive time.Duration
}

// NewTokenService creates a new TokenService with a symmetric signing secret.
//
// It fails when the secret is shorter than [constants.MinTokenSecretLength];
// the caller is expected to treat that as a fatal startup error.
func NewTokenService(secret, issuer, audience string, ttlMinutes int) (*TokenService, error) {
	if len(secret) < constants.MinTokenSecretLength {
		return nil, fmt.Errorf("sec: signing secret must be at least %d characters", constants.MinTokenSecretLength)
	}

	if ttlMinutes <= 0 {
		ttlMinutes = constants.DefaultTokenTTLMinutes
	}

	return &TokenService{
		secret:     []byte(secret),
		issuer:     issuer,
		audience:   audience,
		timeToLive: time.Duration(ttlMinutes) * time.Minute,
	}, nil
}

// GenerateAccessToken creates a new JWT access token for a user.
//
// The jti claim carries a fresh UUIDv7 so two tokens issued in the same
// second for the same user are still distinct (cache-busting, not revocation).
func (service *TokenService) GenerateAccessToken(userID, email, role string) (string, error) {
	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    service.issuer,
			Audience:  jwt.ClaimStrings{service.audience},
			ID:        uuid.New(),
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.timeToLive)),
		},
		UserID: userID,
		Email:  email,
		Role:   role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature, issuer, audience, and expiry of a JWT string.
//
// # Clock Skew
//
// Expiry is enforced with zero leeway: a token is rejected the instant its
// exp claim passes.
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&AuthClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
			}
			return service.secret, nil
		},
		jwt.WithIssuer(service.issuer),
		jwt.WithAudience(service.audience),
		jwt.WithExpirationRequired(),
	)

	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
