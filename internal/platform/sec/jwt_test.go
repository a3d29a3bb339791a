// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phamtuan/vitalog/internal/platform/sec"
)

const testSigningSecret = "unit-test-signing-secret-0123456789"

/*
TestTokenService_RoundTrip verifies that a generated token carries the
identity claims back through verification.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service, err := sec.NewTokenService(testSigningSecret, "vitalog", "vitalog-api", 60)
	require.NoError(t, err)

	// 1. Issue a token for a known principal
	token, err := service.GenerateAccessToken("user-123", "tuan@vitalog.com", "member")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// 2. Verify and read the claims back
	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "tuan@vitalog.com", claims.Email)
	assert.Equal(t, "member", claims.Role)
}

/*
TestTokenService_UniqueTokens verifies that two tokens issued back to back
for the same user are not byte-identical (each carries a fresh jti).
*/
func TestTokenService_UniqueTokens(t *testing.T) {
	service, err := sec.NewTokenService(testSigningSecret, "vitalog", "vitalog-api", 60)
	require.NoError(t, err)

	first, err := service.GenerateAccessToken("user-123", "tuan@vitalog.com", "member")
	require.NoError(t, err)
	second, err := service.GenerateAccessToken("user-123", "tuan@vitalog.com", "member")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

/*
TestTokenService_RejectsForeignTokens verifies that tokens signed with a
different secret or issued by a different service are rejected with the
single opaque error.
*/
func TestTokenService_RejectsForeignTokens(t *testing.T) {
	service, err := sec.NewTokenService(testSigningSecret, "vitalog", "vitalog-api", 60)
	require.NoError(t, err)

	tests := []struct {
		name     string
		secret   string
		issuer   string
		audience string
	}{
		{"wrong_secret", "another-secret-another-secret-42", "vitalog", "vitalog-api"},
		{"wrong_issuer", testSigningSecret, "someone-else", "vitalog-api"},
		{"wrong_audience", testSigningSecret, "vitalog", "someone-else-api"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			foreign, err := sec.NewTokenService(tt.secret, tt.issuer, tt.audience, 60)
			require.NoError(t, err)

			token, err := foreign.GenerateAccessToken("user-123", "tuan@vitalog.com", "member")
			require.NoError(t, err)

			claims, err := service.VerifyToken(token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, sec.ErrInvalidToken)
		})
	}
}

/*
TestTokenService_RejectsMalformedInput verifies that garbage strings never
verify.
*/
func TestTokenService_RejectsMalformedInput(t *testing.T) {
	service, err := sec.NewTokenService(testSigningSecret, "vitalog", "vitalog-api", 60)
	require.NoError(t, err)

	for _, input := range []string{"", "not-a-jwt", "a.b.c"} {
		claims, err := service.VerifyToken(input)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, sec.ErrInvalidToken)
	}
}

/*
TestNewTokenService_ShortSecret verifies that a weak signing secret is a
constructor-level failure.
*/
func TestNewTokenService_ShortSecret(t *testing.T) {
	service, err := sec.NewTokenService("too-short", "vitalog", "vitalog-api", 60)
	assert.Nil(t, service)
	assert.Error(t, err)
}

/*
TestPasswordHashing verifies the hash/check pair and that hashing is salted.
*/
func TestPasswordHashing(t *testing.T) {
	// 1. A hash verifies against the original password only
	hash, err := sec.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, sec.CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, sec.CheckPasswordHash("wrong password", hash))

	// 2. Hashing the same password twice yields different digests
	second, err := sec.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, hash, second)
}
