// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phamtuan/vitalog/internal/platform/middleware"
	"github.com/phamtuan/vitalog/internal/platform/sec"
)

// fakeVerifier accepts exactly one token string.
type fakeVerifier struct {
	token  string
	claims *sec.AuthClaims
}

func (f *fakeVerifier) VerifyToken(tokenStr string) (*sec.AuthClaims, error) {
	if tokenStr == f.token {
		return f.claims, nil
	}
	return nil, sec.ErrInvalidToken
}

// fakeBanChecker marks a fixed set of users as banned.
type fakeBanChecker struct {
	banned map[string]bool
	err    error
}

func (f *fakeBanChecker) IsBanned(_ context.Context, userID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.banned[userID], nil
}

// echoUser writes the authenticated user ID, or "anonymous".
func echoUser() http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		claims := middleware.GetUser(request.Context())
		if claims == nil {
			writer.Write([]byte("anonymous"))
			return
		}
		writer.Write([]byte(claims.UserID))
	})
}

/*
TestAuthenticate verifies bearer-token extraction: anonymous pass-through,
malformed headers, invalid tokens, and claim injection.
*/
func TestAuthenticate(t *testing.T) {
	verifier := &fakeVerifier{
		token:  "good-token",
		claims: &sec.AuthClaims{UserID: "user-123", Role: "member"},
	}
	handler := middleware.Authenticate(verifier)(echoUser())

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantBody   string
	}{
		{"no_header_is_anonymous", "", http.StatusOK, "anonymous"},
		{"valid_bearer", "Bearer good-token", http.StatusOK, "user-123"},
		{"case_insensitive_scheme", "bearer good-token", http.StatusOK, "user-123"},
		{"malformed_header", "good-token", http.StatusUnauthorized, ""},
		{"wrong_scheme", "Basic good-token", http.StatusUnauthorized, ""},
		{"invalid_token", "Bearer forged", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				request.Header.Set("Authorization", tt.authHeader)
			}
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, recorder.Body.String())
			}
		})
	}
}

/*
TestRequireAuth verifies that anonymous requests are rejected with 401.
*/
func TestRequireAuth(t *testing.T) {
	verifier := &fakeVerifier{
		token:  "good-token",
		claims: &sec.AuthClaims{UserID: "user-123", Role: "member"},
	}
	handler := middleware.Authenticate(verifier)(middleware.RequireAuth(echoUser()))

	// 1. Anonymous is blocked
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	// 2. Authenticated passes
	request = httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "Bearer good-token")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

/*
TestRequireRole verifies the role gate: anonymous 401, insufficient role
403, sufficient role passes.
*/
func TestRequireRole(t *testing.T) {
	adminOnly := middleware.RequireRole(sec.RoleAdmin)

	tests := []struct {
		name       string
		role       string
		token      string
		wantStatus int
	}{
		{"anonymous", "", "", http.StatusUnauthorized},
		{"member_is_forbidden", "member", "member-token", http.StatusForbidden},
		{"admin_passes", "admin", "admin-token", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := &fakeVerifier{
				token:  tt.token,
				claims: &sec.AuthClaims{UserID: "user-123", Role: tt.role},
			}
			handler := middleware.Authenticate(verifier)(adminOnly(echoUser()))

			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.token != "" {
				request.Header.Set("Authorization", "Bearer "+tt.token)
			}
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

/*
TestBanGuard verifies the live ban check: banned accounts are rejected with
403 even though their token is still valid, anonymous requests pass
through, and lookup failures fail closed.
*/
func TestBanGuard(t *testing.T) {
	verifier := &fakeVerifier{
		token:  "good-token",
		claims: &sec.AuthClaims{UserID: "user-123", Role: "member"},
	}

	t.Run("banned_user_is_blocked", func(t *testing.T) {
		checker := &fakeBanChecker{banned: map[string]bool{"user-123": true}}
		handler := middleware.Authenticate(verifier)(middleware.BanGuard(checker)(echoUser()))

		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Authorization", "Bearer good-token")
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Account is banned.")
	})

	t.Run("active_user_passes", func(t *testing.T) {
		checker := &fakeBanChecker{banned: map[string]bool{}}
		handler := middleware.Authenticate(verifier)(middleware.BanGuard(checker)(echoUser()))

		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Authorization", "Bearer good-token")
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "user-123", recorder.Body.String())
	})

	t.Run("anonymous_passes_through", func(t *testing.T) {
		checker := &fakeBanChecker{banned: map[string]bool{"user-123": true}}
		handler := middleware.BanGuard(checker)(echoUser())

		request := httptest.NewRequest(http.MethodGet, "/", nil)
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "anonymous", recorder.Body.String())
	})

	t.Run("lookup_failure_fails_closed", func(t *testing.T) {
		checker := &fakeBanChecker{err: errors.New("redis down")}
		handler := middleware.Authenticate(verifier)(middleware.BanGuard(checker)(echoUser()))

		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Authorization", "Bearer good-token")
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}
