// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package auth_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phamtuan/vitalog/internal/platform/apperr"
	"github.com/phamtuan/vitalog/internal/platform/sec"
	"github.com/phamtuan/vitalog/internal/users/auth"
)

// fakeUserRepository is an in-memory UserRepository keyed by normalized email.
type fakeUserRepository struct {
	users        map[string]*auth.User // normalizedemail -> user
	hasProfile   map[string]bool       // userid -> flag
	createErr    error
	createCalled int
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		users:      make(map[string]*auth.User),
		hasProfile: make(map[string]bool),
	}
}

func (f *fakeUserRepository) Create(_ context.Context, user *auth.User) error {
	f.createCalled++
	if f.createErr != nil {
		return f.createErr
	}
	f.users[user.NormalizedEmail] = user
	return nil
}

func (f *fakeUserRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeUserRepository) FindByNormalizedEmail(_ context.Context, normalizedEmail string) (*auth.User, error) {
	if user, ok := f.users[normalizedEmail]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeUserRepository) HasCompletedProfile(_ context.Context, userID string) (bool, error) {
	return f.hasProfile[userID], nil
}

func (f *fakeUserRepository) IsBanned(_ context.Context, userID string) (bool, error) {
	for _, user := range f.users {
		if user.ID == userID {
			return user.IsBanned, nil
		}
	}
	return false, apperr.NotFound("User")
}

// fakeTokenProvider issues predictable token strings.
type fakeTokenProvider struct {
	lastRole string
}

func (f *fakeTokenProvider) GenerateAccessToken(userID, _, role string) (string, error) {
	f.lastRole = role
	return "token-for-" + userID, nil
}

func newAuthService() (*auth.Service, *fakeUserRepository, *fakeTokenProvider) {
	repository := newFakeUserRepository()
	tokens := &fakeTokenProvider{}
	return auth.NewService(repository, tokens), repository, tokens
}

/*
TestRegister_Success verifies that a new account is persisted with a hashed
password and a session is issued immediately.
*/
func TestRegister_Success(t *testing.T) {
	service, repository, _ := newAuthService()

	session, err := service.Register(context.Background(), auth.RegisterInput{
		Email:    "tuan@vitalog.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	// 1. Session facts
	assert.Equal(t, "token-for-"+session.UserID, session.Token)
	assert.Equal(t, "tuan@vitalog.com", session.Email)
	assert.False(t, session.HasProfile)
	assert.False(t, session.IsAdmin)

	// 2. Stored entity: normalized key, no plain-text password
	stored := repository.users["TUAN@VITALOG.COM"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("secret123", stored.PasswordHash))
}

/*
TestRegister_DuplicateEmail verifies that addresses differing only in case
or surrounding whitespace collide on the same account.
*/
func TestRegister_DuplicateEmail(t *testing.T) {
	service, _, _ := newAuthService()

	_, err := service.Register(context.Background(), auth.RegisterInput{
		Email:    "tuan@vitalog.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	for _, variant := range []string{"tuan@vitalog.com", "TUAN@VITALOG.COM", "  tuan@vitalog.com  "} {
		_, err := service.Register(context.Background(), auth.RegisterInput{
			Email:    variant,
			Password: "secret123",
		})
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "CONFLICT", ae.Code)
		assert.Equal(t, "Email is already registered.", ae.Message)
	}
}

/*
TestRegister_InsertRace verifies that a unique violation raised by the
insert itself (concurrent registration passing the pre-check) maps to the
same Conflict.
*/
func TestRegister_InsertRace(t *testing.T) {
	service, repository, _ := newAuthService()
	repository.createErr = &pgconn.PgError{Code: "23505"}

	_, err := service.Register(context.Background(), auth.RegisterInput{
		Email:    "tuan@vitalog.com",
		Password: "secret123",
	})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
	assert.Equal(t, 1, repository.createCalled)
}

/*
TestLogin verifies the credential check, the post-credential ban verdict,
and the enumeration-safe failure message.
*/
func TestLogin(t *testing.T) {
	service, repository, _ := newAuthService()

	_, err := service.Register(context.Background(), auth.RegisterInput{
		Email:    "tuan@vitalog.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		session, err := service.Login(context.Background(), auth.LoginInput{
			Email:    "TUAN@vitalog.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, session.Token)
	})

	t.Run("unknown_email", func(t *testing.T) {
		_, err := service.Login(context.Background(), auth.LoginInput{
			Email:    "ghost@vitalog.com",
			Password: "secret123",
		})
		requireUnauthorized(t, err, "Invalid email or password.")
	})

	t.Run("wrong_password", func(t *testing.T) {
		_, err := service.Login(context.Background(), auth.LoginInput{
			Email:    "tuan@vitalog.com",
			Password: "not-it",
		})
		requireUnauthorized(t, err, "Invalid email or password.")
	})

	t.Run("banned_after_credentials", func(t *testing.T) {
		repository.users["TUAN@VITALOG.COM"].IsBanned = true
		defer func() { repository.users["TUAN@VITALOG.COM"].IsBanned = false }()

		// 1. Valid credentials surface the ban
		_, err := service.Login(context.Background(), auth.LoginInput{
			Email:    "tuan@vitalog.com",
			Password: "secret123",
		})
		requireUnauthorized(t, err, "Account is banned.")

		// 2. Bad credentials never reveal the ban
		_, err = service.Login(context.Background(), auth.LoginInput{
			Email:    "tuan@vitalog.com",
			Password: "not-it",
		})
		requireUnauthorized(t, err, "Invalid email or password.")
	})
}

/*
TestMe verifies session refresh: current profile/admin facts are re-read and
missing or banned accounts invalidate the session.
*/
func TestMe(t *testing.T) {
	service, repository, tokens := newAuthService()

	session, err := service.Register(context.Background(), auth.RegisterInput{
		Email:    "tuan@vitalog.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	// 1. Profile completed and admin granted after the token was minted
	repository.hasProfile[session.UserID] = true
	repository.users["TUAN@VITALOG.COM"].IsAdmin = true

	refreshed, err := service.Me(context.Background(), session.UserID)
	require.NoError(t, err)
	assert.True(t, refreshed.HasProfile)
	assert.True(t, refreshed.IsAdmin)
	assert.Equal(t, string(sec.RoleAdmin), tokens.lastRole)

	// 2. Banned account invalidates the session
	repository.users["TUAN@VITALOG.COM"].IsBanned = true
	_, err = service.Me(context.Background(), session.UserID)
	requireUnauthorized(t, err, "Account is banned.")

	// 3. Deleted account invalidates the session
	delete(repository.users, "TUAN@VITALOG.COM")
	_, err = service.Me(context.Background(), session.UserID)
	requireUnauthorized(t, err, "Invalid session.")
}

/*
TestNormalizeEmail verifies the canonical uniqueness key derivation.
*/
func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "tuan@vitalog.com", "TUAN@VITALOG.COM"},
		{"whitespace", "  tuan@vitalog.com  ", "TUAN@VITALOG.COM"},
		{"mixed_case", "TuAn@ViTaLog.CoM", "TUAN@VITALOG.COM"},
		{"fullwidth_unicode", "ｔｕａｎ@vitalog.com", "TUAN@VITALOG.COM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, auth.NormalizeEmail(tt.input))
		})
	}
}

// requireUnauthorized asserts err is an UNAUTHORIZED AppError with the message.
func requireUnauthorized(t *testing.T, err error, message string) {
	t.Helper()
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UNAUTHORIZED", ae.Code)
	assert.Equal(t, message, ae.Message)
}
