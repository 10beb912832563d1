package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviemesh/moviemesh/internal/config"
	"github.com/moviemesh/moviemesh/internal/logger"
	"github.com/moviemesh/moviemesh/internal/store"
	"github.com/moviemesh/moviemesh/models"
)

func newTestAuthService(t *testing.T) AuthService {
	t.Helper()

	seed, err := store.SeedUsers()
	require.NoError(t, err)

	return NewAuthService(
		store.NewMemoryUserRepository(logger.Nop(), seed...),
		config.App{
			TokenSignKey:  "test-sign-key",
			TokenIssuer:   "moviemesh",
			TokenDuration: time.Hour,
		},
		logger.Nop(),
	)
}

func TestRegisterUser_Success(t *testing.T) {
	svc := newTestAuthService(t)

	created, err := svc.RegisterUser(context.Background(), models.User{
		Name:     "Carol",
		Email:    "carol@example.com",
		Password: "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), created.UserID)
	assert.Equal(t, models.RoleUser, created.Role, "role defaults to user")
	assert.Empty(t, created.Password, "plain-text password is not kept")
	assert.NotEmpty(t, created.PasswordHash)
	assert.NotEqual(t, "secret", created.PasswordHash)
}

func TestRegisterUser_Validation(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, models.User{Email: "no-name@example.com", Password: "1234"})
	assert.ErrorIs(t, err, ErrValidationNameAndEmailRequired)

	_, err = svc.RegisterUser(ctx, models.User{Name: "Short", Email: "short@example.com", Password: "abc"})
	assert.ErrorIs(t, err, ErrValidationPasswordTooShort)

	_, err = svc.RegisterUser(ctx, models.User{Name: "Dup", Email: "alice@example.com", Password: "1234"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Login(ctx, "bob@example.com", "1234")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)

	_, err = svc.Login(ctx, "bob@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "1234")
	assert.ErrorIs(t, err, ErrInvalidCredentials, "unknown email is indistinguishable from wrong password")

	_, err = svc.Login(ctx, "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Login(ctx, "alice@example.com", "1234")
	require.NoError(t, err)

	token, err := svc.CreateToken(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, parsed.Identity.UserID)
	assert.Equal(t, user.Email, parsed.Identity.Email)
	assert.Equal(t, models.RoleUser, parsed.Identity.Role)
}

func TestParseToken_InvalidNormalised(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.ParseToken(ctx, "not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	// a token signed with a different key is rejected the same way
	other := NewAuthService(nil, config.App{
		TokenSignKey:  "other-key",
		TokenIssuer:   "moviemesh",
		TokenDuration: time.Hour,
	}, logger.Nop())
	token, err := other.CreateToken(ctx, models.User{UserID: 1, Email: "alice@example.com", Role: models.RoleUser})
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_Expired(t *testing.T) {
	ctx := context.Background()

	expiring := NewAuthService(nil, config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "moviemesh",
		TokenDuration: -time.Minute,
	}, logger.Nop())

	token, err := expiring.CreateToken(ctx, models.User{UserID: 2, Email: "bob@example.com", Role: models.RoleAdmin})
	require.NoError(t, err)

	svc := newTestAuthService(t)
	_, err = svc.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
