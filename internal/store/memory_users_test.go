package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviemesh/moviemesh/internal/logger"
	"github.com/moviemesh/moviemesh/internal/utils"
	"github.com/moviemesh/moviemesh/models"
)

func TestSeedUsers(t *testing.T) {
	users, err := SeedUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, models.RoleUser, users[0].Role)
	assert.Equal(t, models.RoleAdmin, users[1].Role)
	assert.True(t, utils.CheckPassword(users[0].PasswordHash, "1234"))
}

func TestMemoryUserRepository_FindUserByEmail(t *testing.T) {
	seed, err := SeedUsers()
	require.NoError(t, err)
	repo := NewMemoryUserRepository(logger.Nop(), seed...)

	user, err := repo.FindUserByEmail(context.Background(), "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Bob", user.Name)

	_, err = repo.FindUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemoryUserRepository_CreateEnforcesUniqueEmail(t *testing.T) {
	seed, err := SeedUsers()
	require.NoError(t, err)
	repo := NewMemoryUserRepository(logger.Nop(), seed...)

	created, err := repo.CreateUser(context.Background(), models.User{
		Name:  "Carol",
		Email: "carol@example.com",
		Role:  models.RoleUser,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.UserID)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = repo.CreateUser(context.Background(), models.User{
		Name:  "Impostor",
		Email: "carol@example.com",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestMemoryUserRepository_UpdateRejectsTakenEmail(t *testing.T) {
	seed, err := SeedUsers()
	require.NoError(t, err)
	repo := NewMemoryUserRepository(logger.Nop(), seed...)

	_, err = repo.UpdateUser(context.Background(), models.User{
		UserID: 1,
		Name:   "Alice",
		Email:  "bob@example.com",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	updated, err := repo.UpdateUser(context.Background(), models.User{
		UserID: 1,
		Name:   "Alice Cooper",
		Email:  "alice@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", updated.Name)
}

func TestMemoryUserRepository_Delete(t *testing.T) {
	repo := NewMemoryUserRepository(logger.Nop(), models.User{UserID: 1, Email: "a@example.com"})

	require.NoError(t, repo.DeleteUser(context.Background(), 1))
	assert.ErrorIs(t, repo.DeleteUser(context.Background(), 1), ErrUserNotFound)
}
