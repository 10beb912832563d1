package service

import (
	"context"

	"github.com/moviemesh/moviemesh/internal/logger"
	"github.com/moviemesh/moviemesh/internal/store"
	"github.com/moviemesh/moviemesh/models"
)

// userService implements UserService on top of the user repository.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (u *userService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return u.userRepository.GetAllUsers(ctx)
}

func (u *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return u.userRepository.GetUserByID(ctx, id)
}

// UpdateUser applies a partial profile update. At least one of name or email
// must be provided; a new email must look like an email and not belong to
// another account.
func (u *userService) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	if err := validateUserUpdate(update); err != nil {
		return models.User{}, err
	}

	user, err := u.userRepository.GetUserByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Email != nil {
		user.Email = *update.Email
	}

	return u.userRepository.UpdateUser(ctx, user)
}

func (u *userService) DeleteUser(ctx context.Context, id int64) error {
	return u.userRepository.DeleteUser(ctx, id)
}
