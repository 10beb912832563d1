package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/moviemesh/moviemesh/internal/logger"
	"github.com/moviemesh/moviemesh/models"
)

// memoryUserRepository is the map-backed implementation of [UserRepository].
// Email uniqueness is enforced here, mirroring the unique constraint the
// PostgreSQL implementation gets from its schema.
type memoryUserRepository struct {
	logger *logger.Logger

	mu     sync.RWMutex
	users  map[int64]models.User
	nextID int64
}

// NewMemoryUserRepository constructs a [UserRepository] holding the given
// seed records.
func NewMemoryUserRepository(logger *logger.Logger, seed ...models.User) UserRepository {
	logger.Debug().Int("seed", len(seed)).Msg("creating in-memory user repository")

	r := &memoryUserRepository{
		logger: logger,
		users:  make(map[int64]models.User, len(seed)),
		nextID: 1,
	}
	for _, user := range seed {
		r.users[user.UserID] = user
		if user.UserID >= r.nextID {
			r.nextID = user.UserID + 1
		}
	}

	return r
}

func (r *memoryUserRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].UserID < users[j].UserID })

	return users, nil
}

func (r *memoryUserRepository) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	return user, nil
}

func (r *memoryUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}

	return models.User{}, ErrUserNotFound
}

func (r *memoryUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return models.User{}, ErrEmailAlreadyExists
		}
	}

	user.UserID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	r.users[user.UserID] = user

	return user, nil
}

func (r *memoryUserRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.UserID]; !ok {
		return models.User{}, ErrUserNotFound
	}
	for id, existing := range r.users {
		if id != user.UserID && existing.Email == user.Email {
			return models.User{}, ErrEmailAlreadyExists
		}
	}
	r.users[user.UserID] = user

	return user, nil
}

func (r *memoryUserRepository) DeleteUser(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return ErrUserNotFound
	}
	delete(r.users, id)

	return nil
}
