package repository

import (
	"context"
	"fmt"
	"sync"

	"stockroom/internal/domain"
	"stockroom/internal/errors"
)

type MemoryUserRepository struct {
	mu    sync.RWMutex
	users []domain.User
}

func NewMemoryUserRepository(seed ...domain.User) *MemoryUserRepository {
	users := make([]domain.User, len(seed))
	copy(users, seed)
	return &MemoryUserRepository{users: users}
}

func (r *MemoryUserRepository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, errors.NewNotFoundError(fmt.Sprintf("user with id %d not found", id))
}

func (r *MemoryUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, errors.NewNotFoundError(fmt.Sprintf("user %q not found", username))
}

func (r *MemoryUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, errors.NewNotFoundError(fmt.Sprintf("user with email %q not found", email))
}

func (r *MemoryUserRepository) Insert(ctx context.Context, user domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = len(r.users) + 1
	r.users = append(r.users, user)

	created := user
	return &created, nil
}

func (r *MemoryUserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]domain.User, len(r.users))
	copy(users, r.users)
	return users, nil
}
