package repository

import (
	"context"
	"sync"

	"github.com/example/usersvc/internal/models"
)

// MemoryUserRepository is an in-process UserRepository. Records are copied
// in and out so callers never share state with the store.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	byKey map[string]*models.User
}

// NewMemoryUserRepository constructs an empty MemoryUserRepository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{byKey: make(map[string]*models.User)}
}

// FindByEmail returns a copy of the user with exactly this email.
func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byKey[models.EmailKey(email)]
	if !ok || user.Email != email {
		return nil, ErrNotFound
	}
	return clone(user), nil
}

// Create stores a copy of user unless its email key is taken.
func (r *MemoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byKey[user.EmailKey]; taken {
		return ErrDuplicateEmail
	}
	r.byKey[user.EmailKey] = clone(user)
	return nil
}

// Save copies the login fields onto the stored user.
func (r *MemoryUserRepository) Save(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byKey[user.EmailKey]
	if !ok || stored.ID != user.ID {
		return ErrNotFound
	}
	stored.LastLoginAt = user.LastLoginAt
	stored.UpdatedAt = user.UpdatedAt
	stored.Token = user.Token
	return nil
}

func clone(user *models.User) *models.User {
	cp := *user
	if user.Phones != nil {
		cp.Phones = append([]models.Phone(nil), user.Phones...)
	}
	return &cp
}
