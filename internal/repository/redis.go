package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/example/usersvc/internal/models"
)

const (
	userKeyPrefix  = "users:id:"
	emailKeyPrefix = "users:email:"
)

// RedisUserRepository keeps users as JSON documents with an email index.
// The index key is claimed with SETNX, which makes Create a compare-and-insert.
type RedisUserRepository struct {
	rdb redis.UniversalClient
}

// NewRedisUserRepository constructs a RedisUserRepository.
func NewRedisUserRepository(rdb redis.UniversalClient) *RedisUserRepository {
	return &RedisUserRepository{rdb: rdb}
}

// FindByEmail resolves the email index and loads the user document.
func (r *RedisUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	id, err := r.rdb.Get(ctx, emailKeyPrefix+models.EmailKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("lookup email index: %w", err)
	}

	data, err := r.rdb.Get(ctx, userKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load user %s: %w", id, err)
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("decode user %s: %w", id, err)
	}

	// The index is case-folded; lookups are exact.
	if user.Email != email {
		return nil, ErrNotFound
	}
	return &user, nil
}

// Create claims the email index with SETNX, then writes the user document.
// The claim is released if the write fails.
func (r *RedisUserRepository) Create(ctx context.Context, user *models.User) error {
	indexKey := emailKeyPrefix + user.EmailKey
	claimed, err := r.rdb.SetNX(ctx, indexKey, user.ID.String(), 0).Result()
	if err != nil {
		return fmt.Errorf("claim email index: %w", err)
	}
	if !claimed {
		return ErrDuplicateEmail
	}

	if err := r.put(ctx, user); err != nil {
		if delErr := r.rdb.Del(ctx, indexKey).Err(); delErr != nil {
			return errors.Join(err, fmt.Errorf("release email index %s: %w", indexKey, delErr))
		}
		return err
	}
	return nil
}

// Save rewrites the user document.
func (r *RedisUserRepository) Save(ctx context.Context, user *models.User) error {
	return r.put(ctx, user)
}

func (r *RedisUserRepository) put(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user %s: %w", user.ID, err)
	}
	if err := r.rdb.Set(ctx, userKeyPrefix+user.ID.String(), data, 0).Err(); err != nil {
		return fmt.Errorf("store user %s: %w", user.ID, err)
	}
	return nil
}
