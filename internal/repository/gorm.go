package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/usersvc/internal/models"
)

// GormUserRepository is the Postgres-backed UserRepository.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository constructs a GormUserRepository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByEmail loads a user and its phones, in order, by exact email.
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Preload("Phones", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

// Create inserts the user and its phones. A unique violation on email_key
// becomes ErrDuplicateEmail.
func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Save updates last login, token and updated_at only.
func (r *GormUserRepository) Save(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).
		Model(user).
		Omit(clause.Associations).
		Updates(map[string]interface{}{
			"last_login_at": user.LastLoginAt,
			"token":         user.Token,
			"updated_at":    user.UpdatedAt,
		}).Error
	if err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
