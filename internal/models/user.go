package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Email is the authentication key.
// Build new users with NewUser so id, timestamps and IsActive are set.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Name         string    `json:"name"`
	Email        string    `gorm:"not null;index" json:"email"`
	EmailKey     string    `gorm:"not null;uniqueIndex" json:"email_key"`
	PasswordHash string    `gorm:"not null" json:"password_hash"`
	Phones       []Phone   `gorm:"constraint:OnDelete:CASCADE" json:"phones"`
	LastLoginAt  time.Time `json:"last_login_at"`
	Token        string    `gorm:"type:text" json:"token"`
	IsActive     bool      `gorm:"not null" json:"is_active"`
}

// Phone is a contact number owned by a single user.
type Phone struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	UserID      uuid.UUID `gorm:"type:uuid;index" json:"-"`
	Position    int       `json:"position"`
	Number      int64     `json:"number"`
	CityCode    int       `json:"city_code"`
	CountryCode string    `json:"country_code"`
}

// NewUser builds an active user with a fresh identifier. Phones keep the
// given order.
func NewUser(name, email, passwordHash string, phones []Phone, now time.Time) *User {
	user := &User{
		ID:           uuid.New(),
		CreatedAt:    now,
		UpdatedAt:    now,
		Name:         name,
		Email:        email,
		EmailKey:     EmailKey(email),
		PasswordHash: passwordHash,
		LastLoginAt:  now,
		IsActive:     true,
	}

	for i, phone := range phones {
		phone.UserID = user.ID
		phone.Position = i
		user.Phones = append(user.Phones, phone)
	}

	return user
}

// EmailKey is the case-folded form used for uniqueness.
func EmailKey(email string) string {
	return strings.ToLower(email)
}
