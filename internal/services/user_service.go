package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/usersvc/internal/models"
	"github.com/example/usersvc/internal/repository"
)

// PasswordHasher turns a raw password into a one-way hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// TokenProvider issues and inspects session tokens.
type TokenProvider interface {
	Issue(email string) (string, error)
	Validate(token string) bool
	SubjectOf(token string) (string, bool)
}

// SignUpInput carries the fields of a registration request.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
	Phones   []models.Phone
}

// UserService implements sign-up and token login.
type UserService struct {
	users  repository.UserRepository
	hasher PasswordHasher
	tokens TokenProvider
	now    func() time.Time
}

// NewUserService constructs a UserService.
func NewUserService(users repository.UserRepository, hasher PasswordHasher, tokens TokenProvider) *UserService {
	return &UserService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		now:    time.Now,
	}
}

// SignUp registers a new user and returns it with a fresh session token.
func (s *UserService) SignUp(ctx context.Context, in SignUpInput) (*models.User, error) {
	if err := ValidateCredentials(in.Email, in.Password); err != nil {
		return nil, err
	}

	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, ErrAlreadyExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	passwordHash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.NewUser(in.Name, in.Email, passwordHash, in.Phones, s.now())

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	user.Token = token

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}

	return user, nil
}

// Login authenticates a bearer token, records the login and replaces the
// user's current token.
func (s *UserService) Login(ctx context.Context, token string) (*models.User, error) {
	if !s.tokens.Validate(token) {
		return nil, ErrInvalidToken
	}

	email, ok := s.tokens.SubjectOf(token)
	if !ok {
		return nil, ErrInvalidToken
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	now := s.now()
	user.LastLoginAt = now
	user.UpdatedAt = now

	newToken, err := s.tokens.Issue(user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	user.Token = newToken

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
