package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/store"
)

// userService handles user-related business logic.
type userService struct {
	store store.Store
}

// NewUserService creates a new UserServicer.
func NewUserService(s store.Store) UserServicer {
	return &userService{store: s}
}

// CreateUser registers a new user
func (s *userService) CreateUser(ctx context.Context, email, password, displayName string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email and password are required")
	}

	// Check if a user with this email already exists
	if _, err := s.store.UserByEmail(ctx, strings.ToLower(email)); err == nil {
		return nil, apperrors.ErrDuplicateEmail
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Email:       strings.ToLower(email),
		Password:    string(hashedPassword),
		DisplayName: displayName,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserByEmail retrieves a user by email
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.store.UserByEmail(ctx, strings.ToLower(email))
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.store.UserByID(ctx, id)
}

// VerifyPassword checks if the provided password matches the stored hash
func (s *userService) VerifyPassword(user *models.User, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	return err == nil
}
