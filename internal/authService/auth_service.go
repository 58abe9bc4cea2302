package auth

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"rewear/internal/models"
	"rewear/internal/repository"
	"rewear/internal/swaperrors"
	"rewear/internal/token"
	"rewear/utils"
)

// startingPoints is granted to every new account.
const startingPoints = 500

// AuthService owns account registration, login and the tokens handed to the
// UI. The settlement engine itself never sees credentials, only the opaque
// actor id the token carries.
type AuthService struct {
	repo   repository.LedgerStore
	tokens *token.Service
}

// NewAuthService creates a new AuthService instance
func NewAuthService(repo repository.LedgerStore, tokens *token.Service) *AuthService {
	return &AuthService{
		repo:   repo,
		tokens: tokens,
	}
}

// Register creates a user account with the starting points balance and
// returns the account together with a signed token.
func (s *AuthService) Register(name, email, password string) (models.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" || email == "" {
		return models.User{}, "", fmt.Errorf("service: %w - missing name or email", swaperrors.ErrInvalidRequest)
	}
	if len(password) < 8 {
		return models.User{}, "", fmt.Errorf("service: %w - password must be at least 8 characters", swaperrors.ErrInvalidRequest)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, "", fmt.Errorf("service: failed to hash password: %w", err)
	}

	user := models.User{
		UserID:       utils.GenerateID(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Points:       startingPoints,
		Role:         models.RoleUser,
	}

	if err := s.repo.CreateUser(user); err != nil {
		return models.User{}, "", fmt.Errorf("service: failed to register %s: %w", email, err)
	}

	signed, err := s.tokens.Generate(user.UserID, user.Email, user.Role)
	if err != nil {
		return models.User{}, "", fmt.Errorf("service: failed to issue token for %s: %w", email, err)
	}

	return user, signed, nil
}

// Login verifies credentials and returns the account with a signed token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (models.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return models.User{}, "", fmt.Errorf("service: %w - missing email or password", swaperrors.ErrInvalidRequest)
	}

	user, err := s.repo.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, swaperrors.ErrUserNotFound) {
			return models.User{}, "", fmt.Errorf("service: %w", swaperrors.ErrInvalidCredentials)
		}
		return models.User{}, "", fmt.Errorf("service: failed to load account %s: %w", email, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, "", fmt.Errorf("service: %w", swaperrors.ErrInvalidCredentials)
	}

	signed, err := s.tokens.Generate(user.UserID, user.Email, user.Role)
	if err != nil {
		return models.User{}, "", fmt.Errorf("service: failed to issue token for %s: %w", email, err)
	}

	return user, signed, nil
}

// UserByID returns a single account
func (s *AuthService) UserByID(userID string) (models.User, error) {
	if userID == "" {
		return models.User{}, fmt.Errorf("service: %w - empty user ID", swaperrors.ErrInvalidRequest)
	}
	user, err := s.repo.GetUser(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to get user %s: %w", userID, err)
	}
	return user, nil
}

// Users returns all registered accounts, for the admin screen
func (s *AuthService) Users() ([]models.User, error) {
	users, err := s.repo.ListUsers()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list users: %w", err)
	}
	return users, nil
}
