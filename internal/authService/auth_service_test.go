package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	model "rewear/internal/models"
	"rewear/internal/repository"
	"rewear/internal/swaperrors"
	"rewear/internal/token"
)

func newAuthService(t *testing.T) (*AuthService, *repository.MemoryRepo, *token.Service) {
	t.Helper()
	repo := repository.NewMemoryRepo()
	tokens := token.NewService("test-signing-key", "rewear-test", time.Hour)
	return NewAuthService(repo, tokens), repo, tokens
}

// Tests Register
func TestAuthService_Register(t *testing.T) {
	t.Parallel()

	service, repo, tokens := newAuthService(t)

	user, signed, err := service.Register("Jane Doe", "Jane@Rewear.Local", "password123!")
	require.NoError(t, err)

	_, parseErr := uuid.Parse(user.UserID)
	require.NoError(t, parseErr, "UserID should be a valid UUID")
	require.Equal(t, "jane@rewear.local", user.Email, "email is normalized")
	require.Equal(t, 500, user.Points, "new accounts start with 500 points")
	require.Equal(t, model.RoleUser, user.Role)
	require.NotEqual(t, "password123!", user.PasswordHash, "password must be stored hashed")

	claims, err := tokens.Validate(signed)
	require.NoError(t, err)
	require.Equal(t, user.UserID, claims.UserID)
	require.Equal(t, model.RoleUser, claims.Role)

	stored, err := repo.GetUserByEmail("jane@rewear.local")
	require.NoError(t, err)
	require.Equal(t, user.UserID, stored.UserID)

	// Duplicate email.
	_, _, err = service.Register("Other Jane", "jane@rewear.local", "password456!")
	require.Error(t, err)
	require.True(t, errors.Is(err, swaperrors.ErrEmailTaken))
}

func TestAuthService_Register_Validation(t *testing.T) {
	t.Parallel()

	service, _, _ := newAuthService(t)

	tests := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{name: "missing_name", userName: "", email: "a@b.c", password: "password123!"},
		{name: "missing_email", userName: "Jane", email: "", password: "password123!"},
		{name: "short_password", userName: "Jane", email: "a@b.c", password: "short"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := service.Register(tc.userName, tc.email, tc.password)
			require.Error(t, err)
			require.True(t, errors.Is(err, swaperrors.ErrInvalidRequest))
		})
	}
}

// Tests Login
func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	service, _, tokens := newAuthService(t)

	registered, _, err := service.Register("John Smith", "john@rewear.local", "password123!")
	require.NoError(t, err)

	t.Run("valid_credentials", func(t *testing.T) {
		user, signed, err := service.Login("john@rewear.local", "password123!")
		require.NoError(t, err)
		require.Equal(t, registered.UserID, user.UserID)

		claims, err := tokens.Validate(signed)
		require.NoError(t, err)
		require.Equal(t, registered.UserID, claims.UserID)
	})

	t.Run("wrong_password", func(t *testing.T) {
		_, _, err := service.Login("john@rewear.local", "not-the-password")
		require.Error(t, err)
		require.True(t, errors.Is(err, swaperrors.ErrInvalidCredentials))
	})

	t.Run("unknown_email_is_indistinguishable", func(t *testing.T) {
		_, _, err := service.Login("ghost@rewear.local", "password123!")
		require.Error(t, err)
		require.True(t, errors.Is(err, swaperrors.ErrInvalidCredentials))
	})
}

// Tests account reads
func TestAuthService_Users(t *testing.T) {
	t.Parallel()

	service, _, _ := newAuthService(t)

	jane, _, err := service.Register("Jane", "jane@rewear.local", "password123!")
	require.NoError(t, err)
	_, _, err = service.Register("John", "john@rewear.local", "password123!")
	require.NoError(t, err)

	byID, err := service.UserByID(jane.UserID)
	require.NoError(t, err)
	require.Equal(t, "Jane", byID.Name)

	_, err = service.UserByID("ghost")
	require.Error(t, err)
	require.True(t, errors.Is(err, swaperrors.ErrUserNotFound))

	users, err := service.Users()
	require.NoError(t, err)
	require.Len(t, users, 2)
}
