package service_test

import (
	"testing"

	"elearn_backend/internal/repository"
	"elearn_backend/internal/service"
	"elearn_backend/internal/util"

	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*service.AuthService, *repository.UserRepository) {
	t.Helper()
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	return service.NewAuthService(userRepo, testConfig()), userRepo
}

func TestAuthService_Signup(t *testing.T) {
	auth, _ := newAuthService(t)

	user, token, err := auth.Signup("New.User@Example.COM", "New User", "password1")
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.Equal(t, "new.user@example.com", user.Email)
	require.Equal(t, 0, user.Points)
	require.NotEqual(t, "password1", user.Password)

	claims, err := util.ParseJWT(token, testJWTSecret)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, user.Email, claims.Email)
}

func TestAuthService_Signup_Validation(t *testing.T) {
	auth, _ := newAuthService(t)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"bad email", "not-an-email", "password1"},
		{"short password", "a@b.com", "pw1"},
		{"no digit", "a@b.com", "passwordonly"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := auth.Signup(tc.email, "Someone", tc.password)
			require.ErrorIs(t, err, util.ErrValidation)
		})
	}
}

func TestAuthService_Signup_DuplicateEmailCaseInsensitive(t *testing.T) {
	auth, _ := newAuthService(t)

	_, _, err := auth.Signup("dup@example.com", "First", "password1")
	require.NoError(t, err)

	_, _, err = auth.Signup("DUP@Example.com", "Second", "password2")
	require.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestAuthService_Login(t *testing.T) {
	auth, _ := newAuthService(t)

	signedUp, _, err := auth.Signup("login@example.com", "Login User", "password1")
	require.NoError(t, err)

	user, token, err := auth.Login("login@example.com", "password1")
	require.NoError(t, err)
	require.Equal(t, signedUp.ID, user.ID)

	claims, err := util.ParseJWT(token, testJWTSecret)
	require.NoError(t, err)
	require.Equal(t, signedUp.ID, claims.UserID)
}

func TestAuthService_Login_CaseInsensitiveEmail(t *testing.T) {
	auth, _ := newAuthService(t)

	_, _, err := auth.Signup("casey@example.com", "Casey", "password1")
	require.NoError(t, err)

	_, _, err = auth.Login("CASEY@EXAMPLE.COM", "password1")
	require.NoError(t, err)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	auth, _ := newAuthService(t)

	_, _, err := auth.Signup("real@example.com", "Real", "password1")
	require.NoError(t, err)

	// Unknown email and wrong password are indistinguishable.
	_, _, err = auth.Login("nobody@example.com", "password1")
	require.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, _, err = auth.Login("real@example.com", "wrongpass1")
	require.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestAuthService_Login_UpdatesLastLogin(t *testing.T) {
	auth, userRepo := newAuthService(t)

	signedUp, _, err := auth.Signup("stamp@example.com", "Stamp", "password1")
	require.NoError(t, err)

	_, _, err = auth.Login("stamp@example.com", "password1")
	require.NoError(t, err)

	stored, err := userRepo.FindByID(signedUp.ID)
	require.NoError(t, err)
	require.False(t, stored.LastLogin.IsZero())
}
