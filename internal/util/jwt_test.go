package util

import (
	"testing"
	"time"

	"elearn_backend/internal/model"

	"github.com/stretchr/testify/require"
)

const jwtTestSecret = "jwt-test-secret"

func testUser() *model.User {
	u := &model.User{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
	}
	u.ID = 42
	return u
}

func TestGenerateJWT_ParseRoundtrip(t *testing.T) {
	token, err := GenerateJWT(testUser(), jwtTestSecret, 24*time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, jwtTestSecret)
	require.NoError(t, err)
	require.Equal(t, uint(42), claims.UserID)
	require.Equal(t, "jane@example.com", claims.Email)
	require.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestParseJWT_Expired(t *testing.T) {
	token, err := GenerateJWT(testUser(), jwtTestSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, jwtTestSecret)
	require.Error(t, err)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT(testUser(), jwtTestSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "a-different-secret")
	require.Error(t, err)
}

func TestParseJWT_Garbage(t *testing.T) {
	for _, tok := range []string{"", "not.a.jwt", "abc"} {
		_, err := ParseJWT(tok, jwtTestSecret)
		require.Error(t, err, "token %q", tok)
	}
}

func TestParseJWT_Tampered(t *testing.T) {
	token, err := GenerateJWT(testUser(), jwtTestSecret, time.Hour)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ParseJWT(tampered, jwtTestSecret)
	require.Error(t, err)
}
