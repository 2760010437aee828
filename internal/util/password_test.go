package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_VerifyRoundtrip(t *testing.T) {
	hash, err := HashPassword("correct horse 1")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse 1", hash)

	require.True(t, CheckPassword("correct horse 1", hash))
	require.False(t, CheckPassword("wrong horse 1", hash))
}

func TestHashPassword_NonDeterministicOutput(t *testing.T) {
	h1, err := HashPassword("samepassword1")
	require.NoError(t, err)
	h2, err := HashPassword("samepassword1")
	require.NoError(t, err)

	// Salted: two hashes of the same input differ, both verify.
	require.NotEqual(t, h1, h2)
	require.True(t, CheckPassword("samepassword1", h1))
	require.True(t, CheckPassword("samepassword1", h2))
}

func TestHashPassword_TruncatesAt72Bytes(t *testing.T) {
	prefix := strings.Repeat("a", maxPasswordBytes)
	long := prefix + "tail-one"
	longer := prefix + "completely-different-tail"

	hash, err := HashPassword(long)
	require.NoError(t, err)

	// Everything beyond 72 bytes is discarded, so any password sharing the
	// 72-byte prefix verifies against the same hash.
	require.True(t, CheckPassword(long, hash))
	require.True(t, CheckPassword(longer, hash))
	require.True(t, CheckPassword(prefix, hash))

	// A difference inside the first 72 bytes still fails.
	require.False(t, CheckPassword("b"+prefix[1:], hash))
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	require.False(t, CheckPassword("whatever1", ""))
	require.False(t, CheckPassword("whatever1", "not-a-bcrypt-hash"))
	require.False(t, CheckPassword("whatever1", "$2a$garbage"))
}
