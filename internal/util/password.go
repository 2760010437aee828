package util

import "golang.org/x/crypto/bcrypt"

// bcrypt silently operates on at most 72 bytes of input; newer versions of
// x/crypto reject longer passwords outright, so truncate up front the same
// way on both hash and verify.
const maxPasswordBytes = 72

const bcryptCost = 12

func truncatePassword(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncatePassword(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches hash. A malformed hash is
// treated as a mismatch, never an error.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncatePassword(password)) == nil
}
