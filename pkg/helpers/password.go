package helpers

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the fixed cost factor of the service (12 rounds).
const bcryptCost = 12

// HashPassword hashes the plain text password using bcrypt.
// Two calls with the same input yield different digests; equality is only
// checked through VerifyPassword.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword compares a bcrypt digest with a plain password.
// A malformed digest yields false, never an error.
func VerifyPassword(plain string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
