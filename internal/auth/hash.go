package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword generates a salted bcrypt hash of the password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword compares a plain password with a stored hash. bcrypt's
// comparison is constant-time; this never returns an error, only a verdict.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
