package utils

import (
	"golang.org/x/crypto/bcrypt"
)

const passwordHashCost = 10

// HashPassword returns the bcrypt hash stored on an account.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	return string(bytes), err
}

// ComparePasswords returns nil when plainPassword matches the stored hash.
// AccountService maps any error to ErrInvalidCredentials.
func ComparePasswords(hashedPassword string, plainPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
}
