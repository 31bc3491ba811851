package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// Cost for hashing local account passwords. OAuth-only users never have one.
const passwordHashCost = bcrypt.DefaultCost

// HashPassword derives the bcrypt hash stored for a local account password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether password matches the stored bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
