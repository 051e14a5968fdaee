package utils

import "golang.org/x/crypto/bcrypt"

// PasswordCost matches the work factor the storefront has always used.
const PasswordCost = bcrypt.DefaultCost

// HashPassword returns a salted bcrypt hash of the plain-text password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	return string(bytes), err
}

// CheckPasswordHash compares a bcrypt hash against the plain-text candidate.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
