package utils

import "golang.org/x/crypto/bcrypt"

// HashCost is the bcrypt work factor applied to stored passwords.
const HashCost = bcrypt.DefaultCost

// HashPassword hashes a plain password with bcrypt at HashCost.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	return string(bytes), err
}

// CheckPassword reports whether plain matches the stored bcrypt hash.
func CheckPassword(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
