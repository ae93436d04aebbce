package auth

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost is the cost used for new password hashes. A single hash
// takes on the order of 100ms on current hardware.
const DefaultBcryptCost = 10

// MaxPasswordLength is the longest password bcrypt will hash, in bytes.
// Longer inputs must be rejected before they reach HashPassword.
const MaxPasswordLength = 72

// dummyHash is a valid bcrypt hash of a random string. Login compares against
// it when the username does not exist so that the unknown-user path costs the
// same as a real mismatch.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// HashPassword derives a salted one-way hash of password. cost <= 0 selects
// DefaultBcryptCost.
func HashPassword(password string, cost int) (string, error) {
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CheckDummyPassword burns the same work as a failed real comparison.
// The result is always false.
func CheckDummyPassword(password string) bool {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
	return false
}
