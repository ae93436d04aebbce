package users

import "time"

// User is a persisted account. Username is unique and immutable; the
// plaintext password never leaves the service boundary, only PasswordHash is
// stored.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
