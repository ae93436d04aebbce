package users

import (
	"context"
)

type Repository interface {
	// Create persists user and returns it with storage-side fields filled in.
	// A taken username yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *User) (*User, error)
	// GetByUsername returns common.ErrorNotFound when no such account exists.
	GetByUsername(ctx context.Context, username string) (*User, error)
}
