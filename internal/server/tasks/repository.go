package tasks

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, task *Task) (*Task, error)
	// ListByOwner returns the owner's tasks, optionally restricted by filter.
	// The slice is never nil.
	ListByOwner(ctx context.Context, ownerID string, filter Filter) ([]*Task, error)
	// Update applies patch to the task identified by (ownerID, id) and
	// returns the updated row. A missing or foreign task yields
	// common.ErrorNotFound; the two cases are indistinguishable on purpose.
	Update(ctx context.Context, ownerID, id string, patch Patch) (*Task, error)
	// Delete removes the task if it exists and is owned by ownerID. Deleting
	// a missing task is not an error.
	Delete(ctx context.Context, ownerID, id string) error
}
