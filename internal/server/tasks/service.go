// Package tasks implements the task store and the task service: create,
// list with status filtering, partial update, and delete, all scoped to the
// owning user.
package tasks

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// NewTask builds a task for ownerID from draft, applying defaults explicitly:
// status pending, priority medium. The owner id always comes from the
// verified identity, never from the draft.
func NewTask(ownerID string, draft Draft) *Task {
	status := draft.Status
	if status == "" {
		status = StatusPending
	}
	priority := draft.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	return &Task{
		ID:          uuid.NewString(),
		UserID:      ownerID,
		Title:       draft.Title,
		Description: draft.Description,
		DueDate:     draft.DueDate,
		Priority:    priority,
		Status:      status,
	}
}

// Create persists a new task owned by ownerID. The title is required.
func (s *Service) Create(ctx context.Context, ownerID string, draft Draft) (*Task, error) {

	if draft.Title == "" {
		return nil, common.ErrorValidation
	}

	task, err := s.repo.Create(ctx, NewTask(ownerID, draft))
	if err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}

	return task, nil
}

// List returns the owner's tasks, optionally restricted by filter. Order is
// not part of the contract; sorting is a presentation concern.
func (s *Service) List(ctx context.Context, ownerID string, filter Filter) ([]*Task, error) {

	result, err := s.repo.ListByOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}

	return result, nil
}

// Update applies patch to the owner's task. A missing or foreign task yields
// common.ErrorNotFound, which callers must treat as the authorization
// boundary: no distinction between "does not exist" and "not yours".
func (s *Service) Update(ctx context.Context, ownerID, taskID string, patch Patch) (*Task, error) {

	task, err := s.repo.Update(ctx, ownerID, taskID, patch)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error updating task: %w", err)
	}

	return task, nil
}

// Delete removes the owner's task. Idempotent: deleting a task that is
// already gone (or never was the caller's) succeeds.
func (s *Service) Delete(ctx context.Context, ownerID, taskID string) error {

	if err := s.repo.Delete(ctx, ownerID, taskID); err != nil {
		return fmt.Errorf("error deleting task: %w", err)
	}

	return nil
}
