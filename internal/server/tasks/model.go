package tasks

import (
	"fmt"
	"strings"
	"time"
)

// Status of a task. Stored and served in lowercase; parsing at the API
// boundary is case-insensitive.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// ParseStatus normalizes s to the canonical lowercase form.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending, nil
	case StatusCompleted:
		return StatusCompleted, nil
	default:
		return "", fmt.Errorf("unknown status %q", s)
	}
}

// Priority of a task, lowercase like Status.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority normalizes s to the canonical lowercase form.
func ParsePriority(s string) (Priority, error) {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityLow:
		return PriorityLow, nil
	case PriorityMedium:
		return PriorityMedium, nil
	case PriorityHigh:
		return PriorityHigh, nil
	default:
		return "", fmt.Errorf("unknown priority %q", s)
	}
}

// Task belongs to exactly one user and is only ever visible through
// operations scoped to that user's id.
type Task struct {
	ID          string
	UserID      string
	Title       string
	Description string
	DueDate     time.Time
	Priority    Priority
	Status      Status
	CreatedAt   time.Time
}

// Draft carries the caller-supplied fields of a new task. The owner is never
// part of a draft; it always comes from the verified identity.
type Draft struct {
	Title       string
	Description string
	DueDate     time.Time
	Priority    Priority
	Status      Status
}

// Patch is a partial update. Nil fields are left unchanged; the owner is not
// patchable at all.
type Patch struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Priority    *Priority
	Status      *Status
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.DueDate == nil &&
		p.Priority == nil && p.Status == nil
}

// Apply overwrites the fields of t that the patch sets.
func (p Patch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
}

// Filter restricts List results. A nil Status means no status filtering.
type Filter struct {
	Status *Status
}
