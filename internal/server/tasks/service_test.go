package tasks

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewInMemoryRepository())
}

func statusPtr(s Status) *Status       { return &s }
func priorityPtr(p Priority) *Priority { return &p }
func strPtr(s string) *string          { return &s }

func TestNewTask_Defaults(t *testing.T) {
	t.Parallel()

	task := NewTask("owner-1", Draft{Title: "t"})
	assert.Equal(t, StatusPending, task.Status)
	assert.Equal(t, PriorityMedium, task.Priority)
	assert.Equal(t, "owner-1", task.UserID)
	assert.NotEmpty(t, task.ID)
}

func TestService_Create_RoundTrip(t *testing.T) {
	t.Parallel()
	s := newTestService(t)
	ctx := context.Background()

	due := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	created, err := s.Create(ctx, "u1", Draft{
		Title:    "Write report",
		DueDate:  due,
		Priority: PriorityHigh,
	})
	require.NoError(t, err)

	list, err := s.List(ctx, "u1", Filter{})
	require.NoError(t, err)
	require.Len(t, list, 1)

	got := list[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Write report", got.Title)
	assert.Equal(t, due, got.DueDate)
	assert.Equal(t, PriorityHigh, got.Priority)
	assert.Equal(t, StatusPending, got.Status)
}

func TestService_Create_RequiresTitle(t *testing.T) {
	t.Parallel()
	s := newTestService(t)

	_, err := s.Create(context.Background(), "u1", Draft{})
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestService_List_OwnerIsolation(t *testing.T) {
	t.Parallel()
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.Create(ctx, "userA", Draft{Title: "a1"})
	require.NoError(t, err)
	_, err = s.Create(ctx, "userA", Draft{Title: "a2"})
	require.NoError(t, err)

	listB, err := s.List(ctx, "userB", Filter{})
	require.NoError(t, err)
	assert.Empty(t, listB, "user B must never see user A's tasks")
}

func TestService_List_StatusFilter(t *testing.T) {
	t.Parallel()
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.Create(ctx, "u1", Draft{Title: "open"})
	require.NoError(t, err)
	done, err := s.Create(ctx, "u1", Draft{Title: "done", Status: StatusCompleted})
	require.NoError(t, err)

	completed, err := s.List(ctx, "u1", Filter{Status: statusPtr(StatusCompleted)})
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, done.ID, completed[0].ID)

	pending, err := s.List(ctx, "u1", Filter{Status: statusPtr(StatusPending)})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "open", pending[0].Title)
}

func TestService_Update_Partial(t *testing.T) {
	t.Parallel()
	s := newTestService(t)
	ctx := context.Background()

	created, err := s.Create(ctx, "u1", Draft{Title: "orig", Description: "keep me"})
	require.NoError(t, err)

	updated, err := s.Update(ctx, "u1", created.ID, Patch{Title: strPtr("renamed")})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, "keep me", updated.Description, "unspecified fields stay unchanged")
	assert.Equal(t, StatusPending, updated.Status)
}

func TestService_Update_ForeignTask(t *testing.T) {
	t.Parallel()
	s := newTestService(t)
	ctx := context.Background()

	created, err := s.Create(ctx, "userA", Draft{Title: "private"})
	require.NoError(t, err)

	_, err = s.Update(ctx, "userB", created.ID, Patch{Title: strPtr("stolen")})
	require.ErrorIs(t, err, common.ErrorNotFound)

	// A's task is untouched
	list, err := s.List(ctx, "userA", Filter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "private", list[0].Title)
}

func TestService_Update_MissingTask(t *testing.T) {
	t.Parallel()
	s := newTestService(t)

	_, err := s.Update(context.Background(), "u1", "no-such-id", Patch{Title: strPtr("x")})
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestService_Delete_Idempotent(t *testing.T) {
	t.Parallel()
	s := newTestService(t)
	ctx := context.Background()

	created, err := s.Create(ctx, "u1", Draft{Title: "bye"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "u1", created.ID))
	require.NoError(t, s.Delete(ctx, "u1", created.ID), "second delete is a no-op, not an error")

	list, err := s.List(ctx, "u1", Filter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestService_Delete_ForeignTaskLeavesRow(t *testing.T) {
	t.Parallel()
	s := newTestService(t)
	ctx := context.Background()

	created, err := s.Create(ctx, "userA", Draft{Title: "keep"})
	require.NoError(t, err)

	// succeeds without touching A's row
	require.NoError(t, s.Delete(ctx, "userB", created.ID))

	list, err := s.List(ctx, "userA", Filter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestService_StatusToggleScenario(t *testing.T) {
	t.Parallel()
	s := newTestService(t)
	ctx := context.Background()

	due := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	created, err := s.Create(ctx, "u", Draft{Title: "Write report", DueDate: due, Priority: PriorityHigh})
	require.NoError(t, err)

	list, err := s.List(ctx, "u", Filter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, StatusPending, list[0].Status)

	_, err = s.Update(ctx, "u", created.ID, Patch{Status: statusPtr(StatusCompleted)})
	require.NoError(t, err)

	completed, err := s.List(ctx, "u", Filter{Status: statusPtr(StatusCompleted)})
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, created.ID, completed[0].ID)

	pending, err := s.List(ctx, "u", Filter{Status: statusPtr(StatusPending)})
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{in: "pending", want: StatusPending},
		{in: "Completed", want: StatusCompleted},
		{in: "  PENDING ", want: StatusPending},
		{in: "done", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseStatus(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestParsePriority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Priority
		wantErr bool
	}{
		{in: "low", want: PriorityLow},
		{in: "Medium", want: PriorityMedium},
		{in: "HIGH", want: PriorityHigh},
		{in: "urgent", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParsePriority(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestPatch_IsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, Patch{}.IsEmpty())
	assert.False(t, Patch{Status: statusPtr(StatusPending)}.IsEmpty())
	assert.False(t, Patch{Priority: priorityPtr(PriorityLow)}.IsEmpty())
}
