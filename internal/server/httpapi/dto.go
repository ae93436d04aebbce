package httpapi

import (
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/server/tasks"
)

// dateLayout is the wire format of dueDate. A task's due date is a calendar
// date, not a timestamp.
const dateLayout = "2006-01-02"

type taskResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	DueDate     string    `json:"dueDate,omitempty"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toTaskResponse(t *tasks.Task) taskResponse {
	resp := taskResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
	}
	if !t.DueDate.IsZero() {
		resp.DueDate = t.DueDate.Format(dateLayout)
	}
	return resp
}

func toTaskListResponse(list []*tasks.Task) []taskResponse {
	out := make([]taskResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTaskResponse(t))
	}
	return out
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

// toDraft validates the request and builds a tasks.Draft. The second return
// value carries per-field problems; a nil map means the request is valid.
func (r createTaskRequest) toDraft() (tasks.Draft, map[string]string) {
	fields := map[string]string{}

	draft := tasks.Draft{
		Title:       r.Title,
		Description: r.Description,
	}

	if r.Title == "" {
		fields["title"] = "required"
	}

	if r.DueDate != "" {
		due, err := time.Parse(dateLayout, r.DueDate)
		if err != nil {
			fields["dueDate"] = "must be a date in the form YYYY-MM-DD"
		} else {
			draft.DueDate = due
		}
	}

	if r.Priority != "" {
		priority, err := tasks.ParsePriority(r.Priority)
		if err != nil {
			fields["priority"] = "must be one of low, medium, high"
		} else {
			draft.Priority = priority
		}
	}

	if r.Status != "" {
		status, err := tasks.ParseStatus(r.Status)
		if err != nil {
			fields["status"] = "must be one of pending, completed"
		} else {
			draft.Status = status
		}
	}

	if len(fields) > 0 {
		return tasks.Draft{}, fields
	}
	return draft, nil
}

type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
}

// toPatch validates the request and builds a tasks.Patch. Only fields present
// in the body end up in the patch; identity fields are not accepted at all.
func (r updateTaskRequest) toPatch() (tasks.Patch, map[string]string) {
	fields := map[string]string{}
	patch := tasks.Patch{}

	if r.Title != nil {
		if *r.Title == "" {
			fields["title"] = "must not be empty"
		} else {
			patch.Title = r.Title
		}
	}

	if r.Description != nil {
		patch.Description = r.Description
	}

	if r.DueDate != nil {
		due, err := time.Parse(dateLayout, *r.DueDate)
		if err != nil {
			fields["dueDate"] = "must be a date in the form YYYY-MM-DD"
		} else {
			patch.DueDate = &due
		}
	}

	if r.Priority != nil {
		priority, err := tasks.ParsePriority(*r.Priority)
		if err != nil {
			fields["priority"] = "must be one of low, medium, high"
		} else {
			patch.Priority = &priority
		}
	}

	if r.Status != nil {
		status, err := tasks.ParseStatus(*r.Status)
		if err != nil {
			fields["status"] = "must be one of pending, completed"
		} else {
			patch.Status = &status
		}
	}

	if len(fields) > 0 {
		return tasks.Patch{}, fields
	}
	return patch, nil
}
