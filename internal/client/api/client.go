// Package api is the request layer of the CLI client. It talks to the
// TaskKeeper HTTP API and carries authentication in an explicit Session
// object passed into every authenticated call. There is no process-wide
// login state.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Session proves a prior successful login. It is returned by Login and must
// be handed to every task call.
type Session struct {
	Token    string
	Username string
}

// Task is the wire representation served by the API. DueDate is a calendar
// date in the form YYYY-MM-DD.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     string    `json:"dueDate"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Draft carries the fields of a task to create. Empty fields are omitted and
// the server applies its defaults.
type Draft struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
	Priority    string `json:"priority,omitempty"`
}

// Patch is a partial update; nil fields are left unchanged by the server.
type Patch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Status      *string `json:"status,omitempty"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates an account. It does not log in.
func (c *Client) Register(ctx context.Context, username, password string) error {
	return c.do(ctx, http.MethodPost, "/api/auth/register", nil,
		credentials{Username: username, Password: password}, nil)
}

// Login authenticates and returns a Session for subsequent calls.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	var resp struct {
		Token    string `json:"token"`
		Username string `json:"username"`
	}

	err := c.do(ctx, http.MethodPost, "/api/auth/login", nil,
		credentials{Username: username, Password: password}, &resp)
	if err != nil {
		return nil, err
	}

	return &Session{Token: resp.Token, Username: resp.Username}, nil
}

func (c *Client) CreateTask(ctx context.Context, s *Session, draft Draft) (*Task, error) {
	task := &Task{}
	if err := c.do(ctx, http.MethodPost, "/api/tasks", s, draft, task); err != nil {
		return nil, err
	}
	return task, nil
}

// ListTasks fetches the session user's tasks. status may be empty, "pending",
// or "completed".
func (c *Client) ListTasks(ctx context.Context, s *Session, status string) ([]Task, error) {
	path := "/api/tasks"
	if status != "" {
		path += "?status=" + status
	}

	var list []Task
	if err := c.do(ctx, http.MethodGet, path, s, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// UpdateTask applies a partial update. A nil result with a nil error means
// the task does not exist (or is not the session user's; the server does not
// say which).
func (c *Client) UpdateTask(ctx context.Context, s *Session, id string, patch Patch) (*Task, error) {
	task := &Task{}
	if err := c.do(ctx, http.MethodPut, "/api/tasks/"+id, s, patch, task); err != nil {
		return nil, err
	}
	if task.ID == "" {
		// the server answered null
		return nil, nil
	}
	return task, nil
}

func (c *Client) DeleteTask(ctx context.Context, s *Session, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/tasks/"+id, s, nil, nil)
}

// do performs one API round trip: marshals body, attaches the bearer token
// when a session is given, and decodes the response into out (unless nil).
func (c *Client) do(ctx context.Context, method, path string, s *Session, body, out any) error {

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s != nil {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errorFromResponse(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return err
	}
	return nil
}
