package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrUnavailable means the server could not be reached at all.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthenticated means the session token was missing, invalid, or
	// expired; the user has to log in again.
	ErrUnauthenticated = errors.New("unauthenticated")
)

// errorFromResponse turns a non-200 answer into an error carrying the
// server's message.
func errorFromResponse(resp *http.Response) error {
	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthenticated
	}

	msg := body.Error
	if msg == "" {
		msg = resp.Status
	}
	if len(body.Fields) > 0 {
		details := make([]string, 0, len(body.Fields))
		for field, reason := range body.Fields {
			details = append(details, field+": "+reason)
		}
		msg = msg + " (" + strings.Join(details, "; ") + ")"
	}

	return fmt.Errorf("%s", msg)
}
