package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/tasks"
)

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {

	ownerID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	draft, fields := req.toDraft()
	if fields != nil {
		writeValidationError(w, fields)
		return
	}

	task, err := s.tasks.Create(r.Context(), ownerID, draft)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			writeValidationError(w, map[string]string{"title": "required"})
			return
		}
		s.logger.Error(r.Context(), "task creation failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(task))
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {

	ownerID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	filter := tasks.Filter{}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := tasks.ParseStatus(raw)
		if err != nil {
			writeValidationError(w, map[string]string{"status": "must be one of pending, completed"})
			return
		}
		filter.Status = &status
	}

	list, err := s.tasks.List(r.Context(), ownerID, filter)
	if err != nil {
		s.logger.Error(r.Context(), "task listing failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toTaskListResponse(list))
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {

	ownerID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	taskID := chi.URLParam(r, "id")

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	patch, fields := req.toPatch()
	if fields != nil {
		writeValidationError(w, fields)
		return
	}

	task, err := s.tasks.Update(r.Context(), ownerID, taskID, patch)
	if err != nil {
		// absent and foreign tasks are indistinguishable: answer null
		if errors.Is(err, common.ErrorNotFound) {
			writeJSON(w, http.StatusOK, nil)
			return
		}
		s.logger.Error(r.Context(), "task update failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(task))
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {

	ownerID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	taskID := chi.URLParam(r, "id")

	if err := s.tasks.Delete(r.Context(), ownerID, taskID); err != nil {
		s.logger.Error(r.Context(), "task deletion failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "task deleted"})
}
