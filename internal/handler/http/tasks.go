package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// ownerFromRequest returns the verified user id placed in the context by auth.
func ownerFromRequest(r *http.Request) (int64, error) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, service.ErrNoOwner
	}
	return ownerID, nil
}

// taskIDFromRequest parses the {id} path parameter.
func taskIDFromRequest(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidTaskID
	}
	return id, nil
}

// ownerAndTaskID is the common prelude of the single-task handlers.
func ownerAndTaskID(r *http.Request) (int64, int64, error) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		return 0, 0, err
	}
	taskID, err := taskIDFromRequest(r)
	if err != nil {
		return 0, 0, err
	}
	return ownerID, taskID, nil
}

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	tasks, err := h.services.TaskService.ListTasks(r.Context(), ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tasks, http.StatusOK)
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	// CreateTaskRequest has no owner field: a client-supplied owner is dropped
	var request models.CreateTaskRequest
	if err = decodeBody(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.CreateTask(r.Context(), ownerID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusCreated)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	ownerID, taskID, err := ownerAndTaskID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.GetTask(r.Context(), ownerID, taskID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	ownerID, taskID, err := ownerAndTaskID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.UpdateTaskRequest
	if err = decodeBody(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.UpdateTask(r.Context(), ownerID, taskID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) toggleTask(w http.ResponseWriter, r *http.Request) {
	ownerID, taskID, err := ownerAndTaskID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.ToggleTask(r.Context(), ownerID, taskID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	ownerID, taskID, err := ownerAndTaskID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.TaskService.DeleteTask(r.Context(), ownerID, taskID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
