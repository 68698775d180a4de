// Package handler contains chi HTTP handlers that translate HTTP
// requests/responses to and from the service layer.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/mergington-high/activities-api/internal/model"
	"github.com/mergington-high/activities-api/internal/registry"
	"github.com/mergington-high/activities-api/internal/service"
)

// ActivityHandler holds all HTTP handlers for the activity signup API.
type ActivityHandler struct {
	svc *service.ActivityService
}

// NewActivityHandler constructs an ActivityHandler.
func NewActivityHandler(svc *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, model.ErrorResponse{Detail: detail})
}

// activityName extracts and decodes the {name} route parameter. Activity
// names contain spaces, and chi keeps percent-encoding in parameters matched
// from the escaped path.
func activityName(r *http.Request) string {
	name := chi.URLParam(r, "name")
	if decoded, err := url.PathUnescape(name); err == nil {
		return decoded
	}
	return name
}

// Root handles GET /
// Redirects to the static front end.
func (h *ActivityHandler) Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

// ListActivities handles GET /activities
// Returns a JSON object mapping activity name to its record.
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.List(r.Context()))
}

// Signup handles POST /activities/{name}/signup?email=...
func (h *ActivityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	name := activityName(r)
	email := r.URL.Query().Get("email")

	msg, err := h.svc.Signup(r.Context(), name, email)
	if err != nil {
		switch {
		case errors.Is(err, registry.ErrActivityNotFound):
			writeDetail(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, registry.ErrAlreadySignedUp):
			writeDetail(w, http.StatusBadRequest, "Student is already signed up")
		default:
			writeDetail(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: msg})
}

// Unregister handles DELETE /activities/{name}/unregister?email=...
func (h *ActivityHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	name := activityName(r)
	email := r.URL.Query().Get("email")

	msg, err := h.svc.Unregister(r.Context(), name, email)
	if err != nil {
		switch {
		case errors.Is(err, registry.ErrActivityNotFound):
			writeDetail(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, registry.ErrNotRegistered):
			writeDetail(w, http.StatusBadRequest, "Student is not registered for this activity")
		default:
			writeDetail(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: msg})
}

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
