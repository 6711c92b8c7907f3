package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/laagvlieger/skills-integrate-mcp-with-copilot/internal/services"
	"github.com/laagvlieger/skills-integrate-mcp-with-copilot/internal/store"
)

// ActivityHandler provides HTTP handlers for the activity roster.
type ActivityHandler struct {
	activityService *services.ActivityService
}

// NewActivityHandler constructs a handler over the given service.
func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// ActivityRouter registers activity routes on the given router. Listing is
// public; signup and unregister require authentication.
func ActivityRouter(r chi.Router, activityService *services.ActivityService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewActivityHandler(activityService)

	r.Get("/", handler.ListActivities)
	r.Route("/{activityName}", func(r chi.Router) {
		r.With(authMiddleware).Post("/signup", handler.Signup)
		r.With(authMiddleware).Delete("/unregister", handler.Unregister)
	})
}

// ListActivities returns the full roster keyed by activity name.
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.activityService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list activities")
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

// Signup enrolls the authenticated student in an activity.
func (h *ActivityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	name := activityName(r)

	email, err := subjectFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := h.activityService.Signup(r.Context(), name, email); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, store.ErrAlreadySignedUp):
			writeError(w, http.StatusBadRequest, "Student is already signed up")
		default:
			writeError(w, http.StatusInternalServerError, "failed to sign up")
		}
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

// Unregister withdraws the authenticated student from an activity.
func (h *ActivityHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	name := activityName(r)

	email, err := subjectFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := h.activityService.Unregister(r.Context(), name, email); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, store.ErrNotSignedUp):
			writeError(w, http.StatusBadRequest, "Student is not signed up for this activity")
		default:
			writeError(w, http.StatusInternalServerError, "failed to unregister")
		}
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}

// activityName extracts the activity route parameter. Names contain spaces,
// so the escaped form is unescaped before lookup.
func activityName(r *http.Request) string {
	name := chi.URLParam(r, "activityName")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	return name
}
