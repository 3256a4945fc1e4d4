package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/avoskresensky/user-admin-service/internal/logger"
	"github.com/avoskresensky/user-admin-service/internal/models"
	"github.com/avoskresensky/user-admin-service/internal/services"
)

// UserBlocker defines the interface that the service must implement.
type UserBlocker interface {
	SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) (*models.UserDB, error)
}

// NewBlockUserHandler returns an HTTP handler setting blocked=true.
// Blocking is an administrative action; CSV import never touches the flag.
// @Summary Block a user
// @Tags users
// @Produce json
// @Param id path string true "User id (UUID)"
// @Success 200 {object} handlers.SuccessResponse "Updated user"
// @Failure 400 {object} handlers.ErrorResponse "Invalid user ID format"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{id}/block [patch]
func NewBlockUserHandler(svc UserBlocker) http.HandlerFunc {
	return setBlockedHandler(svc, true)
}

// NewUnblockUserHandler returns an HTTP handler setting blocked=false.
// @Summary Unblock a user
// @Tags users
// @Produce json
// @Param id path string true "User id (UUID)"
// @Success 200 {object} handlers.SuccessResponse "Updated user"
// @Failure 400 {object} handlers.ErrorResponse "Invalid user ID format"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{id}/unblock [patch]
func NewUnblockUserHandler(svc UserBlocker) http.HandlerFunc {
	return setBlockedHandler(svc, false)
}

func setBlockedHandler(svc UserBlocker, blocked bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid ID", "Invalid user ID format")
			return
		}

		user, err := svc.SetBlocked(r.Context(), id, blocked)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "Not Found", "User not found")
				return
			}
			logger.Log.Errorw("set blocked failed", "id", id, "blocked", blocked, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal Server Error", "An error occurred")
			return
		}

		writeData(w, http.StatusOK, user)
	}
}
