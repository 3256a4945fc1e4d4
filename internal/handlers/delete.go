package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/avoskresensky/user-admin-service/internal/logger"
	"github.com/avoskresensky/user-admin-service/internal/services"
)

// UserDeleter defines the interface that the service must implement.
type UserDeleter interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewDeleteUserHandler returns an HTTP handler deleting one user.
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id path string true "User id (UUID)"
// @Success 200 {object} handlers.SuccessResponse "Deletion confirmation"
// @Failure 400 {object} handlers.ErrorResponse "Invalid user ID format"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{id} [delete]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid ID", "Invalid user ID format")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "Not Found", "User not found")
				return
			}
			logger.Log.Errorw("delete user failed", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal Server Error", "An error occurred")
			return
		}

		writeData(w, http.StatusOK, map[string]string{"id": id.String()})
	}
}
