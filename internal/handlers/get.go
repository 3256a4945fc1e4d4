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

// UserGetter defines the interface that the service must implement.
type UserGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
}

// NewGetUserHandler returns an HTTP handler fetching one user by id.
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path string true "User id (UUID)"
// @Success 200 {object} handlers.SuccessResponse "User"
// @Failure 400 {object} handlers.ErrorResponse "Invalid user ID format"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid ID", "Invalid user ID format")
			return
		}

		user, err := svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "Not Found", "User not found")
				return
			}
			logger.Log.Errorw("get user failed", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal Server Error", "An error occurred")
			return
		}

		writeData(w, http.StatusOK, user)
	}
}
