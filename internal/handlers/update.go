package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/avoskresensky/user-admin-service/internal/logger"
	"github.com/avoskresensky/user-admin-service/internal/models"
	"github.com/avoskresensky/user-admin-service/internal/services"
	"github.com/avoskresensky/user-admin-service/internal/validation"
)

// UserUpdater defines the interface that the service must implement.
type UserUpdater interface {
	Update(ctx context.Context, id uuid.UUID, in models.UserInput) (*models.UserDB, error)
}

// NewUpdateUserHandler returns an HTTP handler patching a user.
// @Summary Update a user
// @Description Validates the body in update mode; only present fields change. An email change re-checks uniqueness.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User id (UUID)"
// @Param updateUserRequest body handlers.CreateUserRequest true "Fields to change"
// @Success 200 {object} handlers.SuccessResponse "Updated user"
// @Failure 400 {object} handlers.ErrorResponse "Validation error / invalid id"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 409 {object} handlers.ErrorResponse "Email already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{id} [patch]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid ID", "Invalid user ID format")
			return
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Validation Error", "Invalid JSON body")
			return
		}

		input, fieldErrs := validation.Validate(body, validation.ModeUpdate)
		if len(fieldErrs) > 0 {
			writeValidationError(w, fieldErrs)
			return
		}

		user, err := svc.Update(r.Context(), id, input)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "Not Found", "User not found")
			case errors.Is(err, services.ErrEmailAlreadyExists):
				writeError(w, http.StatusConflict, "Duplicate Entry", "Email already exists")
			default:
				logger.Log.Errorw("update user failed", "id", id, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal Server Error", "An error occurred")
			}
			return
		}

		writeData(w, http.StatusOK, user)
	}
}
