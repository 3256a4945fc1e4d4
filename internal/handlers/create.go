package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avoskresensky/user-admin-service/internal/logger"
	"github.com/avoskresensky/user-admin-service/internal/models"
	"github.com/avoskresensky/user-admin-service/internal/services"
	"github.com/avoskresensky/user-admin-service/internal/validation"
)

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	Create(ctx context.Context, in models.UserInput) (*models.UserDB, error)
}

// CreateUserRequest documents the accepted body fields
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// required: true
	Name string `json:"name"`
	// required: true
	Email     string `json:"email"`
	IPAddress string `json:"ipAddress,omitempty"`
	Location  string `json:"location,omitempty"`
	Active    *bool  `json:"active,omitempty"`
	Blocked   *bool  `json:"blocked,omitempty"`
	LastLogin string `json:"lastLogin,omitempty"`
}

// NewCreateUserHandler returns an HTTP handler creating a user.
// @Summary Create a user
// @Description Validates the body in create mode and inserts the user. Email must be unique.
// @Tags users
// @Accept json
// @Produce json
// @Param createUserRequest body handlers.CreateUserRequest true "User to create"
// @Success 201 {object} handlers.SuccessResponse "Created user"
// @Failure 400 {object} handlers.ErrorResponse "Validation error"
// @Failure 409 {object} handlers.ErrorResponse "Email already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Validation Error", "Invalid JSON body")
			return
		}

		input, fieldErrs := validation.Validate(body, validation.ModeCreate)
		if len(fieldErrs) > 0 {
			writeValidationError(w, fieldErrs)
			return
		}

		user, err := svc.Create(r.Context(), input)
		if err != nil {
			if errors.Is(err, services.ErrEmailAlreadyExists) {
				writeError(w, http.StatusConflict, "Duplicate Entry", "Email already exists")
				return
			}
			logger.Log.Errorw("create user failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal Server Error", "An error occurred")
			return
		}

		writeData(w, http.StatusCreated, user)
	}
}
