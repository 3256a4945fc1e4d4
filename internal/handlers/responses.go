package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/avoskresensky/user-admin-service/internal/models"
)

// SuccessResponse is the standard success envelope
// swagger:model SuccessResponse
type SuccessResponse struct {
	// Always true
	Success bool `json:"success"`

	// Response payload
	Data any `json:"data"`
}

// ListUsersResponse is the success envelope for the list endpoint
// swagger:model ListUsersResponse
type ListUsersResponse struct {
	Success    bool              `json:"success"`
	Data       []models.UserDB   `json:"data"`
	Pagination models.Pagination `json:"pagination"`
}

// ErrorResponse is the standard error envelope
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Always false
	Success bool `json:"success"`

	// Short error name
	// default: Validation Error
	Error string `json:"error"`

	// Human-readable message
	Message string `json:"message,omitempty"`

	// Per-field validation details, when applicable
	Details []models.FieldError `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, SuccessResponse{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, name, message string) {
	writeJSON(w, status, ErrorResponse{Success: false, Error: name, Message: message})
}

func writeValidationError(w http.ResponseWriter, details []models.FieldError) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Success: false,
		Error:   "Validation Error",
		Details: details,
	})
}
