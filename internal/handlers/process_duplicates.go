package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avoskresensky/user-admin-service/internal/logger"
	"github.com/avoskresensky/user-admin-service/internal/models"
)

// DuplicateProcessor defines the interface that the service must implement.
type DuplicateProcessor interface {
	ProcessDuplicates(ctx context.Context, decisions []models.DuplicateDecision) (*models.ImportReport, error)
}

// ProcessDuplicatesRequest is the conflict resolution body
// swagger:model ProcessDuplicatesRequest
type ProcessDuplicatesRequest struct {
	// required: true
	Duplicates []models.DuplicateDecision `json:"duplicates"`
}

// NewProcessDuplicatesHandler returns an HTTP handler applying or
// discarding previously staged import conflicts. Nothing is kept server
// side between the import call and this one; the caller resubmits the
// full csvData per decision.
// @Summary Resolve staged import conflicts
// @Tags import
// @Accept json
// @Produce json
// @Param processDuplicatesRequest body handlers.ProcessDuplicatesRequest true "Per-row decisions"
// @Success 200 {object} handlers.SuccessResponse "Resolution report"
// @Failure 400 {object} handlers.ErrorResponse "Malformed resolution payload"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/import/process-duplicates [post]
func NewProcessDuplicatesHandler(svc DuplicateProcessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ProcessDuplicatesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Duplicates == nil {
			writeError(w, http.StatusBadRequest, "Validation Error", "duplicates must be an array of decisions")
			return
		}

		report, err := svc.ProcessDuplicates(r.Context(), req.Duplicates)
		if err != nil {
			logger.Log.Errorw("process duplicates failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal Server Error", "An error occurred")
			return
		}

		writeData(w, http.StatusOK, report)
	}
}
