package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/avoskresensky/user-admin-service/internal/logger"
	"github.com/avoskresensky/user-admin-service/internal/models"
	"github.com/avoskresensky/user-admin-service/internal/services"
)

// CSVImporter defines the interface that the service must implement.
type CSVImporter interface {
	Import(ctx context.Context, file io.Reader, strategy models.DuplicateStrategy) (*models.ImportReport, error)
}

// maxUploadBytes bounds the multipart form kept in memory.
const maxUploadBytes = 32 << 20

// NewImportUsersHandler returns an HTTP handler running the CSV import
// pipeline. Decode and header problems fail the whole request with 400;
// row-level problems come back inside a 200 report.
// @Summary Import users from CSV
// @Description Uploads a CSV (multipart field "file") and imports it row by row. duplicateStrategy selects how rows matching existing emails are handled: skip (update in place, default) or error (stage for manual resolution).
// @Tags import
// @Accept mpfd
// @Produce json
// @Param file formData file true "CSV file"
// @Param duplicateStrategy query string false "skip or error" default(skip)
// @Success 200 {object} handlers.SuccessResponse "Import report"
// @Failure 400 {object} handlers.ErrorResponse "No file / empty CSV / too large / missing headers"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/import [post]
func NewImportUsersHandler(svc CSVImporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		strategy := models.DuplicateStrategy(r.URL.Query().Get("duplicateStrategy"))
		switch strategy {
		case "", models.StrategySkip, models.StrategyError:
		default:
			writeError(w, http.StatusBadRequest, "Validation Error", "duplicateStrategy must be skip or error")
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			writeError(w, http.StatusBadRequest, "Validation Error", "No file uploaded")
			return
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Validation Error", "No file uploaded")
			return
		}
		defer file.Close()

		report, err := svc.Import(r.Context(), file, strategy)
		if err != nil {
			var missing *services.MissingHeadersError
			switch {
			case errors.As(err, &missing):
				writeError(w, http.StatusBadRequest, "Validation Error", missing.Error())
			case errors.Is(err, services.ErrEmptyCSV),
				errors.Is(err, services.ErrCSVTooLarge),
				errors.Is(err, services.ErrInvalidCSV):
				writeError(w, http.StatusBadRequest, "Validation Error", err.Error())
			default:
				logger.Log.Errorw("import failed", "error", err)
				writeError(w, http.StatusInternalServerError, "Internal Server Error", "An error occurred")
			}
			return
		}

		writeData(w, http.StatusOK, report)
	}
}
