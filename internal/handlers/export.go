package handlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avoskresensky/user-admin-service/internal/logger"
	"github.com/avoskresensky/user-admin-service/internal/models"
)

// UserExporter defines the interface that the service must implement.
type UserExporter interface {
	Export(ctx context.Context, filter models.UserFilter, w io.Writer) error
}

// NewExportUsersHandler returns an HTTP handler streaming users as CSV.
// The column set matches what the import endpoint requires, so an export
// can be fed straight back into an import.
// @Summary Export users as CSV
// @Tags users
// @Produce text/csv
// @Param active query bool false "Filter by active flag"
// @Param blocked query bool false "Filter by blocked flag"
// @Param location query string false "Case-insensitive location substring"
// @Param sortBy query string false "Sort column" default(name)
// @Param sortOrder query string false "asc or desc" default(asc)
// @Success 200 {string} string "CSV payload"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/export [get]
func NewExportUsersHandler(svc UserExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := filterFromQuery(r)

		// Export is buffered so a mid-stream failure still yields a clean
		// JSON error instead of JSON appended to partial CSV output.
		var buf bytes.Buffer
		if err := svc.Export(r.Context(), filter, &buf); err != nil {
			logger.Log.Errorw("export users failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal Server Error", "Export failed")
			return
		}

		filename := fmt.Sprintf("users_%s.csv", time.Now().UTC().Format("2006-01-02"))
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		if _, err := buf.WriteTo(w); err != nil {
			logger.Log.Errorw("failed to write export response", "error", err)
		}
	}
}
