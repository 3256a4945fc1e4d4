package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avoskresensky/user-admin-service/internal/logger"
)

// BulkDeleter defines the interface that the service must implement.
type BulkDeleter interface {
	BulkDelete(ctx context.Context, rawIDs []string) (deleted int64, invalid []string, err error)
}

// BulkDeleteRequest is the bulk deletion body
// swagger:model BulkDeleteRequest
type BulkDeleteRequest struct {
	// required: true
	UserIDs []string `json:"userIds"`
}

// BulkDeleteResult reports how the batch went
// swagger:model BulkDeleteResult
type BulkDeleteResult struct {
	Deleted    int64    `json:"deleted"`
	InvalidIDs []string `json:"invalidIds,omitempty"`
}

// NewBulkDeleteHandler returns an HTTP handler deleting a batch of users.
// The route runs under TxMiddleware, so valid deletions are all-or-nothing.
// @Summary Bulk delete users
// @Tags users
// @Accept json
// @Produce json
// @Param bulkDeleteRequest body handlers.BulkDeleteRequest true "Ids to delete"
// @Success 200 {object} handlers.SuccessResponse "Batch result"
// @Failure 400 {object} handlers.ErrorResponse "Empty or malformed body"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/bulk-delete [post]
func NewBulkDeleteHandler(svc BulkDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BulkDeleteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.UserIDs) == 0 {
			writeError(w, http.StatusBadRequest, "Validation Error", "userIds must be a non-empty array")
			return
		}

		deleted, invalid, err := svc.BulkDelete(r.Context(), req.UserIDs)
		if err != nil {
			logger.Log.Errorw("bulk delete failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal Server Error", "An error occurred")
			return
		}

		writeData(w, http.StatusOK, BulkDeleteResult{Deleted: deleted, InvalidIDs: invalid})
	}
}
