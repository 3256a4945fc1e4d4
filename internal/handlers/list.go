package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/avoskresensky/user-admin-service/internal/logger"
	"github.com/avoskresensky/user-admin-service/internal/models"
)

// UserLister defines the interface that the service must implement.
type UserLister interface {
	List(ctx context.Context, filter models.UserFilter) ([]models.UserDB, models.Pagination, error)
}

// NewListUsersHandler returns an HTTP handler listing users.
// @Summary List users
// @Description Returns users filtered by active/blocked/location, sorted and paginated.
// @Tags users
// @Produce json
// @Param active query bool false "Filter by active flag"
// @Param blocked query bool false "Filter by blocked flag"
// @Param location query string false "Case-insensitive location substring"
// @Param sortBy query string false "Sort column" default(name)
// @Param sortOrder query string false "asc or desc" default(asc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} handlers.ListUsersResponse "Users page"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := filterFromQuery(r)

		users, pagination, err := svc.List(r.Context(), filter)
		if err != nil {
			logger.Log.Errorw("list users failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal Server Error", "An error occurred")
			return
		}

		writeJSON(w, http.StatusOK, ListUsersResponse{
			Success:    true,
			Data:       users,
			Pagination: pagination,
		})
	}
}

// filterFromQuery parses the shared list/export query parameters.
func filterFromQuery(r *http.Request) models.UserFilter {
	q := r.URL.Query()

	filter := models.UserFilter{
		Location:  q.Get("location"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	}
	if filter.SortBy == "" {
		filter.SortBy = "name"
	}

	if v := q.Get("active"); v != "" {
		active := v == "true"
		filter.Active = &active
	}
	if v := q.Get("blocked"); v != "" {
		blocked := v == "true"
		filter.Blocked = &blocked
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil && page > 0 {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}
	return filter
}
