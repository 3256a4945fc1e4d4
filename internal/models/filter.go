package models

// UserFilter describes list/export query parameters.
type UserFilter struct {
	Active    *bool  // filter by active flag when non-nil
	Blocked   *bool  // filter by blocked flag when non-nil
	Location  string // case-insensitive substring match when non-empty
	SortBy    string // whitelisted column, defaults to "name"
	SortOrder string // "asc" or "desc"
	Page      int    // 1-based
	Limit     int
}

// Pagination carries list paging metadata in responses.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}
