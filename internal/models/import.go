package models

import "github.com/google/uuid"

// DuplicateStrategy selects how an import batch handles a CSV row whose
// email already exists in storage.
type DuplicateStrategy string

const (
	// StrategySkip auto-applies the incoming row as an update of the
	// existing record (blocked is preserved). Default.
	StrategySkip DuplicateStrategy = "skip"
	// StrategyError stages the row as a conflict for manual resolution.
	StrategyError DuplicateStrategy = "error"
)

// FieldError is a single validation violation for one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RowError is a row-scoped import failure. Field is empty for errors
// not attributable to a single column.
type RowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ExistingUserSnapshot captures the stored record's key fields as of
// classification time, for the conflict resolution UI.
type ExistingUserSnapshot struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Location *string   `json:"location,omitempty"`
	Active   bool      `json:"active"`
	Blocked  bool      `json:"blocked"`
}

// ConflictEntry describes a CSV row whose email collides with an existing
// record, staged under the "error" strategy. Nothing is persisted between
// the import call and the resolution call; the caller resubmits CSVData.
type ConflictEntry struct {
	RowNumber int                  `json:"rowNumber"`
	CSVData   map[string]string    `json:"csvData"`
	Existing  ExistingUserSnapshot `json:"existingUser"`
}

// DecisionAction is the caller's verdict for one staged conflict.
type DecisionAction string

const (
	ActionApply   DecisionAction = "apply"
	ActionDiscard DecisionAction = "discard"
)

// DuplicateDecision is one entry of a conflict resolution request.
type DuplicateDecision struct {
	RowNumber        int               `json:"rowNumber"`
	Action           DecisionAction    `json:"action"`
	CSVData          map[string]string `json:"csvData"`
	ExistingRecordID string            `json:"existingRecordId,omitempty"`
}

// ImportReport aggregates the outcome of one import or resolution batch.
type ImportReport struct {
	Total      int             `json:"total"`
	Imported   int             `json:"imported"`
	Updated    int             `json:"updated"`
	Skipped    int             `json:"skipped"`
	Errors     []RowError      `json:"errors"`
	Duplicates []ConflictEntry `json:"duplicates,omitempty"`
}
