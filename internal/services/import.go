package services

import (
	"context"
	"database/sql/driver"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/avoskresensky/user-admin-service/internal/logger"
	"github.com/avoskresensky/user-admin-service/internal/models"
	"github.com/avoskresensky/user-admin-service/internal/validation"
)

// maxImportRows caps the number of data rows per upload.
const maxImportRows = 10000

// requiredHeaders is the exact header set an import file must carry.
// The check is case-sensitive, unlike email matching.
var requiredHeaders = []string{"Name", "Email", "IPAddress", "Location", "Active", "LastLogin"}

// headerToField maps CSV column names to validator payload keys.
var headerToField = map[string]string{
	"Name":      "name",
	"Email":     "email",
	"IPAddress": "ipAddress",
	"Location":  "location",
	"Active":    "active",
	"LastLogin": "lastLogin",
}

// Request-fatal import errors; handlers map these to 400 responses.
var (
	ErrInvalidCSV  = errors.New("Invalid CSV file")
	ErrEmptyCSV    = errors.New("CSV file is empty")
	ErrCSVTooLarge = errors.New("CSV file too large (max 10000 rows)")
)

// MissingHeadersError reports the required headers absent from the upload.
type MissingHeadersError struct {
	Missing []string
}

func (e *MissingHeadersError) Error() string {
	return "Missing required headers: " + strings.Join(e.Missing, ", ")
}

// ImportService runs the CSV import pipeline and the deferred conflict
// resolution over the same storage collaborators as UserService.
type ImportService struct {
	reader      UserReader
	writer      UserWriter
	cache       UserCache
	kafkaWriter KafkaWriter
}

// NewImportService creates a new ImportService. cache and kafkaWriter may
// be nil.
func NewImportService(reader UserReader, writer UserWriter, cache UserCache, kafkaWriter KafkaWriter) *ImportService {
	return &ImportService{
		reader:      reader,
		writer:      writer,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// Import decodes the uploaded CSV and processes it row by row, in order.
// Decode and header problems abort the whole request; row problems are
// recorded in the report and processing continues. Rows are committed one
// at a time: a batch aborted mid-way keeps what was already written.
func (svc *ImportService) Import(ctx context.Context, file io.Reader, strategy models.DuplicateStrategy) (*models.ImportReport, error) {
	if strategy == "" {
		strategy = models.StrategySkip
	}

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyCSV
	}

	header := records[0]
	rows := records[1:]
	if len(rows) == 0 {
		return nil, ErrEmptyCSV
	}
	if len(rows) > maxImportRows {
		return nil, ErrCSVTooLarge
	}

	// One header check for the whole file, case-sensitive.
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, name := range requiredHeaders {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingHeadersError{Missing: missing}
	}

	report := &models.ImportReport{
		Total:      len(rows),
		Errors:     []models.RowError{},
		Duplicates: []models.ConflictEntry{},
	}
	seen := make(map[string]struct{}, len(rows))

	for i, record := range rows {
		// +2: one for the header row, one for 1-based numbering.
		rowNum := i + 2
		row := rowValues(columns, record)

		if err := svc.processRow(ctx, rowNum, row, strategy, seen, report); err != nil {
			// Storage is gone; committed rows stay committed.
			return nil, err
		}
	}

	publishEvent(ctx, svc.kafkaWriter, "import", models.ImportCompletedEvent{
		EventID:   uuid.NewString(),
		Type:      "user.import.completed",
		Strategy:  string(strategy),
		Total:     report.Total,
		Imported:  report.Imported,
		Updated:   report.Updated,
		Skipped:   report.Skipped,
		Timestamp: time.Now().Unix(),
	})
	return report, nil
}

// processRow runs steps a-d of the pipeline for one row. A non-nil return
// aborts the batch; every other failure is recorded as a row-scoped error.
func (svc *ImportService) processRow(ctx context.Context, rowNum int, row map[string]string, strategy models.DuplicateStrategy, seen map[string]struct{}, report *models.ImportReport) error {
	email := NormalizeEmail(row["Email"])
	if email == "" {
		report.Errors = append(report.Errors, models.RowError{Row: rowNum, Field: "email", Message: "Email is required"})
		report.Skipped++
		return nil
	}

	// In-batch detection runs before validation and before any storage
	// lookup; a repeat within the file is an error under every strategy,
	// even when the first occurrence was rejected further down.
	if ClassifyInBatch(email, seen) == ClassificationInBatchDuplicate {
		report.Errors = append(report.Errors, models.RowError{Row: rowNum, Field: "email", Message: "Duplicate email in file"})
		report.Skipped++
		return nil
	}

	input, fieldErrs := validation.Validate(csvRowPayload(row), validation.ModeCSV)
	if len(fieldErrs) > 0 {
		for _, fe := range fieldErrs {
			report.Errors = append(report.Errors, models.RowError{Row: rowNum, Field: fe.Field, Message: fe.Message})
		}
		report.Skipped++
		return nil
	}

	class, existing, err := ClassifyRow(ctx, email, svc.reader)
	if err != nil {
		if isStorageFatal(ctx, err) {
			return err
		}
		svc.rowFailed(rowNum, err, report)
		return nil
	}

	switch class {
	case ClassificationNew:
		// A first-seen CSV row creates the record with blocked=false;
		// the CSV schema never reads blocked.
		blocked := false
		input.Blocked = &blocked
		if _, err := svc.writer.Insert(ctx, input); err != nil {
			if isStorageFatal(ctx, err) {
				return err
			}
			svc.rowFailed(rowNum, err, report)
			return nil
		}
		report.Imported++

	case ClassificationExistingConflict:
		if strategy == models.StrategyError {
			report.Duplicates = append(report.Duplicates, models.ConflictEntry{
				RowNumber: rowNum,
				CSVData:   row,
				Existing:  snapshotUser(existing),
			})
			report.Skipped++
			return nil
		}
		// Default strategy: apply the row as an update. input carries no
		// blocked value, so the stored flag survives.
		if _, err := svc.writer.UpdateByID(ctx, existing.UserID, input); err != nil {
			if isStorageFatal(ctx, err) {
				return err
			}
			svc.rowFailed(rowNum, err, report)
			return nil
		}
		svc.invalidate(ctx, existing.UserID)
		report.Updated++
	}
	return nil
}

// ProcessDuplicates applies the caller's decisions for previously staged
// conflicts. Each decision is independent; csvData is re-validated and
// never trusted from the prior import call.
func (svc *ImportService) ProcessDuplicates(ctx context.Context, decisions []models.DuplicateDecision) (*models.ImportReport, error) {
	report := &models.ImportReport{
		Total:  len(decisions),
		Errors: []models.RowError{},
	}

	for _, decision := range decisions {
		if err := svc.processDecision(ctx, decision, report); err != nil {
			return nil, err
		}
	}

	publishEvent(ctx, svc.kafkaWriter, "import", models.ImportCompletedEvent{
		EventID:   uuid.NewString(),
		Type:      "user.import.resolved",
		Total:     report.Total,
		Imported:  report.Imported,
		Updated:   report.Updated,
		Skipped:   report.Skipped,
		Timestamp: time.Now().Unix(),
	})
	return report, nil
}

func (svc *ImportService) processDecision(ctx context.Context, decision models.DuplicateDecision, report *models.ImportReport) error {
	rowNum := decision.RowNumber

	switch decision.Action {
	case models.ActionDiscard:
		report.Skipped++
		return nil

	case models.ActionApply:
		input, fieldErrs := validation.Validate(csvRowPayload(decision.CSVData), validation.ModeCSV)
		if len(fieldErrs) > 0 {
			for _, fe := range fieldErrs {
				report.Errors = append(report.Errors, models.RowError{Row: rowNum, Field: fe.Field, Message: fe.Message})
			}
			report.Skipped++
			return nil
		}

		// Prefer the record id the caller got with the conflict snapshot,
		// fall back to the (re-validated) email.
		if id, parseErr := uuid.Parse(decision.ExistingRecordID); parseErr == nil {
			matched, err := svc.writer.UpdateByID(ctx, id, input)
			if err != nil {
				if isStorageFatal(ctx, err) {
					return err
				}
				svc.rowFailed(rowNum, err, report)
				return nil
			}
			if matched > 0 {
				svc.invalidate(ctx, id)
				report.Updated++
				return nil
			}
		}

		existing, err := svc.reader.GetByEmail(ctx, *input.Email)
		if err != nil {
			if isStorageFatal(ctx, err) {
				return err
			}
			svc.rowFailed(rowNum, err, report)
			return nil
		}
		if existing == nil {
			report.Errors = append(report.Errors, models.RowError{Row: rowNum, Message: "Existing user not found"})
			report.Skipped++
			return nil
		}

		if _, err := svc.writer.UpdateByID(ctx, existing.UserID, input); err != nil {
			if isStorageFatal(ctx, err) {
				return err
			}
			svc.rowFailed(rowNum, err, report)
			return nil
		}
		svc.invalidate(ctx, existing.UserID)
		report.Updated++
		return nil

	default:
		report.Errors = append(report.Errors, models.RowError{Row: rowNum, Message: "Action must be apply or discard"})
		report.Skipped++
		return nil
	}
}

// rowFailed records a row-scoped failure without aborting the batch.
func (svc *ImportService) rowFailed(rowNum int, err error, report *models.ImportReport) {
	logger.Log.Errorw("import row failed", "row", rowNum, "error", err)

	message := "Unexpected error while processing row"
	if isUniqueViolation(err) {
		message = "Email already exists"
	}
	report.Errors = append(report.Errors, models.RowError{Row: rowNum, Message: message})
	report.Skipped++
}

func (svc *ImportService) invalidate(ctx context.Context, id uuid.UUID) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.Delete(ctx, id); err != nil {
		logger.Log.Warnw("failed to invalidate cached user", "id", id, "error", err)
	}
}

// rowValues projects one CSV record onto the required column set. Short
// records yield empty strings for the trailing columns.
func rowValues(columns map[string]int, record []string) map[string]string {
	row := make(map[string]string, len(requiredHeaders))
	for _, name := range requiredHeaders {
		idx := columns[name]
		if idx < len(record) {
			row[name] = record[idx]
		} else {
			row[name] = ""
		}
	}
	return row
}

// csvRowPayload converts a CSV row into the validator's payload shape.
func csvRowPayload(row map[string]string) map[string]any {
	payload := make(map[string]any, len(row))
	for header, value := range row {
		field, ok := headerToField[header]
		if !ok {
			continue
		}
		payload[field] = value
	}
	return payload
}

func snapshotUser(user *models.UserDB) models.ExistingUserSnapshot {
	return models.ExistingUserSnapshot{
		ID:       user.UserID,
		Name:     user.Name,
		Email:    user.Email,
		Location: user.Location,
		Active:   user.Active,
		Blocked:  user.Blocked,
	}
}

// isStorageFatal reports whether a storage failure should abort the whole
// batch instead of being recorded as a row error. Cancellation and a dead
// connection qualify; anything else is row-scoped.
func isStorageFatal(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return true
	}
	return errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// isUniqueViolation detects the Postgres unique constraint error raised
// when two concurrent imports race on the same email.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
