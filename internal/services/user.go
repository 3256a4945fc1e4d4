package services

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/avoskresensky/user-admin-service/internal/logger"
	"github.com/avoskresensky/user-admin-service/internal/models"
)

// Error variables
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// UserReader defines read-only storage operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	List(ctx context.Context, filter models.UserFilter) ([]models.UserDB, int64, error)
	ListAll(ctx context.Context, filter models.UserFilter) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Insert(ctx context.Context, in models.UserInput) (*models.UserDB, error)
	UpdateByID(ctx context.Context, id uuid.UUID, in models.UserInput) (int64, error)
	SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) (int64, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteManyByID(ctx context.Context, ids []uuid.UUID) (int64, error)
}

// UserCache caches single user records.
type UserCache interface {
	Get(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	Set(ctx context.Context, user *models.UserDB) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// exportHeaders is the CSV column set written by Export. It is exactly the
// header set the import pipeline requires, so an exported file re-imports.
var exportHeaders = []string{"Name", "Email", "IPAddress", "Location", "Active", "LastLogin"}

// UserService implements the CRUD, block and export operations.
type UserService struct {
	reader      UserReader
	writer      UserWriter
	cache       UserCache
	kafkaWriter KafkaWriter
}

// NewUserService creates a new UserService. cache and kafkaWriter may be
// nil; both are optional collaborators.
func NewUserService(reader UserReader, writer UserWriter, cache UserCache, kafkaWriter KafkaWriter) *UserService {
	return &UserService{
		reader:      reader,
		writer:      writer,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// List returns one page of users with paging metadata.
func (svc *UserService) List(ctx context.Context, filter models.UserFilter) ([]models.UserDB, models.Pagination, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}

	users, total, err := svc.reader.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, models.Pagination{}, err
	}

	pages := total / int64(filter.Limit)
	if total%int64(filter.Limit) != 0 {
		pages++
	}

	return users, models.Pagination{
		Page:  filter.Page,
		Limit: filter.Limit,
		Total: total,
		Pages: pages,
	}, nil
}

// Get returns one user, served from the Redis cache when possible.
func (svc *UserService) Get(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	if svc.cache != nil {
		if cached, err := svc.cache.Get(ctx, id); err == nil && cached != nil {
			return cached, nil
		}
	}

	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "id", id, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, user); err != nil {
			logger.Log.Warnw("failed to cache user", "id", id, "error", err)
		}
	}
	return user, nil
}

// Create inserts a new user after checking email uniqueness. A concurrent
// insert of the same email can still slip through the check; the unique
// index surfaces it as a storage error.
func (svc *UserService) Create(ctx context.Context, in models.UserInput) (*models.UserDB, error) {
	existing, err := svc.reader.GetByEmail(ctx, *in.Email)
	if err != nil {
		logger.Log.Errorw("failed to check email uniqueness", "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	user, err := svc.writer.Insert(ctx, in)
	if err != nil {
		logger.Log.Errorw("failed to insert user", "error", err)
		return nil, err
	}

	svc.publishUserEvent(ctx, "user.created", user)
	return user, nil
}

// Update patches an existing user. An email change re-checks uniqueness.
func (svc *UserService) Update(ctx context.Context, id uuid.UUID, in models.UserInput) (*models.UserDB, error) {
	existing, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user for update", "id", id, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrUserNotFound
	}

	if in.Email != nil && *in.Email != existing.Email {
		other, err := svc.reader.GetByEmail(ctx, *in.Email)
		if err != nil {
			logger.Log.Errorw("failed to check email uniqueness", "error", err)
			return nil, err
		}
		if other != nil {
			return nil, ErrEmailAlreadyExists
		}
	}

	if _, err := svc.writer.UpdateByID(ctx, id, in); err != nil {
		logger.Log.Errorw("failed to update user", "id", id, "error", err)
		return nil, err
	}
	svc.invalidate(ctx, id)

	updated, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}

	svc.publishUserEvent(ctx, "user.updated", updated)
	return updated, nil
}

// SetBlocked flips the administrative blocked flag.
func (svc *UserService) SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) (*models.UserDB, error) {
	matched, err := svc.writer.SetBlocked(ctx, id, blocked)
	if err != nil {
		logger.Log.Errorw("failed to set blocked flag", "id", id, "error", err)
		return nil, err
	}
	if matched == 0 {
		return nil, ErrUserNotFound
	}
	svc.invalidate(ctx, id)

	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	eventType := "user.unblocked"
	if blocked {
		eventType = "user.blocked"
	}
	svc.publishUserEvent(ctx, eventType, user)
	return user, nil
}

// Delete removes one user.
func (svc *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := svc.writer.DeleteByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "id", id, "error", err)
		return err
	}
	if deleted == 0 {
		return ErrUserNotFound
	}
	svc.invalidate(ctx, id)

	publishEvent(ctx, svc.kafkaWriter, id.String(), models.UserEvent{
		EventID:   uuid.NewString(),
		Type:      "user.deleted",
		UserID:    id.String(),
		Timestamp: time.Now().Unix(),
	})
	return nil
}

// BulkDelete removes a batch of users. Malformed ids are reported back,
// not fatal; well-formed ids are deleted in one statement.
func (svc *UserService) BulkDelete(ctx context.Context, rawIDs []string) (deleted int64, invalid []string, err error) {
	ids := make([]uuid.UUID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			invalid = append(invalid, raw)
			continue
		}
		ids = append(ids, id)
	}

	deleted, err = svc.writer.DeleteManyByID(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to bulk delete users", "count", len(ids), "error", err)
		return 0, invalid, err
	}

	for _, id := range ids {
		svc.invalidate(ctx, id)
		publishEvent(ctx, svc.kafkaWriter, id.String(), models.UserEvent{
			EventID:   uuid.NewString(),
			Type:      "user.deleted",
			UserID:    id.String(),
			Timestamp: time.Now().Unix(),
		})
	}
	return deleted, invalid, nil
}

// Export writes all users matching the filter as CSV. The header row is
// the import pipeline's required set, so the output round-trips.
func (svc *UserService) Export(ctx context.Context, filter models.UserFilter, w io.Writer) error {
	users, err := svc.reader.ListAll(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to load users for export", "error", err)
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeaders); err != nil {
		return err
	}

	for _, u := range users {
		record := []string{
			u.Name,
			u.Email,
			derefString(u.IPAddress),
			derefString(u.Location),
			boolString(u.Active),
			formatLastLogin(u.LastLogin),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func (svc *UserService) publishUserEvent(ctx context.Context, eventType string, user *models.UserDB) {
	publishEvent(ctx, svc.kafkaWriter, user.UserID.String(), models.UserEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		UserID:    user.UserID.String(),
		Email:     user.Email,
		Timestamp: time.Now().Unix(),
	})
}

func (svc *UserService) invalidate(ctx context.Context, id uuid.UUID) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.Delete(ctx, id); err != nil {
		logger.Log.Warnw("failed to invalidate cached user", "id", id, "error", err)
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func formatLastLogin(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
