package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/avoskresensky/user-admin-service/internal/logger"
	"github.com/avoskresensky/user-admin-service/internal/middlewares"
	"github.com/avoskresensky/user-admin-service/internal/models"
)

const userColumns = `user_id, name, email, ip_address, location, active, blocked, last_login, created_at, updated_at`

// sortColumns whitelists API sort keys against real column names.
var sortColumns = map[string]string{
	"name":      "name",
	"email":     "email",
	"location":  "location",
	"active":    "active",
	"blocked":   "blocked",
	"lastLogin": "last_login",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user with the given id, or nil when no such row exists.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE user_id = $1`, userColumns)

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)
	logQuery(query, []any{id}, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail returns the user with the given email, or nil when absent.
// Emails are stored trimmed and lower-cased; callers normalize before lookup.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)
	logQuery(query, []any{email}, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns one page of users matching the filter plus the total match count.
func (r *UserReadRepository) List(ctx context.Context, filter models.UserFilter) ([]models.UserDB, int64, error) {
	where, args := buildUserFilter(filter)

	sortBy, ok := sortColumns[filter.SortBy]
	if !ok {
		sortBy = "name"
	}
	order := "ASC"
	if strings.EqualFold(filter.SortOrder, "desc") {
		order = "DESC"
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 50
	}

	query := fmt.Sprintf(`SELECT %s FROM users%s ORDER BY %s %s LIMIT %d OFFSET %d`,
		userColumns, where, sortBy, order, limit, (page-1)*limit)

	users := []models.UserDB{}
	err := r.db.SelectContext(ctx, &users, query, args...)
	logQuery(query, args, err)
	if err != nil {
		return nil, 0, err
	}

	countQuery := `SELECT COUNT(*) FROM users` + where
	var total int64
	err = r.db.GetContext(ctx, &total, countQuery, args...)
	logQuery(countQuery, args, err)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// ListAll returns every user matching the filter in sort order, unpaged.
// Used by CSV export.
func (r *UserReadRepository) ListAll(ctx context.Context, filter models.UserFilter) ([]models.UserDB, error) {
	where, args := buildUserFilter(filter)

	sortBy, ok := sortColumns[filter.SortBy]
	if !ok {
		sortBy = "name"
	}
	order := "ASC"
	if strings.EqualFold(filter.SortOrder, "desc") {
		order = "DESC"
	}

	query := fmt.Sprintf(`SELECT %s FROM users%s ORDER BY %s %s`, userColumns, where, sortBy, order)

	users := []models.UserDB{}
	err := r.db.SelectContext(ctx, &users, query, args...)
	logQuery(query, args, err)
	if err != nil {
		return nil, err
	}
	return users, nil
}

// buildUserFilter renders the WHERE clause (with leading space) and its args.
func buildUserFilter(filter models.UserFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if filter.Active != nil {
		args = append(args, *filter.Active)
		conds = append(conds, fmt.Sprintf("active = $%d", len(args)))
	}
	if filter.Blocked != nil {
		args = append(args, *filter.Blocked)
		conds = append(conds, fmt.Sprintf("blocked = $%d", len(args)))
	}
	if filter.Location != "" {
		args = append(args, "%"+filter.Location+"%")
		conds = append(conds, fmt.Sprintf("location ILIKE $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Insert creates a user row and returns the stored record. The caller
// guarantees Name, Email, Active and Blocked are set (create-mode output
// of the validator).
func (r *UserWriteRepository) Insert(ctx context.Context, in models.UserInput) (*models.UserDB, error) {
	query := fmt.Sprintf(`
		INSERT INTO users (name, email, ip_address, location, active, blocked, last_login, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s`, userColumns)

	args := []any{in.Name, in.Email, in.IPAddress, in.Location, in.Active, in.Blocked, in.LastLogin}

	var user models.UserDB
	err := sqlx.GetContext(ctx, middlewares.Executor(ctx, r.db), &user, query, args...)
	logQuery(query, args, err)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateByID patches the non-nil fields of in onto the given row and bumps
// updated_at. Returns the number of matched rows (0 when the id is unknown).
// Blocked is only written when the patch explicitly carries it; no CSV
// import path ever sets it.
func (r *UserWriteRepository) UpdateByID(ctx context.Context, id uuid.UUID, in models.UserInput) (int64, error) {
	sets := []string{}
	args := []any{}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if in.Name != nil {
		add("name", *in.Name)
	}
	if in.Email != nil {
		add("email", *in.Email)
	}
	if in.IPAddress != nil {
		add("ip_address", *in.IPAddress)
	}
	if in.Location != nil {
		add("location", *in.Location)
	}
	if in.Active != nil {
		add("active", *in.Active)
	}
	if in.Blocked != nil {
		add("blocked", *in.Blocked)
	}
	if in.LastLogin != nil {
		add("last_login", *in.LastLogin)
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE users SET %s WHERE user_id = $%d`, strings.Join(sets, ", "), len(args))

	res, err := middlewares.Executor(ctx, r.db).ExecContext(ctx, query, args...)
	var matched int64
	if res != nil {
		matched, _ = res.RowsAffected()
	}
	logQuery(query, args, err)
	if err != nil {
		return 0, err
	}
	return matched, nil
}

// SetBlocked flips the blocked flag. This is the only write path for it.
func (r *UserWriteRepository) SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) (int64, error) {
	query := `UPDATE users SET blocked = $1, updated_at = NOW() WHERE user_id = $2`
	args := []any{blocked, id}

	res, err := middlewares.Executor(ctx, r.db).ExecContext(ctx, query, args...)
	var matched int64
	if res != nil {
		matched, _ = res.RowsAffected()
	}
	logQuery(query, args, err)
	if err != nil {
		return 0, err
	}
	return matched, nil
}

// DeleteByID removes one user. Returns the number of deleted rows.
func (r *UserWriteRepository) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	query := `DELETE FROM users WHERE user_id = $1`
	args := []any{id}

	res, err := middlewares.Executor(ctx, r.db).ExecContext(ctx, query, args...)
	var deleted int64
	if res != nil {
		deleted, _ = res.RowsAffected()
	}
	logQuery(query, args, err)
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// DeleteManyByID removes a batch of users. Runs on the request transaction
// when TxMiddleware is active, so the batch is all-or-nothing.
func (r *UserWriteRepository) DeleteManyByID(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := sqlx.In(`DELETE FROM users WHERE user_id IN (?)`, ids)
	if err != nil {
		return 0, err
	}

	ex := middlewares.Executor(ctx, r.db)
	query = ex.Rebind(query)

	res, err := ex.ExecContext(ctx, query, args...)
	var deleted int64
	if res != nil {
		deleted, _ = res.RowsAffected()
	}
	logQuery(query, args, err)
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// logQuery logs a statement with its whitespace collapsed to one line.
func logQuery(query string, args []any, err error) {
	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)
}
