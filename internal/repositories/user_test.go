package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/avoskresensky/user-admin-service/internal/logger"
	"github.com/avoskresensky/user-admin-service/internal/models"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	logger.Initialize("debug")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, err := container.Host(ctx)
	assert.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	assert.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())
	db, err := sqlx.Connect("pgx", dsn)
	assert.NoError(t, err)

	migrations := []string{
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
		`CREATE TABLE IF NOT EXISTS users (
			user_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			name VARCHAR(100) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			ip_address VARCHAR(45),
			location VARCHAR(100),
			active BOOLEAN NOT NULL DEFAULT TRUE,
			blocked BOOLEAN NOT NULL DEFAULT FALSE,
			last_login TIMESTAMP,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
	}

	for _, m := range migrations {
		_, err = db.Exec(m)
		assert.NoError(t, err)
	}

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

// --- Helper ---
func insertTestUser(t *testing.T, w *UserWriteRepository, name, email string, active bool, location string) *models.UserDB {
	t.Helper()

	blocked := false
	in := models.UserInput{
		Name:    &name,
		Email:   &email,
		Active:  &active,
		Blocked: &blocked,
	}
	if location != "" {
		in.Location = &location
	}

	user, err := w.Insert(context.Background(), in)
	assert.NoError(t, err)
	assert.NotNil(t, user)
	return user
}

func TestUserRepository_InsertAndGet(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	r := NewUserReadRepository(db)
	w := NewUserWriteRepository(db)

	created := insertTestUser(t, w, "John", "john@example.com", true, "Berlin")
	assert.NotEqual(t, uuid.Nil, created.UserID)
	assert.False(t, created.Blocked)

	byID, err := r.GetByID(ctx, created.UserID)
	assert.NoError(t, err)
	assert.Equal(t, "john@example.com", byID.Email)

	byEmail, err := r.GetByEmail(ctx, "john@example.com")
	assert.NoError(t, err)
	assert.Equal(t, created.UserID, byEmail.UserID)

	// Absent rows come back as nil, not as an error.
	missing, err := r.GetByID(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_Insert_DuplicateEmail(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	w := NewUserWriteRepository(db)

	insertTestUser(t, w, "John", "john@example.com", true, "")

	name, email := "Clone", "john@example.com"
	active, blocked := true, false
	_, err := w.Insert(context.Background(), models.UserInput{
		Name: &name, Email: &email, Active: &active, Blocked: &blocked,
	})
	assert.Error(t, err)
}

func TestUserRepository_ListFilterSortPage(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	r := NewUserReadRepository(db)
	w := NewUserWriteRepository(db)

	insertTestUser(t, w, "Alice", "alice@example.com", true, "Berlin")
	insertTestUser(t, w, "Bob", "bob@example.com", false, "Hamburg")
	insertTestUser(t, w, "Carol", "carol@example.com", true, "berlin-mitte")

	active := true
	users, total, err := r.List(ctx, models.UserFilter{Active: &active, SortBy: "name", SortOrder: "desc"})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	if assert.Len(t, users, 2) {
		assert.Equal(t, "Carol", users[0].Name)
		assert.Equal(t, "Alice", users[1].Name)
	}

	// Location matching is case-insensitive substring.
	users, total, err = r.List(ctx, models.UserFilter{Location: "BERLIN"})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)

	// Paging: one row per page, three pages total.
	users, total, err = r.List(ctx, models.UserFilter{Page: 2, Limit: 1})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	if assert.Len(t, users, 1) {
		assert.Equal(t, "Bob", users[0].Name)
	}

	all, err := r.ListAll(ctx, models.UserFilter{})
	assert.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUserRepository_UpdateByID(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	r := NewUserReadRepository(db)
	w := NewUserWriteRepository(db)

	created := insertTestUser(t, w, "John", "john@example.com", true, "Berlin")

	_, err := w.SetBlocked(ctx, created.UserID, true)
	assert.NoError(t, err)

	// A patch without blocked must leave the flag alone.
	name := "Johnny"
	matched, err := w.UpdateByID(ctx, created.UserID, models.UserInput{Name: &name})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	updated, err := r.GetByID(ctx, created.UserID)
	assert.NoError(t, err)
	assert.Equal(t, "Johnny", updated.Name)
	assert.Equal(t, "Berlin", *updated.Location)
	assert.True(t, updated.Blocked)

	matched, err = w.UpdateByID(ctx, uuid.New(), models.UserInput{Name: &name})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), matched)
}

func TestUserRepository_SetBlocked(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	r := NewUserReadRepository(db)
	w := NewUserWriteRepository(db)

	created := insertTestUser(t, w, "John", "john@example.com", true, "")

	matched, err := w.SetBlocked(ctx, created.UserID, true)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	blocked, err := r.GetByID(ctx, created.UserID)
	assert.NoError(t, err)
	assert.True(t, blocked.Blocked)

	matched, err = w.SetBlocked(ctx, uuid.New(), true)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), matched)
}

func TestUserRepository_Delete(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	r := NewUserReadRepository(db)
	w := NewUserWriteRepository(db)

	u1 := insertTestUser(t, w, "Alice", "alice@example.com", true, "")
	u2 := insertTestUser(t, w, "Bob", "bob@example.com", true, "")
	u3 := insertTestUser(t, w, "Carol", "carol@example.com", true, "")

	deleted, err := w.DeleteByID(ctx, u1.UserID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	gone, err := r.GetByID(ctx, u1.UserID)
	assert.NoError(t, err)
	assert.Nil(t, gone)

	deleted, err = w.DeleteManyByID(ctx, []uuid.UUID{u2.UserID, u3.UserID, uuid.New()})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	deleted, err = w.DeleteManyByID(ctx, nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}
