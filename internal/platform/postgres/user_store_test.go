package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stevenarias/bankcore/internal/domain"
	"github.com/stevenarias/bankcore/internal/store"
)

func newUserStoreWithMock(t *testing.T) (*UserStore, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewUserStore(db, nil), mock, db
}

func testUser(t *testing.T) *domain.User {
	t.Helper()
	user, err := domain.NewUser("900123", "Steven Arias", "steven@example.com", "correct horse battery")
	require.NoError(t, err)
	user.HashedPassword = "$2a$10$examplehashexamplehashexampleha"
	user.Password = ""
	return user
}

func userColumns() []string {
	return []string{
		"id", "identification_number", "name", "email",
		"hashed_password", "created_at", "updated_at",
	}
}

func TestUserStoreCreate(t *testing.T) {
	s, mock, db := newUserStoreWithMock(t)
	defer func() { _ = db.Close() }()

	user := testUser(t)

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(
			user.ID, user.IdentificationNumber, user.Name, user.Email,
			user.HashedPassword, user.CreatedAt, user.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.Create(context.Background(), user)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserStoreCreateDuplicateEmail(t *testing.T) {
	s, mock, db := newUserStoreWithMock(t)
	defer func() { _ = db.Close() }()

	user := testUser(t)

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{
			Code:           pgUniqueViolationCode,
			ConstraintName: "users_email_key",
		})

	err := s.Create(context.Background(), user)
	assert.ErrorIs(t, err, store.ErrEmailExists)
}

func TestUserStoreGetByID(t *testing.T) {
	s, mock, db := newUserStoreWithMock(t)
	defer func() { _ = db.Close() }()

	id := uuid.New()
	now := time.Now().UTC()

	rows := sqlmock.NewRows(userColumns()).
		AddRow(id, "900123", "Steven Arias", "steven@example.com", "$2a$10$hash", now, now)

	mock.ExpectQuery(`SELECT .+ FROM users\s+WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(rows)

	user, err := s.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "steven@example.com", user.Email)
}

func TestUserStoreGetByIDNotFound(t *testing.T) {
	s, mock, db := newUserStoreWithMock(t)
	defer func() { _ = db.Close() }()

	id := uuid.New()
	mock.ExpectQuery(`SELECT .+ FROM users\s+WHERE id = \$1`).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
	assert.True(t, store.IsNotFoundError(err))
}

func TestUserStoreGetByEmailNotFound(t *testing.T) {
	s, mock, db := newUserStoreWithMock(t)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`SELECT .+ FROM users\s+WHERE email = \$1`).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserStoreExistsByEmail(t *testing.T) {
	s, mock, db := newUserStoreWithMock(t)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("steven@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := s.ExistsByEmail(context.Background(), "steven@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUserStoreList(t *testing.T) {
	s, mock, db := newUserStoreWithMock(t)
	defer func() { _ = db.Close() }()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(userColumns()).
		AddRow(uuid.New(), "1", "Ana", "ana@example.com", "$2a$10$h1", now, now).
		AddRow(uuid.New(), "2", "Bruno", "bruno@example.com", "$2a$10$h2", now, now)

	mock.ExpectQuery(`SELECT .+ FROM users\s+ORDER BY created_at`).
		WillReturnRows(rows)

	users, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "ana@example.com", users[0].Email)
}

func TestUserStoreUpdateNotFound(t *testing.T) {
	s, mock, db := newUserStoreWithMock(t)
	defer func() { _ = db.Close() }()

	user := testUser(t)

	mock.ExpectExec(`UPDATE users`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.Update(context.Background(), user)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserStoreDelete(t *testing.T) {
	s, mock, db := newUserStoreWithMock(t)
	defer func() { _ = db.Close() }()

	id := uuid.New()
	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, s.Delete(context.Background(), id))
}

func TestUserStoreDeleteNotFound(t *testing.T) {
	s, mock, db := newUserStoreWithMock(t)
	defer func() { _ = db.Close() }()

	id := uuid.New()
	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.Delete(context.Background(), id)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
