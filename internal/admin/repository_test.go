package admin

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "username", "password_hash", "email", "created_at", "updated_at"})
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO admins`).
			WithArgs("warden", "hashed").
			WillReturnRows(adminRows().AddRow(1, "warden", "hashed", nil, now, now))

		a, err := repo.Create(ctx, "warden", "hashed")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), a.ID)
		assert.Equal(t, "warden", a.Username)
		assert.Nil(t, a.Email)
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO admins`).
			WithArgs("warden", "hashed").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "admins_username_key"})

		_, err := repo.Create(ctx, "warden", "hashed")
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO admins`).
			WillReturnError(errors.New("db error"))

		_, err := repo.Create(ctx, "warden", "hashed")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrUsernameTaken)
	})
}

func TestRepository_FindByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM admins WHERE username`).
			WithArgs("warden").
			WillReturnRows(adminRows().AddRow(1, "warden", "hashed", "w@hostel.edu", now, now))

		a, err := repo.FindByUsername(ctx, "warden")
		assert.NoError(t, err)
		assert.Equal(t, "warden", a.Username)
		require.NotNil(t, a.Email)
		assert.Equal(t, "w@hostel.edu", *a.Email)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM admins WHERE username`).
			WithArgs("ghost").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindByUsername(ctx, "ghost")
		assert.ErrorIs(t, err, ErrAdminNotFound)
	})
}

func TestRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	now := time.Now()

	a := &Admin{ID: 1, Username: "warden2", PasswordHash: "hashed", Email: nil}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE admins`).
			WithArgs("warden2", nil, "hashed", int64(1)).
			WillReturnRows(adminRows().AddRow(1, "warden2", "hashed", nil, now, now))

		updated, err := repo.Update(ctx, a)
		assert.NoError(t, err)
		assert.Equal(t, "warden2", updated.Username)
	})

	t.Run("UsernameConflict", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE admins`).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "admins_username_key"})

		_, err := repo.Update(ctx, a)
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE admins`).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Update(ctx, a)
		assert.ErrorIs(t, err, ErrAdminNotFound)
	})
}

func TestRepository_UsernameTaken(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("warden", int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	taken, err := repo.UsernameTaken(ctx, "warden", 2)
	assert.NoError(t, err)
	assert.True(t, taken)
}
