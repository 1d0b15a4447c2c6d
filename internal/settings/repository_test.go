package settings

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settingsRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"theme", "items_per_page", "notify_new_order", "notify_daily_report",
		"session_timeout_minutes", "currency_symbol",
	})
}

func TestRepository_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Stored", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM app_settings WHERE id`).
			WithArgs(1).
			WillReturnRows(settingsRows().AddRow("dark", 50, false, true, 30, "$"))

		s, err := repo.Get(ctx)
		require.NoError(t, err)
		require.NotNil(t, s)
		assert.Equal(t, "dark", s.Theme)
		assert.Equal(t, 50, s.ItemsPerPage)
	})

	t.Run("NothingPersistedYet", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM app_settings WHERE id`).
			WithArgs(1).
			WillReturnError(sql.ErrNoRows)

		s, err := repo.Get(ctx)
		assert.NoError(t, err)
		assert.Nil(t, s)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM app_settings`).
			WillReturnError(errors.New("db error"))

		_, err := repo.Get(ctx)
		assert.Error(t, err)
	})
}

func TestRepository_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	s := Defaults()
	mock.ExpectExec(`INSERT INTO app_settings`).
		WithArgs(1, s.Theme, s.ItemsPerPage, s.NotifyNewOrder,
			s.NotifyDailyReport, s.SessionTimeoutMinutes, s.CurrencySymbol).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Upsert(ctx, s))
	assert.NoError(t, mock.ExpectationsWereMet())
}
