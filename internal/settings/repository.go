package settings

import (
	"context"
	"database/sql"
	"errors"

	"canteen-be/internal/logger"

	"go.uber.org/zap"
)

// The record lives in a single fixed row; the table never holds more.
const singletonID = 1

type Repository interface {
	Get(ctx context.Context) (*Settings, error)
	Upsert(ctx context.Context, s Settings) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Get returns (nil, nil) when nothing has been persisted yet; the service
// falls back to the defaults.
func (r *repository) Get(ctx context.Context) (*Settings, error) {
	var s Settings
	err := r.db.QueryRowContext(ctx, `
		SELECT theme, items_per_page, notify_new_order, notify_daily_report,
		       session_timeout_minutes, currency_symbol
		FROM app_settings WHERE id = $1
	`, singletonID).Scan(&s.Theme, &s.ItemsPerPage, &s.NotifyNewOrder,
		&s.NotifyDailyReport, &s.SessionTimeoutMinutes, &s.CurrencySymbol)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) Upsert(ctx context.Context, s Settings) error {
	log := logger.FromCtx(ctx)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO app_settings (
			id, theme, items_per_page, notify_new_order, notify_daily_report,
			session_timeout_minutes, currency_symbol
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			theme = EXCLUDED.theme,
			items_per_page = EXCLUDED.items_per_page,
			notify_new_order = EXCLUDED.notify_new_order,
			notify_daily_report = EXCLUDED.notify_daily_report,
			session_timeout_minutes = EXCLUDED.session_timeout_minutes,
			currency_symbol = EXCLUDED.currency_symbol,
			updated_at = NOW()
	`, singletonID, s.Theme, s.ItemsPerPage, s.NotifyNewOrder,
		s.NotifyDailyReport, s.SessionTimeoutMinutes, s.CurrencySymbol)

	if err != nil {
		log.Error("db: failed to upsert settings", zap.Error(err))
	}
	return err
}
