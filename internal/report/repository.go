package report

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"canteen-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	AggregateCompletedItems(ctx context.Context, from, to *time.Time) (*CompletedItemsReport, error)
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// AggregateCompletedItems runs both aggregation queries inside one read-only
// transaction so the groups and the order/customer counts come from a single
// consistent snapshot.
func (r *repository) AggregateCompletedItems(ctx context.Context, from, to *time.Time) (*CompletedItemsReport, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "AggregateCompletedItems"),
	)

	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		log.Error("failed to begin read transaction", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	where := `o.status = 'COMPLETED' AND o.archived = FALSE`
	args := []any{}
	argIndex := 1

	if from != nil {
		where += fmt.Sprintf(" AND o.created_at >= $%d", argIndex)
		args = append(args, *from)
		argIndex++
	}
	if to != nil {
		where += fmt.Sprintf(" AND o.created_at <= $%d", argIndex)
		args = append(args, *to)
		argIndex++
	}

	groupQuery := `
		SELECT oi.name, SUM(oi.quantity), SUM(oi.line_total), COUNT(*)
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE ` + where + `
		GROUP BY oi.name
		ORDER BY SUM(oi.line_total) DESC
	`

	rows, err := tx.QueryContext(ctx, groupQuery, args...)
	if err != nil {
		log.Error("failed to query item groups", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	report := &CompletedItemsReport{Items: []ItemSummary{}}

	for rows.Next() {
		var s ItemSummary
		if err := rows.Scan(&s.Name, &s.Quantity, &s.Revenue, &s.TimesOrdered); err != nil {
			log.Error("failed to scan item group row", zap.Error(err))
			return nil, err
		}
		report.Items = append(report.Items, s)
		report.GrandTotal += s.Revenue
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	summaryQuery := `
		SELECT COUNT(*),
		       COUNT(DISTINCT NULLIF(TRIM(o.customer_name), ''))
		FROM orders o
		WHERE ` + where

	if err := tx.QueryRowContext(ctx, summaryQuery, args...).
		Scan(&report.OrderCount, &report.UniqueCustomers); err != nil {
		log.Error("failed to query order summary", zap.Error(err))
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	log.Info("completed items aggregated",
		zap.Int("groups", len(report.Items)),
		zap.Int("orders", report.OrderCount),
	)

	return report, nil
}

func (r *repository) Dashboard(ctx context.Context) (*DashboardStats, error) {
	log := logger.FromCtx(ctx)

	stats := &DashboardStats{ActiveByStatus: []StatusCount{}}

	rows, err := r.db.QueryContext(ctx, `
		SELECT status, COUNT(*)
		FROM orders
		WHERE archived = FALSE
		GROUP BY status
		ORDER BY status ASC
	`)
	if err != nil {
		log.Error("failed to query status counts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var sc StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, err
		}
		stats.ActiveByStatus = append(stats.ActiveByStatus, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total), 0)
		FROM orders
		WHERE archived = FALSE AND created_at >= CURRENT_DATE
	`).Scan(&stats.OrdersToday, &stats.RevenueToday)
	if err != nil {
		log.Error("failed to query today stats", zap.Error(err))
		return nil, err
	}

	return stats, nil
}
