package report

import (
	"context"
	"errors"
	"time"
)

var ErrBadDateRange = errors.New("invalid date range")

const dateOnly = "2006-01-02"

type Service interface {
	CompletedItems(ctx context.Context, dateFrom, dateTo string) (*CompletedItemsReport, error)
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// parseBound accepts RFC3339 timestamps or bare calendar dates. A bare date
// used as the upper bound is widened to the end of that day so the whole day
// is included.
func parseBound(s string, endOfDay bool) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}

	t, err := time.Parse(dateOnly, s)
	if err != nil {
		return nil, ErrBadDateRange
	}

	if endOfDay {
		t = t.Add(24*time.Hour - time.Millisecond)
	}
	return &t, nil
}

func (s *service) CompletedItems(ctx context.Context, dateFrom, dateTo string) (*CompletedItemsReport, error) {
	from, err := parseBound(dateFrom, false)
	if err != nil {
		return nil, err
	}

	to, err := parseBound(dateTo, true)
	if err != nil {
		return nil, err
	}

	if from != nil && to != nil && from.After(*to) {
		return nil, ErrBadDateRange
	}

	return s.repo.AggregateCompletedItems(ctx, from, to)
}

func (s *service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	return s.repo.Dashboard(ctx)
}
