package settings

import (
	"context"
	"errors"

	"canteen-be/internal/logger"

	"go.uber.org/zap"
)

var (
	ErrInvalidTheme          = errors.New("theme must be light or dark")
	ErrInvalidItemsPerPage   = errors.New("itemsPerPage must be between 1 and 100")
	ErrInvalidSessionTimeout = errors.New("sessionTimeoutMinutes must be at least 1")
)

type Service interface {
	Get(ctx context.Context) (Settings, error)
	Update(ctx context.Context, s Settings) (Settings, error)
	Reset(ctx context.Context) (Settings, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context) (Settings, error) {
	stored, err := s.repo.Get(ctx)
	if err != nil {
		return Settings{}, err
	}
	if stored == nil {
		return Defaults(), nil
	}
	return *stored, nil
}

func validateSettings(s Settings) error {
	if s.Theme != "light" && s.Theme != "dark" {
		return ErrInvalidTheme
	}
	if s.ItemsPerPage < 1 || s.ItemsPerPage > 100 {
		return ErrInvalidItemsPerPage
	}
	if s.SessionTimeoutMinutes < 1 {
		return ErrInvalidSessionTimeout
	}
	return nil
}

// Update replaces the stored record wholesale. It is not a merge.
func (s *service) Update(ctx context.Context, next Settings) (Settings, error) {
	log := logger.FromCtx(ctx)

	if err := validateSettings(next); err != nil {
		return Settings{}, err
	}

	if err := s.repo.Upsert(ctx, next); err != nil {
		return Settings{}, err
	}

	log.Info("settings updated", zap.String("theme", next.Theme))
	return next, nil
}

func (s *service) Reset(ctx context.Context) (Settings, error) {
	defaults := Defaults()
	if err := s.repo.Upsert(ctx, defaults); err != nil {
		return Settings{}, err
	}

	logger.FromCtx(ctx).Info("settings reset to defaults")
	return defaults, nil
}
