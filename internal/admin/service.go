package admin

import (
	"context"
	"strings"

	"canteen-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, username, password string) (*Admin, error)
	Login(ctx context.Context, username, password string) (string, *Admin, error)
	GetProfile(ctx context.Context, id int64) (*Admin, error)
	UpdateProfile(ctx context.Context, id int64, input UpdateProfileInput) (*Admin, error)
}

type service struct {
	repo   Repository
	tokens *TokenManager
}

func NewService(repo Repository, tokens *TokenManager) Service {
	return &service{repo: repo, tokens: tokens}
}

func (s *service) Register(ctx context.Context, username, password string) (*Admin, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Register"),
	)

	username = strings.TrimSpace(username)
	if len(username) < 3 {
		return nil, ErrUsernameTooShort
	}
	if len(password) < 6 {
		return nil, ErrPasswordTooShort
	}

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	a, err := s.repo.Create(ctx, username, hashed)
	if err != nil {
		log.Error("failed to create admin", zap.String("username", username), zap.Error(err))
		return nil, err
	}

	log.Info("admin registered",
		zap.Int64("admin_id", a.ID),
		zap.String("username", username),
	)

	return a, nil
}

func (s *service) Login(ctx context.Context, username, password string) (string, *Admin, error) {
	log := logger.FromCtx(ctx)

	a, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		// Uniform failure: never reveal whether the username exists.
		log.Warn("login failed: username not found", zap.String("username", username))
		return "", nil, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, a.PasswordHash) {
		log.Warn("login failed: password mismatch", zap.String("username", username))
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(a.ID, a.Username)
	if err != nil {
		log.Error("failed to generate token", zap.Int64("admin_id", a.ID), zap.Error(err))
		return "", nil, err
	}

	return token, a, nil
}

func (s *service) GetProfile(ctx context.Context, id int64) (*Admin, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) UpdateProfile(ctx context.Context, id int64, input UpdateProfileInput) (*Admin, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateProfile"),
		zap.Int64("admin_id", id),
	)

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := *current

	if input.NewPassword != nil && *input.NewPassword != "" {
		if input.CurrentPassword == nil || *input.CurrentPassword == "" {
			return nil, ErrCurrentPasswordRequired
		}
		if !CheckPasswordHash(*input.CurrentPassword, current.PasswordHash) {
			log.Warn("profile update rejected: wrong current password")
			return nil, ErrInvalidCredentials
		}
		if len(*input.NewPassword) < 6 {
			return nil, ErrPasswordTooShort
		}

		hashed, err := HashPassword(*input.NewPassword)
		if err != nil {
			log.Error("failed to hash new password", zap.Error(err))
			return nil, err
		}
		next.PasswordHash = hashed
	}

	if input.Username != nil && *input.Username != current.Username {
		username := strings.TrimSpace(*input.Username)
		if len(username) < 3 {
			return nil, ErrUsernameTooShort
		}

		taken, err := s.repo.UsernameTaken(ctx, username, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrUsernameTaken
		}
		next.Username = username
	}

	if input.Email != nil {
		next.Email = input.Email
	}

	updated, err := s.repo.Update(ctx, &next)
	if err != nil {
		log.Error("failed to update profile", zap.Error(err))
		return nil, err
	}

	log.Info("profile updated")
	return updated, nil
}
