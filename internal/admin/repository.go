package admin

import (
	"context"
	"database/sql"
	"errors"

	"canteen-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, username, passwordHash string) (*Admin, error)
	FindByUsername(ctx context.Context, username string) (*Admin, error)
	FindByID(ctx context.Context, id int64) (*Admin, error)
	Update(ctx context.Context, a *Admin) (*Admin, error)
	UsernameTaken(ctx context.Context, username string, excludeID int64) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// isUniqueViolation reports whether err is the store rejecting a duplicate
// username. The store's constraint is the authoritative signal; the service
// pre-check is only a fast path.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (r *repository) Create(ctx context.Context, username, passwordHash string) (*Admin, error) {
	log := logger.FromCtx(ctx)

	var a Admin
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO admins (username, password_hash)
		 VALUES ($1, $2)
		 RETURNING id, username, password_hash, email, created_at, updated_at`,
		username, passwordHash,
	).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Email, &a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		log.Error("db: failed to insert admin",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, err
	}

	return &a, nil
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*Admin, error) {
	var a Admin
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, email, created_at, updated_at
		 FROM admins WHERE username = $1`,
		username,
	).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Email, &a.CreatedAt, &a.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}

	return &a, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Admin, error) {
	var a Admin
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, email, created_at, updated_at
		 FROM admins WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Email, &a.CreatedAt, &a.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}

	return &a, nil
}

func (r *repository) Update(ctx context.Context, a *Admin) (*Admin, error) {
	log := logger.FromCtx(ctx)

	var updated Admin
	err := r.db.QueryRowContext(ctx,
		`UPDATE admins
		 SET username = $1, email = $2, password_hash = $3, updated_at = NOW()
		 WHERE id = $4
		 RETURNING id, username, password_hash, email, created_at, updated_at`,
		a.Username, a.Email, a.PasswordHash, a.ID,
	).Scan(&updated.ID, &updated.Username, &updated.PasswordHash, &updated.Email,
		&updated.CreatedAt, &updated.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		log.Error("db: failed to update admin",
			zap.Int64("admin_id", a.ID),
			zap.Error(err),
		)
		return nil, err
	}

	return &updated, nil
}

func (r *repository) UsernameTaken(ctx context.Context, username string, excludeID int64) (bool, error) {
	var taken bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM admins WHERE username = $1 AND id <> $2)`,
		username, excludeID,
	).Scan(&taken)
	return taken, err
}
