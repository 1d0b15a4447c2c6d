package food

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"canteen-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, onlyAvailable bool, category *Category) ([]*Item, error)
	GetByID(ctx context.Context, id int64) (*Item, error)
	Create(ctx context.Context, item *Item) (*Item, error)
	Update(ctx context.Context, id int64, input UpdateInput) (*Item, error)
	Delete(ctx context.Context, id int64) error
	CodeInUse(ctx context.Context, code string, excludeID int64) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

const itemColumns = `id, name, price, description, image_url, category, code, available, created_at, updated_at`

func scanItem(row interface{ Scan(...any) error }) (*Item, error) {
	var it Item
	err := row.Scan(&it.ID, &it.Name, &it.Price, &it.Description, &it.ImageURL,
		&it.Category, &it.Code, &it.Available, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *repository) List(ctx context.Context, onlyAvailable bool, category *Category) ([]*Item, error) {
	log := logger.FromCtx(ctx)

	query := `SELECT ` + itemColumns + ` FROM food_items`

	where := []string{}
	args := []interface{}{}

	if onlyAvailable {
		where = append(where, "available = TRUE")
	}
	if category != nil && *category != "" {
		where = append(where, fmt.Sprintf("category = $%d", len(args)+1))
		args = append(args, *category)
	}

	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY name ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("db: failed to list food items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			log.Error("db: failed to scan food item row", zap.Error(err))
			return nil, err
		}
		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Item, error) {
	it, err := scanItem(r.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM food_items WHERE id = $1`, id))

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}

	return it, nil
}

func (r *repository) Create(ctx context.Context, item *Item) (*Item, error) {
	log := logger.FromCtx(ctx)

	created, err := scanItem(r.db.QueryRowContext(ctx,
		`INSERT INTO food_items (name, price, description, image_url, category, code, available)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+itemColumns,
		item.Name, item.Price, item.Description, item.ImageURL,
		item.Category, item.Code, item.Available,
	))

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrCodeTaken
		}
		log.Error("db: failed to insert food item",
			zap.String("name", item.Name),
			zap.Error(err),
		)
		return nil, err
	}

	return created, nil
}

func (r *repository) Update(ctx context.Context, id int64, input UpdateInput) (*Item, error) {
	log := logger.FromCtx(ctx)

	set := []string{}
	args := []interface{}{}

	if input.Name != nil {
		set = append(set, fmt.Sprintf("name = $%d", len(args)+1))
		args = append(args, *input.Name)
	}
	if input.Price != nil {
		set = append(set, fmt.Sprintf("price = $%d", len(args)+1))
		args = append(args, *input.Price)
	}
	if input.Description != nil {
		set = append(set, fmt.Sprintf("description = $%d", len(args)+1))
		args = append(args, *input.Description)
	}
	if input.ImageURL != nil {
		set = append(set, fmt.Sprintf("image_url = $%d", len(args)+1))
		args = append(args, *input.ImageURL)
	}
	if input.Category != nil {
		set = append(set, fmt.Sprintf("category = $%d", len(args)+1))
		args = append(args, *input.Category)
	}
	if input.Code != nil {
		set = append(set, fmt.Sprintf("code = $%d", len(args)+1))
		// A cleared code is stored as NULL, never "".
		if trimmed := strings.TrimSpace(*input.Code); trimmed == "" {
			args = append(args, nil)
		} else {
			args = append(args, trimmed)
		}
	}
	if input.Available != nil {
		set = append(set, fmt.Sprintf("available = $%d", len(args)+1))
		args = append(args, *input.Available)
	}

	if len(set) == 0 {
		return nil, ErrNoFields
	}

	set = append(set, "updated_at = NOW()")

	query := "UPDATE food_items SET " + strings.Join(set, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING ", len(args)+1) + itemColumns
	args = append(args, id)

	updated, err := scanItem(r.db.QueryRowContext(ctx, query, args...))

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrCodeTaken
		}
		log.Error("db: failed to update food item",
			zap.Int64("item_id", id),
			zap.Error(err),
		)
		return nil, err
	}

	return updated, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM food_items WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// CodeInUse is the fast-path check; the unique index on lower(code) remains
// the authoritative enforcement.
func (r *repository) CodeInUse(ctx context.Context, code string, excludeID int64) (bool, error) {
	var inUse bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM food_items
			WHERE code IS NOT NULL AND LOWER(code) = LOWER($1) AND id <> $2
		)`,
		code, excludeID,
	).Scan(&inUse)
	return inUse, err
}
