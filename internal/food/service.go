package food

import (
	"context"
	"math"
	"strings"

	"canteen-be/internal/logger"
	"canteen-be/internal/validate"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, input CreateInput) (*Item, error)
	Get(ctx context.Context, id int64) (*Item, error)
	List(ctx context.Context, onlyAvailable bool, category *Category) ([]*Item, error)
	Update(ctx context.Context, id int64, input UpdateInput) (*Item, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// normalizeCode maps an empty or whitespace code to nil so the store keeps
// NULL instead of "" and cleared codes never collide on the unique index.
func normalizeCode(code *string) *string {
	if code == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*code)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (s *service) Create(ctx context.Context, input CreateInput) (*Item, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateFoodItem"),
	)

	ok, errs := validate.CheckFoodItem(validate.FoodItemInput{
		Name:     input.Name,
		Price:    input.Price,
		Category: string(input.Category),
	})
	if !ok {
		return nil, validate.FieldErrors(errs)
	}

	input.Code = normalizeCode(input.Code)
	if input.Code != nil {
		inUse, err := s.repo.CodeInUse(ctx, *input.Code, 0)
		if err != nil {
			return nil, err
		}
		if inUse {
			return nil, ErrCodeTaken
		}
	}

	available := true
	if input.Available != nil {
		available = *input.Available
	}

	item := &Item{
		Name:        strings.TrimSpace(input.Name),
		Price:       input.Price,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
		Code:        input.Code,
		Available:   available,
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		log.Error("failed to create food item", zap.Error(err))
		return nil, err
	}

	log.Info("food item created", zap.Int64("item_id", created.ID))
	return created, nil
}

func (s *service) Get(ctx context.Context, id int64) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, onlyAvailable bool, category *Category) ([]*Item, error) {
	return s.repo.List(ctx, onlyAvailable, category)
}

func (s *service) Update(ctx context.Context, id int64, input UpdateInput) (*Item, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateFoodItem"),
		zap.Int64("item_id", id),
	)

	if !input.HasAnyField() {
		return nil, ErrNoFields
	}

	if input.Price != nil {
		p := *input.Price
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
			return nil, ErrInvalidPrice
		}
	}
	if input.Category != nil && !ValidCategory(*input.Category) {
		return nil, ErrInvalidCategory
	}

	// An empty code clears the field; only a real value needs the
	// uniqueness pre-check.
	if input.Code != nil && strings.TrimSpace(*input.Code) != "" {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		// Only re-check when the code actually changes, ignoring case.
		changed := current.Code == nil ||
			!strings.EqualFold(*current.Code, *input.Code)
		if changed {
			inUse, err := s.repo.CodeInUse(ctx, *input.Code, id)
			if err != nil {
				return nil, err
			}
			if inUse {
				return nil, ErrCodeTaken
			}
		}
	}

	updated, err := s.repo.Update(ctx, id, input)
	if err != nil {
		log.Error("failed to update food item", zap.Error(err))
		return nil, err
	}

	log.Info("food item updated")
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	log := logger.FromCtx(ctx)

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("failed to delete food item", zap.Int64("item_id", id), zap.Error(err))
		return err
	}

	log.Info("food item deleted", zap.Int64("item_id", id))
	return nil
}
