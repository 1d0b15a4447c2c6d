package order

import (
	"context"

	"canteen-be/internal/logger"
	"canteen-be/internal/metrics"
	"canteen-be/internal/validate"

	"go.uber.org/zap"
)

type Service interface {
	CreateOrder(ctx context.Context, input CreateInput) (*Order, error)
	GetOrder(ctx context.Context, id int64) (*Order, error)
	ListOrders(ctx context.Context, filter Filter) ([]*Order, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
	Archive(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
	PermanentlyDelete(ctx context.Context, id int64) error
	ReplaceItems(ctx context.Context, id int64, items []ItemInput) (*Order, error)
}

type service struct {
	repo Repository
	reg  *metrics.Registry
}

func NewService(repo Repository, reg *metrics.Registry) Service {
	return &service{repo: repo, reg: reg}
}

func toValidationInput(input CreateInput) validate.OrderInput {
	items := make([]validate.OrderItemInput, 0, len(input.Items))
	for _, it := range input.Items {
		items = append(items, validate.OrderItemInput{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return validate.OrderInput{
		Contact: input.Contact,
		Email:   input.Email,
		Address: input.Address,
		Items:   items,
	}
}

// buildItems computes each line total and the order total from the inputs.
func buildItems(inputs []ItemInput) ([]Item, float64) {
	items := make([]Item, 0, len(inputs))
	var total float64

	for _, in := range inputs {
		lineTotal := float64(in.Quantity) * in.UnitPrice
		items = append(items, Item{
			FoodItemID: in.FoodItemID,
			Name:       in.Name,
			Quantity:   in.Quantity,
			UnitPrice:  in.UnitPrice,
			LineTotal:  lineTotal,
		})
		total += lineTotal
	}

	return items, total
}

func (s *service) CreateOrder(ctx context.Context, input CreateInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOrder"),
	)

	ok, errs := validate.CheckOrderInput(toValidationInput(input))
	if !ok {
		log.Warn("order rejected by validation", zap.Strings("errors", errs))
		return nil, validate.FieldErrors(errs)
	}

	items, total := buildItems(input.Items)

	o := &Order{
		CustomerName: input.CustomerName,
		Contact:      input.Contact,
		Email:        input.Email,
		Address:      input.Address,
		Status:       StatusPending,
		Total:        total,
		Items:        items,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		log.Error("failed to create order", zap.Error(err))
		return nil, err
	}

	s.reg.OrdersCreated.Inc()

	log.Info("order placed",
		zap.Int64("order_id", o.ID),
		zap.Float64("total", o.Total),
	)

	return o, nil
}

func (s *service) GetOrder(ctx context.Context, id int64) (*Order, error) {
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListOrders(ctx context.Context, filter Filter) ([]*Order, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) UpdateStatus(ctx context.Context, id int64, status Status) error {
	if id <= 0 {
		return ErrInvalidOrderID
	}
	if !ValidStatus(status) {
		return ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *service) Archive(ctx context.Context, id int64) error {
	return s.repo.SetArchived(ctx, id, true)
}

func (s *service) Restore(ctx context.Context, id int64) error {
	return s.repo.SetArchived(ctx, id, false)
}

func (s *service) PermanentlyDelete(ctx context.Context, id int64) error {
	log := logger.FromCtx(ctx)

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("failed to permanently delete order",
			zap.Int64("order_id", id),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// ReplaceItems swaps the whole line-item set. An empty slice clears all items
// and zeroes the total; it is a bulk clear, not a partial edit.
func (s *service) ReplaceItems(ctx context.Context, id int64, inputs []ItemInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ReplaceOrderItems"),
		zap.Int64("order_id", id),
	)

	if len(inputs) > 0 {
		ok, errs := validate.CheckOrderInput(validate.OrderInput{
			Items: toValidationInput(CreateInput{Items: inputs}).Items,
		})
		if !ok {
			return nil, validate.FieldErrors(errs)
		}
	}

	items, total := buildItems(inputs)

	if err := s.repo.ReplaceItems(ctx, id, items, total); err != nil {
		log.Error("failed to replace order items", zap.Error(err))
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}
