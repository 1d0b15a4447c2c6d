package food

import (
	"context"
	"math"
	"testing"

	"canteen-be/internal/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, onlyAvailable bool, category *Category) ([]*Item, error) {
	args := m.Called(ctx, onlyAvailable, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Item), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Item), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, item *Item) (*Item, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Item), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int64, input UpdateInput) (*Item, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Item), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) CodeInUse(ctx context.Context, code string, excludeID int64) (bool, error) {
	args := m.Called(ctx, code, excludeID)
	return args.Bool(0), args.Error(1)
}

func strPtr(s string) *string { return &s }

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		expected := &Item{ID: 1, Name: "Samosa", Price: 15, Category: CategorySnacks, Available: true}
		mockRepo.On("Create", ctx, mock.MatchedBy(func(it *Item) bool {
			return it.Name == "Samosa" && it.Available
		})).Return(expected, nil)

		it, err := svc.Create(ctx, CreateInput{Name: "Samosa", Price: 15, Category: CategorySnacks})
		assert.NoError(t, err)
		assert.Equal(t, expected, it)
	})

	t.Run("ValidationFailure", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.Create(ctx, CreateInput{Name: "", Price: -1, Category: "fusion"})

		var fieldErrs validate.FieldErrors
		assert.ErrorAs(t, err, &fieldErrs)
		assert.Len(t, fieldErrs, 3)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("CodeAlreadyUsed", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("CodeInUse", ctx, "VT01", int64(0)).Return(true, nil)

		_, err := svc.Create(ctx, CreateInput{
			Name: "Veg Thali", Price: 80, Category: CategoryMain, Code: strPtr("VT01"),
		})
		assert.ErrorIs(t, err, ErrCodeTaken)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("BlankCodeStoredAsNone", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		expected := &Item{ID: 2, Name: "Chai", Price: 10, Category: CategoryDrinks, Available: true}
		mockRepo.On("Create", ctx, mock.MatchedBy(func(it *Item) bool {
			return it.Code == nil
		})).Return(expected, nil)

		_, err := svc.Create(ctx, CreateInput{
			Name: "Chai", Price: 10, Category: CategoryDrinks, Code: strPtr("  "),
		})
		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "CodeInUse")
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("NonFinitePrice", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		bad := math.Inf(1)
		_, err := svc.Update(ctx, 1, UpdateInput{Price: &bad})
		assert.ErrorIs(t, err, ErrInvalidPrice)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("NegativePrice", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		bad := -5.0
		_, err := svc.Update(ctx, 1, UpdateInput{Price: &bad})
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("InvalidCategory", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		cat := Category("fusion")
		_, err := svc.Update(ctx, 1, UpdateInput{Category: &cat})
		assert.ErrorIs(t, err, ErrInvalidCategory)
	})

	t.Run("NoFields", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.Update(ctx, 1, UpdateInput{})
		assert.ErrorIs(t, err, ErrNoFields)
	})

	t.Run("CodeChangedToTakenCode", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetByID", ctx, int64(1)).
			Return(&Item{ID: 1, Name: "Veg Thali", Code: strPtr("VT01")}, nil)
		mockRepo.On("CodeInUse", ctx, "SM01", int64(1)).Return(true, nil)

		_, err := svc.Update(ctx, 1, UpdateInput{Code: strPtr("SM01")})
		assert.ErrorIs(t, err, ErrCodeTaken)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("SameCodeDifferentCaseSkipsCheck", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetByID", ctx, int64(1)).
			Return(&Item{ID: 1, Name: "Veg Thali", Code: strPtr("VT01")}, nil)
		updated := &Item{ID: 1, Name: "Veg Thali", Code: strPtr("vt01")}
		mockRepo.On("Update", ctx, int64(1), mock.Anything).Return(updated, nil)

		it, err := svc.Update(ctx, 1, UpdateInput{Code: strPtr("vt01")})
		assert.NoError(t, err)
		assert.Equal(t, updated, it)
		mockRepo.AssertNotCalled(t, "CodeInUse")
	})

	t.Run("ClearingCodeSkipsUniquenessCheck", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		cleared := &Item{ID: 1, Name: "Veg Thali", Price: 80, Category: CategoryMain}
		mockRepo.On("Update", ctx, int64(1), UpdateInput{Code: strPtr("")}).
			Return(cleared, nil)

		it, err := svc.Update(ctx, 1, UpdateInput{Code: strPtr("")})
		assert.NoError(t, err)
		assert.Nil(t, it.Code)
		mockRepo.AssertNotCalled(t, "GetByID")
		mockRepo.AssertNotCalled(t, "CodeInUse")
	})

	t.Run("LateConstraintViolationSurfacesAsCodeTaken", func(t *testing.T) {
		// Pre-check passes but the store rejects the write; the store wins.
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetByID", ctx, int64(1)).
			Return(&Item{ID: 1, Name: "Veg Thali"}, nil)
		mockRepo.On("CodeInUse", ctx, "SM01", int64(1)).Return(false, nil)
		mockRepo.On("Update", ctx, int64(1), mock.Anything).Return(nil, ErrCodeTaken)

		_, err := svc.Update(ctx, 1, UpdateInput{Code: strPtr("SM01")})
		assert.ErrorIs(t, err, ErrCodeTaken)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)

	mockRepo.On("Delete", ctx, int64(1)).Return(nil)
	assert.NoError(t, svc.Delete(ctx, 1))

	mockRepo.On("Delete", ctx, int64(9)).Return(ErrItemNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 9), ErrItemNotFound)
}
