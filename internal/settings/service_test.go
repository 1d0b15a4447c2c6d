package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Get(ctx context.Context) (*Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Settings), args.Error(1)
}

func (m *MockRepository) Upsert(ctx context.Context, s Settings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("FallsBackToDefaults", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Get", ctx).Return(nil, nil)

		s, err := svc.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, Defaults(), s)
	})

	t.Run("ReturnsStored", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		stored := Settings{Theme: "dark", ItemsPerPage: 10, SessionTimeoutMinutes: 15, CurrencySymbol: "$"}
		mockRepo.On("Get", ctx).Return(&stored, nil)

		s, err := svc.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, stored, s)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	valid := Settings{
		Theme:                 "dark",
		ItemsPerPage:          25,
		NotifyNewOrder:        true,
		SessionTimeoutMinutes: 45,
		CurrencySymbol:        "$",
	}

	t.Run("WholesaleReplace", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Upsert", ctx, valid).Return(nil)

		s, err := svc.Update(ctx, valid)
		require.NoError(t, err)
		assert.Equal(t, valid, s)
		mockRepo.AssertExpectations(t)
	})

	t.Run("BadTheme", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		bad := valid
		bad.Theme = "neon"
		_, err := svc.Update(ctx, bad)
		assert.ErrorIs(t, err, ErrInvalidTheme)
		mockRepo.AssertNotCalled(t, "Upsert")
	})

	t.Run("BadItemsPerPage", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		bad := valid
		bad.ItemsPerPage = 0
		_, err := svc.Update(ctx, bad)
		assert.ErrorIs(t, err, ErrInvalidItemsPerPage)
	})

	t.Run("BadSessionTimeout", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		bad := valid
		bad.SessionTimeoutMinutes = 0
		_, err := svc.Update(ctx, bad)
		assert.ErrorIs(t, err, ErrInvalidSessionTimeout)
	})
}

func TestService_Reset(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("Upsert", ctx, Defaults()).Return(nil)

	s, err := svc.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
	mockRepo.AssertExpectations(t)
}
