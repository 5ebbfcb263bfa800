package service

import (
	"context"
	"errors"
	"testing"

	"catalog-api/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context, limit, skip int) ([]model.Product, error) {
	args := m.Called(ctx, limit, skip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id int) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product model.Product) (*model.Product, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestProductService_List(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	testProducts := []model.Product{
		{ID: 1, Title: "Widget", Description: "", Price: 9.99},
		{ID: 2, Title: "Gadget", Description: "A gadget", Price: 19.99},
	}

	tests := []struct {
		name          string
		limit         int
		skip          int
		expectedLimit int
		expectedSkip  int
		mockReturn    []model.Product
		mockError     error
		expectError   bool
	}{
		{
			name:          "Success with explicit window",
			limit:         10,
			skip:          0,
			expectedLimit: 10,
			expectedSkip:  0,
			mockReturn:    testProducts,
		},
		{
			name:          "Zero limit yields an empty page",
			limit:         0,
			skip:          0,
			expectedLimit: 0,
			expectedSkip:  0,
			mockReturn:    []model.Product{},
		},
		{
			name:          "Negative limit falls back to default",
			limit:         -5,
			skip:          0,
			expectedLimit: 10,
			expectedSkip:  0,
			mockReturn:    testProducts,
		},
		{
			name:          "Negative skip falls back to zero",
			limit:         10,
			skip:          -3,
			expectedLimit: 10,
			expectedSkip:  0,
			mockReturn:    testProducts,
		},
		{
			name:          "No upper bound on limit",
			limit:         100000,
			skip:          0,
			expectedLimit: 100000,
			expectedSkip:  0,
			mockReturn:    testProducts,
		},
		{
			name:          "Repository error",
			limit:         10,
			skip:          0,
			expectedLimit: 10,
			expectedSkip:  0,
			mockReturn:    nil,
			mockError:     errors.New("database error"),
			expectError:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			service := NewProductService(mockRepo, logger)

			mockRepo.On("List", ctx, tt.expectedLimit, tt.expectedSkip).
				Return(tt.mockReturn, tt.mockError)

			products, err := service.List(ctx, tt.limit, tt.skip)

			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, products)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn, products)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProductService_Get(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		expected := &model.Product{ID: 1, Title: "Widget", Price: 9.99}
		mockRepo.On("GetByID", ctx, 1).Return(expected, nil)

		product, err := service.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, expected, product)
	})

	t.Run("Not found", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		mockRepo.On("GetByID", ctx, 42).Return(nil, nil)

		product, err := service.Get(ctx, 42)
		assert.ErrorIs(t, err, model.ErrProductNotFound)
		assert.Nil(t, product)
	})

	t.Run("Repository error", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		mockRepo.On("GetByID", ctx, 1).Return(nil, errors.New("database error"))

		product, err := service.Get(ctx, 1)
		require.Error(t, err)
		assert.NotErrorIs(t, err, model.ErrProductNotFound)
		assert.Nil(t, product)
	})
}

func TestProductService_Create(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockProductRepository)
	service := NewProductService(mockRepo, logger)

	input := model.Product{Title: "Widget", Description: "", Price: 9.99}
	created := &model.Product{ID: 1, Title: "Widget", Description: "", Price: 9.99}
	mockRepo.On("Create", ctx, input).Return(created, nil)

	product, err := service.Create(ctx, "Widget", "", 9.99)
	require.NoError(t, err)
	assert.Equal(t, created, product)

	mockRepo.AssertExpectations(t)
}

func TestProductService_Update(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	existing := &model.Product{ID: 1, Title: "Widget", Description: "original", Price: 9.99}

	t.Run("Omitted description is preserved", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		updatedRow := &model.Product{ID: 1, Title: "Widget v2", Description: "original", Price: 12.50}
		mockRepo.On("GetByID", ctx, 1).Return(existing, nil)
		mockRepo.On("Update", ctx, model.Product{ID: 1, Title: "Widget v2", Description: "original", Price: 12.50}).
			Return(updatedRow, nil)

		product, err := service.Update(ctx, 1, "Widget v2", nil, 12.50)
		require.NoError(t, err)
		assert.Equal(t, "original", product.Description)

		mockRepo.AssertExpectations(t)
	})

	t.Run("Explicit empty description overwrites", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		empty := ""
		fresh := &model.Product{ID: 1, Title: "Widget", Description: "original", Price: 9.99}
		updatedRow := &model.Product{ID: 1, Title: "Widget", Description: "", Price: 9.99}
		mockRepo.On("GetByID", ctx, 1).Return(fresh, nil)
		mockRepo.On("Update", ctx, model.Product{ID: 1, Title: "Widget", Description: "", Price: 9.99}).
			Return(updatedRow, nil)

		product, err := service.Update(ctx, 1, "Widget", &empty, 9.99)
		require.NoError(t, err)
		assert.Equal(t, "", product.Description)

		mockRepo.AssertExpectations(t)
	})

	t.Run("Not found", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		mockRepo.On("GetByID", ctx, 42).Return(nil, nil)

		product, err := service.Update(ctx, 42, "Widget", nil, 9.99)
		assert.ErrorIs(t, err, model.ErrProductNotFound)
		assert.Nil(t, product)
	})
}

func TestProductService_Delete(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		mockRepo.On("Delete", ctx, 1).Return(true, nil)

		assert.NoError(t, service.Delete(ctx, 1))
	})

	t.Run("Not found", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		mockRepo.On("Delete", ctx, 42).Return(false, nil)

		assert.ErrorIs(t, service.Delete(ctx, 42), model.ErrProductNotFound)
	})

	t.Run("Repository error", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		mockRepo.On("Delete", ctx, 1).Return(false, errors.New("database error"))

		err := service.Delete(ctx, 1)
		require.Error(t, err)
		assert.NotErrorIs(t, err, model.ErrProductNotFound)
	})
}
