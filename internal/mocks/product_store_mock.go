package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/shop-api/internal/domain"
	"github.com/phrazzld/shop-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockProductStore is a mock of store.ProductStore interface for use with testify/mock
type MockProductStore struct {
	mock.Mock
}

var _ store.ProductStore = (*MockProductStore)(nil)

// Create is a mock implementation of store.ProductStore.Create
func (m *MockProductStore) Create(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

// GetByID is a mock implementation of store.ProductStore.GetByID
func (m *MockProductStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*domain.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByTitleOrSlug is a mock implementation of store.ProductStore.GetByTitleOrSlug
func (m *MockProductStore) GetByTitleOrSlug(ctx context.Context, title, slug string) (*domain.Product, error) {
	args := m.Called(ctx, title, slug)
	if p, ok := args.Get(0).(*domain.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

// List is a mock implementation of store.ProductStore.List
func (m *MockProductStore) List(ctx context.Context, params domain.ListParams) ([]*domain.Product, error) {
	args := m.Called(ctx, params)
	if ps, ok := args.Get(0).([]*domain.Product); ok {
		return ps, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update is a mock implementation of store.ProductStore.Update
func (m *MockProductStore) Update(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

// DeleteImages is a mock implementation of store.ProductStore.DeleteImages
func (m *MockProductStore) DeleteImages(ctx context.Context, productID uuid.UUID) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// CreateImages is a mock implementation of store.ProductStore.CreateImages
func (m *MockProductStore) CreateImages(ctx context.Context, images []domain.ProductImage) error {
	args := m.Called(ctx, images)
	return args.Error(0)
}

// Delete is a mock implementation of store.ProductStore.Delete
func (m *MockProductStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// DeleteAll is a mock implementation of store.ProductStore.DeleteAll
func (m *MockProductStore) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// WithTx returns the mock itself so expectations carry over into transactions.
func (m *MockProductStore) WithTx(tx *sql.Tx) store.ProductStore {
	return m
}
