package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/shop-api/internal/domain"
	"github.com/phrazzld/shop-api/internal/service"
)

// MockUserService implements service.UserService for handler tests.
type MockUserService struct {
	RegisterFn func(ctx context.Context, input service.RegisterInput) (*domain.User, error)
}

var _ service.UserService = (*MockUserService)(nil)

// Register implements service.UserService
func (m *MockUserService) Register(ctx context.Context, input service.RegisterInput) (*domain.User, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, input)
	}
	return domain.NewUser(input.Email, input.Password, input.FullName)
}

// MockProductService implements service.ProductService for handler tests.
// Methods without a function field fail with service.ErrUnexpected.
type MockProductService struct {
	CreateFn  func(ctx context.Context, input service.CreateProductInput) (*domain.Product, error)
	FindAllFn func(ctx context.Context, params domain.ListParams) ([]*domain.Product, error)
	FindOneFn func(ctx context.Context, term string) (*domain.Product, error)
	UpdateFn  func(ctx context.Context, id uuid.UUID, upd domain.ProductUpdate) (*domain.Product, error)
	RemoveFn  func(ctx context.Context, term string) (string, error)
}

var _ service.ProductService = (*MockProductService)(nil)

// Create implements service.ProductService
func (m *MockProductService) Create(ctx context.Context, input service.CreateProductInput) (*domain.Product, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, input)
	}
	return nil, service.ErrUnexpected
}

// FindAll implements service.ProductService
func (m *MockProductService) FindAll(ctx context.Context, params domain.ListParams) ([]*domain.Product, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx, params)
	}
	return nil, service.ErrUnexpected
}

// FindOne implements service.ProductService
func (m *MockProductService) FindOne(ctx context.Context, term string) (*domain.Product, error) {
	if m.FindOneFn != nil {
		return m.FindOneFn(ctx, term)
	}
	return nil, service.ErrUnexpected
}

// Update implements service.ProductService
func (m *MockProductService) Update(
	ctx context.Context,
	id uuid.UUID,
	upd domain.ProductUpdate,
) (*domain.Product, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, upd)
	}
	return nil, service.ErrUnexpected
}

// Remove implements service.ProductService
func (m *MockProductService) Remove(ctx context.Context, term string) (string, error) {
	if m.RemoveFn != nil {
		return m.RemoveFn(ctx, term)
	}
	return "", service.ErrUnexpected
}
