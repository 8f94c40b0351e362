// Package mocks provides centralized mock implementations for testing.
//
// Store mocks are built on testify/mock so tests can assert on the exact
// calls made inside a transaction. Service and hasher mocks use function
// fields, which keeps handler tests short.
//
// Usage:
//
//	productStore := &mocks.MockProductStore{}
//	productStore.On("GetByID", mock.Anything, id).Return(product, nil)
//
//	svc := &mocks.MockProductService{
//	    FindOneFn: func(ctx context.Context, term string) (*domain.Product, error) {
//	        return product, nil
//	    },
//	}
//
// The WithTx method of each store mock returns the mock itself, so
// expectations set on it apply to the transactional store as well.
package mocks
