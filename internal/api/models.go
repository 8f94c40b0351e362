package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/shop-api/internal/domain"
	"github.com/shopspring/decimal"
)

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=6,max=72"`
	FullName string `json:"full_name" validate:"required,min=1"`
}

// UserResponse is the public view of a registered user.
// It never carries the password or its hash.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	IsActive  bool      `json:"is_active"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		IsActive:  u.IsActive,
		Roles:     u.Roles,
		CreatedAt: u.CreatedAt,
	}
}

// CreateProductRequest defines the payload for creating a product.
// Price is accepted as a JSON number or a numeric string.
type CreateProductRequest struct {
	Title       string          `json:"title"       validate:"required,min=1"`
	Slug        string          `json:"slug"        validate:"omitempty"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"       validate:"gte=0"`
	Gender      string          `json:"gender"      validate:"required,oneof=men women kid unisex"`
	Images      []string        `json:"images"      validate:"omitempty,dive,required"`
}

// UpdateProductRequest defines the payload for a partial product update.
// Absent fields keep their value. Images, when present (even as []),
// replaces the whole image set.
type UpdateProductRequest struct {
	Title       *string          `json:"title"       validate:"omitempty,min=1"`
	Slug        *string          `json:"slug"        validate:"omitempty,min=1"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"       validate:"omitempty,gte=0"`
	Gender      *string          `json:"gender"      validate:"omitempty,oneof=men women kid unisex"`
	Images      []string         `json:"images"      validate:"omitempty,dive,required"`
}

func (req UpdateProductRequest) toDomain() domain.ProductUpdate {
	return domain.ProductUpdate{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Gender:      req.Gender,
		Images:      req.Images,
	}
}

// ListProductsQuery holds the pagination and search query parameters.
type ListProductsQuery struct {
	Limit  *int   `json:"limit"  validate:"omitempty,gte=1"`
	Offset *int   `json:"offset" validate:"omitempty,gte=0"`
	Search string `json:"search"`
}

func (q ListProductsQuery) toDomain() domain.ListParams {
	var p domain.ListParams
	if q.Limit != nil {
		p.Limit = *q.Limit
	}
	if q.Offset != nil {
		p.Offset = *q.Offset
	}
	p.Search = q.Search
	return p
}

// ProductResponse is the public view of a product. Images are flattened to
// their URLs, in stored order.
type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Gender      string          `json:"gender"`
	Images      []string        `json:"images"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func productToResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Gender:      p.Gender,
		Images:      p.ImageURLs(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func productsToResponse(products []*domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, productToResponse(p))
	}
	return out
}
