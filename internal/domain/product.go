package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

// Product validation errors
var (
	ErrEmptyProductID = errors.New("product ID cannot be empty")
	ErrEmptyTitle     = errors.New("title cannot be empty")
	ErrEmptySlug      = errors.New("slug cannot be empty")
	ErrNegativePrice  = errors.New("price cannot be negative")
	ErrPriceScale     = errors.New("price must have at most 2 decimal places")
	ErrPriceTooLarge  = errors.New("price exceeds the maximum")
	ErrNegativeStock  = errors.New("stock cannot be negative")
	ErrInvalidGender  = errors.New("gender must be one of men, women, kid, unisex")
	ErrEmptyImageURL  = errors.New("image URL cannot be empty")
)

// Gender classifiers accepted for a product.
const (
	GenderMen    = "men"
	GenderWomen  = "women"
	GenderKid    = "kid"
	GenderUnisex = "unisex"
)

// PriceScale is the number of decimal places the price column stores.
const PriceScale = 2

// MaxPrice is the largest value a NUMERIC(12,2) price column holds.
var MaxPrice = decimal.RequireFromString("9999999999.99")

// ValidGender reports whether g is one of the accepted gender classifiers.
func ValidGender(g string) bool {
	switch g {
	case GenderMen, GenderWomen, GenderKid, GenderUnisex:
		return true
	}
	return false
}

// Product is a catalog item with its ordered list of images.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Gender      string          `json:"gender"`
	Images      []ProductImage  `json:"images"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductImage is an image URL owned by a product.
// ID is assigned by the database when the image is stored.
type ProductImage struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url"`
	ProductID uuid.UUID `json:"-"`
}

// NewProduct creates a new Product with a fresh ID and images built from urls.
// The slug is derived from the title when slugValue is empty.
func NewProduct(
	title, slugValue, description string,
	price decimal.Decimal,
	stock int,
	gender string,
	urls []string,
) (*Product, error) {
	now := time.Now().UTC()
	p := &Product{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(title),
		Slug:        slugValue,
		Description: description,
		Price:       price,
		Stock:       stock,
		Gender:      gender,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	p.NormalizeSlug()
	p.Images = NewProductImages(p.ID, urls)

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// NewProductImages builds unsaved images for productID, preserving order.
// A nil list yields an empty, non-nil slice.
func NewProductImages(productID uuid.UUID, urls []string) []ProductImage {
	images := make([]ProductImage, 0, len(urls))
	for _, u := range urls {
		images = append(images, ProductImage{URL: u, ProductID: productID})
	}
	return images
}

// NormalizeSlug sets Slug to its URL-safe form, deriving it from Title when
// no slug is set. "Red T-Shirt" becomes "red-t-shirt".
func (p *Product) NormalizeSlug() {
	source := p.Slug
	if strings.TrimSpace(source) == "" {
		source = p.Title
	}
	p.Slug = slug.Make(source)
}

// ImageURLs returns the image URLs in order.
func (p *Product) ImageURLs() []string {
	urls := make([]string, len(p.Images))
	for i, img := range p.Images {
		urls[i] = img.URL
	}
	return urls
}

// Validate checks if the Product has valid data.
func (p *Product) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyProductID
	}

	if strings.TrimSpace(p.Title) == "" {
		return NewValidationError("title", "cannot be empty", ErrEmptyTitle)
	}

	if p.Slug == "" {
		return NewValidationError("slug", "cannot be empty", ErrEmptySlug)
	}

	if p.Price.IsNegative() {
		return NewValidationError("price", "cannot be negative", ErrNegativePrice)
	}

	if !p.Price.Equal(p.Price.Truncate(PriceScale)) {
		return NewValidationError("price", "must have at most 2 decimal places", ErrPriceScale)
	}

	if p.Price.GreaterThan(MaxPrice) {
		return NewValidationError("price", "exceeds the maximum of 9999999999.99", ErrPriceTooLarge)
	}

	if p.Stock < 0 {
		return NewValidationError("stock", "cannot be negative", ErrNegativeStock)
	}

	if !ValidGender(p.Gender) {
		return NewValidationError("gender", "must be one of men, women, kid, unisex", ErrInvalidGender)
	}

	for _, img := range p.Images {
		if strings.TrimSpace(img.URL) == "" {
			return NewValidationError("images", "cannot contain an empty URL", ErrEmptyImageURL)
		}
	}

	return nil
}

// ProductUpdate is a partial update. Nil fields are left unchanged.
// Images follows the same rule: nil keeps the current set, while any
// non-nil slice (including an empty one) replaces it.
type ProductUpdate struct {
	Title       *string
	Slug        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
	Gender      *string
	Images      []string
}

// ReplacesImages reports whether the update carries a new image set.
func (u ProductUpdate) ReplacesImages() bool {
	return u.Images != nil
}

// Apply overlays the non-nil fields of u onto p, re-normalizes the slug,
// refreshes UpdatedAt and validates the result. Images are not touched here;
// the caller replaces them once the new set is persisted.
func (u ProductUpdate) Apply(p *Product) error {
	if u.Title != nil {
		p.Title = strings.TrimSpace(*u.Title)
	}
	if u.Slug != nil {
		p.Slug = *u.Slug
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Stock != nil {
		p.Stock = *u.Stock
	}
	if u.Gender != nil {
		p.Gender = *u.Gender
	}

	p.NormalizeSlug()
	p.UpdatedAt = time.Now().UTC()

	if err := p.Validate(); err != nil {
		return err
	}

	for _, url := range u.Images {
		if strings.TrimSpace(url) == "" {
			return NewValidationError("images", "cannot contain an empty URL", ErrEmptyImageURL)
		}
	}

	return nil
}

// DefaultListLimit is the page size used when none is requested.
const DefaultListLimit = 10

// ListParams controls pagination and search for product listings.
type ListParams struct {
	Limit  int
	Offset int
	Search string
}

// WithDefaults returns a copy with a non-positive limit replaced by
// DefaultListLimit and a negative offset clamped to zero. Search is kept
// verbatim, surrounding whitespace included.
func (p ListParams) WithDefaults() ListParams {
	if p.Limit <= 0 {
		p.Limit = DefaultListLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
