package ports

import (
	"context"

	"github.com/almacen/stock-api/internal/core/domain"
)

// CreateProductInput carries the data needed to create a product. The
// category reference is passed through opaque; the store resolves it.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	CategoryID  string
}

// UpdateProductInput is a partial update; nil fields are left untouched.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
	CategoryID  *string
}

// ProductService defines use-case operations for products.
type ProductService interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, input CreateProductInput, actor string) (*domain.Product, error)
	Update(ctx context.Context, id string, input UpdateProductInput, actor string) (*domain.Product, error)
	Remove(ctx context.Context, id string, actor string) (*domain.Product, error)
}
