package ports

import (
	"context"

	"github.com/almacen/stock-api/internal/core/domain"
)

// ProductPatch carries the fields of a partial update. Nil pointers mean
// "leave untouched".
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
	CategoryID  *string
}

// ProductRepository defines persistence operations for products.
// Absent ids surface as domain.ErrProductNotFound; unique-name violations
// as domain.ErrDuplicateName.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Insert(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id string) (*domain.Product, error)
}
