package ports

import (
	"context"

	"github.com/almacen/stock-api/internal/core/domain"
)

// CreateCategoryInput carries the data needed to create a category.
type CreateCategoryInput struct {
	Name        string
	Description string
}

// UpdateCategoryInput is a partial update; nil fields are left untouched.
type UpdateCategoryInput struct {
	Name        *string
	Description *string
}

// CategoryService defines use-case operations for categories. Actor is the
// authenticated username performing the mutation (used for the audit trail).
type CategoryService interface {
	GetAll(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, input CreateCategoryInput, actor string) (*domain.Category, error)
	Update(ctx context.Context, id string, input UpdateCategoryInput, actor string) (*domain.Category, error)
	Remove(ctx context.Context, id string, actor string) (*domain.Category, error)
}
