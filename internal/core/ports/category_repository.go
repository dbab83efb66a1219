package ports

import (
	"context"

	"github.com/almacen/stock-api/internal/core/domain"
)

// CategoryPatch carries the fields of a partial update. Nil pointers mean
// "leave untouched"; only non-nil fields are written.
type CategoryPatch struct {
	Name        *string
	Description *string
}

// CategoryRepository defines persistence operations for categories.
// Absent ids surface as domain.ErrCategoryNotFound; unique-name violations
// as domain.ErrDuplicateName.
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	Insert(ctx context.Context, c *domain.Category) (*domain.Category, error)
	// Update applies the patch and returns the updated document.
	Update(ctx context.Context, id string, patch CategoryPatch) (*domain.Category, error)
	// Delete removes the document and returns it as it was stored.
	Delete(ctx context.Context, id string) (*domain.Category, error)
}
