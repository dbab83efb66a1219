package ports

import (
	"context"

	"github.com/almacen/stock-api/internal/core/domain"
)

// AuthRepository defines the interface for user authentication persistence.
type AuthRepository interface {
	// FindByEmailOrUsername matches the identifier against both the email
	// and the username fields ($or filter, as the login endpoint accepts
	// either).
	FindByEmailOrUsername(ctx context.Context, identifier string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
