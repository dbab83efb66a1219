package ports

import (
	"context"

	"github.com/almacen/stock-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, identifier, password string) (string, error)
}
