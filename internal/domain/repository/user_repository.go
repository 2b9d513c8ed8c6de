package repository

import (
	"context"

	"github.com/jhoicas/smartstock-api/internal/domain/entity"
)

// UserRepository puerto de usuarios para autenticación.
type UserRepository interface {
	GetByID(ctx context.Context, userID int) (*entity.User, error)
	// FindByUsername devuelve el usuario o nil si no existe.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
}
