package repository

import (
	"context"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	// FindByUsername devuelve nil, nil si el usuario no existe.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	TouchLastLogin(ctx context.Context, id string) error
}
