package repository

import (
	"context"

	"github.com/jhoicas/qrbill-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para usuarios. El email es único en todo el sistema.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
