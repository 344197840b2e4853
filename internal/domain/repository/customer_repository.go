package repository

import (
	"context"

	"github.com/jhoicas/qrbill-api/internal/domain/entity"
)

// CustomerRepository puerto de persistencia para clientes (deudores).
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Customer, error)
}
