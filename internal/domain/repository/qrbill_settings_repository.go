package repository

import (
	"context"

	"github.com/jhoicas/qrbill-api/internal/domain/entity"
)

// QRBillSettingsRepository puerto de persistencia para los ajustes del QR-bill (uno por empresa).
type QRBillSettingsRepository interface {
	// GetByCompanyID devuelve nil, nil si la empresa aún no tiene ajustes.
	GetByCompanyID(ctx context.Context, companyID string) (*entity.QRBillSettings, error)
	// Upsert crea o reemplaza los ajustes de la empresa.
	Upsert(ctx context.Context, settings *entity.QRBillSettings) error
}
