package qrbill

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/qrbill-api/internal/application/dto"
	"github.com/jhoicas/qrbill-api/internal/domain"
	"github.com/jhoicas/qrbill-api/internal/domain/entity"
	qrdomain "github.com/jhoicas/qrbill-api/internal/domain/qrbill"
)

const (
	sourceStored  = "stored"
	sourceDefault = "default"
)

// GetSettings devuelve los ajustes guardados o, si no hay, los valores por defecto.
func (uc *UseCase) GetSettings(ctx context.Context, companyID string) (*dto.QRBillSettingsResponse, error) {
	s, source, err := uc.loadSettings(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return &dto.QRBillSettingsResponse{CompanyID: companyID, Source: source, QRBillSettingsDTO: s}, nil
}

// SaveSettings valida y guarda los ajustes de la empresa (crea o reemplaza).
func (uc *UseCase) SaveSettings(ctx context.Context, companyID string, in dto.QRBillSettingsDTO) (*dto.QRBillSettingsResponse, error) {
	if companyID == "" {
		return nil, domain.ErrInvalidInput
	}
	scheme, ok := qrdomain.ParseReferenceScheme(in.ReferenceType)
	if !ok {
		return nil, fmt.Errorf("%w: tipo de referencia %q", domain.ErrInvalidInput, in.ReferenceType)
	}
	in.ReferenceType = string(scheme)

	existing, err := uc.settings.GetByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("qrbill: obtener ajustes: %w", err)
	}
	now := uc.now()
	s := existing
	if s == nil {
		s = &entity.QRBillSettings{ID: uuid.New().String(), CompanyID: companyID, CreatedAt: now}
	}
	applySettings(s, in)
	s.UpdatedAt = now

	if err := uc.settings.Upsert(ctx, s); err != nil {
		return nil, fmt.Errorf("qrbill: guardar ajustes: %w", err)
	}
	return &dto.QRBillSettingsResponse{CompanyID: companyID, Source: sourceStored, QRBillSettingsDTO: settingsToDTO(s)}, nil
}

func (uc *UseCase) loadSettings(ctx context.Context, companyID string) (dto.QRBillSettingsDTO, string, error) {
	s, err := uc.settings.GetByCompanyID(ctx, companyID)
	if err != nil {
		return dto.QRBillSettingsDTO{}, "", fmt.Errorf("qrbill: obtener ajustes: %w", err)
	}
	if s == nil {
		return DefaultSettings(uc.defaults), sourceDefault, nil
	}
	return settingsToDTO(s), sourceStored, nil
}

// isrID de la petición o, si viene vacío, el de los ajustes.
func (uc *UseCase) isrID(ctx context.Context, companyID, requested string) (string, error) {
	if id := strings.TrimSpace(requested); id != "" {
		return id, nil
	}
	s, _, err := uc.loadSettings(ctx, companyID)
	if err != nil {
		return "", err
	}
	return s.IsrID, nil
}
