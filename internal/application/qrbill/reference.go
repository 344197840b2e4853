package qrbill

import (
	"context"
	"fmt"

	"github.com/jhoicas/qrbill-api/internal/application/dto"
	"github.com/jhoicas/qrbill-api/internal/domain"
	qrdomain "github.com/jhoicas/qrbill-api/internal/domain/qrbill"
	"github.com/jhoicas/qrbill-api/pkg/swissqr"
)

// CreditorReference genera la referencia RF (ISO 11649) de cliente + factura.
func (uc *UseCase) CreditorReference(req dto.RfReferenceRequest) (*dto.ReferenceResponse, error) {
	ref, err := swissqr.CreditorReference(req.CustomerNumber, req.InvoiceNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	return &dto.ReferenceResponse{Scheme: string(qrdomain.SchemeSCOR), Reference: ref}, nil
}

// QRReference genera la referencia QR de 27 dígitos. Sin ISR-ID en la petición
// se usa el de los ajustes de la empresa.
func (uc *UseCase) QRReference(ctx context.Context, companyID string, req dto.QRReferenceRequest) (*dto.ReferenceResponse, error) {
	isrID, err := uc.isrID(ctx, companyID, req.IsrID)
	if err != nil {
		return nil, err
	}
	ref, err := swissqr.QRReference(isrID, req.CustomerNumber, req.InvoiceNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	return &dto.ReferenceResponse{Scheme: string(qrdomain.SchemeQRR), Reference: ref}, nil
}
