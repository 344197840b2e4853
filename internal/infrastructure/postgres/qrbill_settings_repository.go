package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/qrbill-api/internal/domain/entity"
	"github.com/jhoicas/qrbill-api/internal/domain/repository"
)

var _ repository.QRBillSettingsRepository = (*QRBillSettingsRepo)(nil)

// QRBillSettingsRepo implementa QRBillSettingsRepository sobre PostgreSQL.
type QRBillSettingsRepo struct {
	q Querier
}

// NewQRBillSettingsRepository construye el repositorio.
func NewQRBillSettingsRepository(q Querier) *QRBillSettingsRepo {
	return &QRBillSettingsRepo{q: q}
}

func (r *QRBillSettingsRepo) GetByCompanyID(ctx context.Context, companyID string) (*entity.QRBillSettings, error) {
	const q = `
		SELECT id, company_id, reference_type, empty_address, empty_amount,
		       iban, qr_iban, iban_eur, isr_id,
		       payable_to, creditor_name, creditor_address1, creditor_postal_code, creditor_city, creditor_country,
		       additional_information, billing_information, av1, av2, created_at, updated_at
		FROM qrbill_settings WHERE company_id = $1`
	s, err := scanSettings(r.q.QueryRow(ctx, q, companyID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil // sin ajustes: se usan los valores por defecto de la app
		}
		return nil, fmt.Errorf("get qrbill_settings: %w", err)
	}
	return s, nil
}

// Upsert inserta o reemplaza por company_id (índice único).
func (r *QRBillSettingsRepo) Upsert(ctx context.Context, s *entity.QRBillSettings) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	const q = `
		INSERT INTO qrbill_settings
			(id, company_id, reference_type, empty_address, empty_amount,
			 iban, qr_iban, iban_eur, isr_id,
			 payable_to, creditor_name, creditor_address1, creditor_postal_code, creditor_city, creditor_country,
			 additional_information, billing_information, av1, av2, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, now(), now())
		ON CONFLICT (company_id) DO UPDATE SET
			reference_type = EXCLUDED.reference_type,
			empty_address = EXCLUDED.empty_address,
			empty_amount = EXCLUDED.empty_amount,
			iban = EXCLUDED.iban,
			qr_iban = EXCLUDED.qr_iban,
			iban_eur = EXCLUDED.iban_eur,
			isr_id = EXCLUDED.isr_id,
			payable_to = EXCLUDED.payable_to,
			creditor_name = EXCLUDED.creditor_name,
			creditor_address1 = EXCLUDED.creditor_address1,
			creditor_postal_code = EXCLUDED.creditor_postal_code,
			creditor_city = EXCLUDED.creditor_city,
			creditor_country = EXCLUDED.creditor_country,
			additional_information = EXCLUDED.additional_information,
			billing_information = EXCLUDED.billing_information,
			av1 = EXCLUDED.av1,
			av2 = EXCLUDED.av2,
			updated_at = now()`
	_, err := r.q.Exec(ctx, q,
		s.ID, s.CompanyID, s.ReferenceType, s.EmptyAddress, s.EmptyAmount,
		s.Iban, s.QrIban, s.IbanEur, s.IsrID,
		s.PayableTo, s.CreditorName, s.CreditorAddress1, s.CreditorPostalCode, s.CreditorCity, s.CreditorCountry,
		s.AdditionalInformation, s.BillingInformation, s.AV1, s.AV2,
	)
	if err != nil {
		return fmt.Errorf("upsert qrbill_settings: %w", err)
	}
	return nil
}

func scanSettings(row pgxScanner) (*entity.QRBillSettings, error) {
	var s entity.QRBillSettings
	err := row.Scan(
		&s.ID, &s.CompanyID, &s.ReferenceType, &s.EmptyAddress, &s.EmptyAmount,
		&s.Iban, &s.QrIban, &s.IbanEur, &s.IsrID,
		&s.PayableTo, &s.CreditorName, &s.CreditorAddress1, &s.CreditorPostalCode, &s.CreditorCity, &s.CreditorCountry,
		&s.AdditionalInformation, &s.BillingInformation, &s.AV1, &s.AV2, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
