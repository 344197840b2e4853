package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/qrbill-api/internal/domain"
	"github.com/jhoicas/qrbill-api/internal/domain/entity"
	"github.com/jhoicas/qrbill-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, name, first_name, last_name, address1, postal_code, city,
	country_code, country, vat_number, iban, status, created_at, updated_at`

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	const q = `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now(), now())`
	_, err := r.q.Exec(ctx, q,
		c.ID, c.Name, c.FirstName, c.LastName, c.Address1, c.PostalCode, c.City,
		c.CountryCode, c.Country, c.VatNumber, nullIfEmpty(c.Iban), c.Status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: empresa %s", domain.ErrDuplicate, c.ID)
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID. Devuelve nil, nil si no existe.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	const q = `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	c, err := scanCompany(r.q.QueryRow(ctx, q, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// Update actualiza los datos de dirección, IVA e IBAN de la empresa.
func (r *CompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	const q = `
		UPDATE companies SET name = $2, first_name = $3, last_name = $4, address1 = $5,
			postal_code = $6, city = $7, country_code = $8, country = $9, vat_number = $10,
			iban = $11, status = $12, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(ctx, q,
		c.ID, c.Name, c.FirstName, c.LastName, c.Address1, c.PostalCode, c.City,
		c.CountryCode, c.Country, c.VatNumber, nullIfEmpty(c.Iban), c.Status,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

func scanCompany(row pgxScanner) (*entity.Company, error) {
	var c entity.Company
	var iban *string
	err := row.Scan(
		&c.ID, &c.Name, &c.FirstName, &c.LastName, &c.Address1, &c.PostalCode, &c.City,
		&c.CountryCode, &c.Country, &c.VatNumber, &iban, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Iban = stringOrEmpty(iban)
	return &c, nil
}
