package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/qrbill-api/internal/application/auth"
	"github.com/jhoicas/qrbill-api/internal/application/dto"
	"github.com/jhoicas/qrbill-api/internal/domain/entity"
	"github.com/jhoicas/qrbill-api/internal/domain/repository"
	"github.com/jhoicas/qrbill-api/internal/infrastructure/postgres"
	"github.com/jhoicas/qrbill-api/pkg/jwt"
)

// companySeed ficha de empresa en YAML para seed-company.
type companySeed struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	FirstName   string `yaml:"first_name"`
	LastName    string `yaml:"last_name"`
	Address1    string `yaml:"address1"`
	PostalCode  string `yaml:"postal_code"`
	City        string `yaml:"city"`
	CountryCode string `yaml:"country_code"`
	Country     string `yaml:"country"`
	VatNumber   string `yaml:"vat_number"`
	Iban        string `yaml:"iban"`
	Status      string `yaml:"status"`
}

func (s companySeed) entity(now time.Time) *entity.Company {
	c := &entity.Company{
		ID:          strings.TrimSpace(s.ID),
		Name:        strings.TrimSpace(s.Name),
		FirstName:   strings.TrimSpace(s.FirstName),
		LastName:    strings.TrimSpace(s.LastName),
		Address1:    strings.TrimSpace(s.Address1),
		PostalCode:  strings.TrimSpace(s.PostalCode),
		City:        strings.TrimSpace(s.City),
		CountryCode: strings.ToUpper(strings.TrimSpace(s.CountryCode)),
		Country:     strings.TrimSpace(s.Country),
		VatNumber:   strings.TrimSpace(s.VatNumber),
		Iban:        strings.TrimSpace(s.Iban),
		Status:      strings.TrimSpace(s.Status),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Status == "" {
		c.Status = "active"
	}
	return c
}

// upsertCompany crea la empresa o actualiza la existente con el mismo ID.
func upsertCompany(ctx context.Context, repo repository.CompanyRepository, c *entity.Company) (created bool, err error) {
	if c.Name == "" && c.FirstName == "" && c.LastName == "" {
		return false, fmt.Errorf("la empresa necesita name o first_name/last_name")
	}
	existing, err := repo.GetByID(ctx, c.ID)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return true, repo.Create(ctx, c)
	}
	c.CreatedAt = existing.CreatedAt
	return false, repo.Update(ctx, c)
}

func newDBCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Tareas de base de datos",
	}

	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Aplica las migraciones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pool, err := postgres.NewPool(cmd.Context(), a.cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()
			if err := postgres.Migrate(cmd.Context(), pool); err != nil {
				return err
			}
			a.log.Info().Msg("migraciones aplicadas")
			return nil
		},
	}

	var file string
	seed := &cobra.Command{
		Use:   "seed-company",
		Short: "Crea o actualiza una empresa desde un YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("leer %s: %w", file, err)
			}
			var s companySeed
			if err := yaml.Unmarshal(raw, &s); err != nil {
				return fmt.Errorf("YAML inválido: %w", err)
			}

			pool, err := postgres.NewPool(cmd.Context(), a.cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()

			c := s.entity(time.Now())
			created, err := upsertCompany(cmd.Context(), postgres.NewCompanyRepository(pool), c)
			if err != nil {
				return err
			}
			a.log.Info().Str("company_id", c.ID).Bool("creada", created).Msg("empresa guardada")
			fmt.Fprintln(cmd.OutOrStdout(), c.ID)
			return nil
		},
	}
	seed.Flags().StringVarP(&file, "file", "f", "", "ficha de la empresa en YAML (obligatorio)")
	_ = seed.MarkFlagRequired("file")

	var in dto.RegisterRequest
	var companyID string
	user := &cobra.Command{
		Use:   "create-user",
		Short: "Crea un usuario (por ejemplo el primer admin de una empresa)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pool, err := postgres.NewPool(cmd.Context(), a.cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()

			uc := auth.NewAuthUseCase(postgres.NewUserRepository(pool), postgres.NewCompanyRepository(pool), auth.JWTConfig{
				Secret: a.cfg.JWT.Secret, ExpMinutes: a.cfg.JWT.Expiration, Issuer: a.cfg.JWT.Issuer,
			})
			res, err := uc.RegisterUser(cmd.Context(), companyID, in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.ID)
			return nil
		},
	}
	user.Flags().StringVar(&companyID, "company", "", "ID de la empresa (obligatorio)")
	user.Flags().StringVar(&in.Email, "email", "", "email (obligatorio)")
	user.Flags().StringVar(&in.Password, "password", "", "password, mínimo 8 caracteres (obligatorio)")
	user.Flags().StringVar(&in.Name, "name", "", "nombre")
	user.Flags().StringVar(&in.Role, "role", jwt.RoleAdmin, "rol: admin, contable o lector")
	_ = user.MarkFlagRequired("company")
	_ = user.MarkFlagRequired("email")
	_ = user.MarkFlagRequired("password")

	cmd.AddCommand(migrate, seed, user)
	return cmd
}
