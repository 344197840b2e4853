package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jhoicas/qrbill-api/pkg/jwt"
)

// newTokenCmd emite un Bearer token para pruebas contra la API.
func newTokenCmd(a *app) *cobra.Command {
	var companyID, userID, role, secret string
	var expMinutes int

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite un JWT para la API (empresa y rol)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !jwt.ValidRole(role) {
				return fmt.Errorf("rol inválido %q (admin, contable, lector)", role)
			}
			if secret == "" {
				secret = a.cfg.JWT.Secret
			}
			if secret == "" {
				return fmt.Errorf("falta el secreto (--secret o JWT_SECRET)")
			}
			if userID == "" {
				userID = uuid.New().String()
			}
			if expMinutes <= 0 {
				expMinutes = a.cfg.JWT.Expiration
			}
			tok, err := jwt.Generate(secret, userID, companyID, role, a.cfg.JWT.Issuer, expMinutes)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&companyID, "company", "", "ID de la empresa (obligatorio)")
	cmd.Flags().StringVar(&userID, "user", "", "ID del usuario (por defecto uno aleatorio)")
	cmd.Flags().StringVar(&role, "role", jwt.RoleContable, "rol: admin, contable o lector")
	cmd.Flags().StringVar(&secret, "secret", "", "secreto HMAC (por defecto JWT_SECRET)")
	cmd.Flags().IntVar(&expMinutes, "exp", 0, "minutos de validez (por defecto JWT_EXPIRATION_MINUTES)")
	_ = cmd.MarkFlagRequired("company")
	return cmd
}
