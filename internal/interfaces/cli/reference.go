package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/qrbill-api/internal/application/dto"
)

func newReferenceCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reference",
		Short: "Genera referencias de pago",
	}

	rf := &cobra.Command{
		Use:   "rf CLIENTE FACTURA",
		Short: "Referencia del acreedor ISO 11649 (RF)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.uc.CreditorReference(dto.RfReferenceRequest{CustomerNumber: args[0], InvoiceNumber: args[1]})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Reference)
			return nil
		},
	}

	var isrID string
	qrr := &cobra.Command{
		Use:   "qrr CLIENTE FACTURA",
		Short: "Referencia QR de 27 dígitos (módulo 10 recursivo)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if isrID == "" {
				isrID = a.cfg.QRBill.IsrID
			}
			if isrID == "" {
				return fmt.Errorf("falta el ISR-ID (--isr-id o QRBILL_ISR_ID)")
			}
			res, err := a.uc.QRReference(cmd.Context(), "", dto.QRReferenceRequest{
				IsrID: isrID, CustomerNumber: args[0], InvoiceNumber: args[1],
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Reference)
			return nil
		},
	}
	qrr.Flags().StringVar(&isrID, "isr-id", "", "identificador del emisor (por defecto QRBILL_ISR_ID)")

	cmd.AddCommand(rf, qrr)
	return cmd
}
