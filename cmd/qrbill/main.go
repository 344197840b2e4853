// qrbill CLI de QR-facturas suizas.
//
// Uso:
//
//	qrbill payload -f factura.yaml
//	qrbill png -f factura.yaml -o qr.png
//	qrbill batch --xlsx facturas.xlsx -f plantilla.yaml --out salida/
//	qrbill reference rf 42 1001
//	qrbill token --company <uuid> --role contable
//	qrbill db migrate
package main

import (
	"os"

	"github.com/jhoicas/qrbill-api/internal/interfaces/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
