package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los errores fatales del QR-bill viven en internal/domain/qrbill.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
)
