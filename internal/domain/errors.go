package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrMemberNotFound = errors.New("miembro no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrDuplicate      = errors.New("recurso duplicado")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
	ErrLoadFailed     = errors.New("no se pudieron cargar los resultados")
	ErrSessionExpired = errors.New("sesión de directorio inexistente o expirada")
)
