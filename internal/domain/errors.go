package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrUsernameTaken       = errors.New("el username ya está registrado")
	ErrEmailAlreadyExists  = errors.New("el email ya está registrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrConflict            = errors.New("conflicto con el estado actual")
	ErrInsufficientBalance = errors.New("saldo insuficiente en el wallet")
	ErrEmptyCart           = errors.New("el carrito está vacío")
	ErrAllItemsFailed      = errors.New("ningún ítem del carrito fue procesado con éxito")
	ErrCheckerSold         = errors.New("el checker ya fue vendido")
	ErrVerificationFailed  = errors.New("la pasarela no confirmó el pago")
)
