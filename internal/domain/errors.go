package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los use cases los retornan siempre antes de tocar el ledger: ningún camino de
// error deja estado parcial persistido. Los handlers HTTP los mapean a códigos.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidQuantity    = errors.New("cantidad inválida")
	ErrWarehouseInactive  = errors.New("bodega inactiva")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrInvalidTransition  = errors.New("transición de estado inválida")
	ErrBusy               = errors.New("recurso ocupado, reintente")
)
