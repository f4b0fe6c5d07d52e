package entity

import "errors"

var (
	// Cliente errors
	ErrClienteNotFound     = errors.New("cliente not found")
	ErrCedulaAlreadyExists = errors.New("cedula already registered")
	ErrClienteEmailExists  = errors.New("cliente email already registered")

	// Prestamo errors
	ErrPrestamoNotFound  = errors.New("prestamo not found")
	ErrInvalidFrecuencia = errors.New("invalid payment frequency")
	ErrInvalidPlazo      = errors.New("plazo must be at least one installment")

	// Pago errors
	ErrPagoNotFound = errors.New("pago not found")

	// Cobranza errors
	ErrCobranzaNotFound = errors.New("cobranza not found")
	ErrCobradorNotFound = errors.New("cobrador not found")

	// Ruta errors
	ErrRutaNotFound = errors.New("ruta not found")

	// Usuario errors
	ErrUsuarioNotFound    = errors.New("usuario not found")
	ErrEmailAlreadyInUse  = errors.New("email already registered")
	ErrInactiveUsuario    = errors.New("inactive usuario")
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// Notificacion errors
	ErrNotificacionNotFound = errors.New("notificacion not found")

	// General errors
	ErrInvalidInput  = errors.New("invalid input")
	ErrDatabaseError = errors.New("database error")
	ErrUnauthorized  = errors.New("unauthorized access")
	ErrForbidden     = errors.New("forbidden operation")
)
