package domain

import "errors"

// Taxonomía de errores del core. Los servicios los envuelven con contexto
// usando fmt.Errorf("...: %w", err) y los controladores los mapean a
// códigos HTTP con errors.Is.
var (
	// ErrValidation: input requerido ausente o malformado.
	// Se chequea siempre ANTES de tocar un colaborador remoto.
	ErrValidation = errors.New("validation error")

	// ErrNotFound: la cuenta o propiedad referenciada no existe.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials: la cuenta existe pero el password no coincide.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrConflict: email duplicado en el registro.
	ErrConflict = errors.New("already exists")

	// ErrSubmission: el colaborador de persistencia de reservas falló o
	// devolvió no-éxito. Los errores de transporte se colapsan acá.
	ErrSubmission = errors.New("submission failed")
)
