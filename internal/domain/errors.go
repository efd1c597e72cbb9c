package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidType        = errors.New("tipo de reporte inválido")
	ErrMissingTerm        = errors.New("término de búsqueda requerido")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
)

// ValidationError campos obligatorios ausentes o mal formados. No se intentó ninguna escritura.
type ValidationError struct {
	Fields []string
}

// NewValidationError construye el error con los campos inválidos.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrInvalidInput.Error()
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput.Error(), strings.Join(e.Fields, ", "))
}

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// DependencyWriteError un paso de una escritura multi-tabla falló después de que
// pasos anteriores quedaran confirmados en el store.
type DependencyWriteError struct {
	Step               string   // paso que falló
	Committed          []string // pasos confirmados antes del fallo, en orden
	Compensated        bool     // true si se intentó deshacer Committed
	CompensationErrors []error  // compensaciones que a su vez fallaron
	// Uncompensated pasos de Committed que siguen escritos tras compensar
	// (su deshacer falló o no existe).
	Uncompensated []string
	Err           error
}

func (e *DependencyWriteError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "escritura dependiente fallida en %q: %v", e.Step, e.Err)
	if len(e.Committed) > 0 {
		fmt.Fprintf(&b, " (confirmados: %s", strings.Join(e.Committed, ", "))
		if e.Compensated {
			if len(e.CompensationErrors) == 0 {
				b.WriteString("; compensados")
			} else {
				fmt.Fprintf(&b, "; %d compensaciones fallidas", len(e.CompensationErrors))
			}
		}
		b.WriteString(")")
	}
	return b.String()
}

func (e *DependencyWriteError) Unwrap() error { return e.Err }

// Pending indica los pasos que siguen escritos en el store y requieren reconciliación manual.
func (e *DependencyWriteError) Pending() []string {
	if e.Compensated {
		return e.Uncompensated
	}
	return e.Committed
}
