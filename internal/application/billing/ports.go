package billing

import "time"

// Config política de escritura de facturas.
type Config struct {
	// Compensate deshace los pasos confirmados cuando uno posterior falla.
	// Con false quedan escritos y se reportan para reconciliación manual.
	Compensate bool
}

// Clock fuente de la fecha actual; se sustituye en tests.
type Clock func() time.Time
