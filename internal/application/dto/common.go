package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}

// DependencyWriteDetails detalle de una escritura multi-tabla fallida.
type DependencyWriteDetails struct {
	Step        string   `json:"step"`
	Committed   []string `json:"committed"`
	Compensated bool     `json:"compensated"`
	Pending     []string `json:"pending"`
}
