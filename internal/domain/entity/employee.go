package entity

import "github.com/shopspring/decimal"

// Employee empleado de la lavandería (tabla empleado).
type Employee struct {
	ID               int64
	Name             string
	Type             string
	Salary           decimal.Decimal
	Phone            string
	PaymentFrequency string
	Bonus            *decimal.Decimal // prima
	Severance        *decimal.Decimal // liquidación
}

// PaymentKind pago puntual que se registra sobre un empleado. Cada valor
// corresponde a una única columna; no hay nombres de columna dinámicos.
type PaymentKind string

const (
	PaymentBonus     PaymentKind = "prima"
	PaymentSeverance PaymentKind = "liquidacion"
)

// ParsePaymentKind valida el tipo de pago recibido por la API.
func ParsePaymentKind(s string) (PaymentKind, bool) {
	switch PaymentKind(s) {
	case PaymentBonus, PaymentSeverance:
		return PaymentKind(s), true
	}
	return "", false
}
