package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de la factura. Una fecha de entrega implica StatusDelivered.
const (
	StatusPending   = "Pendiente"
	StatusDelivered = "Entregado"
)

// Invoice cabecera de una factura (tabla factura).
type Invoice struct {
	ID            int64
	Code          string
	CreatedDate   time.Time
	CompletedDate *time.Time // nil mientras está Pendiente
	Amount        decimal.Decimal
	Status        string
	ClientID      int64
	Version       int // token de concurrencia optimista
}

// NextStatus devuelve el estado opuesto (Pendiente <-> Entregado).
func (i *Invoice) NextStatus() string {
	if i.Status == StatusDelivered {
		return StatusPending
	}
	return StatusDelivered
}

// IsValidStatus reporta si s es un estado conocido.
func IsValidStatus(s string) bool {
	return s == StatusPending || s == StatusDelivered
}
