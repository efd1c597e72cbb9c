package entity

import "github.com/shopspring/decimal"

// InvoiceDetail línea de detalle de una factura: una prenda o servicio (tabla factura_detalle).
type InvoiceDetail struct {
	ID          int64
	InvoiceID   int64
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// Subtotal cantidad × precio unitario.
func (d *InvoiceDetail) Subtotal() decimal.Decimal {
	return d.UnitPrice.Mul(decimal.NewFromInt(int64(d.Quantity)))
}
