package entity

import "time"

// ReportMeta fila de la tabla informe; referencia una factura y/o un gasto.
type ReportMeta struct {
	ID        int64
	Generated time.Time
	InvoiceID *int64
	ExpenseID *int64
}
