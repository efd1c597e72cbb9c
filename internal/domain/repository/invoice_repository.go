package repository

import (
	"context"

	"github.com/jhoicas/lavanderia-api/internal/domain/entity"
)

// InvoiceRepository puerto de persistencia para factura y factura_detalle.
// Cada método es atómico por sí solo; no hay transacción entre llamadas.
type InvoiceRepository interface {
	// Create inserta la cabecera y completa ID, Status y Version con lo que devuelve el store.
	Create(ctx context.Context, invoice *entity.Invoice) error
	// CreateDetails inserta todas las líneas en una sola sentencia y asigna sus IDs.
	CreateDetails(ctx context.Context, details []*entity.InvoiceDetail) error
	DeleteDetails(ctx context.Context, invoiceID int64) error
	// GetByID devuelve (nil, nil) si la factura no existe.
	GetByID(ctx context.Context, id int64) (*entity.Invoice, error)
	// UpdateIfVersion escribe estado, fecha final y valor solo si la versión
	// almacenada sigue siendo expectedVersion. Devuelve false si otro request ganó.
	UpdateIfVersion(ctx context.Context, invoice *entity.Invoice, expectedVersion int) (bool, error)
	// Delete devuelve domain.ErrNotFound si no había fila.
	Delete(ctx context.Context, id int64) error
	// ListNested devuelve facturas con cliente → sucursal_cliente → sucursal y sus detalles.
	ListNested(ctx context.Context) ([]map[string]any, error)
}

// ReportMetaRepository puerto para la tabla informe.
type ReportMetaRepository interface {
	DeleteByInvoice(ctx context.Context, invoiceID int64) error
}
